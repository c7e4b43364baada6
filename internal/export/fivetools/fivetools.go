// Package fivetools converts parsed records into the 5etools homebrew
// schema. Every output type is a struct so keys come out in a stable order.
package fivetools

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/formula"
)

// dicePattern finds dice expressions in free text, e.g. "2d6 + 3"
var dicePattern = regexp.MustCompile(`\b\d+d\d+(?:\s*[+\-−]\s*\d+)?\b`)

// TagDamage wraps every dice expression in text with {@damage ...}
func TagDamage(text string) string {
	return dicePattern.ReplaceAllStringFunc(text, func(match string) string {
		f, err := formula.ParseDice(match)
		if err != nil {
			return match
		}
		return fmt.Sprintf("{@damage %s}", f)
	})
}

// Item is a named sub-entry inside an entry's text
type Item struct {
	Type  string `json:"type"`
	Name  string `json:"name"`
	Entry string `json:"entry"`
}

// Entry is a named trait, action or spell section
type Entry struct {
	Type    string `json:"type,omitempty"`
	Name    string `json:"name"`
	Entries []any  `json:"entries"`
}

// List is a bulleted list. Items are strings or nested lists.
type List struct {
	Type  string `json:"type"`
	Items []any  `json:"items"`
}

func entryFromRecord(e entities.Entry) Entry {
	out := Entry{Name: usageName(e)}
	for _, line := range strings.Split(e.Body, "\n") {
		if line != "" {
			out.Entries = append(out.Entries, TagDamage(line))
		}
	}
	if len(e.SubEntries) > 0 {
		list := List{Type: "list"}
		for _, sub := range e.SubEntries {
			list.Items = append(list.Items, Item{
				Type:  "item",
				Name:  usageName(sub),
				Entry: TagDamage(sub.Body),
			})
		}
		out.Entries = append(out.Entries, list)
	}
	if out.Entries == nil {
		out.Entries = []any{}
	}
	return out
}

func entriesFromRecords(records []entities.Entry) []Entry {
	if len(records) == 0 {
		return nil
	}
	out := make([]Entry, 0, len(records))
	for _, e := range records {
		out = append(out, entryFromRecord(e))
	}
	return out
}

// usageName renders an entry name with its usage the way 5etools expects
func usageName(e entities.Entry) string {
	if e.Usage == nil {
		return e.Name
	}
	u := e.Usage
	switch u.Kind {
	case entities.UsagePerDay:
		if u.Each {
			return fmt.Sprintf("%s (%d/Day Each)", e.Name, u.Charges)
		}
		return fmt.Sprintf("%s (%d/Day)", e.Name, u.Charges)
	case entities.UsageRecharge:
		if u.RechargeOn == 6 {
			return e.Name + " {@recharge}"
		}
		return fmt.Sprintf("%s {@recharge %d}", e.Name, u.RechargeOn)
	case entities.UsageRest:
		return fmt.Sprintf("%s (Recharges after a %s)", e.Name, titleWords(u.Rest))
	case entities.UsageCost:
		if u.Charges == 1 {
			return e.Name
		}
		return fmt.Sprintf("%s (Costs %d Actions)", e.Name, u.Charges)
	default:
		panic(fmt.Sprintf("unhandled usage kind %q", u.Kind))
	}
}

// titleWords capitalizes every word except short joiners
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		switch w {
		case "or", "and", "a", "of":
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
