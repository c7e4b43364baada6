package fivetools

import (
	"fmt"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
)

// classSource is the book every class in fromClassList is attributed to
const classSource = "PHB"

// SpellEntry is a 5etools spell
type SpellEntry struct {
	Name               string     `json:"name"`
	Source             string     `json:"source"`
	Page               int        `json:"page"`
	Level              int        `json:"level"`
	School             string     `json:"school"`
	Time               []Time     `json:"time"`
	Range              SpellRange `json:"range"`
	Components         Components `json:"components"`
	Duration           []Duration `json:"duration"`
	Meta               *Meta      `json:"meta,omitempty"`
	Entries            []any      `json:"entries"`
	EntriesHigherLevel []Entry    `json:"entriesHigherLevel,omitempty"`
	DamageInflict      []string   `json:"damageInflict,omitempty"`
	Classes            Classes    `json:"classes"`
}

// Time is a casting time
type Time struct {
	Number    int    `json:"number"`
	Unit      string `json:"unit"`
	Condition string `json:"condition,omitempty"`
}

// SpellRange is a range with an optional distance
type SpellRange struct {
	Type     string    `json:"type"`
	Distance *Distance `json:"distance,omitempty"`
}

// Distance is an amount of a unit, or a bare "self" or "touch"
type Distance struct {
	Type   string `json:"type"`
	Amount int    `json:"amount,omitempty"`
}

// Components mirrors the V, S, M flags. M is a string or a MaterialCost.
type Components struct {
	V bool `json:"v,omitempty"`
	S bool `json:"s,omitempty"`
	M any  `json:"m,omitempty"`
}

// MaterialCost is a material with a cost in copper pieces
type MaterialCost struct {
	Text    string `json:"text"`
	Cost    int    `json:"cost"`
	Consume bool   `json:"consume,omitempty"`
}

// Duration is an instant or timed duration
type Duration struct {
	Type          string       `json:"type"`
	Duration      *TimedLength `json:"duration,omitempty"`
	Concentration bool         `json:"concentration,omitempty"`
}

// TimedLength is the span of a timed duration
type TimedLength struct {
	Type   string `json:"type"`
	Amount int    `json:"amount"`
}

// Meta holds spell tags
type Meta struct {
	Ritual bool `json:"ritual"`
}

// Classes lists who can learn the spell
type Classes struct {
	FromClassList []ClassRef `json:"fromClassList"`
}

// ClassRef names a class and the book it comes from
type ClassRef struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// FromSpell converts a spell record
func FromSpell(sp *entities.Spell) *SpellEntry {
	out := &SpellEntry{
		Name:          sp.Name,
		Source:        sp.Source.Book,
		Page:          sp.Source.Page,
		Level:         sp.Level,
		School:        schoolCode(sp.School),
		Time:          []Time{castingTime(sp.CastingTime)},
		Range:         spellRange(sp.Range),
		Components:    components(sp.Components),
		Duration:      []Duration{duration(sp.Duration)},
		Entries:       description(sp.Description),
		DamageInflict: stringsOf(sp.DamageTypes),
	}

	if sp.Ritual {
		out.Meta = &Meta{Ritual: true}
	}
	if sp.AtHigherLevels != nil {
		higher := entryFromRecord(entities.Entry{Name: "At Higher Levels", Body: *sp.AtHigherLevels})
		higher.Type = "entries"
		out.EntriesHigherLevel = []Entry{higher}
	}

	out.Classes.FromClassList = make([]ClassRef, len(sp.Classes))
	for i, class := range sp.Classes {
		out.Classes.FromClassList[i] = ClassRef{Name: capitalize(string(class)), Source: classSource}
	}

	return out
}

func schoolCode(school dnd5e.School) string {
	switch school {
	case dnd5e.SchoolAbjuration:
		return "A"
	case dnd5e.SchoolConjuration:
		return "C"
	case dnd5e.SchoolDivination:
		return "D"
	case dnd5e.SchoolEnchantment:
		return "E"
	case dnd5e.SchoolEvocation:
		return "V"
	case dnd5e.SchoolIllusion:
		return "I"
	case dnd5e.SchoolNecromancy:
		return "N"
	case dnd5e.SchoolTransmutation:
		return "T"
	default:
		panic(fmt.Sprintf("unhandled school %q", school))
	}
}

func castingTime(ct entities.CastingTime) Time {
	if ct.Action != "" {
		return Time{Number: ct.Amount, Unit: string(ct.Action), Condition: ct.Condition}
	}
	return Time{Number: ct.Amount, Unit: string(ct.Time)}
}

func spellRange(r entities.Range) SpellRange {
	switch r.Kind {
	case entities.RangeSpecial:
		return SpellRange{Type: "special"}
	case entities.RangeSelf:
		return SpellRange{Type: "point", Distance: &Distance{Type: "self"}}
	case entities.RangeTouch:
		return SpellRange{Type: "point", Distance: &Distance{Type: "touch"}}
	case entities.RangeRanged:
		return SpellRange{
			Type:     string(r.Shape),
			Distance: &Distance{Type: string(r.Unit), Amount: r.Amount},
		}
	default:
		panic(fmt.Sprintf("unhandled range kind %q", r.Kind))
	}
}

// copperPer is the value of one coin in copper pieces
var copperPer = map[dnd5e.Currency]int{
	dnd5e.CurrencyCopper:   1,
	dnd5e.CurrencySilver:   10,
	dnd5e.CurrencyElectrum: 50,
	dnd5e.CurrencyGold:     100,
	dnd5e.CurrencyPlatinum: 1000,
}

func components(c entities.Components) Components {
	out := Components{V: c.Verbal, S: c.Somatic}
	if c.Material == nil {
		return out
	}
	if c.Material.Cost == nil {
		out.M = c.Material.Description
		return out
	}
	out.M = MaterialCost{
		Text:    c.Material.Description,
		Cost:    c.Material.Cost.Amount * copperPer[c.Material.Cost.Currency],
		Consume: c.Material.Consumed,
	}
	return out
}

func duration(d entities.Duration) Duration {
	if d.Kind == entities.DurationInstantaneous {
		return Duration{Type: "instant"}
	}
	return Duration{
		Type:          "timed",
		Duration:      &TimedLength{Type: string(d.Unit), Amount: d.Amount},
		Concentration: d.Concentration,
	}
}

func description(entries []entities.DescriptionEntry) []any {
	out := make([]any, 0, len(entries))
	for _, e := range entries {
		if e.IsList() {
			out = append(out, list(e.List))
			continue
		}
		out = append(out, TagDamage(e.Text))
	}
	return out
}

// list flattens nested bullets into a list whose nested lists follow the
// item they belong to
func list(items []entities.ListItem) List {
	out := List{Type: "list"}
	for _, item := range items {
		out.Items = append(out.Items, TagDamage(item.Text))
		if len(item.Items) > 0 {
			out.Items = append(out.Items, list(item.Items))
		}
	}
	return out
}
