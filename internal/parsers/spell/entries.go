package spell

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

const higherLevelsMarker = "At Higher Levels"

// higherLevelsLabel is the token count of "**At Higher Levels.**"
const higherLevelsLabel = 3

// isHigherLevels matches the bold label in both "**At Higher Levels.**" and
// "***At Higher Levels.***" form
func isHigherLevels(line string) bool {
	return strings.HasPrefix(line, "**") &&
		strings.HasPrefix(strings.TrimLeft(line, "*"), higherLevelsMarker)
}

type entries struct {
	description    []entities.DescriptionEntry
	damageTypes    []dnd5e.DamageType
	atHigherLevels *string
}

// parseEntries sorts description lines from the higher-level text, folds
// runs of bullets into lists and collects the damage types mentioned in the
// description.
func parseEntries(groups []segment.Group) (*entries, error) {
	var (
		out     entries
		higher  []string
		bullets []string
		flush   = func() {
			if len(bullets) > 0 {
				out.description = append(out.description, entities.DescriptionEntry{List: nestBullets(bullets)})
				bullets = nil
			}
		}
	)

	for _, group := range groups {
		for _, line := range group {
			trimmed := strings.TrimSpace(line)
			if isHigherLevels(trimmed) {
				flush()
				higher = append(higher, dropTokens(trimmed, higherLevelsLabel))
				continue
			}
			if _, ok := segment.ListItem(line); ok {
				bullets = append(bullets, line)
				continue
			}
			flush()
			out.description = append(out.description, entities.DescriptionEntry{Text: trimmed})
		}
		flush()
	}

	if len(out.description) == 0 {
		var all []string
		for _, group := range groups {
			all = append(all, group...)
		}
		return nil, errors.Parsef(errors.StepSpellEntries, strings.Join(all, "\n"), "no description")
	}
	if len(higher) > 0 {
		text := strings.Join(higher, "\n")
		out.atHigherLevels = &text
	}
	out.damageTypes = damageTypesIn(out.description)

	return &out, nil
}

// dropTokens drops the first n whitespace-separated tokens and rejoins the
// rest with single spaces
func dropTokens(s string, n int) string {
	fields := strings.Fields(s)
	if len(fields) <= n {
		return ""
	}
	return strings.Join(fields[n:], " ")
}

// nestBullets builds a list tree from bullet lines. A bullet indented
// deeper than the one before it becomes that bullet's child.
func nestBullets(lines []string) []entities.ListItem {
	type frame struct {
		indent int
		items  *[]entities.ListItem
	}

	var root []entities.ListItem
	stack := []frame{{indent: -1, items: &root}}

	for _, line := range lines {
		text, _ := segment.ListItem(line)
		indent := len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))

		for len(stack) > 1 && indent <= stack[len(stack)-1].indent {
			stack = stack[:len(stack)-1]
		}
		parent := stack[len(stack)-1].items
		*parent = append(*parent, entities.ListItem{Text: text})
		last := &(*parent)[len(*parent)-1]
		stack = append(stack, frame{indent: indent, items: &last.Items})
	}
	return root
}

// damageTypesIn returns each damage type named in the description, in
// first-seen order, or nil when there are none
func damageTypesIn(description []entities.DescriptionEntry) []dnd5e.DamageType {
	var (
		out  []dnd5e.DamageType
		seen = make(map[dnd5e.DamageType]bool)
	)
	add := func(text string) {
		for _, word := range strings.FieldsFunc(text, isNotLetter) {
			damageType, err := dnd5e.ParseDamageType(word)
			if err != nil || seen[damageType] {
				continue
			}
			seen[damageType] = true
			out = append(out, damageType)
		}
	}

	var walk func(items []entities.ListItem)
	walk = func(items []entities.ListItem) {
		for _, item := range items {
			add(item.Text)
			walk(item.Items)
		}
	}
	for _, entry := range description {
		add(entry.Text)
		walk(entry.List)
	}
	return out
}

func isNotLetter(r rune) bool {
	return !unicode.IsLetter(r)
}
