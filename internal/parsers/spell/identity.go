package spell

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

type identity struct {
	name   string
	level  int
	school dnd5e.School
	ritual bool
}

// parseIdentity reads the heading name and the "<level> <school>[ ritual]"
// line, e.g. "*1st-level divination (ritual)*" or "*Evocation cantrip*".
func parseIdentity(group segment.Group) (*identity, error) {
	if err := segment.Expect(errors.StepSpellIdentity, group, 2); err != nil {
		return nil, err
	}

	name, ok := segment.Heading(group[0])
	if !ok {
		return nil, errors.Parsef(errors.StepSpellName, group[0], "name must be a heading")
	}

	level, school, ritual, err := ParseLevelSchool(group[1])
	if err != nil {
		return nil, err
	}

	return &identity{name: name, level: level, school: school, ritual: ritual}, nil
}

// ParseLevelSchool takes the first digit as the level (0 when there is
// none), the first school word as the school, and flags a "ritual" word.
func ParseLevelSchool(line string) (level int, school dnd5e.School, ritual bool, err error) {
	cleaned := clean(line)

	if i := strings.IndexFunc(cleaned, unicode.IsDigit); i >= 0 {
		level = int(cleaned[i] - '0')
	}

	for _, word := range strings.Fields(cleaned) {
		if school == "" && dnd5e.IsSchool(word) {
			school, _ = dnd5e.ParseSchool(word)
		}
		if word == "ritual" {
			ritual = true
		}
	}
	if school == "" {
		return 0, "", false, errors.Parsef(errors.StepSpellLevelSchool, line, "no school of magic")
	}
	return level, school, ritual, nil
}
