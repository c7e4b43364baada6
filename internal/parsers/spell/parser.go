// Package spell parses spell write-ups into entities.Spell records.
//
// A write-up is split into groups by "___" lines:
//
//	#### Fireball
//	*3rd-level evocation*
//	___
//	- **Casting Time:** 1 action
//	- **Range:** 150 feet
//	- **Components:** V, S, M (a tiny ball of bat guano and sulfur)
//	- **Duration:** Instantaneous
//	- **Classes:** Sorcerer, Wizard
//	___
//	A bright streak flashes from your pointing finger...
//
//	**At Higher Levels.** When you cast this spell using a spell slot...
package spell

import (
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

// minGroups is identity, mechanics and at least one description group
const minGroups = 3

// Parse segments a write-up and assembles the spell it describes
func Parse(document string, source entities.Source) (*entities.Spell, error) {
	return ParseGroups(segment.SplitSpellIntoGroups(document), source)
}

// ParseGroups assembles a spell from already segmented groups
func ParseGroups(groups []segment.Group, source entities.Source) (*entities.Spell, error) {
	if len(groups) < minGroups {
		joined := make([]string, len(groups))
		for i, group := range groups {
			joined[i] = strings.Join(group, "\n")
		}
		return nil, errors.OutOfBounds(errors.StepSpellGroups, joined, len(groups))
	}

	id, err := parseIdentity(groups[0])
	if err != nil {
		return nil, err
	}
	mech, err := parseMechanics(groups[1])
	if err != nil {
		return nil, err
	}
	text, err := parseEntries(groups[2:])
	if err != nil {
		return nil, err
	}

	return &entities.Spell{
		Source:         source,
		Name:           id.name,
		Level:          id.level,
		School:         id.school,
		CastingTime:    mech.castingTime,
		Ritual:         id.ritual,
		Duration:       mech.duration,
		Range:          mech.spellRange,
		Components:     mech.components,
		DamageTypes:    text.damageTypes,
		Description:    text.description,
		AtHigherLevels: text.atHigherLevels,
		Classes:        mech.classes,
	}, nil
}
