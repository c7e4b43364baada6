package creature

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

// parseAbilityScores reads the three-row table: header, alignment row,
// values. Columns are matched by position.
func parseAbilityScores(group segment.Group) (entities.AbilityScores, error) {
	if err := segment.Expect(errors.StepCreatureAbilityScores, group, 3); err != nil {
		return entities.AbilityScores{}, err
	}

	header := tableCells(group[0])
	values := tableCells(group[2])
	if len(values) != len(header) {
		index := min(len(header), len(values))
		return entities.AbilityScores{}, errors.OutOfBounds(errors.StepCreatureAbilityScores, values, index)
	}

	scores := make(map[dnd5e.Ability]int, len(header))
	for i, cell := range header {
		ability, err := abilityFromHeader(cell)
		if err != nil {
			return entities.AbilityScores{}, err
		}
		if _, dup := scores[ability]; dup {
			return entities.AbilityScores{}, errors.Parsef(errors.StepCreatureAbilityScores, group[0], "duplicate column %q", cell)
		}

		fields := strings.Fields(values[i])
		if len(fields) == 0 {
			return entities.AbilityScores{}, errors.Parsef(errors.StepCreatureAbilityScores, group[2], "empty %s score", ability)
		}
		score, err := strconv.Atoi(fields[0])
		if err != nil {
			return entities.AbilityScores{}, errors.Parsef(errors.StepCreatureAbilityScores, values[i], "%s score", ability).WithCause(err)
		}
		scores[ability] = score
	}

	for _, ability := range dnd5e.AllAbilities() {
		if _, ok := scores[ability]; !ok {
			return entities.AbilityScores{}, errors.Parsef(errors.StepCreatureAbilityScores, group[0], "missing %s column", ability)
		}
	}

	return entities.AbilityScores{
		Strength:     scores[dnd5e.AbilityStrength],
		Dexterity:    scores[dnd5e.AbilityDexterity],
		Constitution: scores[dnd5e.AbilityConstitution],
		Intelligence: scores[dnd5e.AbilityIntelligence],
		Wisdom:       scores[dnd5e.AbilityWisdom],
		Charisma:     scores[dnd5e.AbilityCharisma],
	}, nil
}

// abilityFromHeader maps a header cell by its first three characters
func abilityFromHeader(cell string) (dnd5e.Ability, error) {
	cell = strings.TrimSpace(cell)
	if len(cell) < 3 {
		return "", errors.Parsef(errors.StepCreatureAbilityScores, cell, "header too short")
	}
	return dnd5e.ParseAbility(cell[:3])
}

// tableCells splits "|a|b|c|" into its trimmed cells
func tableCells(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	cells := strings.Split(row, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}
