package engine

import (
	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
)

// RollHitPointsInput contains the formula to roll
type RollHitPointsInput struct {
	Formula entities.DiceFormula
}

// RollHitPointsOutput contains the individual dice and the total
type RollHitPointsOutput struct {
	Rolls []int
	// Total is the dice plus the modifier, never less than 1
	Total int
}

// CheckCreatureInput contains the creature to check
type CheckCreatureInput struct {
	Creature *entities.Creature
}

// CheckCreatureOutput lists every derived number that disagrees with the
// stat block. An empty list means the stat block is consistent.
type CheckCreatureOutput struct {
	Discrepancies []Discrepancy
}

// Discrepancy is one derived number that does not match
type Discrepancy struct {
	Field    string
	Expected int
	Actual   int
}

// Checked fields
const (
	FieldHitPoints         = "hit_points"
	FieldPassivePerception = "passive_perception"
	FieldProficiencyBonus  = "proficiency_bonus"
)
