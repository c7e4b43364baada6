// Package engine derives game numbers from parsed records
package engine

//go:generate mockgen -destination=mock/mock_engine.go -package=enginemock github.com/KirkDiggler/dnd-document-parser/internal/engine Engine

import (
	"context"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
)

// Engine provides rules calculations over parsed creatures
type Engine interface {
	// RollHitPoints rolls a creature's hit dice instead of taking the average
	RollHitPoints(ctx context.Context, input *RollHitPointsInput) (*RollHitPointsOutput, error)

	// CheckCreature recomputes derived numbers and reports the ones the stat
	// block prints differently
	CheckCreature(ctx context.Context, input *CheckCreatureInput) (*CheckCreatureOutput, error)

	// Utility methods
	CalculateAbilityModifier(score int) int
	CalculateProficiencyBonus(cr entities.ChallengeRating) int
}
