// Package rpgtoolkit provides the concrete implementation of the engine interface using rpg-toolkit modules.
package rpgtoolkit

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dnd-document-parser/internal/engine"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

// passiveBase is the score a passive check starts from
const passiveBase = 10

// Adapter implements the engine.Engine interface using rpg-toolkit
type Adapter struct {
	diceRoller dice.Roller
}

// AdapterConfig contains configuration for creating a new Adapter
type AdapterConfig struct {
	DiceRoller dice.Roller
}

// Validate checks that all required dependencies are provided
func (c *AdapterConfig) Validate() error {
	if c.DiceRoller == nil {
		return errors.InvalidArgument("dice roller is required")
	}
	return nil
}

// NewAdapter creates a new rpg-toolkit engine adapter
func NewAdapter(cfg *AdapterConfig) (*Adapter, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		diceRoller: cfg.DiceRoller,
	}, nil
}

// Verify that Adapter implements engine.Engine interface
var _ engine.Engine = (*Adapter)(nil)

// CalculateAbilityModifier calculates the D&D 5e ability modifier for a given score
func (a *Adapter) CalculateAbilityModifier(score int) int {
	// floor((score - 10) / 2); Go division truncates toward zero
	modifier := (score - 10) / 2
	if score < 10 && (score-10)%2 != 0 {
		modifier--
	}
	return modifier
}

// CalculateProficiencyBonus returns the proficiency bonus for a challenge
// rating: +2 up to CR 4, then one more every four ratings
func (a *Adapter) CalculateProficiencyBonus(cr entities.ChallengeRating) int {
	if cr.Fraction != "" || cr.Whole < 1 {
		return 2
	}
	return 2 + (cr.Whole-1)/4
}

// RollHitPoints rolls every hit die and adds the modifier
func (a *Adapter) RollHitPoints(_ context.Context, input *engine.RollHitPointsInput) (*engine.RollHitPointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	f := input.Formula
	if f.Count < 1 || f.Die < 1 {
		return nil, errors.InvalidArgumentf("cannot roll %s", f)
	}

	rolls, err := a.diceRoller.RollN(f.Count, f.Die)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", f)
	}

	total := f.Modifier
	for _, r := range rolls {
		total += r
	}
	if total < 1 {
		total = 1
	}

	return &engine.RollHitPointsOutput{
		Rolls: rolls,
		Total: total,
	}, nil
}

// CheckCreature recomputes the average hit points, passive Perception and
// proficiency bonus
func (a *Adapter) CheckCreature(_ context.Context, input *engine.CheckCreatureInput) (*engine.CheckCreatureOutput, error) {
	if input == nil || input.Creature == nil {
		return nil, errors.InvalidArgument("creature is required")
	}
	c := input.Creature

	var out engine.CheckCreatureOutput
	check := func(field string, expected, actual int) {
		if expected != actual {
			out.Discrepancies = append(out.Discrepancies, engine.Discrepancy{
				Field:    field,
				Expected: expected,
				Actual:   actual,
			})
		}
	}

	check(engine.FieldHitPoints, averageHitPoints(c.HitPoints.Formula), c.HitPoints.Average)

	perception, proficient := c.Skills[dnd5e.SkillPerception]
	if !proficient {
		perception = a.CalculateAbilityModifier(c.AbilityScores.Wisdom)
	}
	check(engine.FieldPassivePerception, passiveBase+perception, c.PassivePerception)

	if c.ProficiencyBonus != nil {
		check(engine.FieldProficiencyBonus, a.CalculateProficiencyBonus(c.ChallengeRating), *c.ProficiencyBonus)
	}

	return &out, nil
}

// averageHitPoints is the printed average: half a die rounded down per die,
// plus the modifier, never less than 1
func averageHitPoints(f entities.DiceFormula) int {
	avg := f.Count*(f.Die+1)/2 + f.Modifier
	if avg < 1 {
		return 1
	}
	return avg
}
