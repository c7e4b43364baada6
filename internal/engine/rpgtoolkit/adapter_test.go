package rpgtoolkit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-document-parser/internal/engine"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

// stubDiceRoller returns its faces in order and records what was asked
type stubDiceRoller struct {
	faces []int
	err   error
	count int
	size  int
}

func (s *stubDiceRoller) Roll(size int) (int, error) {
	rolls, err := s.RollN(1, size)
	if err != nil {
		return 0, err
	}
	return rolls[0], nil
}

func (s *stubDiceRoller) RollN(count, size int) ([]int, error) {
	s.count, s.size = count, size
	if s.err != nil {
		return nil, s.err
	}
	return s.faces[:count], nil
}

func TestNewAdapter(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		adapter, err := NewAdapter(nil)
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "config is required")
	})

	t.Run("missing dice roller", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{})
		assert.Error(t, err)
		assert.Nil(t, adapter)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "dice roller is required")
	})

	t.Run("valid config", func(t *testing.T) {
		adapter, err := NewAdapter(&AdapterConfig{DiceRoller: &stubDiceRoller{}})
		assert.NoError(t, err)
		assert.NotNil(t, adapter)
	})
}

type AdapterTestSuite struct {
	suite.Suite
	roller  *stubDiceRoller
	adapter *Adapter
	ctx     context.Context
	goblin  *entities.Creature
}

func TestAdapterSuite(t *testing.T) {
	suite.Run(t, new(AdapterTestSuite))
}

func (s *AdapterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.roller = &stubDiceRoller{faces: []int{6, 1, 4, 3, 5, 2}}

	var err error
	s.adapter, err = NewAdapter(&AdapterConfig{DiceRoller: s.roller})
	s.Require().NoError(err)

	s.goblin = &entities.Creature{
		Name:      "Goblin",
		HitPoints: entities.HitPoints{Average: 7, Formula: entities.DiceFormula{Count: 2, Die: 6}},
		AbilityScores: entities.AbilityScores{
			Strength:     8,
			Dexterity:    14,
			Constitution: 10,
			Intelligence: 10,
			Wisdom:       8,
			Charisma:     8,
		},
		Skills:            map[dnd5e.Skill]int{dnd5e.SkillStealth: 6},
		PassivePerception: 9,
		ChallengeRating:   entities.ChallengeRating{Fraction: entities.FractionQuarter},
	}
}

func (s *AdapterTestSuite) TestCalculateAbilityModifier() {
	testCases := []struct {
		score    int
		expected int
	}{
		{score: 1, expected: -5},
		{score: 8, expected: -1},
		{score: 9, expected: -1},
		{score: 10, expected: 0},
		{score: 11, expected: 0},
		{score: 15, expected: 2},
		{score: 30, expected: 10},
	}

	for _, tc := range testCases {
		s.Assert().Equal(tc.expected, s.adapter.CalculateAbilityModifier(tc.score), "score %d", tc.score)
	}
}

func (s *AdapterTestSuite) TestCalculateProficiencyBonus() {
	testCases := []struct {
		cr       entities.ChallengeRating
		expected int
	}{
		{cr: entities.ChallengeRating{Whole: 0}, expected: 2},
		{cr: entities.ChallengeRating{Fraction: entities.FractionEighth}, expected: 2},
		{cr: entities.ChallengeRating{Whole: 4}, expected: 2},
		{cr: entities.ChallengeRating{Whole: 5}, expected: 3},
		{cr: entities.ChallengeRating{Whole: 10}, expected: 4},
		{cr: entities.ChallengeRating{Whole: 17}, expected: 6},
		{cr: entities.ChallengeRating{Whole: 30}, expected: 9},
	}

	for _, tc := range testCases {
		s.Assert().Equal(tc.expected, s.adapter.CalculateProficiencyBonus(tc.cr), "cr %s", tc.cr)
	}
}

func (s *AdapterTestSuite) TestRollHitPoints() {
	out, err := s.adapter.RollHitPoints(s.ctx, &engine.RollHitPointsInput{
		Formula: entities.DiceFormula{Count: 3, Die: 8, Modifier: 2},
	})
	s.Require().NoError(err)

	s.Assert().Equal(3, s.roller.count)
	s.Assert().Equal(8, s.roller.size)
	s.Assert().Equal([]int{6, 1, 4}, out.Rolls)
	s.Assert().Equal(13, out.Total)
}

func (s *AdapterTestSuite) TestRollHitPointsFloorsAtOne() {
	s.roller.faces = []int{1, 1}

	out, err := s.adapter.RollHitPoints(s.ctx, &engine.RollHitPointsInput{
		Formula: entities.DiceFormula{Count: 2, Die: 4, Modifier: -4},
	})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Total)
}

func (s *AdapterTestSuite) TestRollHitPointsErrors() {
	_, err := s.adapter.RollHitPoints(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.adapter.RollHitPoints(s.ctx, &engine.RollHitPointsInput{})
	s.Assert().True(errors.IsInvalidArgument(err))

	s.roller.err = errors.Internal("no entropy")
	_, err = s.adapter.RollHitPoints(s.ctx, &engine.RollHitPointsInput{
		Formula: entities.DiceFormula{Count: 1, Die: 6},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInternal(err))
}

func (s *AdapterTestSuite) TestCheckConsistentCreature() {
	out, err := s.adapter.CheckCreature(s.ctx, &engine.CheckCreatureInput{Creature: s.goblin})
	s.Require().NoError(err)
	s.Assert().Empty(out.Discrepancies)
}

func (s *AdapterTestSuite) TestCheckReportsDiscrepancies() {
	bonus := 3
	s.goblin.HitPoints.Average = 8
	s.goblin.Skills[dnd5e.SkillPerception] = 2
	s.goblin.ProficiencyBonus = &bonus

	out, err := s.adapter.CheckCreature(s.ctx, &engine.CheckCreatureInput{Creature: s.goblin})
	s.Require().NoError(err)
	s.Assert().Equal([]engine.Discrepancy{
		{Field: engine.FieldHitPoints, Expected: 7, Actual: 8},
		{Field: engine.FieldPassivePerception, Expected: 12, Actual: 9},
		{Field: engine.FieldProficiencyBonus, Expected: 2, Actual: 3},
	}, out.Discrepancies)
}

func (s *AdapterTestSuite) TestCheckRequiresCreature() {
	_, err := s.adapter.CheckCreature(s.ctx, &engine.CheckCreatureInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}
