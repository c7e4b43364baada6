package dnd5e_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

type LexiconTestSuite struct {
	suite.Suite
}

func TestLexiconSuite(t *testing.T) {
	suite.Run(t, new(LexiconTestSuite))
}

func (s *LexiconTestSuite) TestCaseInsensitive() {
	size, err := dnd5e.ParseSize("GarGantuan")
	s.Require().NoError(err)
	s.Assert().Equal(dnd5e.SizeGargantuan, size)

	school, err := dnd5e.ParseSchool(" Evocation ")
	s.Require().NoError(err)
	s.Assert().Equal(dnd5e.SchoolEvocation, school)
}

func (s *LexiconTestSuite) TestAliases() {
	testCases := []struct {
		name     string
		parse    func() (string, error)
		expected string
	}{
		{"ability full name", func() (string, error) { v, err := dnd5e.ParseAbility("Wisdom"); return string(v), err }, "wis"},
		{"ability abbreviation", func() (string, error) { v, err := dnd5e.ParseAbility("CON"); return string(v), err }, "con"},
		{"bonus action", func() (string, error) { v, err := dnd5e.ParseActionType("bonus action"); return string(v), err }, "bonus"},
		{"plural minutes", func() (string, error) { v, err := dnd5e.ParseTimeUnit("minutes"); return string(v), err }, "minute"},
		{"foot", func() (string, error) { v, err := dnd5e.ParseRangeUnit("foot"); return string(v), err }, "feet"},
		{"gold", func() (string, error) { v, err := dnd5e.ParseCurrency("gold"); return string(v), err }, "gp"},
		{"skill with spaces", func() (string, error) { v, err := dnd5e.ParseSkill("Sleight of Hand"); return string(v), err }, "sleight of hand"},
		{"entry heading", func() (string, error) { v, err := dnd5e.ParseEntryCategory("Legendary Actions"); return string(v), err }, "legendary actions"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			v, err := tc.parse()
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, v)
		})
	}
}

func (s *LexiconTestSuite) TestFailureNamesLexicon() {
	testCases := []struct {
		name  string
		parse func() error
		step  errors.Step
	}{
		{"size", func() error { _, err := dnd5e.ParseSize("colossal"); return err }, errors.StepLexiconSize},
		{"creature type", func() error { _, err := dnd5e.ParseCreatureType("robot"); return err }, errors.StepLexiconCreatureType},
		{"order", func() error { _, err := dnd5e.ParseAlignmentOrder("good"); return err }, errors.StepLexiconOrder},
		{"moral", func() error { _, err := dnd5e.ParseAlignmentMoral("lawful"); return err }, errors.StepLexiconMoral},
		{"skill", func() error { _, err := dnd5e.ParseSkill("cooking"); return err }, errors.StepLexiconSkill},
		{"condition", func() error { _, err := dnd5e.ParseCondition("sleepy"); return err }, errors.StepLexiconCondition},
		{"damage type", func() error { _, err := dnd5e.ParseDamageType("sonic"); return err }, errors.StepLexiconDamageType},
		{"target shape", func() error { _, err := dnd5e.ParseTargetShape("blob"); return err }, errors.StepLexiconTargetShape},
		{"class", func() error { _, err := dnd5e.ParseClass("mystic"); return err }, errors.StepLexiconClass},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.parse()
			s.Require().Error(err)
			s.Assert().True(errors.IsParse(err))
			s.Assert().Equal(tc.step, errors.GetStep(err))
		})
	}
}

func (s *LexiconTestSuite) TestPredicates() {
	s.Assert().True(dnd5e.IsDamageType("Necrotic"))
	s.Assert().False(dnd5e.IsDamageType("and"))
	s.Assert().True(dnd5e.IsClass("wizard"))
	s.Assert().True(dnd5e.IsCurrency("pp"))
	s.Assert().True(dnd5e.IsSchool("illusion"))
	s.Assert().True(dnd5e.IsActionType("reaction"))
}

func (s *LexiconTestSuite) TestAllDamageTypesIsACopy() {
	all := dnd5e.AllDamageTypes()
	s.Require().Len(all, 13)
	s.Assert().Equal(dnd5e.DamageAcid, all[0])

	all[0] = dnd5e.DamageFire
	s.Assert().Equal(dnd5e.DamageAcid, dnd5e.AllDamageTypes()[0])
}

func (s *LexiconTestSuite) TestAllAbilitiesOrder() {
	s.Assert().Equal([]dnd5e.Ability{
		dnd5e.AbilityStrength, dnd5e.AbilityDexterity, dnd5e.AbilityConstitution,
		dnd5e.AbilityIntelligence, dnd5e.AbilityWisdom, dnd5e.AbilityCharisma,
	}, dnd5e.AllAbilities())
}
