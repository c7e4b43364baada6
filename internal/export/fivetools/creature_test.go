package fivetools_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/export/fivetools"
	"github.com/KirkDiggler/dnd-document-parser/internal/testutils/compare"
)

const goblinBossJSON = `{
  "name": "Goblin Boss",
  "source": "MM",
  "page": 166,
  "size": ["S"],
  "type": {"type": "humanoid", "tags": ["goblinoid"]},
  "alignment": ["N", "E"],
  "ac": [{"ac": 17, "from": ["chain shirt", "shield"]}],
  "hp": {"average": 21, "formula": "6d6"},
  "speed": {"walk": 30},
  "str": 10,
  "dex": 14,
  "con": 10,
  "int": 10,
  "wis": 8,
  "cha": 10,
  "skill": {"stealth": "+6"},
  "senses": ["darkvision 60 ft."],
  "passive": 9,
  "languages": ["Common", "Goblin"],
  "cr": "1",
  "action": [
    {"name": "Multiattack", "entries": ["The goblin boss makes two attacks with its scimitar."]},
    {"name": "Scimitar", "entries": ["Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 ({@damage 1d6 + 2}) slashing damage."]}
  ],
  "reaction": [
    {"name": "Redirect Attack", "entries": ["When a creature the goblin can see targets it with an attack, the goblin chooses another goblin within 5 feet of it."]}
  ]
}`

type CreatureTestSuite struct {
	suite.Suite
	goblinBoss *entities.Creature
}

func TestCreatureSuite(t *testing.T) {
	suite.Run(t, new(CreatureTestSuite))
}

func (s *CreatureTestSuite) SetupTest() {
	s.goblinBoss = &entities.Creature{
		Source:    entities.Source{Book: "MM", Page: 166},
		Name:      "Goblin Boss",
		Size:      dnd5e.SizeSmall,
		Type:      entities.CreatureType{Main: dnd5e.CreatureTypeHumanoid, Subtypes: []string{"goblinoid"}},
		Alignment: entities.Alignment{Kind: entities.AlignmentTwoAxes, Order: dnd5e.OrderNeutral, Moral: dnd5e.MoralEvil},
		ArmorClass: entities.ArmorClass{
			Value:   17,
			Sources: []string{"chain shirt", "shield"},
		},
		HitPoints: entities.HitPoints{Average: 21, Formula: entities.DiceFormula{Count: 6, Die: 6}},
		Speed:     entities.Speed{Walk: 30},
		AbilityScores: entities.AbilityScores{
			Strength:     10,
			Dexterity:    14,
			Constitution: 10,
			Intelligence: 10,
			Wisdom:       8,
			Charisma:     10,
		},
		Skills:            map[dnd5e.Skill]int{dnd5e.SkillStealth: 6},
		Senses:            []string{"darkvision 60 ft."},
		PassivePerception: 9,
		Languages:         []string{"Common", "Goblin"},
		ChallengeRating:   entities.ChallengeRating{Whole: 1},
		Actions: []entities.Entry{
			{Name: "Multiattack", Body: "The goblin boss makes two attacks with its scimitar."},
			{Name: "Scimitar", Body: "Melee Weapon Attack: +4 to hit, reach 5 ft., one target. Hit: 5 (1d6 + 2) slashing damage."},
		},
		Reactions: []entities.Entry{
			{Name: "Redirect Attack", Body: "When a creature the goblin can see targets it with an attack, the goblin chooses another goblin within 5 feet of it."},
		},
	}
}

func (s *CreatureTestSuite) TestGoblinBossMatchesFixture() {
	actual, err := json.Marshal(fivetools.FromCreature(s.goblinBoss))
	s.Require().NoError(err)

	mismatch, err := compare.JSON([]byte(goblinBossJSON), actual)
	s.Require().NoError(err)
	s.Assert().Nil(mismatch)
}

func (s *CreatureTestSuite) TestAlignment() {
	testCases := []struct {
		name      string
		alignment entities.Alignment
		expected  []string
	}{
		{
			name:      "any",
			alignment: entities.Alignment{Kind: entities.AlignmentAny},
			expected:  []string{"A"},
		},
		{
			name:      "unaligned",
			alignment: entities.Alignment{Kind: entities.AlignmentUnaligned},
			expected:  []string{"U"},
		},
		{
			name:      "true neutral",
			alignment: entities.Alignment{Kind: entities.AlignmentTwoAxes, Order: dnd5e.OrderNeutral, Moral: dnd5e.MoralNeutral},
			expected:  []string{"N"},
		},
		{
			name:      "chaotic good",
			alignment: entities.Alignment{Kind: entities.AlignmentTwoAxes, Order: dnd5e.OrderChaotic, Moral: dnd5e.MoralGood},
			expected:  []string{"C", "G"},
		},
		{
			name:      "any chaotic",
			alignment: entities.Alignment{Kind: entities.AlignmentOneAxis, Order: dnd5e.OrderChaotic},
			expected:  []string{"C", "G", "NY", "E"},
		},
		{
			name:      "any evil",
			alignment: entities.Alignment{Kind: entities.AlignmentOneAxis, Moral: dnd5e.MoralEvil},
			expected:  []string{"L", "NX", "C", "E"},
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.goblinBoss.Alignment = tc.alignment
			s.Assert().Equal(tc.expected, fivetools.FromCreature(s.goblinBoss).Alignment)
		})
	}
}

func (s *CreatureTestSuite) TestDragonFeatures() {
	fly := entities.FlySpeed{Speed: 80, Hover: true}
	climb := 40
	perRound := 2
	s.goblinBoss.Speed = entities.Speed{Walk: 40, Climb: &climb, Fly: &fly}
	s.goblinBoss.ArmorClass = entities.ArmorClass{Value: 18}
	s.goblinBoss.SavingThrows = map[dnd5e.Ability]int{dnd5e.AbilityDexterity: -1}
	s.goblinBoss.DamageResistances = []entities.DamageModifier{
		{Types: []dnd5e.DamageType{dnd5e.DamageFire}},
		{
			Types:     []dnd5e.DamageType{dnd5e.DamageBludgeoning, dnd5e.DamagePiercing, dnd5e.DamageSlashing},
			Condition: "from nonmagical attacks",
		},
	}
	s.goblinBoss.ConditionImmunities = []dnd5e.Condition{dnd5e.ConditionFrightened}
	s.goblinBoss.ChallengeRating = entities.ChallengeRating{Fraction: entities.FractionQuarter}
	s.goblinBoss.LegendaryActions = []entities.Entry{
		{Name: "Detect", Body: "The dragon makes a Wisdom (Perception) check."},
		{Name: "Wing Attack", Usage: &entities.Usage{Kind: entities.UsageCost, Charges: 2}, Body: "The dragon beats its wings."},
	}
	s.goblinBoss.LegendaryActionsPerRound = &perRound

	actual := fivetools.FromCreature(s.goblinBoss)

	s.Assert().Equal([]any{18}, actual.AC)
	s.Assert().Empty(cmp.Diff(fivetools.Speed{
		Walk:     40,
		Climb:    &climb,
		Fly:      fivetools.ConditionalSpeed{Number: 80, Condition: "(hover)"},
		CanHover: true,
	}, actual.Speed))
	s.Assert().Equal(map[string]string{"dex": "-1"}, actual.Save)
	s.Assert().Equal([]any{
		"fire",
		fivetools.ConditionalResist{
			Resist: []string{"bludgeoning", "piercing", "slashing"},
			Note:   "from nonmagical attacks",
			Cond:   true,
		},
	}, actual.Resist)
	s.Assert().Nil(actual.Immune)
	s.Assert().Equal([]string{"frightened"}, actual.ConditionImmune)
	s.Assert().Equal("1/4", actual.CR)
	s.Assert().Equal([]fivetools.Entry{
		{Name: "Detect", Entries: []any{"The dragon makes a Wisdom (Perception) check."}},
		{Name: "Wing Attack (Costs 2 Actions)", Entries: []any{"The dragon beats its wings."}},
	}, actual.Legendary)
	s.Require().NotNil(actual.LegendaryActions)
	s.Assert().Equal(2, *actual.LegendaryActions)
}

func (s *CreatureTestSuite) TestThreeLegendaryActionsIsDefault() {
	perRound := 3
	s.goblinBoss.LegendaryActionsPerRound = &perRound

	s.Assert().Nil(fivetools.FromCreature(s.goblinBoss).LegendaryActions)
}

func (s *CreatureTestSuite) TestUsageNames() {
	testCases := []struct {
		name     string
		usage    *entities.Usage
		expected string
	}{
		{name: "none", expected: "Fire Breath"},
		{
			name:     "per day",
			usage:    &entities.Usage{Kind: entities.UsagePerDay, Charges: 3},
			expected: "Fire Breath (3/Day)",
		},
		{
			name:     "per day each",
			usage:    &entities.Usage{Kind: entities.UsagePerDay, Charges: 1, Each: true},
			expected: "Fire Breath (1/Day Each)",
		},
		{
			name:     "recharge six",
			usage:    &entities.Usage{Kind: entities.UsageRecharge, RechargeOn: 6},
			expected: "Fire Breath {@recharge}",
		},
		{
			name:     "recharge five",
			usage:    &entities.Usage{Kind: entities.UsageRecharge, RechargeOn: 5},
			expected: "Fire Breath {@recharge 5}",
		},
		{
			name:     "rest",
			usage:    &entities.Usage{Kind: entities.UsageRest, Rest: "short or long rest"},
			expected: "Fire Breath (Recharges after a Short or Long Rest)",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.goblinBoss.Actions = []entities.Entry{{Name: "Fire Breath", Usage: tc.usage, Body: "Fire."}}
			s.Assert().Equal(tc.expected, fivetools.FromCreature(s.goblinBoss).Action[0].Name)
		})
	}
}

func (s *CreatureTestSuite) TestSubEntriesBecomeItems() {
	s.goblinBoss.Actions = []entities.Entry{{
		Name: "Breath Weapons",
		Body: "The dragon uses one of the following breath weapons.",
		SubEntries: []entities.Entry{
			{Name: "Fire Breath", Body: "Each creature takes 56 (16d6) fire damage."},
		},
	}}

	actual := fivetools.FromCreature(s.goblinBoss).Action

	s.Assert().Empty(cmp.Diff([]fivetools.Entry{{
		Name: "Breath Weapons",
		Entries: []any{
			"The dragon uses one of the following breath weapons.",
			fivetools.List{
				Type: "list",
				Items: []any{
					fivetools.Item{Type: "item", Name: "Fire Breath", Entry: "Each creature takes 56 ({@damage 16d6}) fire damage."},
				},
			},
		},
	}}, actual))
}

func (s *CreatureTestSuite) TestTagDamage() {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "no dice here", expected: "no dice here"},
		{input: "Hit: 7 (2d6) slashing", expected: "Hit: 7 ({@damage 2d6}) slashing"},
		{input: "Hit: 3 (1d6 − 1) piercing", expected: "Hit: 3 ({@damage 1d6 - 1}) piercing"},
		{input: "1d4 and 2d8+3", expected: "{@damage 1d4} and {@damage 2d8 + 3}"},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			s.Assert().Equal(tc.expected, fivetools.TagDamage(tc.input))
		})
	}
}
