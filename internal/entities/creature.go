package entities

import (
	"fmt"
	"strconv"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
)

// Creature is a parsed stat block. Optional fields are nil when the stat
// block does not mention them.
type Creature struct {
	Source                   Source                `json:"source" yaml:"source"`
	Name                     string                `json:"name" yaml:"name"`
	Size                     dnd5e.Size            `json:"size" yaml:"size"`
	Type                     CreatureType          `json:"type" yaml:"type"`
	Alignment                Alignment             `json:"alignment" yaml:"alignment"`
	ArmorClass               ArmorClass            `json:"armor_class" yaml:"armor_class"`
	HitPoints                HitPoints             `json:"hit_points" yaml:"hit_points"`
	Speed                    Speed                 `json:"speed" yaml:"speed"`
	AbilityScores            AbilityScores         `json:"ability_scores" yaml:"ability_scores"`
	SavingThrows             map[dnd5e.Ability]int `json:"saving_throws,omitempty" yaml:"saving_throws,omitempty"`
	Skills                   map[dnd5e.Skill]int   `json:"skills,omitempty" yaml:"skills,omitempty"`
	DamageResistances        []DamageModifier      `json:"damage_resistances,omitempty" yaml:"damage_resistances,omitempty"`
	DamageImmunities         []DamageModifier      `json:"damage_immunities,omitempty" yaml:"damage_immunities,omitempty"`
	DamageVulnerabilities    []DamageModifier      `json:"damage_vulnerabilities,omitempty" yaml:"damage_vulnerabilities,omitempty"`
	ConditionImmunities      []dnd5e.Condition     `json:"condition_immunities,omitempty" yaml:"condition_immunities,omitempty"`
	Senses                   []string              `json:"senses" yaml:"senses"`
	PassivePerception        int                   `json:"passive_perception" yaml:"passive_perception"`
	Languages                []string              `json:"languages" yaml:"languages"`
	ChallengeRating          ChallengeRating       `json:"challenge_rating" yaml:"challenge_rating"`
	ProficiencyBonus         *int                  `json:"proficiency_bonus,omitempty" yaml:"proficiency_bonus,omitempty"`
	Traits                   []Entry               `json:"traits,omitempty" yaml:"traits,omitempty"`
	Actions                  []Entry               `json:"actions,omitempty" yaml:"actions,omitempty"`
	BonusActions             []Entry               `json:"bonus_actions,omitempty" yaml:"bonus_actions,omitempty"`
	Reactions                []Entry               `json:"reactions,omitempty" yaml:"reactions,omitempty"`
	LegendaryActions         []Entry               `json:"legendary_actions,omitempty" yaml:"legendary_actions,omitempty"`
	LegendaryActionsPerRound *int                  `json:"legendary_actions_per_round,omitempty" yaml:"legendary_actions_per_round,omitempty"`
	MythicActions            []Entry               `json:"mythic_actions,omitempty" yaml:"mythic_actions,omitempty"`
}

// CreatureType is the main type plus any parenthesized or slash subtypes
type CreatureType struct {
	Main     dnd5e.CreatureType `json:"main" yaml:"main"`
	Subtypes []string           `json:"subtypes,omitempty" yaml:"subtypes,omitempty"`
}

// AlignmentKind discriminates Alignment
type AlignmentKind string

// Alignment kinds
const (
	AlignmentAny       AlignmentKind = "any"
	AlignmentUnaligned AlignmentKind = "unaligned"
	AlignmentOneAxis   AlignmentKind = "one_axis"
	AlignmentTwoAxes   AlignmentKind = "two_axes"
)

// Alignment is any, unaligned, one axis ("any chaotic alignment") or both
// axes. A one-axis alignment sets exactly one of Order and Moral.
type Alignment struct {
	Kind  AlignmentKind        `json:"kind" yaml:"kind"`
	Order dnd5e.AlignmentOrder `json:"order,omitempty" yaml:"order,omitempty"`
	Moral dnd5e.AlignmentMoral `json:"moral,omitempty" yaml:"moral,omitempty"`
}

// ArmorClass is the AC value and the armor that provides it
type ArmorClass struct {
	Value   int      `json:"value" yaml:"value"`
	Sources []string `json:"sources,omitempty" yaml:"sources,omitempty"`
}

// HitPoints holds the printed average and the formula behind it
type HitPoints struct {
	Average int         `json:"average" yaml:"average"`
	Formula DiceFormula `json:"formula" yaml:"formula"`
}

// DiceFormula is NdD plus a signed modifier
type DiceFormula struct {
	Count    int `json:"count" yaml:"count"`
	Die      int `json:"die" yaml:"die"`
	Modifier int `json:"modifier" yaml:"modifier"`
}

// String renders the formula the way stat blocks print it
func (f DiceFormula) String() string {
	switch {
	case f.Modifier > 0:
		return fmt.Sprintf("%dd%d + %d", f.Count, f.Die, f.Modifier)
	case f.Modifier < 0:
		return fmt.Sprintf("%dd%d - %d", f.Count, f.Die, -f.Modifier)
	default:
		return fmt.Sprintf("%dd%d", f.Count, f.Die)
	}
}

// Speed is the walking speed plus the optional movement modes, in feet
type Speed struct {
	Walk   int       `json:"walk" yaml:"walk"`
	Burrow *int      `json:"burrow,omitempty" yaml:"burrow,omitempty"`
	Climb  *int      `json:"climb,omitempty" yaml:"climb,omitempty"`
	Crawl  *int      `json:"crawl,omitempty" yaml:"crawl,omitempty"`
	Fly    *FlySpeed `json:"fly,omitempty" yaml:"fly,omitempty"`
	Swim   *int      `json:"swim,omitempty" yaml:"swim,omitempty"`
}

// FlySpeed is a flying speed and whether the creature can hover
type FlySpeed struct {
	Speed int  `json:"speed" yaml:"speed"`
	Hover bool `json:"hover" yaml:"hover"`
}

// AbilityScores holds the six core ability scores
type AbilityScores struct {
	Strength     int `json:"str" yaml:"str"`
	Dexterity    int `json:"dex" yaml:"dex"`
	Constitution int `json:"con" yaml:"con"`
	Intelligence int `json:"int" yaml:"int"`
	Wisdom       int `json:"wis" yaml:"wis"`
	Charisma     int `json:"cha" yaml:"cha"`
}

// Get returns the score for one ability
func (a AbilityScores) Get(ability dnd5e.Ability) int {
	switch ability {
	case dnd5e.AbilityStrength:
		return a.Strength
	case dnd5e.AbilityDexterity:
		return a.Dexterity
	case dnd5e.AbilityConstitution:
		return a.Constitution
	case dnd5e.AbilityIntelligence:
		return a.Intelligence
	case dnd5e.AbilityWisdom:
		return a.Wisdom
	case dnd5e.AbilityCharisma:
		return a.Charisma
	default:
		panic(fmt.Sprintf("unhandled ability %q", ability))
	}
}

// DamageModifier is one resistance, immunity or vulnerability entry. An
// unconditional entry has a single type and no condition.
type DamageModifier struct {
	Types     []dnd5e.DamageType `json:"types" yaml:"types"`
	Condition string             `json:"condition,omitempty" yaml:"condition,omitempty"`
}

// IsConditional reports whether the modifier only applies under a condition
func (m DamageModifier) IsConditional() bool {
	return m.Condition != ""
}

// Fraction is one of the fractional challenge ratings
type Fraction string

// Fractional challenge ratings
const (
	FractionHalf    Fraction = "1/2"
	FractionQuarter Fraction = "1/4"
	FractionEighth  Fraction = "1/8"
)

// ChallengeRating is a whole number or one of 1/2, 1/4 and 1/8
type ChallengeRating struct {
	Whole    int      `json:"whole" yaml:"whole"`
	Fraction Fraction `json:"fraction,omitempty" yaml:"fraction,omitempty"`
}

// String renders the rating as printed, e.g. "11" or "1/4"
func (c ChallengeRating) String() string {
	if c.Fraction != "" {
		return string(c.Fraction)
	}
	return strconv.Itoa(c.Whole)
}

// Entry is a named trait or action with its text. Stat blocks nest
// sub-entries under some actions.
type Entry struct {
	Name       string  `json:"name" yaml:"name"`
	Usage      *Usage  `json:"usage,omitempty" yaml:"usage,omitempty"`
	Body       string  `json:"body" yaml:"body"`
	SubEntries []Entry `json:"sub_entries,omitempty" yaml:"sub_entries,omitempty"`
}

// UsageKind discriminates Usage
type UsageKind string

// Usage kinds
const (
	UsagePerDay   UsageKind = "per_day"
	UsageRecharge UsageKind = "recharge"
	UsageRest     UsageKind = "rest"
	UsageCost     UsageKind = "cost"
)

// Usage is the limit printed after an entry name, e.g. "(1/Day)",
// "(Recharge 5-6)", "(Recharges after a Short or Long Rest)" or
// "(Costs 2 Actions)".
type Usage struct {
	Kind UsageKind `json:"kind" yaml:"kind"`
	// Charges per day, or the action cost of a legendary action
	Charges int  `json:"charges,omitempty" yaml:"charges,omitempty"`
	Each    bool `json:"each,omitempty" yaml:"each,omitempty"`
	// RechargeOn is the lowest d6 roll that recharges the entry
	RechargeOn int    `json:"recharge_on,omitempty" yaml:"recharge_on,omitempty"`
	Rest       string `json:"rest,omitempty" yaml:"rest,omitempty"`
}
