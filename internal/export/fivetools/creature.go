package fivetools

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
)

// Monster is a 5etools bestiary entry
type Monster struct {
	Name             string            `json:"name"`
	Source           string            `json:"source"`
	Page             int               `json:"page"`
	Size             []string          `json:"size"`
	Type             any               `json:"type"`
	Alignment        []string          `json:"alignment"`
	AC               []any             `json:"ac"`
	HP               HP                `json:"hp"`
	Speed            Speed             `json:"speed"`
	Str              int               `json:"str"`
	Dex              int               `json:"dex"`
	Con              int               `json:"con"`
	Int              int               `json:"int"`
	Wis              int               `json:"wis"`
	Cha              int               `json:"cha"`
	Save             map[string]string `json:"save,omitempty"`
	Skill            map[string]string `json:"skill,omitempty"`
	Senses           []string          `json:"senses,omitempty"`
	Passive          int               `json:"passive"`
	Resist           []any             `json:"resist,omitempty"`
	Immune           []any             `json:"immune,omitempty"`
	Vulnerable       []any             `json:"vulnerable,omitempty"`
	ConditionImmune  []string          `json:"conditionImmune,omitempty"`
	Languages        []string          `json:"languages,omitempty"`
	CR               string            `json:"cr"`
	Trait            []Entry           `json:"trait,omitempty"`
	Action           []Entry           `json:"action,omitempty"`
	Bonus            []Entry           `json:"bonus,omitempty"`
	Reaction         []Entry           `json:"reaction,omitempty"`
	LegendaryActions *int              `json:"legendaryActions,omitempty"`
	Legendary        []Entry           `json:"legendary,omitempty"`
	Mythic           []Entry           `json:"mythic,omitempty"`
}

// TypeWithTags is a creature type with subtypes
type TypeWithTags struct {
	Type string   `json:"type"`
	Tags []string `json:"tags"`
}

// ArmorClass is an AC value with the armor that provides it
type ArmorClass struct {
	AC   int      `json:"ac"`
	From []string `json:"from"`
}

// HP is hit points as printed
type HP struct {
	Average int    `json:"average"`
	Formula string `json:"formula"`
}

// Speed lists movement modes in feet
type Speed struct {
	Walk     int  `json:"walk"`
	Burrow   *int `json:"burrow,omitempty"`
	Climb    *int `json:"climb,omitempty"`
	Crawl    *int `json:"crawl,omitempty"`
	Fly      any  `json:"fly,omitempty"`
	Swim     *int `json:"swim,omitempty"`
	CanHover bool `json:"canHover,omitempty"`
}

// ConditionalSpeed is a speed with a note such as "(hover)"
type ConditionalSpeed struct {
	Number    int    `json:"number"`
	Condition string `json:"condition"`
}

// ConditionalResist is a resistance that only applies under a condition
type ConditionalResist struct {
	Resist []string `json:"resist"`
	Note   string   `json:"note"`
	Cond   bool     `json:"cond"`
}

// ConditionalImmune is an immunity that only applies under a condition
type ConditionalImmune struct {
	Immune []string `json:"immune"`
	Note   string   `json:"note"`
	Cond   bool     `json:"cond"`
}

// ConditionalVulnerable is a vulnerability that only applies under a
// condition
type ConditionalVulnerable struct {
	Vulnerable []string `json:"vulnerable"`
	Note       string   `json:"note"`
	Cond       bool     `json:"cond"`
}

// FromCreature converts a creature record
func FromCreature(c *entities.Creature) *Monster {
	out := &Monster{
		Name:            c.Name,
		Source:          c.Source.Book,
		Page:            c.Source.Page,
		Size:            []string{sizeCode(c.Size)},
		Type:            creatureType(c.Type),
		Alignment:       alignmentCodes(c.Alignment),
		AC:              armorClass(c.ArmorClass),
		HP:              HP{Average: c.HitPoints.Average, Formula: c.HitPoints.Formula.String()},
		Speed:           speed(c.Speed),
		Str:             c.AbilityScores.Strength,
		Dex:             c.AbilityScores.Dexterity,
		Con:             c.AbilityScores.Constitution,
		Int:             c.AbilityScores.Intelligence,
		Wis:             c.AbilityScores.Wisdom,
		Cha:             c.AbilityScores.Charisma,
		Senses:          c.Senses,
		Passive:         c.PassivePerception,
		ConditionImmune: stringsOf(c.ConditionImmunities),
		Languages:       c.Languages,
		CR:              c.ChallengeRating.String(),
		Trait:           entriesFromRecords(c.Traits),
		Action:          entriesFromRecords(c.Actions),
		Bonus:           entriesFromRecords(c.BonusActions),
		Reaction:        entriesFromRecords(c.Reactions),
		Legendary:       entriesFromRecords(c.LegendaryActions),
		Mythic:          entriesFromRecords(c.MythicActions),
	}

	if len(c.SavingThrows) > 0 {
		out.Save = make(map[string]string, len(c.SavingThrows))
		for ability, bonus := range c.SavingThrows {
			out.Save[string(ability)] = signed(bonus)
		}
	}
	if len(c.Skills) > 0 {
		out.Skill = make(map[string]string, len(c.Skills))
		for skill, bonus := range c.Skills {
			out.Skill[string(skill)] = signed(bonus)
		}
	}

	out.Resist = damageModifiers(c.DamageResistances, func(types []string, note string) any {
		return ConditionalResist{Resist: types, Note: note, Cond: true}
	})
	out.Immune = damageModifiers(c.DamageImmunities, func(types []string, note string) any {
		return ConditionalImmune{Immune: types, Note: note, Cond: true}
	})
	out.Vulnerable = damageModifiers(c.DamageVulnerabilities, func(types []string, note string) any {
		return ConditionalVulnerable{Vulnerable: types, Note: note, Cond: true}
	})

	// 5etools assumes three legendary actions
	if c.LegendaryActionsPerRound != nil && *c.LegendaryActionsPerRound != 3 {
		n := *c.LegendaryActionsPerRound
		out.LegendaryActions = &n
	}

	return out
}

func sizeCode(size dnd5e.Size) string {
	switch size {
	case dnd5e.SizeTiny:
		return "T"
	case dnd5e.SizeSmall:
		return "S"
	case dnd5e.SizeMedium:
		return "M"
	case dnd5e.SizeLarge:
		return "L"
	case dnd5e.SizeHuge:
		return "H"
	case dnd5e.SizeGargantuan:
		return "G"
	default:
		panic(fmt.Sprintf("unhandled size %q", size))
	}
}

func creatureType(t entities.CreatureType) any {
	if len(t.Subtypes) == 0 {
		return string(t.Main)
	}
	return TypeWithTags{Type: string(t.Main), Tags: t.Subtypes}
}

func orderCode(order dnd5e.AlignmentOrder) string {
	switch order {
	case dnd5e.OrderLawful:
		return "L"
	case dnd5e.OrderNeutral:
		return "NX"
	case dnd5e.OrderChaotic:
		return "C"
	default:
		panic(fmt.Sprintf("unhandled alignment order %q", order))
	}
}

func moralCode(moral dnd5e.AlignmentMoral) string {
	switch moral {
	case dnd5e.MoralGood:
		return "G"
	case dnd5e.MoralNeutral:
		return "NY"
	case dnd5e.MoralEvil:
		return "E"
	default:
		panic(fmt.Sprintf("unhandled alignment moral %q", moral))
	}
}

// alignmentCodes follows the 5etools convention: a fixed alignment is its
// letters, a one-axis alignment lists the other axis in full
func alignmentCodes(a entities.Alignment) []string {
	switch a.Kind {
	case entities.AlignmentAny:
		return []string{"A"}
	case entities.AlignmentUnaligned:
		return []string{"U"}
	case entities.AlignmentOneAxis:
		if a.Order != "" {
			return []string{orderCode(a.Order), "G", "NY", "E"}
		}
		return []string{"L", "NX", "C", moralCode(a.Moral)}
	case entities.AlignmentTwoAxes:
		if a.Order == dnd5e.OrderNeutral && a.Moral == dnd5e.MoralNeutral {
			return []string{"N"}
		}
		return []string{
			strings.TrimSuffix(orderCode(a.Order), "X"),
			strings.TrimSuffix(moralCode(a.Moral), "Y"),
		}
	default:
		panic(fmt.Sprintf("unhandled alignment kind %q", a.Kind))
	}
}

func armorClass(ac entities.ArmorClass) []any {
	if len(ac.Sources) == 0 {
		return []any{ac.Value}
	}
	return []any{ArmorClass{AC: ac.Value, From: ac.Sources}}
}

func speed(s entities.Speed) Speed {
	out := Speed{
		Walk:   s.Walk,
		Burrow: s.Burrow,
		Climb:  s.Climb,
		Crawl:  s.Crawl,
		Swim:   s.Swim,
	}
	if s.Fly != nil {
		if s.Fly.Hover {
			out.Fly = ConditionalSpeed{Number: s.Fly.Speed, Condition: "(hover)"}
			out.CanHover = true
		} else {
			out.Fly = s.Fly.Speed
		}
	}
	return out
}

// damageModifiers lists unconditional types as bare strings and builds one
// conditional object per conditional clause
func damageModifiers(mods []entities.DamageModifier, conditional func(types []string, note string) any) []any {
	var out []any
	for _, m := range mods {
		if !m.IsConditional() {
			for _, t := range m.Types {
				out = append(out, string(t))
			}
			continue
		}
		out = append(out, conditional(stringsOf(m.Types), m.Condition))
	}
	return out
}

func signed(n int) string {
	return fmt.Sprintf("%+d", n)
}

func stringsOf[T ~string](values []T) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
