// Package creature parses markdown stat blocks into entities.Creature
// records.
//
// A stat block is a run of blockquoted groups separated by unquoted lines:
//
//	> ## Goblin
//	> *Small humanoid (goblinoid), neutral evil*
//	___
//	> - **Armor Class** 15 (leather armor, shield)
//	> - **Hit Points** 7 (2d6)
//	> - **Speed** 30 ft.
//	___
//	> |STR|DEX|CON|INT|WIS|CHA|
//	> |:---:|:---:|:---:|:---:|:---:|:---:|
//	> |8 (-1)|14 (+2)|10 (+0)|10 (+0)|8 (-1)|8 (-1)|
//	___
//	> - **Skills** Stealth +6
//	> - **Senses** darkvision 60 ft., passive Perception 9
//	> - **Languages** Common, Goblin
//	> - **Challenge** 1/4 (50 XP)
//
// A block may also be written as one blockquote with quoted "> ___" lines
// between its sections. Blank quoted lines are ignored.
//
// Groups after the fourth hold traits and actions. Parsing is fail-fast:
// the first malformed field aborts the document.
package creature

import (
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

// fixedGroups is the identity, combat, ability score and traits groups
const fixedGroups = 4

// Parse segments a document and assembles the creature it describes
func Parse(document string, source entities.Source) (*entities.Creature, error) {
	return ParseGroups(segment.ExtractCreatureGroups(document), source)
}

// ParseGroups assembles a creature from already segmented groups
func ParseGroups(groups []segment.Group, source entities.Source) (*entities.Creature, error) {
	groups = sections(groups)
	if len(groups) < fixedGroups {
		joined := make([]string, len(groups))
		for i, group := range groups {
			joined[i] = strings.Join(group, "\n")
		}
		return nil, errors.OutOfBounds(errors.StepCreatureGroups, joined, len(groups))
	}

	id, err := parseIdentity(groups[0])
	if err != nil {
		return nil, err
	}
	fight, err := parseCombat(groups[1])
	if err != nil {
		return nil, err
	}
	scores, err := parseAbilityScores(groups[2])
	if err != nil {
		return nil, err
	}
	tr, err := parseTraits(groups[3])
	if err != nil {
		return nil, err
	}
	list, err := parseEntries(groups[fixedGroups:])
	if err != nil {
		return nil, err
	}

	return &entities.Creature{
		Source:                   source,
		Name:                     id.name,
		Size:                     id.size,
		Type:                     id.kind,
		Alignment:                id.alignment,
		ArmorClass:               fight.armorClass,
		HitPoints:                fight.hitPoints,
		Speed:                    fight.speed,
		AbilityScores:            scores,
		SavingThrows:             tr.savingThrows,
		Skills:                   tr.skills,
		DamageResistances:        tr.damageResistances,
		DamageImmunities:         tr.damageImmunities,
		DamageVulnerabilities:    tr.damageVulnerabilities,
		ConditionImmunities:      tr.conditionImmunities,
		Senses:                   tr.senses,
		PassivePerception:        tr.passivePerception,
		Languages:                tr.languages,
		ChallengeRating:          tr.challengeRating,
		ProficiencyBonus:         tr.proficiencyBonus,
		Traits:                   list.buckets[dnd5e.EntryTraits],
		Actions:                  list.buckets[dnd5e.EntryActions],
		BonusActions:             list.buckets[dnd5e.EntryBonusActions],
		Reactions:                list.buckets[dnd5e.EntryReactions],
		LegendaryActions:         list.buckets[dnd5e.EntryLegendaryActions],
		LegendaryActionsPerRound: list.legendaryPerTurn,
		MythicActions:            list.buckets[dnd5e.EntryMythicActions],
	}, nil
}

// sections drops blank lines and splits each group at its sentinel lines
func sections(groups []segment.Group) []segment.Group {
	var out []segment.Group
	for _, group := range groups {
		var current segment.Group
		for _, line := range group {
			switch line {
			case "":
				continue
			case segment.Sentinel:
				if len(current) > 0 {
					out = append(out, current)
				}
				current = nil
			default:
				current = append(current, line)
			}
		}
		if len(current) > 0 {
			out = append(out, current)
		}
	}
	return out
}
