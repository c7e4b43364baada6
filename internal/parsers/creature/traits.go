package creature

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

// Trait labels
const (
	labelSavingThrows          = "saving throws"
	labelSkills                = "skills"
	labelDamageResistances     = "damage resistances"
	labelDamageImmunities      = "damage immunities"
	labelDamageVulnerabilities = "damage vulnerabilities"
	labelConditionImmunities   = "condition immunities"
	labelSenses                = "senses"
	labelLanguages             = "languages"
	labelChallenge             = "challenge"
	labelProficiencyBonus      = "proficiency bonus"
)

type traits struct {
	savingThrows          map[dnd5e.Ability]int
	skills                map[dnd5e.Skill]int
	damageResistances     []entities.DamageModifier
	damageImmunities      []entities.DamageModifier
	damageVulnerabilities []entities.DamageModifier
	conditionImmunities   []dnd5e.Condition
	senses                []string
	passivePerception     int
	languages             []string
	challengeRating       entities.ChallengeRating
	proficiencyBonus      *int
}

// parseTraits reads the labeled lines of the fourth group in any order.
// Senses, languages and challenge are required.
func parseTraits(group segment.Group) (*traits, error) {
	var (
		out  traits
		seen = make(map[string]bool, len(group))
		err  error
	)

	for _, line := range group {
		label, value, ok := splitLabel(line)
		if !ok {
			return nil, errors.Parsef(errors.StepCreatureTraits, line, "expected a bold label")
		}
		if seen[label] {
			return nil, errors.Parsef(errors.StepCreatureTraits, line, "duplicate %q line", label)
		}
		seen[label] = true

		switch label {
		case labelSavingThrows:
			out.savingThrows, err = ParseSavingThrows(value)
		case labelSkills:
			out.skills, err = ParseSkills(value)
		case labelDamageResistances:
			out.damageResistances, err = ParseDamageModifiers(value)
		case labelDamageImmunities:
			out.damageImmunities, err = ParseDamageModifiers(value)
		case labelDamageVulnerabilities:
			out.damageVulnerabilities, err = ParseDamageModifiers(value)
		case labelConditionImmunities:
			out.conditionImmunities, err = ParseConditionImmunities(value)
		case labelSenses:
			out.passivePerception, out.senses, err = ParseSenses(value)
		case labelLanguages:
			out.languages = ParseLanguages(value)
		case labelChallenge:
			out.challengeRating, err = ParseChallengeRating(value)
		case labelProficiencyBonus:
			out.proficiencyBonus, err = parseProficiencyBonus(value)
		default:
			return nil, errors.Parsef(errors.StepCreatureTraits, line, "unknown label %q", label)
		}
		if err != nil {
			return nil, err
		}
	}

	required := []struct {
		label string
		step  errors.Step
	}{
		{labelSenses, errors.StepCreatureSenses},
		{labelLanguages, errors.StepCreatureLanguages},
		{labelChallenge, errors.StepCreatureChallenge},
	}
	for _, r := range required {
		if !seen[r.label] {
			return nil, errors.Parsef(r.step, strings.Join(group, "\n"), "missing %q line", r.label)
		}
	}

	return &out, nil
}

// ParseSavingThrows parses "STR +3, CHA -2"
func ParseSavingThrows(s string) (map[dnd5e.Ability]int, error) {
	out := make(map[dnd5e.Ability]int)
	for _, pair := range strings.Split(s, ",") {
		name, bonus, err := splitBonus(errors.StepCreatureSavingThrows, pair)
		if err != nil {
			return nil, err
		}
		ability, err := dnd5e.ParseAbility(name)
		if err != nil {
			return nil, err
		}
		if _, dup := out[ability]; dup {
			return nil, errors.Parsef(errors.StepCreatureSavingThrows, s, "duplicate %s", ability)
		}
		out[ability] = bonus
	}
	return out, nil
}

// ParseSkills parses "Athletics +5, Sleight of Hand +4"
func ParseSkills(s string) (map[dnd5e.Skill]int, error) {
	out := make(map[dnd5e.Skill]int)
	for _, pair := range strings.Split(s, ",") {
		name, bonus, err := splitBonus(errors.StepCreatureSkills, pair)
		if err != nil {
			return nil, err
		}
		skill, err := dnd5e.ParseSkill(name)
		if err != nil {
			return nil, err
		}
		if _, dup := out[skill]; dup {
			return nil, errors.Parsef(errors.StepCreatureSkills, s, "duplicate %s", skill)
		}
		out[skill] = bonus
	}
	return out, nil
}

// splitBonus splits "<name> <±n>" at the last space
func splitBonus(step errors.Step, pair string) (string, int, error) {
	pair = strings.TrimSpace(minusReplacer.Replace(pair))
	i := strings.LastIndex(pair, " ")
	if i < 0 {
		return "", 0, errors.Parsef(step, pair, "expected \"<name> <bonus>\"")
	}
	bonus, err := strconv.Atoi(pair[i+1:])
	if err != nil {
		return "", 0, errors.Parse(step, pair).WithCause(err)
	}
	return strings.TrimSpace(pair[:i]), bonus, nil
}

// ParseDamageModifiers parses ";"-separated clauses. A clause mentioning
// "from" or "attack" is conditional: its leading damage types apply under
// the rest of the clause. Otherwise every listed type is its own entry.
func ParseDamageModifiers(s string) ([]entities.DamageModifier, error) {
	var out []entities.DamageModifier
	for _, clause := range strings.Split(s, ";") {
		clause = strings.TrimSpace(clause)
		if clause == "" {
			return nil, errors.Parsef(errors.StepCreatureDamageModifiers, s, "empty clause")
		}

		lower := strings.ToLower(clause)
		if strings.Contains(lower, "from") || strings.Contains(lower, "attack") {
			out = append(out, parseConditionalClause(clause))
			continue
		}

		for _, name := range listItems(clause) {
			damageType, err := dnd5e.ParseDamageType(name)
			if err != nil {
				return nil, err
			}
			out = append(out, entities.DamageModifier{Types: []dnd5e.DamageType{damageType}})
		}
	}
	return out, nil
}

// parseConditionalClause takes the longest leading run of damage types,
// skipping commas and "and"/"or". A clause with no leading type, such as
// "Attacks made with disadvantage", covers every damage type.
func parseConditionalClause(clause string) entities.DamageModifier {
	words := strings.Fields(clause)

	var types []dnd5e.DamageType
	rest := len(words)
	for i, word := range words {
		token := strings.Trim(word, ",")
		if damageType, err := dnd5e.ParseDamageType(token); err == nil {
			types = append(types, damageType)
			continue
		}
		if len(types) > 0 && isConnector(token) {
			continue
		}
		rest = i
		break
	}

	if len(types) == 0 {
		return entities.DamageModifier{
			Types:     dnd5e.AllDamageTypes(),
			Condition: strings.ToLower(clause),
		}
	}
	return entities.DamageModifier{
		Types:     types,
		Condition: strings.ToLower(strings.Join(words[rest:], " ")),
	}
}

func isConnector(word string) bool {
	switch strings.ToLower(word) {
	case "and", "or", "":
		return true
	default:
		return false
	}
}

// listItems splits "a, b, and c" into its items
func listItems(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		for _, connector := range []string{"and ", "or "} {
			if rest, ok := strings.CutPrefix(strings.ToLower(item), connector); ok {
				item = strings.TrimSpace(item[len(item)-len(rest):])
			}
		}
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ParseConditionImmunities parses "Charmed, frightened"
func ParseConditionImmunities(s string) ([]dnd5e.Condition, error) {
	var out []dnd5e.Condition
	for _, name := range listItems(s) {
		condition, err := dnd5e.ParseCondition(name)
		if err != nil {
			return nil, err
		}
		out = append(out, condition)
	}
	if len(out) == 0 {
		return nil, errors.Parsef(errors.StepCreatureConditionImmune, s, "no conditions listed")
	}
	return out, nil
}

// ParseSenses pulls "passive Perception <n>" out of the senses line,
// scanning from the right since it is conventionally last.
func ParseSenses(s string) (int, []string, error) {
	segments := strings.Split(s, ",")
	for i := len(segments) - 1; i >= 0; i-- {
		part := strings.TrimSpace(segments[i])
		value, ok := strings.CutPrefix(strings.ToLower(part), "passive perception ")
		if !ok {
			continue
		}
		passive, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0, nil, errors.Parsef(errors.StepCreatureSenses, s, "passive perception %q", value).WithCause(err)
		}

		senses := make([]string, 0, len(segments)-1)
		for j, other := range segments {
			if other = strings.TrimSpace(other); j != i && other != "" {
				senses = append(senses, other)
			}
		}
		return passive, senses, nil
	}
	return 0, nil, errors.Parsef(errors.StepCreatureSenses, s, "missing passive perception")
}

// ParseLanguages splits the languages line. A dash means none.
func ParseLanguages(s string) []string {
	s = strings.TrimSpace(s)
	switch s {
	case "—", "–", "-", "":
		return []string{}
	}
	var out []string
	for _, language := range strings.Split(s, ",") {
		if language = strings.TrimSpace(language); language != "" {
			out = append(out, language)
		}
	}
	return out
}

// ParseChallengeRating parses "11 (7,200 XP)" or "1/4 (50 XP)"
func ParseChallengeRating(s string) (entities.ChallengeRating, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return entities.ChallengeRating{}, errors.Parsef(errors.StepCreatureChallenge, s, "empty challenge rating")
	}

	switch entities.Fraction(fields[0]) {
	case entities.FractionHalf, entities.FractionQuarter, entities.FractionEighth:
		return entities.ChallengeRating{Fraction: entities.Fraction(fields[0])}, nil
	}

	whole, err := strconv.Atoi(fields[0])
	if err != nil || whole < 0 {
		return entities.ChallengeRating{}, errors.Parsef(errors.StepCreatureChallenge, s, "not a whole number or 1/2, 1/4, 1/8")
	}
	return entities.ChallengeRating{Whole: whole}, nil
}

func parseProficiencyBonus(s string) (*int, error) {
	bonus, err := strconv.Atoi(strings.TrimSpace(minusReplacer.Replace(s)))
	if err != nil {
		return nil, errors.Parse(errors.StepCreatureProficiencyBonus, s).WithCause(err)
	}
	return &bonus, nil
}
