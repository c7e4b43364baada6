package spell

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

type mechanics struct {
	castingTime entities.CastingTime
	spellRange  entities.Range
	components  entities.Components
	duration    entities.Duration
	classes     []dnd5e.Class
}

// parseMechanics reads the casting time, range, components, duration and
// classes lines, in that order.
func parseMechanics(group segment.Group) (*mechanics, error) {
	if err := segment.Expect(errors.StepSpellMechanics, group, 5); err != nil {
		return nil, err
	}

	castingTime, err := ParseCastingTime(group[0])
	if err != nil {
		return nil, err
	}
	spellRange, err := ParseRange(group[1])
	if err != nil {
		return nil, err
	}
	components, err := ParseComponents(group[2])
	if err != nil {
		return nil, err
	}
	duration, err := ParseDuration(group[3])
	if err != nil {
		return nil, err
	}
	classes, err := ParseClasses(group[4])
	if err != nil {
		return nil, err
	}

	return &mechanics{
		castingTime: castingTime,
		spellRange:  spellRange,
		components:  components,
		duration:    duration,
		classes:     classes,
	}, nil
}

// ParseCastingTime parses "<n> <unit>[ condition]". Only reactions take a
// condition; "bonus" may be followed by "action".
func ParseCastingTime(line string) (entities.CastingTime, error) {
	fields := strings.Fields(clean(line))
	if len(fields) < 2 {
		return entities.CastingTime{}, errors.Parsef(errors.StepSpellCastingTime, line, "expected \"<amount> <unit>\"")
	}

	amount, err := strconv.Atoi(fields[0])
	if err != nil {
		return entities.CastingTime{}, errors.Parse(errors.StepSpellCastingTime, line).WithCause(err)
	}
	out := entities.CastingTime{Amount: amount}
	rest := fields[2:]

	switch {
	case dnd5e.IsActionType(fields[1]):
		out.Action, _ = dnd5e.ParseActionType(fields[1])
		switch out.Action {
		case dnd5e.ActionTypeReaction:
			out.Condition = strings.Join(rest, " ")
			rest = nil
		case dnd5e.ActionTypeBonusAction:
			if len(rest) > 0 && rest[0] == "action" {
				rest = rest[1:]
			}
		}
	default:
		unit, err := dnd5e.ParseTimeUnit(fields[1])
		if err != nil {
			return entities.CastingTime{}, errors.Parsef(errors.StepSpellCastingTime, line, "unknown unit %q", fields[1])
		}
		out.Time = unit
	}

	if len(rest) > 0 {
		return entities.CastingTime{}, errors.Parsef(errors.StepSpellCastingTime, line, "unexpected %q", strings.Join(rest, " "))
	}
	return out, nil
}

// ParseRange parses "Touch", "Special", "Self", "Self (15-foot cone)" or
// "150 feet".
func ParseRange(line string) (entities.Range, error) {
	fields := strings.Fields(clean(line))
	if len(fields) == 0 {
		return entities.Range{}, errors.Parsef(errors.StepSpellRange, line, "empty range")
	}

	switch fields[0] {
	case "touch", "special":
		if len(fields) > 1 {
			return entities.Range{}, errors.Parsef(errors.StepSpellRange, line, "unexpected %q", strings.Join(fields[1:], " "))
		}
		if fields[0] == "touch" {
			return entities.Range{Kind: entities.RangeTouch}, nil
		}
		return entities.Range{Kind: entities.RangeSpecial}, nil
	case "self":
		if len(fields) == 1 {
			return entities.Range{Kind: entities.RangeSelf}, nil
		}
		out, err := parseDistance(line, fields[1:], true)
		if err != nil {
			return entities.Range{}, err
		}
		out.SelfOrigin = true
		return out, nil
	default:
		return parseDistance(line, fields, false)
	}
}

// parseDistance reads "<n> <unit>" and, when withShape is set, a target
// shape. A trailing shape word is allowed after the first one, as in
// "10-foot-radius sphere".
func parseDistance(line string, fields []string, withShape bool) (entities.Range, error) {
	if len(fields) < 2 {
		return entities.Range{}, errors.Parsef(errors.StepSpellRange, line, "expected \"<amount> <unit>\"")
	}
	amount, err := strconv.Atoi(fields[0])
	if err != nil {
		return entities.Range{}, errors.Parse(errors.StepSpellRange, line).WithCause(err)
	}
	unit, err := dnd5e.ParseRangeUnit(fields[1])
	if err != nil {
		return entities.Range{}, err
	}
	out := entities.Range{Kind: entities.RangeRanged, Amount: amount, Unit: unit, Shape: dnd5e.ShapePoint}

	rest := fields[2:]
	if !withShape {
		if len(rest) > 0 {
			return entities.Range{}, errors.Parsef(errors.StepSpellRange, line, "unexpected %q", strings.Join(rest, " "))
		}
		return out, nil
	}

	if len(rest) == 0 {
		return entities.Range{}, errors.Parsef(errors.StepSpellRange, line, "missing target shape")
	}
	for i, word := range rest {
		shape, err := dnd5e.ParseTargetShape(word)
		if err != nil {
			return entities.Range{}, err
		}
		if i == 0 {
			out.Shape = shape
		}
	}
	return out, nil
}

// ParseComponents scans "V, S, M (a pinch of dust worth 25 gp)" left to
// right. The material description runs to the end of the line and keeps
// its original text, without parentheses.
func ParseComponents(line string) (entities.Components, error) {
	var out entities.Components

	fields := strings.Fields(clean(line))
	if len(fields) == 0 {
		return entities.Components{}, errors.Parsef(errors.StepSpellComponents, line, "no components")
	}

scan:
	for _, token := range fields {
		switch token {
		case "v":
			out.Verbal = true
		case "s":
			out.Somatic = true
		case "m":
			material, err := parseMaterial(line)
			if err != nil {
				return entities.Components{}, err
			}
			out.Material = material
			break scan
		default:
			return entities.Components{}, errors.Parsef(errors.StepSpellComponents, line, "unknown component %q", token)
		}
	}
	return out, nil
}

func parseMaterial(line string) (*entities.Material, error) {
	raw := strings.Fields(rawValue(line))

	start := -1
	for i, word := range raw {
		if strings.EqualFold(strings.Trim(word, ",*_"), "m") {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil, errors.Parsef(errors.StepSpellComponents, line, "material marker not found")
	}

	description := strings.NewReplacer("(", "", ")", "").Replace(strings.Join(raw[start:], " "))
	description = strings.TrimSpace(description)
	out := &entities.Material{Description: description}

	priced := strings.Fields(clean(dropThousands(description)))
	for i, word := range priced {
		if strings.HasPrefix(word, "consume") {
			out.Consumed = true
		}
		if out.Cost != nil || i+1 >= len(priced) {
			continue
		}
		amount, err := strconv.Atoi(word)
		if err != nil || !dnd5e.IsCurrency(priced[i+1]) {
			continue
		}
		currency, _ := dnd5e.ParseCurrency(priced[i+1])
		out.Cost = &entities.Cost{Amount: amount, Currency: currency}
	}
	return out, nil
}

// ParseDuration parses "Instantaneous", "Concentration, up to 1 minute" or
// "8 hours".
func ParseDuration(line string) (entities.Duration, error) {
	fields := strings.Fields(clean(line))
	if len(fields) == 0 {
		return entities.Duration{}, errors.Parsef(errors.StepSpellDuration, line, "empty duration")
	}

	switch fields[0] {
	case "instantaneous":
		if len(fields) > 1 {
			return entities.Duration{}, errors.Parsef(errors.StepSpellDuration, line, "unexpected %q", strings.Join(fields[1:], " "))
		}
		return entities.Duration{Kind: entities.DurationInstantaneous}, nil
	case "concentration":
		// skip "up to" and anything else before the amount
		for i, word := range fields[1:] {
			if _, err := strconv.Atoi(word); err == nil {
				out, err := parseTimed(line, fields[1+i:])
				if err != nil {
					return entities.Duration{}, err
				}
				out.Concentration = true
				return out, nil
			}
		}
		return entities.Duration{}, errors.Parsef(errors.StepSpellDuration, line, "concentration without an amount")
	default:
		return parseTimed(line, fields)
	}
}

func parseTimed(line string, fields []string) (entities.Duration, error) {
	if len(fields) != 2 {
		return entities.Duration{}, errors.Parsef(errors.StepSpellDuration, line, "expected \"<amount> <unit>\"")
	}
	amount, err := strconv.Atoi(fields[0])
	if err != nil {
		return entities.Duration{}, errors.Parse(errors.StepSpellDuration, line).WithCause(err)
	}
	unit, err := dnd5e.ParseTimeUnit(fields[1])
	if err != nil {
		return entities.Duration{}, err
	}
	return entities.Duration{Kind: entities.DurationTimed, Amount: amount, Unit: unit}, nil
}

// ParseClasses keeps every class word on the line, in order, once each
func ParseClasses(line string) ([]dnd5e.Class, error) {
	var (
		out  []dnd5e.Class
		seen = make(map[dnd5e.Class]bool)
	)
	for _, word := range strings.Fields(clean(line)) {
		if !dnd5e.IsClass(word) {
			continue
		}
		class, _ := dnd5e.ParseClass(word)
		if !seen[class] {
			seen[class] = true
			out = append(out, class)
		}
	}
	if len(out) == 0 {
		return nil, errors.Parsef(errors.StepSpellClasses, line, "no classes")
	}
	return out, nil
}
