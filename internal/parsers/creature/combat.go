package creature

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/formula"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

var (
	armorClassPattern = regexp.MustCompile(`^(\d+)\s*(?:\((.*)\))?$`)
	feetPattern       = regexp.MustCompile(`^(\d+)\s*ft\.?$`)
	hoverPattern      = regexp.MustCompile(`^(\d+)\s*ft\.?\s*\(hover\)$`)
)

type combat struct {
	armorClass entities.ArmorClass
	hitPoints  entities.HitPoints
	speed      entities.Speed
}

// parseCombat reads the armor class, hit points and speed lines, in that
// order.
func parseCombat(group segment.Group) (*combat, error) {
	if err := segment.Expect(errors.StepCreatureCombat, group, 3); err != nil {
		return nil, err
	}

	ac, err := ParseArmorClass(labelValue(group[0]))
	if err != nil {
		return nil, err
	}
	hp, err := ParseHitPoints(labelValue(group[1]))
	if err != nil {
		return nil, err
	}
	speed, err := ParseSpeed(labelValue(group[2]))
	if err != nil {
		return nil, err
	}

	return &combat{armorClass: ac, hitPoints: hp, speed: speed}, nil
}

// ParseArmorClass parses "15" or "15 (leather armor, shield)"
func ParseArmorClass(s string) (entities.ArmorClass, error) {
	m := armorClassPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return entities.ArmorClass{}, errors.Parse(errors.StepCreatureArmorClass, s)
	}
	value, err := strconv.Atoi(m[1])
	if err != nil {
		return entities.ArmorClass{}, errors.Parse(errors.StepCreatureArmorClass, s).WithCause(err)
	}

	ac := entities.ArmorClass{Value: value}
	if m[2] != "" {
		for _, source := range strings.Split(m[2], ",") {
			if source = strings.TrimSpace(source); source != "" {
				ac.Sources = append(ac.Sources, source)
			}
		}
	}
	return ac, nil
}

// ParseHitPoints parses "<avg> (<n>d<die> [+|-] <mod>)"
func ParseHitPoints(s string) (entities.HitPoints, error) {
	hp, err := formula.ParseHitPoints(s)
	if err != nil {
		return entities.HitPoints{}, errors.Parse(errors.StepCreatureHitPoints, s).WithCause(err)
	}
	return hp, nil
}

// ParseSpeed parses an unlabeled walking speed followed by labeled movement
// modes, e.g. "30 ft., climb 30 ft., fly 60 ft. (hover)".
func ParseSpeed(s string) (entities.Speed, error) {
	segments := strings.Split(strings.TrimSpace(s), ",")

	walk, err := parseFeet(segments[0])
	if err != nil {
		return entities.Speed{}, errors.Parsef(errors.StepCreatureSpeed, s, "walking speed %q", strings.TrimSpace(segments[0])).WithCause(err)
	}

	speed := entities.Speed{Walk: walk}
	seen := make(map[string]bool, len(segments)-1)
	for _, part := range segments[1:] {
		label, value, ok := strings.Cut(strings.TrimSpace(part), " ")
		if !ok {
			return entities.Speed{}, errors.Parsef(errors.StepCreatureSpeed, s, "segment %q has no label", part)
		}
		label = strings.ToLower(label)
		if seen[label] {
			return entities.Speed{}, errors.Parsef(errors.StepCreatureSpeed, s, "duplicate %s speed", label)
		}
		seen[label] = true

		switch label {
		case "burrow":
			speed.Burrow, err = parseOptionalFeet(value)
		case "climb":
			speed.Climb, err = parseOptionalFeet(value)
		case "crawl":
			speed.Crawl, err = parseOptionalFeet(value)
		case "swim":
			speed.Swim, err = parseOptionalFeet(value)
		case "fly":
			speed.Fly, err = parseFly(value)
		default:
			return entities.Speed{}, errors.Parsef(errors.StepCreatureSpeed, s, "unknown speed %q", label)
		}
		if err != nil {
			return entities.Speed{}, errors.Parsef(errors.StepCreatureSpeed, s, "%s speed %q", label, value).WithCause(err)
		}
	}
	return speed, nil
}

func parseFeet(s string) (int, error) {
	m := feetPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0, errors.Parse(errors.StepCreatureSpeed, s)
	}
	return strconv.Atoi(m[1])
}

func parseOptionalFeet(s string) (*int, error) {
	feet, err := parseFeet(s)
	if err != nil {
		return nil, err
	}
	return &feet, nil
}

// parseFly tries the plain grammar first and only looks for "(hover)" when
// that fails.
func parseFly(s string) (*entities.FlySpeed, error) {
	if feet, err := parseFeet(s); err == nil {
		return &entities.FlySpeed{Speed: feet}, nil
	}
	m := hoverPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return nil, errors.Parse(errors.StepCreatureSpeed, s)
	}
	feet, err := strconv.Atoi(m[1])
	if err != nil {
		return nil, err
	}
	return &entities.FlySpeed{Speed: feet, Hover: true}, nil
}
