package creature

import (
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities/dnd5e"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

type identity struct {
	name      string
	size      dnd5e.Size
	kind      entities.CreatureType
	alignment entities.Alignment
}

// parseIdentity reads the heading name and the
// "<size> <type>[ (subtypes)], <alignment>" line.
func parseIdentity(group segment.Group) (*identity, error) {
	if err := segment.Expect(errors.StepCreatureIdentity, group, 2); err != nil {
		return nil, err
	}

	name, ok := segment.Heading(group[0])
	if !ok {
		return nil, errors.Parsef(errors.StepCreatureName, group[0], "name must be a heading")
	}

	line := strings.Trim(strings.TrimSpace(group[1]), "*_ ")
	parts := splitOutsideParens(line, ", ")
	if len(parts) < 2 {
		return nil, errors.Parsef(errors.StepCreatureSizeType, group[1], "expected \"<size> <type>, <alignment>\"")
	}
	sizeType := strings.TrimSpace(parts[0])
	alignmentText := strings.Join(parts[1:], ", ")

	sizeText, typeText, ok := strings.Cut(sizeType, " ")
	if !ok {
		return nil, errors.Parsef(errors.StepCreatureSizeType, sizeType, "expected \"<size> <type>\"")
	}
	size, err := dnd5e.ParseSize(sizeText)
	if err != nil {
		return nil, err
	}
	kind, err := ParseCreatureType(typeText)
	if err != nil {
		return nil, err
	}
	alignment, err := ParseAlignment(alignmentText)
	if err != nil {
		return nil, err
	}

	return &identity{
		name:      name,
		size:      size,
		kind:      kind,
		alignment: alignment,
	}, nil
}

// ParseCreatureType parses "fiend", "fiend (demon, shapechanger)" or
// "fiend/undead".
func ParseCreatureType(s string) (entities.CreatureType, error) {
	s = strings.TrimSpace(s)

	main, subtypes := s, ""
	if open := strings.Index(s, "("); open >= 0 {
		if !strings.HasSuffix(s, ")") {
			return entities.CreatureType{}, errors.Parsef(errors.StepCreatureType, s, "unclosed subtype list")
		}
		main, subtypes = s[:open], s[open+1:len(s)-1]
	} else if before, after, ok := strings.Cut(s, "/"); ok {
		main, subtypes = before, after
	}

	mainType, err := dnd5e.ParseCreatureType(strings.TrimSpace(main))
	if err != nil {
		return entities.CreatureType{}, err
	}

	out := entities.CreatureType{Main: mainType}
	for _, sub := range strings.FieldsFunc(subtypes, func(r rune) bool { return r == ',' || r == '/' }) {
		if sub = strings.TrimSpace(sub); sub != "" {
			out.Subtypes = append(out.Subtypes, sub)
		}
	}
	if subtypes != "" && len(out.Subtypes) == 0 {
		return entities.CreatureType{}, errors.Parsef(errors.StepCreatureType, s, "empty subtype list")
	}
	return out, nil
}

// ParseAlignment resolves an alignment phrase. The order of checks matters:
// "neutral" alone is both axes, while "any neutral alignment" is one axis.
func ParseAlignment(s string) (entities.Alignment, error) {
	text := strings.ToLower(strings.TrimSpace(s))
	text = strings.TrimSpace(strings.TrimSuffix(text, "alignment"))

	switch text {
	case "any":
		return entities.Alignment{Kind: entities.AlignmentAny}, nil
	case "unaligned":
		return entities.Alignment{Kind: entities.AlignmentUnaligned}, nil
	case "neutral", "true neutral":
		return entities.Alignment{
			Kind:  entities.AlignmentTwoAxes,
			Order: dnd5e.OrderNeutral,
			Moral: dnd5e.MoralNeutral,
		}, nil
	}

	if axis, ok := strings.CutPrefix(text, "any "); ok {
		if order, err := dnd5e.ParseAlignmentOrder(axis); err == nil {
			return entities.Alignment{Kind: entities.AlignmentOneAxis, Order: order}, nil
		}
		if moral, err := dnd5e.ParseAlignmentMoral(axis); err == nil {
			return entities.Alignment{Kind: entities.AlignmentOneAxis, Moral: moral}, nil
		}
		return entities.Alignment{}, errors.Parsef(errors.StepCreatureAlignment, s, "unknown alignment axis %q", axis)
	}

	words := strings.Fields(text)
	if len(words) != 2 {
		return entities.Alignment{}, errors.Parse(errors.StepCreatureAlignment, s)
	}
	order, err := dnd5e.ParseAlignmentOrder(words[0])
	if err != nil {
		return entities.Alignment{}, err
	}
	moral, err := dnd5e.ParseAlignmentMoral(words[1])
	if err != nil {
		return entities.Alignment{}, err
	}
	return entities.Alignment{Kind: entities.AlignmentTwoAxes, Order: order, Moral: moral}, nil
}
