// Package crosscheck verifies parsed spells against the D&D 5e SRD.
package crosscheck

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/clients/srd"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

type service struct {
	srdClient srd.Client
}

// Config holds the configuration for creating a crosscheck service
type Config struct {
	SRDClient srd.Client
}

// Validate ensures the configuration is valid
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.SRDClient == nil {
		return errors.InvalidArgument("SRD client is required")
	}
	return nil
}

// New creates a new crosscheck service instance
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{srdClient: cfg.SRDClient}, nil
}

func (s *service) CheckSpell(ctx context.Context, input *CheckSpellInput) (*CheckSpellOutput, error) {
	if input == nil || input.Spell == nil {
		return nil, errors.InvalidArgument("spell is required")
	}
	spell := input.Spell

	ref, err := s.srdClient.GetSpell(ctx, spell.Name)
	if errors.IsNotFound(err) {
		slog.Debug("Spell not in the SRD", "spell", spell.Name)
		return &CheckSpellOutput{Key: srd.Key(spell.Name)}, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to look up %s", spell.Name)
	}

	out := &CheckSpellOutput{Key: ref.Key, Found: true}
	add := func(field, parsed, reference string) {
		if parsed != reference {
			out.Differences = append(out.Differences, Difference{Field: field, Parsed: parsed, Reference: reference})
		}
	}

	add(FieldLevel, strconv.Itoa(spell.Level), strconv.Itoa(ref.Level))
	add(FieldSchool, string(spell.School), ref.School)
	add(FieldRitual, strconv.FormatBool(spell.Ritual), strconv.FormatBool(ref.Ritual))
	add(FieldConcentration, strconv.FormatBool(spell.Duration.Concentration), strconv.FormatBool(ref.Concentration))

	// The SRD only lists core classes, so a parsed class it omits is not a
	// disagreement. A reference class the parse missed is.
	parsed := make([]string, len(spell.Classes))
	for i, class := range spell.Classes {
		parsed[i] = string(class)
	}
	var missing []string
	for _, class := range ref.Classes {
		if !slices.Contains(parsed, class) {
			missing = append(missing, class)
		}
	}
	if len(missing) > 0 {
		slices.Sort(parsed)
		reference := slices.Clone(ref.Classes)
		slices.Sort(reference)
		add(FieldClasses, strings.Join(parsed, ", "), strings.Join(reference, ", "))
	}

	if len(out.Differences) > 0 {
		slog.Info("Spell disagrees with the SRD",
			"spell", spell.Name,
			"differences", len(out.Differences),
		)
	}

	return out, nil
}
