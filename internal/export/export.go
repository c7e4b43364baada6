// Package export writes parsed records in one of the supported formats
package export

import (
	"encoding/json"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/export/fivetools"
)

// Format is an output encoding
type Format string

// Supported formats
const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	Format5etools Format = "5etools"
)

const (
	yamlIndent = 2
	jsonIndent = "  "
)

// Formats lists every supported format
var Formats = []Format{FormatJSON, FormatYAML, Format5etools}

// ParseFormat resolves a format name, case-insensitively
func ParseFormat(name string) (Format, error) {
	want := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, f := range Formats {
		if f == want {
			return f, nil
		}
	}
	return "", errors.InvalidArgumentf("unknown format %q", name)
}

// Write encodes a *entities.Creature or *entities.Spell to w
func Write(w io.Writer, format Format, record any) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, record)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(yamlIndent)
		if err := enc.Encode(record); err != nil {
			return errors.Format("failed to encode yaml").WithCause(err)
		}
		if err := enc.Close(); err != nil {
			return errors.Format("failed to flush yaml").WithCause(err)
		}
		return nil
	case Format5etools:
		switch r := record.(type) {
		case *entities.Creature:
			return writeJSON(w, fivetools.FromCreature(r))
		case *entities.Spell:
			return writeJSON(w, fivetools.FromSpell(r))
		default:
			return errors.Formatf("5etools has no schema for %T", record)
		}
	default:
		return errors.Formatf("unknown format %q", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", jsonIndent)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return errors.Format("failed to encode json").WithCause(err)
	}
	return nil
}
