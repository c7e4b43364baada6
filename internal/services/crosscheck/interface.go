package crosscheck

import (
	"context"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
)

// Service compares parsed records against the SRD reference data.
//
//go:generate mockgen -destination=mock/mock_service.go -package=crosscheckmock github.com/KirkDiggler/dnd-document-parser/internal/services/crosscheck Service
type Service interface {
	// CheckSpell looks the spell up by name and reports every field where the
	// parsed record disagrees with the SRD. A spell missing from the SRD is
	// reported through Output.Found rather than as an error.
	CheckSpell(ctx context.Context, input *CheckSpellInput) (*CheckSpellOutput, error)
}

// CheckSpellInput holds the parsed spell to verify
type CheckSpellInput struct {
	Spell *entities.Spell
}

// CheckSpellOutput holds the comparison result
type CheckSpellOutput struct {
	Key         string
	Found       bool
	Differences []Difference
}

// Difference is one disagreement between the parsed and reference values
type Difference struct {
	Field     string
	Parsed    string
	Reference string
}

// Compared fields
const (
	FieldLevel         = "level"
	FieldSchool        = "school"
	FieldRitual        = "ritual"
	FieldConcentration = "concentration"
	FieldClasses       = "classes"
)
