package batch

import (
	"time"

	"github.com/KirkDiggler/dnd-document-parser/internal/engine"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
)

// Kind is the kind of document a batch expects
type Kind string

// Document kinds
const (
	KindCreature Kind = "creature"
	KindSpell    Kind = "spell"
	// KindAuto tries a creature first and falls back to a spell when the
	// document does not open with a creature heading
	KindAuto Kind = "auto"
)

// Kinds lists every document kind a run accepts
var Kinds = []Kind{KindCreature, KindSpell, KindAuto}

// Status is the outcome of one document
type Status string

// Document outcomes
const (
	StatusParsed  Status = "parsed"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Event types published on the bus once a run finishes
const (
	EventDocumentParsed  = "parser.document.parsed"
	EventDocumentSkipped = "parser.document.skipped"
	EventDocumentFailed  = "parser.document.failed"
)

// Event context keys
const (
	ContextKeyRunID = "run_id"
	ContextKeyPath  = "path"
	ContextKeyKind  = "kind"
	ContextKeyError = "error"
	ContextKeyStep  = "step"
)

// RunInput names the documents to parse
type RunInput struct {
	Paths []string
	Kind  Kind
	// Source is attached to every document; an empty book takes the
	// loader's default
	Source entities.Source
	// Check recomputes derived creature numbers and reports mismatches
	Check bool
}

// Result is the outcome of one document. Record is a *entities.Creature or
// *entities.Spell when Status is parsed.
type Result struct {
	Path          string
	Kind          Kind
	Status        Status
	Record        any
	Err           error
	Discrepancies []engine.Discrepancy
}

// RunOutput holds one result per input path, in input order
type RunOutput struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Results    []Result
	Parsed     int
	Skipped    int
	Failed     int
}
