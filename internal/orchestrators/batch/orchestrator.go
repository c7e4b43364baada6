// Package batch parses many documents concurrently and reports each outcome
package batch

//go:generate mockgen -destination=mock/mock_orchestrator.go -package=batchmock github.com/KirkDiggler/dnd-document-parser/internal/orchestrators/batch Orchestrator

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/dnd-document-parser/internal/engine"
	"github.com/KirkDiggler/dnd-document-parser/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/loader"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/creature"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/spell"
	"github.com/KirkDiggler/dnd-document-parser/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-document-parser/internal/pkg/idgen"
)

// Orchestrator runs batches of documents through the parsers
type Orchestrator interface {
	Run(ctx context.Context, input *RunInput) (*RunOutput, error)
}

// Config holds the dependencies for the batch orchestrator
type Config struct {
	Loader      loader.Loader
	Engine      engine.Engine
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Workers     int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Loader == nil {
		vb.RequiredField("Loader")
	}
	if c.Engine == nil {
		vb.RequiredField("Engine")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.Workers < 1 {
		vb.Field("Workers", "must be at least 1")
	}

	return vb.Build()
}

type orchestrator struct {
	loader   loader.Loader
	engine   engine.Engine
	eventBus events.EventBus
	idGen    idgen.Generator
	clock    clock.Clock
	workers  int
}

// NewOrchestrator creates a new batch orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		loader:   cfg.Loader,
		engine:   cfg.Engine,
		eventBus: cfg.EventBus,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		workers:  cfg.Workers,
	}, nil
}

// Run parses every path with at most Workers documents in flight. A failing
// document never stops its siblings; Run itself only fails on bad input or
// when ctx is canceled. A document whose event a subscriber rejects counts
// as failed.
func (o *orchestrator) Run(ctx context.Context, input *RunInput) (*RunOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	switch input.Kind {
	case KindCreature, KindSpell, KindAuto:
	default:
		return nil, errors.InvalidArgumentf("unknown document kind %q", input.Kind)
	}

	out := &RunOutput{
		RunID:     o.idGen.Generate(),
		StartedAt: o.clock.Now(),
		Results:   make([]Result, len(input.Paths)),
	}

	slog.Info("Batch run started",
		"run_id", out.RunID,
		"documents", len(input.Paths),
		"kind", input.Kind,
		"workers", o.workers,
	)

	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, path := range input.Paths {
		g.Go(func() error {
			out.Results[i] = o.runOne(ctx, path, input)
			return nil
		})
	}
	_ = g.Wait()

	out.FinishedAt = o.clock.Now()

	for i := range out.Results {
		r := &out.Results[i]
		if err := o.publish(ctx, out.RunID, *r); err != nil && r.Status != StatusFailed {
			r.Status = StatusFailed
			r.Err = err
			_ = o.publish(ctx, out.RunID, *r)
		}
		switch r.Status {
		case StatusParsed:
			out.Parsed++
		case StatusSkipped:
			out.Skipped++
		case StatusFailed:
			out.Failed++
		}
	}

	slog.Info("Batch run finished",
		"run_id", out.RunID,
		"parsed", out.Parsed,
		"skipped", out.Skipped,
		"failed", out.Failed,
		"elapsed", out.FinishedAt.Sub(out.StartedAt),
	)

	if err := ctx.Err(); err != nil {
		return out, errors.WrapWithCode(err, errors.CodeCanceled, "batch run canceled")
	}
	return out, nil
}

func (o *orchestrator) runOne(ctx context.Context, path string, input *RunInput) Result {
	result := Result{Path: path, Kind: input.Kind}

	if err := ctx.Err(); err != nil {
		result.Status = StatusFailed
		result.Err = errors.WrapWithCode(err, errors.CodeCanceled, "batch run canceled")
		return result
	}

	loaded, err := o.loader.Load(ctx, &loader.LoadInput{Path: path, Source: input.Source})
	if err != nil {
		result.Status = StatusFailed
		result.Err = err
		slog.Warn("Failed to load document", "path", path, "error", err)
		return result
	}
	doc := loaded.Document

	result.Kind, result.Record, err = parseDocument(doc, input.Kind)
	switch {
	case err == nil:
		result.Status = StatusParsed
	case errors.IsNotExpectedKind(err):
		result.Status = StatusSkipped
		slog.Debug("Skipping document of another kind", "path", path, "step", errors.GetStep(err))
		return result
	default:
		result.Status = StatusFailed
		result.Err = err
		slog.Warn("Failed to parse document",
			"path", path,
			"kind", result.Kind,
			"step", errors.GetStep(err),
			"error", err,
		)
		return result
	}

	if c, ok := result.Record.(*entities.Creature); ok && input.Check {
		checked, err := o.engine.CheckCreature(ctx, &engine.CheckCreatureInput{Creature: c})
		if err != nil {
			result.Status = StatusFailed
			result.Err = errors.Wrapf(err, "failed to check %s", c.Name)
			return result
		}
		result.Discrepancies = checked.Discrepancies
	}

	return result
}

// parseDocument returns the kind that was actually parsed along with the
// record. For KindAuto the returned error comes from the last kind tried.
func parseDocument(doc *loader.Document, kind Kind) (Kind, any, error) {
	if kind == KindCreature || kind == KindAuto {
		c, err := creature.Parse(doc.Text, doc.Source)
		if err == nil {
			return KindCreature, c, nil
		}
		if kind == KindCreature || !errors.IsNotExpectedKind(err) {
			return KindCreature, nil, err
		}
	}

	sp, err := spell.Parse(doc.Text, doc.Source)
	if err != nil {
		return KindSpell, nil, err
	}
	return KindSpell, sp, nil
}

// publish emits one event per result. Results are published in input order
// after all workers finish, so subscribers never run concurrently. A
// subscriber error is returned so Run can report the document as failed.
func (o *orchestrator) publish(ctx context.Context, runID string, r Result) error {
	var eventType string
	switch r.Status {
	case StatusParsed:
		eventType = EventDocumentParsed
	case StatusSkipped:
		eventType = EventDocumentSkipped
	case StatusFailed:
		eventType = EventDocumentFailed
	default:
		panic("unhandled batch status " + string(r.Status))
	}

	event := events.NewGameEvent(eventType, rpgtoolkit.Wrap(r.Record), nil)
	event.Context().Set(ContextKeyRunID, runID)
	event.Context().Set(ContextKeyPath, r.Path)
	event.Context().Set(ContextKeyKind, string(r.Kind))
	if r.Err != nil {
		event.Context().Set(ContextKeyError, r.Err.Error())
		event.Context().Set(ContextKeyStep, string(errors.GetStep(r.Err)))
	}

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Error("Failed to publish batch event",
			"run_id", runID,
			"event", eventType,
			"path", r.Path,
			"error", err,
		)
		return errors.Wrapf(err, "failed to publish %s for %s", eventType, r.Path)
	}
	return nil
}
