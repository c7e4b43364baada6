package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/stretchr/testify/suite"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-document-parser/internal/engine"
	enginemock "github.com/KirkDiggler/dnd-document-parser/internal/engine/mock"
	"github.com/KirkDiggler/dnd-document-parser/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	loadermock "github.com/KirkDiggler/dnd-document-parser/internal/loader/mock"
	"github.com/KirkDiggler/dnd-document-parser/internal/orchestrators/batch"
	"github.com/KirkDiggler/dnd-document-parser/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-document-parser/internal/pkg/idgen"
	"github.com/KirkDiggler/dnd-document-parser/internal/testutils"
	"github.com/KirkDiggler/dnd-document-parser/internal/testutils/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockLoader   *loadermock.MockLoader
	mockEngine   *enginemock.MockEngine
	bus          *events.Bus
	received     []events.Event
	orchestrator batch.Orchestrator
	ctx          context.Context
	startedAt    time.Time
	source       entities.Source
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockLoader = loadermock.NewMockLoader(s.ctrl)
	s.mockEngine = enginemock.NewMockEngine(s.ctrl)
	s.ctx = context.Background()
	s.source = entities.Source{Book: "MM"}
	s.startedAt = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	s.bus = events.NewBus()
	s.received = nil
	record := func(_ context.Context, e events.Event) error {
		s.received = append(s.received, e)
		return nil
	}
	s.bus.SubscribeFunc(batch.EventDocumentParsed, 0, record)
	s.bus.SubscribeFunc(batch.EventDocumentSkipped, 0, record)
	s.bus.SubscribeFunc(batch.EventDocumentFailed, 0, record)

	var err error
	s.orchestrator, err = batch.NewOrchestrator(&batch.Config{
		Loader:      s.mockLoader,
		Engine:      s.mockEngine,
		EventBus:    s.bus,
		IDGenerator: idgen.NewSequential("run"),
		Clock:       clock.Fixed{At: s.startedAt},
		Workers:     2,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidatesConfig() {
	_, err := batch.NewOrchestrator(&batch.Config{})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(),
		"Clock: is required; Engine: is required; EventBus: is required; IDGenerator: is required; Loader: is required; Workers: must be at least 1")

	_, err = batch.NewOrchestrator(nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestRunClassifiesEachDocument() {
	mocks.ExpectLoad(s.mockLoader, "goblin.md", testutils.GoblinDocument, s.source)
	mocks.ExpectLoad(s.mockLoader, "light.md", testutils.LightDocument, s.source)
	mocks.ExpectLoad(s.mockLoader, "broken.md", testutils.BrokenGoblinDocument, s.source)
	mocks.ExpectLoadError(s.mockLoader, "missing.md", s.source, errors.IO("failed to read missing.md"))

	out, err := s.orchestrator.Run(s.ctx, &batch.RunInput{
		Paths:  []string{"goblin.md", "light.md", "broken.md", "missing.md"},
		Kind:   batch.KindCreature,
		Source: s.source,
	})
	s.Require().NoError(err)

	s.Assert().Equal("run_1", out.RunID)
	s.Assert().Equal(s.startedAt, out.StartedAt)
	s.Assert().Equal(1, out.Parsed)
	s.Assert().Equal(1, out.Skipped)
	s.Assert().Equal(2, out.Failed)

	s.Require().Len(out.Results, 4)

	parsed := out.Results[0]
	s.Assert().Equal(batch.StatusParsed, parsed.Status)
	s.Require().IsType(&entities.Creature{}, parsed.Record)
	s.Assert().Equal("Goblin", parsed.Record.(*entities.Creature).Name)
	s.Assert().Nil(parsed.Discrepancies)

	s.Assert().Equal(batch.StatusSkipped, out.Results[1].Status)
	s.Assert().NoError(out.Results[1].Err)

	broken := out.Results[2]
	s.Assert().Equal(batch.StatusFailed, broken.Status)
	s.Assert().Equal(errors.StepCreatureHitPoints, errors.GetStep(broken.Err))

	s.Assert().Equal(batch.StatusFailed, out.Results[3].Status)
	s.Assert().True(errors.IsIO(out.Results[3].Err))
}

func (s *OrchestratorTestSuite) TestRunPublishesInInputOrder() {
	mocks.ExpectLoad(s.mockLoader, "goblin.md", testutils.GoblinDocument, s.source)
	mocks.ExpectLoad(s.mockLoader, "light.md", testutils.LightDocument, s.source)
	mocks.ExpectLoad(s.mockLoader, "broken.md", testutils.BrokenGoblinDocument, s.source)

	_, err := s.orchestrator.Run(s.ctx, &batch.RunInput{
		Paths:  []string{"goblin.md", "light.md", "broken.md"},
		Kind:   batch.KindCreature,
		Source: s.source,
	})
	s.Require().NoError(err)

	s.Require().Len(s.received, 3)
	s.Assert().Equal(batch.EventDocumentParsed, s.received[0].Type())
	s.Assert().Equal(batch.EventDocumentSkipped, s.received[1].Type())
	s.Assert().Equal(batch.EventDocumentFailed, s.received[2].Type())

	source := s.received[0].Source()
	s.Require().NotNil(source)
	s.Assert().Equal("MM/goblin", source.GetID())
	s.Assert().Equal(rpgtoolkit.EntityTypeCreature, source.GetType())

	runID, ok := s.received[0].Context().Get(batch.ContextKeyRunID)
	s.Require().True(ok)
	s.Assert().Equal("run_1", runID)

	step, ok := s.received[2].Context().Get(batch.ContextKeyStep)
	s.Require().True(ok)
	s.Assert().Equal(string(errors.StepCreatureHitPoints), step)
}

func (s *OrchestratorTestSuite) TestRejectedEventFailsDocument() {
	writeErr := errors.IO("out/MM-goblin.json is a directory")
	s.bus.SubscribeFunc(batch.EventDocumentParsed, 1, func(context.Context, events.Event) error {
		return writeErr
	})
	mocks.ExpectLoad(s.mockLoader, "goblin.md", testutils.GoblinDocument, s.source)

	out, err := s.orchestrator.Run(s.ctx, &batch.RunInput{
		Paths:  []string{"goblin.md"},
		Kind:   batch.KindCreature,
		Source: s.source,
	})
	s.Require().NoError(err)

	s.Assert().Equal(0, out.Parsed)
	s.Assert().Equal(1, out.Failed)
	s.Assert().Equal(batch.StatusFailed, out.Results[0].Status)
	s.Assert().ErrorIs(out.Results[0].Err, writeErr)
	s.Assert().True(errors.IsIO(out.Results[0].Err))

	s.Require().Len(s.received, 2)
	s.Assert().Equal(batch.EventDocumentParsed, s.received[0].Type())
	s.Assert().Equal(batch.EventDocumentFailed, s.received[1].Type())
	reason, ok := s.received[1].Context().Get(batch.ContextKeyError)
	s.Require().True(ok)
	s.Assert().Contains(reason, "is a directory")
}

func (s *OrchestratorTestSuite) TestAutoFallsBackToSpell() {
	mocks.ExpectLoad(s.mockLoader, "goblin.md", testutils.GoblinDocument, s.source)
	mocks.ExpectLoad(s.mockLoader, "light.md", testutils.LightDocument, s.source)

	out, err := s.orchestrator.Run(s.ctx, &batch.RunInput{
		Paths:  []string{"goblin.md", "light.md"},
		Kind:   batch.KindAuto,
		Source: s.source,
	})
	s.Require().NoError(err)

	s.Assert().Equal(2, out.Parsed)
	s.Assert().Equal(batch.KindCreature, out.Results[0].Kind)
	s.Assert().Equal(batch.KindSpell, out.Results[1].Kind)
	s.Require().IsType(&entities.Spell{}, out.Results[1].Record)
	s.Assert().Equal("Light", out.Results[1].Record.(*entities.Spell).Name)
}

func (s *OrchestratorTestSuite) TestCheckAttachesDiscrepancies() {
	mocks.ExpectLoad(s.mockLoader, "goblin.md", testutils.GoblinDocument, s.source)
	discrepancies := []engine.Discrepancy{{Field: engine.FieldHitPoints, Expected: 7, Actual: 8}}
	s.mockEngine.EXPECT().
		CheckCreature(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *engine.CheckCreatureInput) (*engine.CheckCreatureOutput, error) {
			s.Assert().Equal("Goblin", input.Creature.Name)
			return &engine.CheckCreatureOutput{Discrepancies: discrepancies}, nil
		})

	out, err := s.orchestrator.Run(s.ctx, &batch.RunInput{
		Paths:  []string{"goblin.md"},
		Kind:   batch.KindCreature,
		Source: s.source,
		Check:  true,
	})
	s.Require().NoError(err)
	s.Assert().Equal(discrepancies, out.Results[0].Discrepancies)
}

func (s *OrchestratorTestSuite) TestCanceledRun() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	out, err := s.orchestrator.Run(ctx, &batch.RunInput{
		Paths: []string{"goblin.md", "light.md"},
		Kind:  batch.KindAuto,
	})
	s.Require().Error(err)
	s.Assert().Equal(errors.CodeCanceled, errors.GetCode(err))
	s.Require().NotNil(out)
	s.Assert().Equal(2, out.Failed)
}

func (s *OrchestratorTestSuite) TestRunRejectsUnknownKind() {
	_, err := s.orchestrator.Run(s.ctx, &batch.RunInput{Paths: []string{"a.md"}, Kind: "potion"})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.Run(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}
