package main

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/dnd-document-parser/internal/clients/srd"
	"github.com/KirkDiggler/dnd-document-parser/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/dnd-document-parser/internal/loader"
	"github.com/KirkDiggler/dnd-document-parser/internal/orchestrators/batch"
	"github.com/KirkDiggler/dnd-document-parser/internal/services/crosscheck"
)

// roller is swapped out by tests that need deterministic dice
var roller dice.Roller = dice.DefaultRoller

func newLoader() (*loader.Filesystem, error) {
	return loader.NewFilesystem(&loader.FilesystemConfig{DefaultBook: cfg.SourceBook})
}

func newEngine() (*rpgtoolkit.Adapter, error) {
	return rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{DiceRoller: roller})
}

// newCrosscheck is swapped out by tests that must not reach the SRD
var newCrosscheck = func() (crosscheck.Service, error) {
	client, err := srd.New(&srd.Config{
		BaseURL:     cfg.SRD.BaseURL,
		HTTPTimeout: cfg.SRD.Timeout,
		CacheTTL:    cfg.SRD.CacheTTL,
	})
	if err != nil {
		return nil, err
	}
	return crosscheck.New(&crosscheck.Config{SRDClient: client})
}

// newOrchestrator is swapped out by tests that drive the batch command
// without parsing
var newOrchestrator = func(cfg *batch.Config) (batch.Orchestrator, error) {
	return batch.NewOrchestrator(cfg)
}
