// Package main is the entry point for the dndparse command line tool
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-document-parser/internal/config"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/export"
	"github.com/KirkDiggler/dnd-document-parser/internal/orchestrators/batch"
)

var (
	cfg *config.Config

	// Flags shared by every command
	formatName string
	book       string
	page       int
)

var rootCmd = &cobra.Command{
	Use:   "dndparse",
	Short: "Parse D&D 5e stat blocks and spells",
	Long: `dndparse turns Markdown creature stat blocks and spell write-ups into
structured records and writes them as JSON, YAML or 5etools homebrew.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&formatName, "format", string(export.FormatJSON), "output format: json, yaml or 5etools")
	rootCmd.PersistentFlags().StringVar(&book, "book", "", "source book code (defaults to PARSER_SOURCE_BOOK)")
	rootCmd.PersistentFlags().IntVar(&page, "page", 0, "source page number")

	rootCmd.AddCommand(creatureCmd)
	rootCmd.AddCommand(spellCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(rollHPCmd)
	rootCmd.AddCommand(crosscheckCmd)
}

// setup checks the flags, loads the environment and installs the default
// logger
func setup(cmd *cobra.Command, _ []string) error {
	if err := validateFlags(cmd); err != nil {
		return err
	}

	if err := godotenv.Load(); err == nil {
		slog.Debug("Loaded .env file")
	}

	cfg = config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	return nil
}

// validateFlags rejects enumerated flag values before any document is read
func validateFlags(cmd *cobra.Command) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("format", export.Format(strings.ToLower(strings.TrimSpace(formatName))), export.Formats, vb)
	if cmd == batchCmd {
		errors.ValidateEnum("kind", batch.Kind(batchKind), batch.Kinds, vb)
		if batchWorkers < 0 {
			vb.Field("workers", "must not be negative")
		}
	}
	if page < 0 {
		vb.Field("page", "must not be negative")
	}
	return vb.Build()
}

func source() entities.Source {
	if book == "" {
		return entities.Source{Book: cfg.SourceBook, Page: page}
	}
	return entities.Source{Book: book, Page: page}
}
