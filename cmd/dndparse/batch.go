package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-document-parser/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/export"
	"github.com/KirkDiggler/dnd-document-parser/internal/loader"
	"github.com/KirkDiggler/dnd-document-parser/internal/orchestrators/batch"
	"github.com/KirkDiggler/dnd-document-parser/internal/pkg/clock"
	"github.com/KirkDiggler/dnd-document-parser/internal/pkg/idgen"
)

var (
	batchKind    string
	batchWorkers int
	batchCheck   bool
	batchOut     string
)

var batchCmd = &cobra.Command{
	Use:   "batch [path...]",
	Short: "Parse many documents at once",
	Long: `Parse every document named on the command line. Directories are walked
for Markdown and text files. Each outcome is printed as one line; with --out
every parsed record is also written to its own file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchKind, "kind", string(batch.KindAuto), "document kind: creature, spell or auto")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "documents parsed at once (defaults to PARSER_WORKERS)")
	batchCmd.Flags().BoolVar(&batchCheck, "check", false, "report derived creature numbers the stat block prints differently")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "directory to write parsed records to")
}

func runBatch(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}

	l, err := newLoader()
	if err != nil {
		return err
	}
	paths, err := expandPaths(cmd, l, args)
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}

	workers := batchWorkers
	if workers == 0 {
		workers = cfg.Workers
	}

	bus := events.NewBus()
	bus.SubscribeFunc(batch.EventDocumentFailed, 0, func(_ context.Context, e events.Event) error {
		path, _ := e.Context().Get(batch.ContextKeyPath)
		reason, _ := e.Context().Get(batch.ContextKeyError)
		fmt.Fprintf(cmd.ErrOrStderr(), "failed  %v: %v\n", path, reason)
		return nil
	})
	if batchOut != "" {
		if err := os.MkdirAll(batchOut, 0o755); err != nil {
			return errors.IOf("failed to create %s", batchOut).WithCause(err)
		}
		written := make(map[string]string)
		bus.SubscribeFunc(batch.EventDocumentParsed, 0, func(_ context.Context, e events.Event) error {
			return writeRecord(format, e, written)
		})
	}

	orch, err := newOrchestrator(&batch.Config{
		Loader:      l,
		Engine:      eng,
		EventBus:    bus,
		IDGenerator: idgen.NewUUID("run"),
		Clock:       clock.New(),
		Workers:     workers,
	})
	if err != nil {
		return err
	}

	out, err := orch.Run(cmd.Context(), &batch.RunInput{
		Paths:  paths,
		Kind:   batch.Kind(batchKind),
		Source: source(),
		Check:  batchCheck,
	})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, r := range out.Results {
		fmt.Fprintf(w, "%-8s%-10s%s\n", r.Status, r.Kind, r.Path)
		for _, d := range r.Discrepancies {
			fmt.Fprintf(w, "        %s is %d, expected %d\n", d.Field, d.Actual, d.Expected)
		}
	}
	fmt.Fprintf(w, "%d parsed, %d skipped, %d failed in %s\n",
		out.Parsed, out.Skipped, out.Failed, out.FinishedAt.Sub(out.StartedAt).Round(time.Millisecond))

	if out.Failed > 0 {
		return errors.Newf(errors.CodeParse, "%d of %d documents failed", out.Failed, len(paths))
	}
	return nil
}

// expandPaths replaces each directory argument with the documents under it
func expandPaths(cmd *cobra.Command, l loader.Loader, args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			paths = append(paths, arg)
			continue
		}
		listed, err := l.List(cmd.Context(), &loader.ListInput{Dir: arg})
		if err != nil {
			return nil, err
		}
		paths = append(paths, listed.Paths...)
	}
	return paths, nil
}

// writeRecord stores a parsed record as <book>-<slug>.<ext> in the output
// directory. written maps each file name to the document that produced it;
// a second document with the same name is an error.
func writeRecord(format export.Format, e events.Event, written map[string]string) (err error) {
	entity := e.Source()
	if entity == nil {
		return nil
	}
	record := recordOf(entity)
	if record == nil {
		return nil
	}

	ext := string(format)
	if format == export.Format5etools {
		ext = "json"
	}
	name := strings.ReplaceAll(entity.GetID(), "/", "-") + "." + ext

	path, _ := e.Context().Get(batch.ContextKeyPath)
	from := fmt.Sprint(path)
	if first, ok := written[name]; ok {
		return exportIOf("%s would overwrite %s written from %s", from, name, first)
	}
	written[name] = from

	f, err := os.Create(filepath.Join(batchOut, name))
	if err != nil {
		return exportIOf("failed to create %s", name).WithCause(err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = exportIOf("failed to close %s", name).WithCause(closeErr)
		}
	}()

	return export.Write(f, format, record)
}

func exportIOf(format string, args ...any) *errors.Error {
	return &errors.Error{Code: errors.CodeIO, Step: errors.StepExport, Message: fmt.Sprintf(format, args...)}
}

func recordOf(entity any) any {
	switch e := entity.(type) {
	case *rpgtoolkit.CreatureEntity:
		return e.Creature
	case *rpgtoolkit.SpellEntity:
		return e.Spell
	default:
		return nil
	}
}
