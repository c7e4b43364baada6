package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/spell"
	"github.com/KirkDiggler/dnd-document-parser/internal/services/crosscheck"
)

var crosscheckCmd = &cobra.Command{
	Use:   "crosscheck [file...]",
	Short: "Compare parsed spells with the D&D 5e SRD",
	Long: `Parse each spell write-up and compare its level, school, ritual tag,
concentration and class list with the SRD entry of the same name.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCrosscheck,
}

func runCrosscheck(cmd *cobra.Command, args []string) error {
	svc, err := newCrosscheck()
	if err != nil {
		return err
	}

	disagreements := 0
	for _, path := range args {
		doc, err := readDocument(cmd, path)
		if err != nil {
			return err
		}
		sp, err := spell.Parse(doc.Text, doc.Source)
		if err != nil {
			return errors.Wrapf(err, "failed to parse %s", path)
		}

		out, err := svc.CheckSpell(cmd.Context(), &crosscheck.CheckSpellInput{Spell: sp})
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		switch {
		case !out.Found:
			fmt.Fprintf(w, "%s: not in the SRD\n", sp.Name)
		case len(out.Differences) == 0:
			fmt.Fprintf(w, "%s: ok\n", sp.Name)
		default:
			disagreements++
			for _, d := range out.Differences {
				fmt.Fprintf(w, "%s: %s is %q, SRD has %q\n", sp.Name, d.Field, d.Parsed, d.Reference)
			}
		}
	}

	if disagreements > 0 {
		return errors.Newf(errors.CodeInvalidArgument, "%d of %d spells disagree with the SRD", disagreements, len(args))
	}
	return nil
}
