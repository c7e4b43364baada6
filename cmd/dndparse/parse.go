package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-document-parser/internal/engine"
	"github.com/KirkDiggler/dnd-document-parser/internal/export"
	"github.com/KirkDiggler/dnd-document-parser/internal/loader"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/creature"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/spell"
)

var check bool

var creatureCmd = &cobra.Command{
	Use:   "creature [file]",
	Short: "Parse one creature stat block",
	Long: `Parse a creature stat block and print the record. Reads stdin when the
file is "-".`,
	Args: cobra.ExactArgs(1),
	RunE: parseCreature,
}

var spellCmd = &cobra.Command{
	Use:   "spell [file]",
	Short: "Parse one spell write-up",
	Long: `Parse a spell write-up and print the record. Reads stdin when the file
is "-".`,
	Args: cobra.ExactArgs(1),
	RunE: parseSpell,
}

func init() {
	creatureCmd.Flags().BoolVar(&check, "check", false, "report derived numbers the stat block prints differently")
}

func parseCreature(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	doc, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	c, err := creature.Parse(doc.Text, doc.Source)
	if err != nil {
		return err
	}

	if check {
		eng, err := newEngine()
		if err != nil {
			return err
		}
		out, err := eng.CheckCreature(cmd.Context(), &engine.CheckCreatureInput{Creature: c})
		if err != nil {
			return err
		}
		for _, d := range out.Discrepancies {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s is %d, expected %d\n", c.Name, d.Field, d.Actual, d.Expected)
		}
	}

	return export.Write(cmd.OutOrStdout(), format, c)
}

func parseSpell(cmd *cobra.Command, args []string) error {
	format, err := export.ParseFormat(formatName)
	if err != nil {
		return err
	}
	doc, err := readDocument(cmd, args[0])
	if err != nil {
		return err
	}

	sp, err := spell.Parse(doc.Text, doc.Source)
	if err != nil {
		return err
	}
	return export.Write(cmd.OutOrStdout(), format, sp)
}

// readDocument loads a file through the filesystem loader, or stdin for "-"
func readDocument(cmd *cobra.Command, path string) (*loader.Document, error) {
	if path == "-" {
		text, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		return &loader.Document{Path: path, Text: string(text), Source: source()}, nil
	}

	l, err := newLoader()
	if err != nil {
		return nil, err
	}
	out, err := l.Load(cmd.Context(), &loader.LoadInput{Path: path, Source: source()})
	if err != nil {
		return nil, err
	}
	return out.Document, nil
}

