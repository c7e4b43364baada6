package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dnd-document-parser/internal/engine"
	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/creature"
	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/formula"
)

var rollHPCmd = &cobra.Command{
	Use:   "roll-hp [formula|file]",
	Short: "Roll hit points instead of taking the average",
	Long: `Roll a hit dice formula, or the hit dice of a creature stat block.
Examples:

  roll-hp 6d6
  roll-hp "17d10 + 85"
  roll-hp goblin-boss.md`,
	Args: cobra.ExactArgs(1),
	RunE: rollHP,
}

func rollHP(cmd *cobra.Command, args []string) error {
	f, err := hitDice(cmd, args[0])
	if err != nil {
		return err
	}

	eng, err := newEngine()
	if err != nil {
		return err
	}
	out, err := eng.RollHitPoints(cmd.Context(), &engine.RollHitPointsInput{Formula: f})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %v = %d\n", f, out.Rolls, out.Total)
	return nil
}

// hitDice reads the argument as a stat block when it names a file and as a
// dice formula otherwise
func hitDice(cmd *cobra.Command, arg string) (entities.DiceFormula, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		doc, err := readDocument(cmd, arg)
		if err != nil {
			return entities.DiceFormula{}, err
		}
		c, err := creature.Parse(doc.Text, doc.Source)
		if err != nil {
			return entities.DiceFormula{}, err
		}
		return c.HitPoints.Formula, nil
	}

	f, err := formula.ParseDice(arg)
	if err != nil {
		return entities.DiceFormula{}, errors.InvalidArgumentf("%q is neither a file nor a dice formula", arg).WithCause(err)
	}
	return f, nil
}
