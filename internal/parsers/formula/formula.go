// Package formula parses dice expressions such as "2d8 + 4" and hit point
// lines such as "13 (2d8 + 4)".
package formula

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
)

// hitPointsGrammar is "<average> (<dice>)".
// Examples: "10 (1d10 + 4)", "2 (1d10-4)", "6 (1d10)"
//
//nolint:govet // participle grammar tags are not standard struct tags
type hitPointsGrammar struct {
	Average int          `@Int`
	Dice    *diceGrammar `"(" @@ ")"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type diceGrammar struct {
	Count    int           `@Int`
	Die      int           `Dice @Int`
	Modifier *modifierPart `@@?`
}

//nolint:govet // participle grammar tags are not standard struct tags
type modifierPart struct {
	Sign  string `@( "+" | "-" )`
	Value int    `@Int`
}

var formulaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Dice", Pattern: `[dD]`},
	{Name: "Punct", Pattern: `[()+\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var (
	hitPointsParser = participle.MustBuild[hitPointsGrammar](
		participle.Lexer(formulaLexer),
		participle.Elide("Whitespace"),
	)
	diceParser = participle.MustBuild[diceGrammar](
		participle.Lexer(formulaLexer),
		participle.Elide("Whitespace"),
	)
)

// minusReplacer folds the dash variants typeset books use into "-"
var minusReplacer = strings.NewReplacer("−", "-", "–", "-", "—", "-")

// ParseHitPoints parses a hit point line. A "-" operator negates the
// modifier; no operator means a modifier of zero.
func ParseHitPoints(s string) (entities.HitPoints, error) {
	parsed, err := hitPointsParser.ParseString("", minusReplacer.Replace(strings.TrimSpace(s)))
	if err != nil {
		return entities.HitPoints{}, err
	}
	return entities.HitPoints{
		Average: parsed.Average,
		Formula: parsed.Dice.formula(),
	}, nil
}

// ParseDice parses a bare dice expression
func ParseDice(s string) (entities.DiceFormula, error) {
	parsed, err := diceParser.ParseString("", minusReplacer.Replace(strings.TrimSpace(s)))
	if err != nil {
		return entities.DiceFormula{}, err
	}
	return parsed.formula(), nil
}

func (d *diceGrammar) formula() entities.DiceFormula {
	f := entities.DiceFormula{
		Count: d.Count,
		Die:   d.Die,
	}
	if d.Modifier != nil {
		f.Modifier = d.Modifier.Value
		if d.Modifier.Sign == "-" {
			f.Modifier = -f.Modifier
		}
	}
	return f
}
