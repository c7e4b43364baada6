package spell

import (
	"regexp"
	"strings"
)

var (
	// everything up to the last colon, and any run of symbols
	noisePattern     = regexp.MustCompile(`(?:.*:|[^a-zA-Z0-9])+`)
	thousandsPattern = regexp.MustCompile(`\d{1,3}(?:,\d{3})+\b`)
)

// clean drops a line's label and markup: everything up to the last colon
// goes, every other non-alphanumeric run becomes one space, and the result
// is lowercased. "**Range:** Self (15-foot cone)" becomes "self 15 foot cone".
func clean(line string) string {
	return strings.TrimSpace(strings.ToLower(noisePattern.ReplaceAllString(line, " ")))
}

// rawValue drops only the label of a line, keeping its punctuation
func rawValue(line string) string {
	if _, value, ok := strings.Cut(line, ":"); ok {
		line = value
	}
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "*_"))
}

// dropThousands turns "1,000 gp" into "1000 gp"
func dropThousands(s string) string {
	return thousandsPattern.ReplaceAllStringFunc(s, func(n string) string {
		return strings.ReplaceAll(n, ",", "")
	})
}
