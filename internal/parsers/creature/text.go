package creature

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/parsers/segment"
)

var labelPattern = regexp.MustCompile(`^\*\*([^*]+?)\*\*:?\s*(.*)$`)

// splitLabel splits "- **Label:** value" into its label and value. The label
// is lowercased with any trailing colon removed.
func splitLabel(line string) (label, value string, ok bool) {
	m := labelPattern.FindStringSubmatch(segment.StripListMarker(line))
	if m == nil {
		return "", "", false
	}
	label = strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(m[1]), ":")))
	return label, strings.TrimSpace(m[2]), true
}

// labelValue returns the value of a labeled line, or the whole line when it
// has no bold label
func labelValue(line string) string {
	if _, value, ok := splitLabel(line); ok {
		return value
	}
	return segment.StripListMarker(line)
}

// splitOutsideParens splits s on sep, ignoring separators inside parentheses
func splitOutsideParens(s, sep string) []string {
	var (
		parts []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 && strings.HasPrefix(s[i:], sep) {
				parts = append(parts, s[start:i])
				start = i + len(sep)
				i += len(sep) - 1
			}
		}
	}
	return append(parts, s[start:])
}

var minusReplacer = strings.NewReplacer("−", "-", "–", "-")
