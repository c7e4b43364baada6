package segment

import (
	"regexp"
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

var headingPattern = regexp.MustCompile(`^#{1,6}\s+(.+?)\s*$`)

// Heading returns the text of a markdown heading line
func Heading(line string) (string, bool) {
	m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripListMarker removes a leading "- " or "* " bullet
func StripListMarker(line string) string {
	line = strings.TrimSpace(line)
	if text, ok := ListItem(line); ok {
		return text
	}
	return line
}

// ListItem reports whether the line is a bullet and returns its text
func ListItem(line string) (string, bool) {
	line = strings.TrimSpace(line)
	for _, marker := range []string{"- ", "* "} {
		if strings.HasPrefix(line, marker) {
			return strings.TrimSpace(line[len(marker):]), true
		}
	}
	return "", false
}

// Expect is the arity check every fixed-shape group goes through before any
// of its fields are parsed. The error carries the whole group and the first
// index that broke the shape.
func Expect(step errors.Step, group Group, n int) error {
	switch {
	case len(group) < n:
		return errors.OutOfBounds(step, group, len(group))
	case len(group) > n:
		return errors.OutOfBounds(step, group, n)
	default:
		return nil
	}
}
