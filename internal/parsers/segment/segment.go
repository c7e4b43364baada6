// Package segment splits raw documents into ordered groups of cleaned lines.
package segment

import "strings"

// Sentinel is the literal line that separates sections of a document
const Sentinel = "___"

// Group is one contiguous run of lines belonging to one section
type Group []string

// ExtractCreatureGroups returns every blockquote run in the document. Lines
// starting with ">" are in a block; the marker and surrounding whitespace are
// stripped and every in-block line is kept, blank or not. Unquoted lines end
// the current group and are discarded.
func ExtractCreatureGroups(document string) []Group {
	var (
		groups  []Group
		current Group
	)
	flush := func() {
		if len(current) > 0 {
			groups = append(groups, current)
		}
		current = nil
	}

	for _, line := range splitLines(document) {
		if !strings.HasPrefix(line, ">") {
			flush()
			continue
		}
		current = append(current, strings.TrimSpace(strings.TrimPrefix(line, ">")))
	}
	flush()

	return groups
}

// SplitSpellIntoGroups drops blank and markup-only lines, then splits the
// rest on sentinel lines.
func SplitSpellIntoGroups(document string) []Group {
	var (
		groups  []Group
		current Group
	)

	for _, line := range splitLines(document) {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "<") {
			continue
		}
		if strings.TrimSpace(line) == Sentinel {
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = nil
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}

	return groups
}

func splitLines(document string) []string {
	lines := strings.Split(document, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}
