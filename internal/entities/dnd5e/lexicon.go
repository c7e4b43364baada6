package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/dnd-document-parser/internal/errors"
)

// lexicon is a closed, case-insensitive table from words to one vocabulary.
type lexicon[T ~string] struct {
	name    string
	step    errors.Step
	values  []T
	entries map[string]T
}

// newLexicon indexes every value under its own text plus any aliases.
func newLexicon[T ~string](name string, step errors.Step, values []T, aliases map[string]T) *lexicon[T] {
	entries := make(map[string]T, len(values)+len(aliases))
	for _, v := range values {
		entries[strings.ToLower(string(v))] = v
	}
	for alias, v := range aliases {
		entries[strings.ToLower(alias)] = v
	}
	return &lexicon[T]{
		name:    name,
		step:    step,
		values:  values,
		entries: entries,
	}
}

func (l *lexicon[T]) parse(s string) (T, error) {
	if v, ok := l.entries[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	var zero T
	return zero, errors.Parsef(l.step, s, "not a known %s", l.name)
}

func (l *lexicon[T]) has(s string) bool {
	_, ok := l.entries[strings.ToLower(strings.TrimSpace(s))]
	return ok
}

func (l *lexicon[T]) all() []T {
	out := make([]T, len(l.values))
	copy(out, l.values)
	return out
}
