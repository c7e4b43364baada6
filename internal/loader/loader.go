// Package loader reads source documents from disk
package loader

//go:generate mockgen -destination=mock/mock.go -package=loadermock github.com/KirkDiggler/dnd-document-parser/internal/loader Loader

import (
	"context"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
)

// Document is the text of one source document and where it came from
type Document struct {
	Path   string
	Text   string
	Source entities.Source
}

// Loader reads documents and lists the documents under a directory
type Loader interface {
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// LoadInput names the document to read. A zero Source.Book falls back to
// the loader's default book.
type LoadInput struct {
	Path   string
	Source entities.Source
}

// LoadOutput contains the document that was read
type LoadOutput struct {
	Document *Document
}

// ListInput names a directory to walk
type ListInput struct {
	Dir string
	// Extensions to keep, e.g. ".md". Empty keeps the loader's defaults.
	Extensions []string
}

// ListOutput contains every matching path in lexical order
type ListOutput struct {
	Paths []string
}
