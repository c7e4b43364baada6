// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/dnd-document-parser/internal/entities"
	"github.com/KirkDiggler/dnd-document-parser/internal/loader"
	loadermock "github.com/KirkDiggler/dnd-document-parser/internal/loader/mock"
)

// ExpectLoad sets up the loader to return text for path, attributed to source
func ExpectLoad(mockLoader *loadermock.MockLoader, path, text string, source entities.Source) *gomock.Call {
	return mockLoader.EXPECT().
		Load(gomock.Any(), &loader.LoadInput{Path: path, Source: source}).
		Return(&loader.LoadOutput{Document: &loader.Document{
			Path:   path,
			Text:   text,
			Source: source,
		}}, nil)
}

// ExpectLoadError sets up the loader to fail for path
func ExpectLoadError(mockLoader *loadermock.MockLoader, path string, source entities.Source, err error) *gomock.Call {
	return mockLoader.EXPECT().
		Load(gomock.Any(), &loader.LoadInput{Path: path, Source: source}).
		Return(nil, err)
}
