// Package entities provides the records produced by the document parsers.
package entities

// Source attributes a record to a book and page. The parsers store it but
// never interpret it.
type Source struct {
	Book string `json:"book" yaml:"book"`
	Page int    `json:"page" yaml:"page"`
}
