// Package docsieve provides a fluent API for extracting heading
// outlines from documents and ranking their sections for a persona
// and task.
//
// Basic usage:
//
//	outline, err := docsieve.Open("report.pdf").Outline()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(outline.Title)
//
// With persona-driven ranking:
//
//	ranked, err := docsieve.Open("report.pdf").
//	    Persona("PhD Researcher").
//	    Task("Prepare a literature review").
//	    Ranked()
//
// For advanced use cases, the lower-level layout, sections, persona,
// and rank packages are also available.
package docsieve

import (
	"github.com/docsieve/docsieve/model"
)

// Open prepares an Extractor for the given file. The file is not read
// until a terminal operation like Outline() or Ranked() is called.
//
// Example:
//
//	outline, err := docsieve.Open("report.pdf").Outline()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor over an already-built document,
// bypassing the file readers. This is useful when lines come from a
// custom source.
//
// Example:
//
//	outline, err := docsieve.FromDocument(doc).Outline()
func FromDocument(doc *model.Document) *Extractor {
	return &Extractor{
		doc:       doc,
		docLoaded: true,
		options:   defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	outline := docsieve.Must(docsieve.Open("report.pdf").Outline())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
