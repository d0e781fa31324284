// Package model provides the intermediate representation for analyzed
// document content.
//
// This package defines the data structures shared by the layout, sections,
// persona, and rank packages. Adapters in the reader package produce these
// types from concrete file formats, making them the primary API for
// consuming analysis results.
//
// # Document Structure
//
// The [Document] type represents a complete document with metadata and pages:
//
//	doc := model.NewDocument()
//	doc.Metadata.Title = "My Document"
//	doc.AddPage(page)
//
// Each [Page] carries its dimensions, plain text, and the normalized
// [Line] records produced by a layout reader.
//
// # Lines and Spans
//
// A [Line] is one visually contiguous row of text with font and position
// metadata. Lines are produced once per document and are immutable
// afterward; grouping operations create new derived lines rather than
// mutating originals. Each line is made of [Span] values, runs of text
// sharing one font, size, and style.
//
// # Outline and Sections
//
// Structure analysis produces two independent record families:
//
//   - [Outline] and [OutlineEntry] - the title plus leveled headings
//     inferred from visual layout
//   - [Section] and [RankedSection] - content segments found by the
//     multi-method detector, optionally scored against a persona
//
// # Geometry
//
// [BBox] is an edge-form bounding box in top-origin page coordinates
// (Y grows downward), matching the reading order used throughout the
// analysis pipeline.
package model
