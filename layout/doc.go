// Package layout infers document structure from visual layout signals.
//
// Given the normalized lines produced by a reader, it derives the body
// text size and per-level heading size thresholds from the font size
// distribution, scores each line as a heading candidate using additive
// layout evidence (size, boldness, numbering, centering, spacing, block
// density), merges wrapped multi-line headings, detects the document
// title on the first page, and assembles the surviving headings into an
// ordered, deduplicated outline.
//
// Typical usage:
//
//	asm := layout.NewAssembler()
//	result := asm.Assemble(doc)
//	outline := result.Outline
//
// All scoring thresholds are additive integer bonuses tuned by hand;
// they are part of the package contract and exposed through
// [ScoreConfig] with matching defaults. No single signal is decisive.
package layout
