package model

import "unicode"

// Style flag bits carried on each span. The layout reader encodes font
// style as a bitmask; readers that only know a font name synthesize the
// same bits from it. The bold bit is the one the heading pipeline
// decodes.
const (
	// StyleSuperscript marks superscript or subscript text
	StyleSuperscript = 1 << 0
	// StyleItalic marks italic or oblique text
	StyleItalic = 1 << 1
	// StyleBold marks bold text
	StyleBold = 1 << 2
	// StyleMonospace marks fixed-pitch text
	StyleMonospace = 1 << 3
)

// Span is a run of text sharing one font, size, and style within a line
type Span struct {
	// Text is the span content, trimmed and normalized
	Text string

	// FontName is the name of the font as reported by the reader
	FontName string

	// Size is the font size in points
	Size float64

	// Flags is the style bitmask (see the Style constants)
	Flags int

	// BBox is the span's bounding box on the page
	BBox BBox
}

// IsBold reports whether the span's style flags carry the bold bit
func (s Span) IsBold() bool {
	return s.Flags&StyleBold != 0
}

// Line represents one visually contiguous row of text on a page.
// Lines are immutable once produced by a reader; grouping operations
// build new derived lines instead of mutating existing ones.
type Line struct {
	// Text is the assembled text content of the line
	Text string

	// Page is the 1-based page number the line appears on
	Page int

	// BBox is the bounding box of the line
	BBox BBox

	// Spans are the text spans that make up this line, in order
	Spans []Span

	// IsCentered reports whether the line is horizontally centered,
	// within a 25% page-width tolerance of the page center
	IsCentered bool

	// SpacingAbove is the vertical gap to the previous line on the
	// page (0 for the first line)
	SpacingAbove float64

	// BlockDensity is the number of lines in the enclosing layout
	// block. Low density suggests a heading, high density body text.
	BlockDensity int
}

// AverageSize returns the mean font size across the line's spans,
// or 0 if the line has no spans
func (l Line) AverageSize() float64 {
	if len(l.Spans) == 0 {
		return 0
	}
	var sum float64
	for _, s := range l.Spans {
		sum += s.Size
	}
	return sum / float64(len(l.Spans))
}

// HasBold reports whether any span in the line is bold
func (l Line) HasBold() bool {
	for _, s := range l.Spans {
		if s.IsBold() {
			return true
		}
	}
	return false
}

// AlnumCount returns the number of letters and digits in s
func AlnumCount(s string) int {
	count := 0
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
