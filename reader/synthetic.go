package reader

import (
	"strings"

	"github.com/docsieve/docsieve/model"
)

// Structural formats (Markdown, HTML, DOCX) carry explicit heading
// levels but no geometry. The synthetic builder lays their content out
// on letter-size pages with a fixed type scale so the same layout
// heuristics that rank PDF lines rank theirs: headings get the large
// sizes, bold flags, and extra spacing, paragraphs get wrapped lines
// in dense blocks.

const (
	synthPageWidth  = 612.0
	synthPageHeight = 792.0
	synthMargin     = 72.0

	synthBodySize = 11.0

	// synthCharWidth approximates glyph advance as a fraction of size
	synthCharWidth = 0.5

	// synthWrapWidth is the character count at which paragraph text wraps
	synthWrapWidth = 88
)

// synthHeadingSize maps structural heading depth to the synthetic type
// scale. Depths past three fall back to a size just above body text.
func synthHeadingSize(level int) float64 {
	switch level {
	case 1:
		return 24.0
	case 2:
		return 18.0
	case 3:
		return 14.0
	default:
		return 12.0
	}
}

type syntheticBuilder struct {
	doc  *model.Document
	page *model.Page

	y          float64
	prevBottom float64

	text strings.Builder
}

func newSyntheticBuilder() *syntheticBuilder {
	b := &syntheticBuilder{doc: model.NewDocument()}
	b.newPage()
	return b
}

func (b *syntheticBuilder) newPage() {
	b.flushText()
	b.page = model.NewPage(synthPageWidth, synthPageHeight)
	b.doc.AddPage(b.page)
	b.y = synthMargin
	b.prevBottom = -1
}

func (b *syntheticBuilder) flushText() {
	if b.page != nil {
		b.page.Text = strings.TrimRight(b.text.String(), "\n")
		b.text.Reset()
	}
}

// advance reserves vertical space, breaking to a new page when the
// content area is exhausted, and returns the top coordinate.
func (b *syntheticBuilder) advance(spacing, height float64) float64 {
	if b.y+spacing+height > synthPageHeight-synthMargin {
		b.newPage()
		spacing = 0
	}
	b.y += spacing
	top := b.y
	b.y += height
	return top
}

// heading emits a single bold line at the level's size, preceded by
// generous whitespace so the spacing heuristic fires.
func (b *syntheticBuilder) heading(level int, text string) {
	text, ok := normalizeSpanText(text)
	if !ok || !keepLine(text) {
		return
	}

	size := synthHeadingSize(level)
	top := b.advance(2.5*synthBodySize, size)
	line := b.makeLine(text, size, model.StyleBold, top)
	line.BlockDensity = 1
	b.appendLine(line)

	b.text.WriteString(text)
	b.text.WriteString("\n\n")
}

// paragraph wraps body text into lines forming one dense block.
func (b *syntheticBuilder) paragraph(text string) {
	text, ok := normalizeSpanText(text)
	if !ok {
		return
	}

	var parts []string
	for _, part := range wrapText(text, synthWrapWidth) {
		if keepLine(part) {
			parts = append(parts, part)
		}
	}
	for i, part := range parts {
		spacing := 0.3 * synthBodySize
		if i == 0 {
			spacing = synthBodySize
		}
		top := b.advance(spacing, synthBodySize)
		line := b.makeLine(part, synthBodySize, 0, top)
		line.BlockDensity = len(parts)
		b.appendLine(line)
	}

	b.text.WriteString(text)
	b.text.WriteString("\n\n")
}

func (b *syntheticBuilder) makeLine(text string, size float64, flags int, top float64) model.Line {
	width := float64(len(text)) * synthCharWidth * size
	if width > synthPageWidth-2*synthMargin {
		width = synthPageWidth - 2*synthMargin
	}
	bbox := model.NewBBox(synthMargin, top, synthMargin+width, top+size)
	return model.Line{
		Text: text,
		Page: b.page.Number,
		BBox: bbox,
		Spans: []model.Span{{
			Text:     text,
			FontName: syntheticFontName(flags),
			Size:     size,
			Flags:    flags,
			BBox:     bbox,
		}},
	}
}

func (b *syntheticBuilder) appendLine(line model.Line) {
	if b.prevBottom >= 0 {
		line.SpacingAbove = line.BBox.Y0 - b.prevBottom
	}
	b.prevBottom = line.BBox.Y1
	b.page.Lines = append(b.page.Lines, line)
}

func (b *syntheticBuilder) finish(meta model.Metadata) *model.Document {
	b.flushText()
	b.doc.Metadata = meta
	return b.doc
}

func syntheticFontName(flags int) string {
	if flags&model.StyleBold != 0 {
		return "Helvetica-Bold"
	}
	return "Helvetica"
}

// wrapText splits text into chunks of at most width characters,
// breaking on word boundaries.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var out []string
	var sb strings.Builder
	for _, word := range words {
		if sb.Len() > 0 && sb.Len()+1+len(word) > width {
			out = append(out, sb.String())
			sb.Reset()
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(word)
	}
	if sb.Len() > 0 {
		out = append(out, sb.String())
	}
	return out
}
