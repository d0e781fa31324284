package reader

import (
	"fmt"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"

	"github.com/docsieve/docsieve/model"
)

// PDFReader reads positioned text from a PDF file and produces the
// normalized line model. Coordinates are converted from PDF bottom-up
// space to the top-origin space the pipeline uses, so smaller Y0 means
// earlier in reading order.
type PDFReader struct {
	Path string

	// HeaderFooterBand is the fraction of the page height at the top
	// and bottom treated as running header/footer and excluded from
	// lines. Default: 0.1
	HeaderFooterBand float64
}

// rowTolerance is the baseline Y distance within which text runs
// belong to the same visual row.
const rowTolerance = 2.0

// defaultPageWidth/Height apply when a page carries no media box.
const (
	defaultPageWidth  = 612.0
	defaultPageHeight = 792.0
)

// Read parses the PDF and assembles pages of normalized lines.
func (r *PDFReader) Read() (*model.Document, error) {
	f, pdfReader, err := pdflib.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	band := r.HeaderFooterBand
	if band == 0 {
		band = 0.1
	}

	doc := model.NewDocument()
	doc.Metadata = pdfMetadata(pdfReader)

	for i := 1; i <= pdfReader.NumPage(); i++ {
		p := pdfReader.Page(i)
		if p.V.IsNull() {
			doc.AddPage(model.NewPage(defaultPageWidth, defaultPageHeight))
			continue
		}

		width, height := mediaBox(p)
		page := model.NewPage(width, height)
		doc.AddPage(page)

		rows := collectRows(p.Content().Text, height)
		assemblePage(page, rows, band)
	}

	return doc, nil
}

// pdfMetadata pulls the document info dictionary fields
func pdfMetadata(r *pdflib.Reader) model.Metadata {
	info := r.Trailer().Key("Info")
	if info.IsNull() {
		return model.Metadata{}
	}
	return model.Metadata{
		Title:    strings.TrimSpace(info.Key("Title").Text()),
		Author:   strings.TrimSpace(info.Key("Author").Text()),
		Subject:  strings.TrimSpace(info.Key("Subject").Text()),
		Creator:  strings.TrimSpace(info.Key("Creator").Text()),
		Producer: strings.TrimSpace(info.Key("Producer").Text()),
	}
}

// mediaBox resolves the page dimensions, walking the Parent chain for
// inherited attributes.
func mediaBox(p pdflib.Page) (width, height float64) {
	for v := p.V; !v.IsNull(); v = v.Key("Parent") {
		mb := v.Key("MediaBox")
		if mb.IsNull() || mb.Len() < 4 {
			continue
		}
		width = mb.Index(2).Float64() - mb.Index(0).Float64()
		height = mb.Index(3).Float64() - mb.Index(1).Float64()
		if width > 0 && height > 0 {
			return width, height
		}
	}
	return defaultPageWidth, defaultPageHeight
}

// textRow is one visual row of raw text runs sharing a baseline
type textRow struct {
	y     float64 // top-origin baseline
	texts []pdflib.Text
}

// collectRows converts text runs to top-origin coordinates and groups
// them into baseline rows.
func collectRows(texts []pdflib.Text, pageHeight float64) []textRow {
	if len(texts) == 0 {
		return nil
	}

	converted := make([]pdflib.Text, len(texts))
	copy(converted, texts)
	for i := range converted {
		converted[i].Y = pageHeight - converted[i].Y
	}
	sort.SliceStable(converted, func(i, j int) bool {
		if converted[i].Y != converted[j].Y {
			return converted[i].Y < converted[j].Y
		}
		return converted[i].X < converted[j].X
	})

	var rows []textRow
	for _, t := range converted {
		if len(rows) > 0 && t.Y-rows[len(rows)-1].y <= rowTolerance {
			rows[len(rows)-1].texts = append(rows[len(rows)-1].texts, t)
			continue
		}
		rows = append(rows, textRow{y: t.Y, texts: []pdflib.Text{t}})
	}
	return rows
}

// assemblePage builds the page's lines and text from its rows,
// applying the normalization filters, the header/footer band, spacing,
// and block density.
func assemblePage(page *model.Page, rows []textRow, band float64) {
	var lines []model.Line
	prevBottom := -1.0

	for _, row := range rows {
		line, ok := buildLine(row, page)
		if !ok {
			continue
		}
		if line.BBox.Y0 < band*page.Height || line.BBox.Y1 > (1-band)*page.Height {
			continue
		}
		if prevBottom >= 0 {
			line.SpacingAbove = line.BBox.Y0 - prevBottom
		}
		prevBottom = line.BBox.Y1
		lines = append(lines, line)
	}

	assignBlockDensity(lines)
	page.Lines = lines
	page.Text = pageText(lines)
}

// buildLine merges a row's raw runs into spans and assembles the line.
// Runs sharing font and size merge into one span; word gaps wider than
// a fraction of the font size insert spaces.
func buildLine(row textRow, page *model.Page) (model.Line, bool) {
	sort.SliceStable(row.texts, func(i, j int) bool {
		return row.texts[i].X < row.texts[j].X
	})

	type rawSpan struct {
		text     strings.Builder
		font     string
		size     float64
		x0, x1   float64
		lastEdge float64
	}

	var raws []*rawSpan
	for _, t := range row.texts {
		cur := (*rawSpan)(nil)
		if len(raws) > 0 {
			last := raws[len(raws)-1]
			if last.font == t.Font && last.size == t.FontSize {
				cur = last
			}
		}
		if cur == nil {
			cur = &rawSpan{font: t.Font, size: t.FontSize, x0: t.X, lastEdge: t.X}
			raws = append(raws, cur)
		}
		if t.X-cur.lastEdge > 0.15*t.FontSize && cur.text.Len() > 0 {
			cur.text.WriteByte(' ')
		}
		cur.text.WriteString(t.S)
		cur.lastEdge = t.X + t.W
		if cur.lastEdge > cur.x1 {
			cur.x1 = cur.lastEdge
		}
	}

	var spans []model.Span
	var parts []string
	bbox := model.BBox{X0: -1}
	for _, raw := range raws {
		text, ok := normalizeSpanText(raw.text.String())
		if !ok {
			continue
		}
		spanBox := model.NewBBox(raw.x0, row.y-raw.size, raw.x1, row.y)
		spans = append(spans, model.Span{
			Text:     text,
			FontName: raw.font,
			Size:     raw.size,
			Flags:    styleFlags(raw.font),
			BBox:     spanBox,
		})
		parts = append(parts, text)
		if bbox.X0 < 0 {
			bbox = spanBox
		} else {
			bbox = bbox.Union(spanBox)
		}
	}

	text := strings.TrimSpace(strings.Join(parts, " "))
	if len(spans) == 0 || !keepLine(text) {
		return model.Line{}, false
	}

	return model.Line{
		Text:       text,
		Page:       page.Number,
		BBox:       bbox,
		Spans:      spans,
		IsCentered: isCentered(bbox, page.Width),
	}, true
}

// assignBlockDensity groups consecutive lines into layout blocks
// (vertical gap within 1.5x the line's average size) and records each
// block's line count on its members.
func assignBlockDensity(lines []model.Line) {
	start := 0
	for i := range lines {
		if i > 0 {
			gap := lines[i].BBox.Y0 - lines[i-1].BBox.Y1
			if gap > 1.5*lines[i].AverageSize() {
				setDensity(lines[start:i])
				start = i
			}
		}
	}
	setDensity(lines[start:])
}

func setDensity(block []model.Line) {
	for i := range block {
		block[i].BlockDensity = len(block)
	}
}

// pageText renders the page's plain text with blank lines at block
// boundaries, the shape the section detector expects.
func pageText(lines []model.Line) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			if line.SpacingAbove > 1.8*line.AverageSize() {
				sb.WriteString("\n\n")
			} else {
				sb.WriteString("\n")
			}
		}
		sb.WriteString(line.Text)
	}
	return sb.String()
}
