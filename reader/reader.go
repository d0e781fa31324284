package reader

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/docsieve/docsieve/model"
)

// Reader produces the normalized layout document for one source file.
// Read may be called once; the returned document is immutable
// afterward.
type Reader interface {
	Read() (*model.Document, error)
}

// Open returns the adapter for the file's format, chosen by extension.
// Supported: .pdf, .md, .markdown, .html, .htm, .docx.
func Open(path string) (Reader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return &PDFReader{Path: path}, nil
	case ".md", ".markdown":
		return &MarkdownReader{Path: path}, nil
	case ".html", ".htm":
		return &HTMLReader{Path: path}, nil
	case ".docx":
		return &DOCXReader{Path: path}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", filepath.Ext(path))
	}
}

// separatorRun matches decorative separator text ("-----", "====")
// that carries no semantic content.
var separatorRun = regexp.MustCompile(`^[-=~|*#+]{2,}$`)

// normalizeSpanText trims and NFKC-normalizes span text. The second
// return value is false for spans that should be dropped: empty after
// trimming, separator runs, or under two characters.
func normalizeSpanText(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}
	text = norm.NFKC.String(text)
	if separatorRun.MatchString(text) || len(text) < 2 {
		return "", false
	}
	return text, true
}

// keepLine reports whether an assembled line carries enough content to
// survive: at least 3 characters and 2 alphanumerics.
func keepLine(text string) bool {
	return len(text) >= 3 && model.AlnumCount(text) >= 2
}

// styleFlags translates a font name into the span style bitmask. PDF
// readers in this family report style through the font name rather
// than a flags word, so the bold and italic bits are synthesized here;
// core logic only ever tests the bits.
func styleFlags(fontName string) int {
	name := strings.ToLower(fontName)
	flags := 0
	if strings.Contains(name, "bold") ||
		strings.Contains(name, "black") ||
		strings.Contains(name, "heavy") ||
		strings.Contains(name, "semibold") ||
		strings.Contains(name, "demibold") {
		flags |= model.StyleBold
	}
	if strings.Contains(name, "italic") || strings.Contains(name, "oblique") {
		flags |= model.StyleItalic
	}
	if strings.Contains(name, "mono") || strings.Contains(name, "courier") {
		flags |= model.StyleMonospace
	}
	return flags
}

// isCentered derives the centering flag: the line's horizontal
// midpoint must fall within 25% of the page width of the page center.
func isCentered(bbox model.BBox, pageWidth float64) bool {
	if pageWidth <= 0 {
		return false
	}
	return absFloat(bbox.X0+bbox.X1-pageWidth)/pageWidth < 0.25
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
