package model

// Document represents a complete document with extracted layout lines
type Document struct {
	// Name is the document's file name, used in collection records
	Name string

	Metadata Metadata
	Pages    []*Page
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Creator  string
	Producer string
}

// Page represents a single page with its text and layout lines
type Page struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are the page dimensions in points
	Width  float64
	Height float64

	// Text is the plain text of the page, lines joined by newlines
	Text string

	// Lines are the normalized layout lines in reading order
	Lines []Line
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// NewPage creates a new page with given dimensions
func NewPage(width, height float64) *Page {
	return &Page{
		Width:  width,
		Height: height,
		Lines:  make([]Line, 0),
	}
}

// AddPage adds a page to the document and assigns its number
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed), or nil if out of range
func (d *Document) GetPage(number int) *Page {
	if d == nil || number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// AllLines returns every line across all pages in document order
func (d *Document) AllLines() []Line {
	if d == nil {
		return nil
	}
	var lines []Line
	for _, page := range d.Pages {
		lines = append(lines, page.Lines...)
	}
	return lines
}

// LineCount returns the total number of lines across all pages
func (d *Document) LineCount() int {
	if d == nil {
		return 0
	}
	count := 0
	for _, page := range d.Pages {
		count += len(page.Lines)
	}
	return count
}
