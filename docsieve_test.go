package docsieve

import (
	"errors"
	"testing"

	"github.com/docsieve/docsieve/model"
)

func testLine(text string, page int, y, size float64, flags int, centered bool) model.Line {
	x0, x1 := 72.0, 340.0
	if centered {
		x0, x1 = 206.0, 406.0
	}
	bbox := model.NewBBox(x0, y, x1, y+size)
	return model.Line{
		Text:       text,
		Page:       page,
		BBox:       bbox,
		IsCentered: centered,
		Spans: []model.Span{{
			Text:  text,
			Size:  size,
			Flags: flags,
			BBox:  bbox,
		}},
		BlockDensity: 1,
	}
}

func testDoc() *model.Document {
	doc := model.NewDocument()
	doc.Name = "handbook.pdf"
	page := model.NewPage(612, 792)
	doc.AddPage(page)
	page.Lines = []model.Line{
		testLine("Field Research Handbook", 1, 50, 28, model.StyleBold, true),
		testLine("1. Planning", 1, 250, 24, model.StyleBold, false),
		testLine("Every study starts with a research plan and a clear methodology outline.", 1, 290, 11, 0, false),
		testLine("2. Data Collection", 1, 400, 24, model.StyleBold, false),
		testLine("Collect field data with consistent instruments and document each session.", 1, 440, 11, 0, false),
	}
	return doc
}

func TestOutlineFromDocument(t *testing.T) {
	outline, err := FromDocument(testDoc()).Outline()
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}

	if outline.Title != "Field Research Handbook" {
		t.Errorf("Expected title 'Field Research Handbook', got %q", outline.Title)
	}
	if outline.EntryCount() != 2 {
		t.Fatalf("Expected 2 entries, got %d", outline.EntryCount())
	}
	if outline.Entries[0].Text != "1. Planning" {
		t.Errorf("Expected first entry '1. Planning', got %q", outline.Entries[0].Text)
	}
}

func TestTitle(t *testing.T) {
	title, err := FromDocument(testDoc()).Title()
	if err != nil {
		t.Fatalf("Title failed: %v", err)
	}
	if title != "Field Research Handbook" {
		t.Errorf("Expected handbook title, got %q", title)
	}
}

func TestSectionsFollowOutline(t *testing.T) {
	secs, err := FromDocument(testDoc()).Sections()
	if err != nil {
		t.Fatalf("Sections failed: %v", err)
	}
	if len(secs) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(secs))
	}
	if secs[0].Title != "1. Planning" {
		t.Errorf("Expected section titled from heading, got %q", secs[0].Title)
	}
	if secs[0].Content == "" {
		t.Error("Expected section content from text between headings")
	}
}

func TestRanked(t *testing.T) {
	ranked, err := FromDocument(testDoc()).
		Persona("Researcher").
		Task("Review the methodology").
		Ranked()
	if err != nil {
		t.Fatalf("Ranked failed: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("Expected 2 ranked sections, got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].FinalScore > ranked[i-1].FinalScore {
			t.Error("Expected ranked sections in descending score order")
		}
	}
	if ranked[0].Document != "handbook.pdf" {
		t.Errorf("Expected document name carried, got %q", ranked[0].Document)
	}
}

func TestMaxRanked(t *testing.T) {
	ranked, err := FromDocument(testDoc()).
		Persona("Researcher").
		MaxRanked(1).
		Ranked()
	if err != nil {
		t.Fatalf("Ranked failed: %v", err)
	}
	if len(ranked) != 1 {
		t.Errorf("Expected cap of 1, got %d", len(ranked))
	}
}

func TestChainingImmutability(t *testing.T) {
	base := FromDocument(testDoc())
	withPersona := base.Persona("Student")

	if base.options.role != "" {
		t.Error("Expected base extractor to be unchanged by Persona")
	}
	if withPersona.options.role != "Student" {
		t.Errorf("Expected derived extractor role Student, got %q", withPersona.options.role)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open("").Outline(); err == nil {
		t.Error("Expected error for empty filename")
	}
	if _, err := Open("/nonexistent/file.pdf").Outline(); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFromDocumentNil(t *testing.T) {
	if _, err := FromDocument(nil).Outline(); err == nil {
		t.Error("Expected error for nil document")
	}
}

func TestMust(t *testing.T) {
	if got := Must("value", nil); got != "value" {
		t.Errorf("Expected value passthrough, got %q", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected Must to panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
