package sections

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/docsieve/docsieve/model"
)

func pageDoc(texts ...string) *model.Document {
	doc := model.NewDocument()
	for _, text := range texts {
		page := model.NewPage(612, 792)
		page.Text = text
		doc.AddPage(page)
	}
	return doc
}

func TestDetectByHeaders(t *testing.T) {
	doc := pageDoc("INTRODUCTION\n" +
		"This opening section describes the purpose and scope of the study.\n" +
		"It also summarizes the structure of the remaining chapters.\n" +
		"\n" +
		"Unrelated trailing text after the blank line.")

	secs := NewDetector().Detect(doc)
	if len(secs) == 0 {
		t.Fatal("Expected at least one section")
	}

	first := secs[0]
	if first.Title != "INTRODUCTION" {
		t.Errorf("Expected header title, got %q", first.Title)
	}
	if first.Method != model.MethodHeader {
		t.Errorf("Expected header method, got %v", first.Method)
	}
	if strings.Contains(first.Content, "Unrelated trailing text") {
		t.Error("Expected capture to stop at the blank line after content")
	}
	if first.Page != 1 {
		t.Errorf("Expected page 1, got %d", first.Page)
	}
}

func TestMatchHeader(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"INTRODUCTION", "INTRODUCTION"},
		{"RELATED WORK", "RELATED WORK"},
		{"1. Background Material", "1. Background Material"},
		{"Methods Overview:", "Methods Overview"},
		{"plain lowercase text", ""},
		{"Mixed Case Without Colon", ""},
	}

	for _, tt := range tests {
		if got := matchHeader(tt.line); got != tt.want {
			t.Errorf("matchHeader(%q): expected %q, got %q", tt.line, tt.want, got)
		}
	}
}

func TestContentCaptureStopsAtAllCaps(t *testing.T) {
	doc := pageDoc("FIRST SECTION\n" +
		"Content belonging to the first section sits on these two lines.\n" +
		"More first-section content continues right here.\n" +
		"SECOND SECTION\n" +
		"Content for the second section, which is separate material.")

	secs := NewDetector().Detect(doc)
	for _, sec := range secs {
		if sec.Title == "FIRST SECTION" && strings.Contains(sec.Content, "second section") {
			t.Error("Expected first section capture to stop at the next ALL-CAPS line")
		}
	}
}

func TestDetectLengthBounds(t *testing.T) {
	short := strings.Repeat("x", 29)
	okay := strings.Repeat("y", 30)

	doc := pageDoc("HEADER ONE\n" + short + "\n\nHEADER TWO\n" + okay)

	secs := NewDetector().Detect(doc)
	for _, sec := range secs {
		if sec.Title == "HEADER ONE" {
			t.Error("Expected 29-character content to be rejected")
		}
	}

	found := false
	for _, sec := range secs {
		if sec.Title == "HEADER TWO" {
			found = true
		}
	}
	if !found {
		t.Error("Expected 30-character content to be accepted")
	}
}

func TestDetectByParagraphs(t *testing.T) {
	doc := pageDoc("the quick brown fox jumps over the lazy dog and keeps on running through the field")

	secs := NewDetector().Detect(doc)
	if len(secs) != 1 {
		t.Fatalf("Expected 1 paragraph section, got %d", len(secs))
	}
	if secs[0].Title != "the quick brown fox jumps..." {
		t.Errorf("Expected five-word title with ellipsis, got %q", secs[0].Title)
	}
	if secs[0].Method != model.MethodParagraph {
		t.Errorf("Expected paragraph method, got %v", secs[0].Method)
	}
}

func TestDetectByLists(t *testing.T) {
	doc := pageDoc("intro line that is not a list\n" +
		"1. first numbered item in the run\n" +
		"2. second numbered item in the run\n" +
		"3. third numbered item in the run")

	secs := NewDetector().Detect(doc)

	var list *model.Section
	for i := range secs {
		if secs[i].Method == model.MethodList {
			list = &secs[i]
		}
	}
	if list == nil {
		t.Fatal("Expected a list section")
	}
	if list.Title != "List Section 2" {
		t.Errorf("Expected title from start line, got %q", list.Title)
	}
	if !strings.Contains(list.Content, "second numbered item") {
		t.Error("Expected list content to include the items")
	}
}

func TestDetectSingleListItemIgnored(t *testing.T) {
	doc := pageDoc("prose before\npure prose here\n1. a lone item\nprose after that is plainly prose")

	secs := NewDetector().Detect(doc)
	for _, sec := range secs {
		if sec.Method == model.MethodList {
			// The lone item plus its continuation line still forms a
			// two-line run; only a truly isolated item is ignored
			if !strings.Contains(sec.Content, "a lone item") {
				t.Errorf("Unexpected list section %q", sec.Title)
			}
		}
	}
}

func TestHeaderContentTruncatesOnRuneBoundary(t *testing.T) {
	config := DefaultConfig()
	config.MinSectionLength = 10
	config.MaxSectionLength = 40

	doc := pageDoc("SUMMARY\n" + strings.TrimSpace(strings.Repeat("café ", 10)))

	secs := NewDetectorWithConfig(config).Detect(doc)
	var header *model.Section
	for i := range secs {
		if secs[i].Title == "SUMMARY" {
			header = &secs[i]
		}
	}
	if header == nil {
		t.Fatal("Expected a header section")
	}
	if len(header.Content) > config.MaxSectionLength {
		t.Errorf("Expected content capped at %d bytes, got %d", config.MaxSectionLength, len(header.Content))
	}
	if !utf8.ValidString(header.Content) {
		t.Errorf("Expected valid UTF-8 after truncation, got %q", header.Content)
	}
}

func TestDetectDeduplicatesTitles(t *testing.T) {
	text := "OVERVIEW\nContent for the overview section, long enough to be accepted."
	doc := pageDoc(text, text)

	secs := NewDetector().Detect(doc)
	count := 0
	for _, sec := range secs {
		if strings.EqualFold(sec.Title, "overview") {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Expected title dedup across pages, got %d copies", count)
	}
}

func TestDetectCapsSections(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 60; i++ {
		sb.WriteString(fmt.Sprintf("paragraph number %d with enough words to pass the minimum length bound\n\n", i))
	}
	doc := pageDoc(sb.String())

	secs := NewDetector().Detect(doc)
	if len(secs) > 50 {
		t.Errorf("Expected at most 50 sections, got %d", len(secs))
	}
}

func TestDetectNilDocument(t *testing.T) {
	if secs := NewDetector().Detect(nil); secs != nil {
		t.Errorf("Expected nil for nil document, got %v", secs)
	}
}

func TestConfidence(t *testing.T) {
	content := strings.Repeat("z", 25) // quality 0.05

	tests := []struct {
		name   string
		method model.DetectionMethod
		title  string
		want   float64
	}{
		{"header", model.MethodHeader, "Results", 0.3 + 0.4 + 0.05 + 0.2},
		{"paragraph", model.MethodParagraph, "Some words here...", 0.3 + 0.3 + 0.05 + 0.2},
		{"list", model.MethodList, "List Section 3", 0.3 + 0.2 + 0.05 + 0.2},
		{"unknown", model.MethodUnknown, "abc", 0.3 + 0.1 + 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Confidence(tt.method, tt.title, content)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestConfidenceClamped(t *testing.T) {
	long := strings.Repeat("z", 2000)
	if got := Confidence(model.MethodHeader, "A Long Title", long); got != 1.0 {
		t.Errorf("Expected confidence clamped to 1.0, got %v", got)
	}
}

func TestConfidenceEmptyContent(t *testing.T) {
	got := Confidence(model.MethodHeader, "Title", "")
	if diff := got - 0.7; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Expected base plus method weight only, got %v", got)
	}
}
