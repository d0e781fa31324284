package layout

import (
	"testing"

	"github.com/docsieve/docsieve/model"
)

func TestDetectTitle(t *testing.T) {
	sizes := SizeMap{Body: 11, H1: 28}
	detector := NewTitleDetector(sizes)

	lines := []model.Line{
		spanLine("Annual Field Report", 1, 60, 28, model.StyleBold, true),
		spanLine("Prepared by the survey team for internal distribution only.", 1, 420, 11, 0, false),
	}

	title, ok := detector.Detect(lines, 792)
	if !ok {
		t.Fatal("Expected a title to be detected")
	}
	if title != "Annual Field Report" {
		t.Errorf("Expected 'Annual Field Report', got %q", title)
	}
}

func TestDetectTitleMultiline(t *testing.T) {
	sizes := SizeMap{Body: 11, H1: 28}
	detector := NewTitleDetector(sizes)

	lines := []model.Line{
		spanLine("Comprehensive Guide to", 1, 60, 28, model.StyleBold, true),
		spanLine("Regional Field Surveys", 1, 95, 28, model.StyleBold, true),
	}

	title, ok := detector.Detect(lines, 792)
	if !ok {
		t.Fatal("Expected a title to be detected")
	}
	if title != "Comprehensive Guide to Regional Field Surveys" {
		t.Errorf("Expected joined multiline title, got %q", title)
	}
}

func TestDetectTitleNoCandidate(t *testing.T) {
	sizes := SizeMap{Body: 11}
	detector := NewTitleDetector(sizes)

	lines := []model.Line{
		spanLine("Ordinary body text at the top of the page without title signals here.", 1, 500, 11, 0, false),
	}
	lines[0].BlockDensity = 8

	if _, ok := detector.Detect(lines, 792); ok {
		t.Error("Expected no title for plain body text")
	}
}

func TestDetectTitleIgnoresLaterPages(t *testing.T) {
	sizes := SizeMap{Body: 11, H1: 28}
	detector := NewTitleDetector(sizes)

	lines := []model.Line{
		spanLine("Second Page Banner", 2, 60, 28, model.StyleBold, true),
	}
	if _, ok := detector.Detect(lines, 792); ok {
		t.Error("Expected only first-page lines to be title candidates")
	}
}

func TestMetadataTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  bool
	}{
		{"valid", "Project Plan", true},
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"too few alphanumerics", "- a -", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := MetadataTitle(model.Metadata{Title: tt.title}, 3)
			if ok != tt.want {
				t.Errorf("Expected ok=%v, got %v", tt.want, ok)
			}
			if ok && got != "Project Plan" {
				t.Errorf("Expected trimmed title, got %q", got)
			}
		})
	}
}
