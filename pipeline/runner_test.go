package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docsieve/docsieve/model"
	"github.com/docsieve/docsieve/reader"
)

type fakeReader struct {
	doc *model.Document
	err error
}

func (f *fakeReader) Read() (*model.Document, error) {
	return f.doc, f.err
}

func fixtureLine(text string, page int, y, size float64, flags int, centered bool) model.Line {
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

func fixtureDoc() *model.Document {
	doc := model.NewDocument()
	page := model.NewPage(612, 792)
	doc.AddPage(page)

	lines := []model.Line{
		fixtureLine("Annual Research Report", 1, 50, 28, model.StyleBold, true),
		fixtureLine("1. Introduction", 1, 250, 24, model.StyleBold, false),
		fixtureLine("This report presents a review of the methodology used across the program.", 1, 290, 11, 0, false),
		fixtureLine("The methodology chapter summarizes the data collection approach in detail.", 1, 306, 11, 0, false),
		fixtureLine("2. Methodology", 1, 400, 24, model.StyleBold, false),
		fixtureLine("Interviews and surveys were combined to gather evidence for the analysis.", 1, 440, 11, 0, false),
		fixtureLine("Sampling followed the standard research protocol from previous years.", 1, 456, 11, 0, false),
		fixtureLine("Extra background reading material is listed near the end of the report.", 1, 472, 11, 0, false),
		fixtureLine("Acknowledgements close out the report with thanks to the field teams.", 1, 488, 11, 0, false),
	}
	for i := range lines {
		if i > 0 {
			lines[i].SpacingAbove = lines[i].BBox.Y0 - lines[i-1].BBox.Y1
		}
	}
	page.Lines = lines
	return doc
}

func quietRunner(cfg Config) *Runner {
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return NewRunnerWithConfig(cfg)
}

func TestProcessCollection(t *testing.T) {
	runner := quietRunner(DefaultConfig())
	runner.open = func(path string) (reader.Reader, error) {
		return &fakeReader{doc: fixtureDoc()}, nil
	}

	input := &CollectionInput{
		Documents: []InputDocument{{Filename: "report.pdf"}},
		Persona:   PersonaSpec{Role: "Researcher"},
		Job:       JobSpec{Task: "Review the methodology"},
	}

	output, results, err := runner.ProcessCollection(context.Background(), input, "/tmp")
	if err != nil {
		t.Fatalf("ProcessCollection failed: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(results))
	}
	result := results[0]
	if result.Err != nil {
		t.Fatalf("Unexpected document error: %v", result.Err)
	}

	if result.Outline.Title != "Annual Research Report" {
		t.Errorf("Expected title from layout, got %q", result.Outline.Title)
	}
	if result.Outline.EntryCount() != 2 {
		t.Fatalf("Expected 2 outline entries, got %d", result.Outline.EntryCount())
	}
	if result.Outline.Entries[0].Text != "1. Introduction" {
		t.Errorf("Expected first heading '1. Introduction', got %q", result.Outline.Entries[0].Text)
	}
	if result.Outline.Entries[1].Text != "2. Methodology" {
		t.Errorf("Expected second heading '2. Methodology', got %q", result.Outline.Entries[1].Text)
	}

	if len(output.ExtractedSections) != 2 {
		t.Fatalf("Expected 2 extracted sections, got %d", len(output.ExtractedSections))
	}
	for i, es := range output.ExtractedSections {
		if es.ImportanceRank != i+1 {
			t.Errorf("Expected importance rank %d, got %d", i+1, es.ImportanceRank)
		}
		if es.Document != "report.pdf" {
			t.Errorf("Expected document name on section, got %q", es.Document)
		}
		if es.PageNumber != 1 {
			t.Errorf("Expected page 1, got %d", es.PageNumber)
		}
	}

	if output.Metadata.Persona != "Researcher" {
		t.Errorf("Expected persona echoed, got %q", output.Metadata.Persona)
	}
	if output.Metadata.JobToBeDone != "Review the methodology" {
		t.Errorf("Expected task echoed, got %q", output.Metadata.JobToBeDone)
	}
	if _, err := time.Parse(time.RFC3339, output.Metadata.ProcessingTimestamp); err != nil {
		t.Errorf("Expected RFC3339 timestamp, got %q", output.Metadata.ProcessingTimestamp)
	}

	if len(output.SubsectionAnalysis) == 0 {
		t.Error("Expected refined text for keyword-bearing sections")
	}
}

func TestProcessCollectionIsolatesFailures(t *testing.T) {
	runner := quietRunner(DefaultConfig())
	runner.open = func(path string) (reader.Reader, error) {
		if filepath.Base(path) == "missing.pdf" {
			return nil, errors.New("no such file")
		}
		return &fakeReader{doc: fixtureDoc()}, nil
	}

	input := &CollectionInput{
		Documents: []InputDocument{
			{Filename: "report.pdf"},
			{Filename: "missing.pdf"},
		},
		Persona: PersonaSpec{Role: "Researcher"},
		Job:     JobSpec{Task: "Review the methodology"},
	}

	output, results, err := runner.ProcessCollection(context.Background(), input, "/tmp")
	if err != nil {
		t.Fatalf("ProcessCollection failed: %v", err)
	}

	if results[0].Err != nil {
		t.Errorf("Expected healthy document to succeed, got %v", results[0].Err)
	}
	if results[1].Err == nil {
		t.Error("Expected error recorded for unreadable document")
	}
	if results[1].Outline == nil || results[1].Outline.Title != model.NoTitleFound {
		t.Error("Expected placeholder outline for unreadable document")
	}

	if len(output.ExtractedSections) == 0 {
		t.Error("Expected sections from the healthy document")
	}
	for _, es := range output.ExtractedSections {
		if es.Document == "missing.pdf" {
			t.Error("Unreadable document must not contribute sections")
		}
	}
	if len(output.Metadata.InputDocuments) != 2 {
		t.Errorf("Expected both documents in metadata, got %v", output.Metadata.InputDocuments)
	}
}

func TestProcessCollectionCapsRanked(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxRanked = 1
	runner := quietRunner(cfg)
	runner.open = func(path string) (reader.Reader, error) {
		return &fakeReader{doc: fixtureDoc()}, nil
	}

	input := &CollectionInput{
		Documents: []InputDocument{{Filename: "a.pdf"}, {Filename: "b.pdf"}},
		Persona:   PersonaSpec{Role: "Researcher"},
		Job:       JobSpec{Task: "Review the methodology"},
	}

	output, _, err := runner.ProcessCollection(context.Background(), input, "/tmp")
	if err != nil {
		t.Fatalf("ProcessCollection failed: %v", err)
	}
	if len(output.ExtractedSections) != 1 {
		t.Errorf("Expected ranked output capped at 1, got %d", len(output.ExtractedSections))
	}
}

func TestLoadInput(t *testing.T) {
	src := `{
  "documents": [{"filename": "a.pdf", "title": "A"}],
  "persona": {"role": "Student"},
  "job_to_be_done": {"task": "Learn the basics"}
}`
	path := filepath.Join(t.TempDir(), "input.json")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("Failed to write input: %v", err)
	}

	input, err := LoadInput(path)
	if err != nil {
		t.Fatalf("LoadInput failed: %v", err)
	}
	if len(input.Documents) != 1 || input.Documents[0].Filename != "a.pdf" {
		t.Errorf("Unexpected documents: %+v", input.Documents)
	}
	if input.Persona.Role != "Student" {
		t.Errorf("Expected role Student, got %q", input.Persona.Role)
	}
	if input.Job.Task != "Learn the basics" {
		t.Errorf("Expected task, got %q", input.Job.Task)
	}

	if _, err := LoadInput(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Expected error for missing input file")
	}
}

func TestWriteOutline(t *testing.T) {
	outline := &model.Outline{
		Title: "Doc",
		Entries: []model.OutlineEntry{
			{Level: model.HeadingLevel1, Text: "Intro", Page: 1},
		},
	}
	path := filepath.Join(t.TempDir(), "outline.json")
	if err := WriteOutline(path, outline); err != nil {
		t.Fatalf("WriteOutline failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	for _, want := range []string{`"title"`, `"outline"`, `"H1"`, `"Intro"`} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected output to contain %s", want)
		}
	}
}
