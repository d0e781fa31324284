package docsieve

import (
	"fmt"

	"github.com/docsieve/docsieve/layout"
	"github.com/docsieve/docsieve/model"
	"github.com/docsieve/docsieve/persona"
	"github.com/docsieve/docsieve/rank"
	"github.com/docsieve/docsieve/reader"
	"github.com/docsieve/docsieve/sections"
)

// Extractor provides a fluent interface for outline extraction and
// section ranking. Each configuration method returns a new Extractor
// instance, making it safe for concurrent use and allowing method
// chaining.
type Extractor struct {
	// Source
	filename string

	// Loaded document (lazily read from filename unless injected)
	doc       *model.Document
	docLoaded bool

	// Configuration
	options Options

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a copy of options.
// This ensures immutability, each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename:  e.filename,
		doc:       e.doc,
		docLoaded: e.docLoaded,
		options:   e.options.clone(),
		err:       e.err,
	}
}

// ensureDocument reads the source file if no document is loaded yet.
func (e *Extractor) ensureDocument() error {
	if e.err != nil {
		return e.err
	}
	if e.docLoaded {
		if e.doc == nil {
			return fmt.Errorf("no document provided")
		}
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no filename specified")
	}

	rd, err := reader.Open(e.filename)
	if err != nil {
		return err
	}
	doc, err := rd.Read()
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", e.filename, err)
	}
	e.doc = doc
	e.docLoaded = true
	return nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Persona sets the role description sections are ranked for.
//
// Example:
//
//	ranked, err := docsieve.Open("guide.pdf").Persona("Travel Blogger").Ranked()
func (e *Extractor) Persona(role string) *Extractor {
	newExt := e.clone()
	newExt.options.role = role
	return newExt
}

// Task sets the job-to-be-done description sections are ranked for.
func (e *Extractor) Task(task string) *Extractor {
	newExt := e.clone()
	newExt.options.task = task
	return newExt
}

// MaxRanked caps the number of ranked sections returned by Ranked().
// Zero or negative means no cap.
func (e *Extractor) MaxRanked(n int) *Extractor {
	newExt := e.clone()
	if n < 0 {
		n = 0
	}
	newExt.options.maxRanked = n
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document reads and returns the underlying document model.
func (e *Extractor) Document() (*model.Document, error) {
	if err := e.ensureDocument(); err != nil {
		return nil, err
	}
	return e.doc, nil
}

// Outline extracts the document's title and heading outline.
//
// Example:
//
//	outline, err := docsieve.Open("report.pdf").Outline()
func (e *Extractor) Outline() (*model.Outline, error) {
	assembly, err := e.assemble()
	if err != nil {
		return nil, err
	}
	return assembly.Outline, nil
}

// Title extracts just the document title.
func (e *Extractor) Title() (string, error) {
	outline, err := e.Outline()
	if err != nil {
		return "", err
	}
	return outline.Title, nil
}

// Sections extracts the document's sections. When the outline has
// headings, each heading yields a section holding the text down to the
// next heading; otherwise the text-based section detector runs over
// the page texts.
func (e *Extractor) Sections() ([]model.Section, error) {
	assembly, err := e.assemble()
	if err != nil {
		return nil, err
	}
	if assembly.Outline.EntryCount() > 0 {
		return assembly.Sections(e.doc), nil
	}
	return sections.NewDetector().Detect(e.doc), nil
}

// Ranked extracts the document's sections and ranks them for the
// configured persona and task, best first. Outline-derived sections
// are weighted by heading level.
//
// Example:
//
//	ranked, err := docsieve.Open("guide.pdf").
//	    Persona("Travel Planner").
//	    Task("Plan a trip of 4 days").
//	    Ranked()
func (e *Extractor) Ranked() ([]model.RankedSection, error) {
	assembly, err := e.assemble()
	if err != nil {
		return nil, err
	}

	pctx := persona.NewContext(e.options.role, e.options.task)
	ranker := rank.NewRanker()

	var ranked []model.RankedSection
	if assembly.Outline.EntryCount() > 0 {
		for i, sec := range assembly.Sections(e.doc) {
			rs := ranker.Score(sec, pctx, i)
			rs.Document = e.doc.Name
			rs.FinalScore *= rank.LevelWeight(assembly.Outline.Entries[i].Level)
			ranked = append(ranked, rs)
		}
	} else {
		for i, sec := range sections.NewDetector().Detect(e.doc) {
			rs := ranker.Score(sec, pctx, i)
			rs.Document = e.doc.Name
			ranked = append(ranked, rs)
		}
	}

	rank.Sort(ranked)
	if e.options.maxRanked > 0 && len(ranked) > e.options.maxRanked {
		ranked = ranked[:e.options.maxRanked]
	}
	return ranked, nil
}

// RefinedText extracts the refined text of one section's content for
// the configured persona and task: the highest keyword-scoring
// sentences, truncated.
func (e *Extractor) RefinedText(content string) string {
	pctx := persona.NewContext(e.options.role, e.options.task)
	return rank.RefineText(content, pctx.QueryKeywords, e.options.refine)
}

func (e *Extractor) assemble() (*layout.Assembly, error) {
	if err := e.ensureDocument(); err != nil {
		return nil, err
	}
	return layout.NewAssembler().Assemble(e.doc), nil
}
