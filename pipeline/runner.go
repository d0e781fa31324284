package pipeline

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/docsieve/docsieve/layout"
	"github.com/docsieve/docsieve/model"
	"github.com/docsieve/docsieve/persona"
	"github.com/docsieve/docsieve/rank"
	"github.com/docsieve/docsieve/reader"
	"github.com/docsieve/docsieve/sections"
)

// Config holds the collection runner tunables.
type Config struct {
	// Workers is the maximum number of documents processed concurrently.
	// Default: 4
	Workers int

	// MaxRanked caps the merged ranked sections in the output.
	// Default: 15
	MaxRanked int

	// Refine controls refined-text extraction for subsection analysis.
	Refine rank.RefineConfig

	// Logger receives per-document progress. Default: slog.Default()
	Logger *slog.Logger
}

// DefaultConfig returns the standard runner configuration.
func DefaultConfig() Config {
	return Config{
		Workers:   4,
		MaxRanked: 15,
		Refine:    rank.DefaultRefineConfig(),
	}
}

// DocumentResult holds the outcome for one document in a collection.
// Err is set when the document could not be read; the outline and
// sections are then empty and the rest of the collection is unaffected.
type DocumentResult struct {
	Name    string
	Outline *model.Outline
	Ranked  []model.RankedSection
	Err     error
}

// Runner processes collections of documents.
type Runner struct {
	config    Config
	logger    *slog.Logger
	assembler *layout.Assembler
	detector  *sections.Detector
	ranker    *rank.Ranker

	// open is swappable for tests
	open func(path string) (reader.Reader, error)
}

// NewRunner creates a runner with default configuration.
func NewRunner() *Runner {
	return NewRunnerWithConfig(DefaultConfig())
}

// NewRunnerWithConfig creates a runner with the given configuration.
func NewRunnerWithConfig(config Config) *Runner {
	if config.Workers < 1 {
		config.Workers = 1
	}
	if config.MaxRanked < 1 {
		config.MaxRanked = DefaultConfig().MaxRanked
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{
		config:    config,
		logger:    logger,
		assembler: layout.NewAssembler(),
		detector:  sections.NewDetector(),
		ranker:    rank.NewRanker(),
		open:      reader.Open,
	}
}

// ProcessCollection runs every document in the input against the
// collection's persona and task, and merges the ranked sections into a
// single output record. Per-document results, including any read
// errors, are returned alongside the output.
func (r *Runner) ProcessCollection(ctx context.Context, input *CollectionInput, dir string) (*CollectionOutput, []DocumentResult, error) {
	pctx := persona.NewContext(input.Persona.Role, input.Job.Task)

	results := make([]DocumentResult, len(input.Documents))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.config.Workers)
	for i, doc := range input.Documents {
		i, doc := i, doc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i] = DocumentResult{Name: doc.Filename, Outline: &model.Outline{Title: model.NoTitleFound}, Err: err}
				return nil
			}
			results[i] = r.processDocument(filepath.Join(dir, doc.Filename), doc.Filename, pctx)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, results, err
	}

	output := r.assembleOutput(input, pctx, results)
	return output, results, nil
}

// processDocument reads one document and produces its outline and
// ranked sections. Sections come from the outline when it has entries,
// with heading-level weights applied; otherwise the text-based section
// detector runs over the page texts.
func (r *Runner) processDocument(path, name string, pctx *persona.Context) DocumentResult {
	start := time.Now()

	rd, err := r.open(path)
	if err == nil {
		var doc *model.Document
		doc, err = rd.Read()
		if err == nil {
			doc.Name = name
			result := r.analyzeDocument(doc, name, pctx)
			r.logger.Info("processed document",
				"document", name,
				"pages", doc.PageCount(),
				"headings", result.Outline.EntryCount(),
				"ranked", len(result.Ranked),
				"duration", time.Since(start))
			return result
		}
	}

	r.logger.Error("failed to process document", "document", name, "error", err)
	return DocumentResult{
		Name:    name,
		Outline: &model.Outline{Title: model.NoTitleFound},
		Err:     err,
	}
}

func (r *Runner) analyzeDocument(doc *model.Document, name string, pctx *persona.Context) DocumentResult {
	assembly := r.assembler.Assemble(doc)

	var ranked []model.RankedSection
	if assembly.Outline.EntryCount() > 0 {
		secs := assembly.Sections(doc)
		for i, sec := range secs {
			rs := r.ranker.Score(sec, pctx, i)
			rs.Document = name
			rs.FinalScore *= rank.LevelWeight(assembly.Outline.Entries[i].Level)
			ranked = append(ranked, rs)
		}
	} else {
		for i, sec := range r.detector.Detect(doc) {
			rs := r.ranker.Score(sec, pctx, i)
			rs.Document = name
			ranked = append(ranked, rs)
		}
	}

	return DocumentResult{Name: name, Outline: assembly.Outline, Ranked: ranked}
}

// assembleOutput merges per-document ranked sections, resorts them by
// final score, and renders the collection output record.
func (r *Runner) assembleOutput(input *CollectionInput, pctx *persona.Context, results []DocumentResult) *CollectionOutput {
	var merged []model.RankedSection
	for _, result := range results {
		merged = append(merged, result.Ranked...)
	}
	rank.Sort(merged)
	if len(merged) > r.config.MaxRanked {
		merged = merged[:r.config.MaxRanked]
	}

	names := make([]string, len(input.Documents))
	for i, doc := range input.Documents {
		names[i] = doc.Filename
	}

	output := &CollectionOutput{
		Metadata: OutputMetadata{
			InputDocuments:      names,
			Persona:             input.Persona.Role,
			JobToBeDone:         input.Job.Task,
			ProcessingTimestamp: time.Now().UTC().Format(time.RFC3339),
		},
		ExtractedSections:  make([]ExtractedSection, 0, len(merged)),
		SubsectionAnalysis: make([]SubsectionEntry, 0, len(merged)),
	}

	for i, rs := range merged {
		output.ExtractedSections = append(output.ExtractedSections, ExtractedSection{
			Document:       rs.Document,
			SectionTitle:   rs.Title,
			ImportanceRank: i + 1,
			PageNumber:     rs.Page,
		})
		refined := rank.RefineText(rs.Content, pctx.QueryKeywords, r.config.Refine)
		if refined != "" {
			output.SubsectionAnalysis = append(output.SubsectionAnalysis, SubsectionEntry{
				Document:       rs.Document,
				RefinedText:    refined,
				PageNumber:     rs.Page,
				ImportanceRank: i + 1,
			})
		}
	}

	return output
}
