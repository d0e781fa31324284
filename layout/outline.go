package layout

import (
	"sort"

	"github.com/docsieve/docsieve/model"
)

// AssemblerConfig holds configuration for outline assembly
type AssemblerConfig struct {
	// MinAlnum and MinLength reject near-empty heading text
	// Defaults: 2, 3
	MinAlnum  int
	MinLength int

	// MaxHeadingsPerPage caps accepted headings per page; once a page
	// holds more than this many, further candidates on it are noise
	// Default: 8
	MaxHeadingsPerPage int

	// MaxBlockDensity rejects lines inside dense blocks; body text
	// cannot be a heading regardless of score
	// Default: 5
	MaxBlockDensity int
}

// DefaultAssemblerConfig returns the standard assembly configuration
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		MinAlnum:           2,
		MinLength:          3,
		MaxHeadingsPerPage: 8,
		MaxBlockDensity:    5,
	}
}

// Assembler runs the full outline pipeline for one document: size map
// derivation, scoring, multiline grouping, title detection, and final
// dedup, leveling, and ordering of headings. Deduplication state is
// local to each Assemble call, so an Assembler is safe to reuse across
// documents.
type Assembler struct {
	config      AssemblerConfig
	scoreConfig ScoreConfig
	titleConfig TitleConfig
}

// NewAssembler creates an assembler with default configuration
func NewAssembler() *Assembler {
	return &Assembler{
		config:      DefaultAssemblerConfig(),
		scoreConfig: DefaultScoreConfig(),
		titleConfig: DefaultTitleConfig(),
	}
}

// NewAssemblerWithConfig creates an assembler with custom assembly
// configuration, keeping default scoring
func NewAssemblerWithConfig(config AssemblerConfig) *Assembler {
	a := NewAssembler()
	a.config = config
	return a
}

// Assembly is the result of outline assembly. Beyond the outline it
// retains each entry's vertical position, which SectionText uses to
// slice content between headings.
type Assembly struct {
	// Outline is the assembled title and ordered headings
	Outline *model.Outline

	// Sizes is the size map the outline was derived with
	Sizes SizeMap

	// positions holds each entry's top edge, parallel to
	// Outline.Entries (internal sort key, not persisted)
	positions []float64
}

// assembledEntry pairs an outline entry with its sort position
type assembledEntry struct {
	entry model.OutlineEntry
	y0    float64
}

// Assemble runs the outline pipeline over the document's lines. A
// document with no lines or no usable font sizes yields an empty
// outline and the metadata or placeholder title; that is a no-signal
// result, not an error.
func (a *Assembler) Assemble(doc *model.Document) *Assembly {
	title := model.NoTitleFound
	if t, ok := MetadataTitle(doc.Metadata, a.titleConfig.MinAlnum); ok {
		title = t
	}

	lines := doc.AllLines()
	if len(lines) == 0 {
		return &Assembly{Outline: &model.Outline{Title: model.NoTitleFound}}
	}

	sizes := BuildSizeMap(lines)
	if sizes.Body == 0 {
		return &Assembly{Outline: &model.Outline{Title: title}, Sizes: sizes}
	}

	scorer := NewScorerWithConfig(sizes, a.scoreConfig)
	grouped := NewGrouper(scorer).Group(lines)

	var pageHeight float64
	if page := doc.GetPage(1); page != nil {
		pageHeight = page.Height
	}
	detector := NewTitleDetectorWithConfig(sizes, a.titleConfig)
	if t, ok := detector.Detect(grouped, pageHeight); ok {
		title = t
	}

	entries := a.collectHeadings(grouped, scorer, title)

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].entry.Page != entries[j].entry.Page {
			return entries[i].entry.Page < entries[j].entry.Page
		}
		return entries[i].y0 < entries[j].y0
	})

	result := &Assembly{
		Outline: &model.Outline{Title: title},
		Sizes:   sizes,
	}
	for _, e := range entries {
		result.Outline.Entries = append(result.Outline.Entries, e.entry)
		result.positions = append(result.positions, e.y0)
	}

	result.promoteTitleFromH1()
	return result
}

// collectHeadings filters, scores, levels, and dedups the grouped
// lines into outline entries. The seen-set and per-page counters live
// here, scoped to a single document.
func (a *Assembler) collectHeadings(lines []model.Line, scorer *Scorer, title string) []assembledEntry {
	var entries []assembledEntry
	seen := make(map[string]bool)
	perPage := make(map[int]int)

	for _, line := range lines {
		if model.AlnumCount(line.Text) < a.config.MinAlnum || len(line.Text) < a.config.MinLength {
			continue
		}
		if perPage[line.Page] > a.config.MaxHeadingsPerPage {
			continue
		}
		if line.BlockDensity > a.config.MaxBlockDensity {
			continue
		}

		score := scorer.Score(line)
		if score < a.scoreConfig.HeadingGate {
			continue
		}

		level := scorer.AssignLevel(line, score)
		if level == model.HeadingLevelUnknown || line.Text == title {
			continue
		}

		entry := model.OutlineEntry{Level: level, Text: line.Text, Page: line.Page}
		if seen[entry.Key()] {
			continue
		}
		seen[entry.Key()] = true
		entries = append(entries, assembledEntry{entry: entry, y0: line.BBox.Y0})
		perPage[line.Page]++
	}
	return entries
}

// promoteTitleFromH1 resolves a still-missing title by promoting the
// first H1 entry and removing that entry from the outline so the title
// is not re-listed as a heading. Only the promoted entry is removed;
// other entries sharing its text stay.
func (asm *Assembly) promoteTitleFromH1() {
	if asm.Outline.Title != model.NoTitleFound || len(asm.Outline.Entries) == 0 {
		return
	}
	for i, e := range asm.Outline.Entries {
		if e.Level != model.HeadingLevel1 {
			continue
		}
		asm.Outline.Title = e.Text
		asm.Outline.Entries = append(asm.Outline.Entries[:i], asm.Outline.Entries[i+1:]...)
		asm.positions = append(asm.positions[:i], asm.positions[i+1:]...)
		return
	}
}

// EntryPosition returns the vertical position of entry i, used by
// section text extraction. The second value is false when i is out of
// range.
func (asm *Assembly) EntryPosition(i int) (float64, bool) {
	if asm == nil || i < 0 || i >= len(asm.positions) {
		return 0, false
	}
	return asm.positions[i], true
}
