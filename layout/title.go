package layout

import (
	"sort"
	"strings"

	"github.com/docsieve/docsieve/model"
)

// TitleConfig holds configuration for title detection
type TitleConfig struct {
	// LargeSizeBonus applies when the candidate's average size exceeds
	// SizeFactor x body size
	// Default: 40
	LargeSizeBonus int

	// SizeFactor is the body-size multiple for LargeSizeBonus
	// Default: 1.3
	SizeFactor float64

	// CenteredBonus applies when any line in the candidate is centered
	// Default: 25
	CenteredBonus int

	// BoldBonus applies when any span in the candidate is bold
	// Default: 25
	BoldBonus int

	// TopBonus applies when the candidate starts within TopFraction of
	// the page height
	// Default: 30
	TopBonus int

	// TopFraction is the page-height fraction for TopBonus
	// Default: 0.25
	TopFraction float64

	// SparseBonus applies when the candidate is a single line or every
	// line sits in a sparse block
	// Default: 20
	SparseBonus int

	// SparseBlockLines is the density at or under which a block is
	// sparse
	// Default: 3
	SparseBlockLines int

	// MinScore is the score a candidate must reach to become the title
	// Default: 80
	MinScore int

	// MinAlnum and MinLength reject near-empty candidate text
	// Defaults: 3, 5
	MinAlnum  int
	MinLength int
}

// DefaultTitleConfig returns the tuned title detection configuration
func DefaultTitleConfig() TitleConfig {
	return TitleConfig{
		LargeSizeBonus:   40,
		SizeFactor:       1.3,
		CenteredBonus:    25,
		BoldBonus:        25,
		TopBonus:         30,
		TopFraction:      0.25,
		SparseBonus:      20,
		SparseBlockLines: 3,
		MinScore:         80,
		MinAlnum:         3,
		MinLength:        5,
	}
}

// TitleDetector finds the best title candidate on the first page
type TitleDetector struct {
	sizes  SizeMap
	config TitleConfig
	group  GroupConfig
}

// NewTitleDetector creates a title detector with default configuration
func NewTitleDetector(sizes SizeMap) *TitleDetector {
	return NewTitleDetectorWithConfig(sizes, DefaultTitleConfig())
}

// NewTitleDetectorWithConfig creates a title detector with custom
// configuration
func NewTitleDetectorWithConfig(sizes SizeMap, config TitleConfig) *TitleDetector {
	return &TitleDetector{
		sizes:  sizes,
		config: config,
		group:  DefaultGroupConfig(),
	}
}

// Detect scores first-page candidate runs and returns the winning
// title text. The second return value is false when no candidate
// clears the minimum score, in which case the caller falls back to
// document metadata or the placeholder.
func (d *TitleDetector) Detect(lines []model.Line, pageHeight float64) (string, bool) {
	firstPage := make([]model.Line, 0)
	for _, line := range lines {
		if line.Page == 1 {
			firstPage = append(firstPage, line)
		}
	}
	sort.SliceStable(firstPage, func(i, j int) bool {
		return firstPage[i].BBox.Y0 < firstPage[j].BBox.Y0
	})

	candidates := d.buildRuns(firstPage)

	bestScore := 0
	bestText := ""
	for _, candidate := range candidates {
		text := joinTexts(candidate)
		if model.AlnumCount(text) < d.config.MinAlnum || len(text) < d.config.MinLength {
			continue
		}
		score := d.scoreCandidate(candidate, pageHeight)
		if score >= d.config.MinScore && score > bestScore {
			bestScore = score
			bestText = text
		}
	}

	if bestScore >= d.config.MinScore {
		return bestText, true
	}
	return "", false
}

// buildRuns groups consecutive first-page lines into maximal runs
// where each next line stays within the multiline grouping criteria
// (size continuity and vertical proximity) of the line before it.
func (d *TitleDetector) buildRuns(lines []model.Line) [][]model.Line {
	var runs [][]model.Line
	var current []model.Line
	var prevSize, prevY1 float64
	havePrev := false

	for _, line := range lines {
		avg := line.AverageSize()
		if !havePrev ||
			(line.BBox.Y0-prevY1 < avg*d.group.GapFactor &&
				abs(avg-prevSize) < d.group.SizeTolerance) {
			current = append(current, line)
		} else {
			if len(current) > 0 {
				runs = append(runs, current)
			}
			current = []model.Line{line}
		}
		prevSize = avg
		prevY1 = line.BBox.Y1
		havePrev = true
	}
	if len(current) > 0 {
		runs = append(runs, current)
	}
	return runs
}

// scoreCandidate applies the additive title bonuses to one run
func (d *TitleDetector) scoreCandidate(candidate []model.Line, pageHeight float64) int {
	var sizeSum float64
	anyCentered := false
	anyBold := false
	allSparse := true
	for _, line := range candidate {
		sizeSum += line.AverageSize()
		if line.IsCentered {
			anyCentered = true
		}
		if line.HasBold() {
			anyBold = true
		}
		if line.BlockDensity > d.config.SparseBlockLines {
			allSparse = false
		}
	}
	avg := sizeSum / float64(len(candidate))

	score := 0
	if d.sizes.Body > 0 && avg > d.sizes.Body*d.config.SizeFactor {
		score += d.config.LargeSizeBonus
	}
	if anyCentered {
		score += d.config.CenteredBonus
	}
	if anyBold {
		score += d.config.BoldBonus
	}
	if pageHeight > 0 && candidate[0].BBox.Y0 < d.config.TopFraction*pageHeight {
		score += d.config.TopBonus
	}
	if len(candidate) == 1 || allSparse {
		score += d.config.SparseBonus
	}
	return score
}

// MetadataTitle validates an embedded metadata title: it must be
// non-empty after trimming and alphanumeric-rich. Returns the usable
// title and whether it qualified.
func MetadataTitle(meta model.Metadata, minAlnum int) (string, bool) {
	title := strings.TrimSpace(meta.Title)
	if title == "" || model.AlnumCount(title) < minAlnum {
		return "", false
	}
	return title, true
}

func joinTexts(lines []model.Line) string {
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return strings.Join(texts, " ")
}
