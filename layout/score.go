package layout

import (
	"math"
	"regexp"

	"github.com/docsieve/docsieve/model"
)

// numberingPattern matches a leading numbering prefix: digits,
// optionally dot-separated ("1", "1.1", "1.1.1").
var numberingPattern = regexp.MustCompile(`^\d+(\.\d+)*`)

// NumberingDepth returns the depth of a leading numbering prefix:
// "1." has depth 1, "1.1" depth 2, "2.3.1" depth 3. Text without a
// numbering prefix has depth 0.
func NumberingDepth(text string) int {
	match := numberingPattern.FindString(text)
	if match == "" {
		return 0
	}
	depth := 1
	for _, r := range match {
		if r == '.' {
			depth++
		}
	}
	return depth
}

// ScoreConfig holds the additive heading score bonuses and gates. Each
// bonus rewards one independent layout signal; no single signal is
// decisive. The defaults are the tuned contract values.
type ScoreConfig struct {
	// LargeSizeBonus applies when average span size exceeds
	// SizeFactor x body size
	// Default: 40
	LargeSizeBonus int

	// SizeFactor is the body-size multiple for LargeSizeBonus
	// Default: 1.2
	SizeFactor float64

	// BoldBonus applies when any span is bold
	// Default: 25
	BoldBonus int

	// NumberedBonus applies when a numbering prefix is present
	// Default: 25
	NumberedBonus int

	// NumberedDepthBonus is added per numbering level beyond the first
	// Default: 10
	NumberedDepthBonus int

	// ShortLineBonus applies when the line text is under ShortLineChars
	// Default: 20
	ShortLineBonus int

	// ShortLineChars is the character count under which a line is short
	// Default: 80
	ShortLineChars int

	// CenteredBonus applies when the line is horizontally centered
	// Default: 15
	CenteredBonus int

	// SpacingBonus applies when the gap above exceeds SpacingFactor x
	// the line's own average size
	// Default: 20
	SpacingBonus int

	// SpacingFactor is the size multiple for SpacingBonus
	// Default: 2.0
	SpacingFactor float64

	// SparseBonus applies when the enclosing block has at most
	// SparseBlockLines lines
	// Default: 15
	SparseBonus int

	// SparseBlockLines is the density at or under which a block is
	// sparse
	// Default: 3
	SparseBlockLines int

	// TierBonusH1, TierBonusH2, TierBonusH3 apply when the average
	// size is within TierProximity of the respective threshold; only
	// the first matching tier applies, H1 checked first
	// Defaults: 25, 20, 15
	TierBonusH1 int
	TierBonusH2 int
	TierBonusH3 int

	// TierProximity is the fraction of a level threshold the average
	// size must reach for the tier bonus
	// Default: 0.95
	TierProximity float64

	// HeadingGate is the minimum score for a line to be a heading
	// candidate at all
	// Default: 80
	HeadingGate int

	// H1Gate, H2Gate, H3Gate are the minimum scores for level
	// assignment
	// Defaults: 100, 90, 80
	H1Gate int
	H2Gate int
	H3Gate int
}

// DefaultScoreConfig returns the tuned scoring configuration
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		LargeSizeBonus:     40,
		SizeFactor:         1.2,
		BoldBonus:          25,
		NumberedBonus:      25,
		NumberedDepthBonus: 10,
		ShortLineBonus:     20,
		ShortLineChars:     80,
		CenteredBonus:      15,
		SpacingBonus:       20,
		SpacingFactor:      2.0,
		SparseBonus:        15,
		SparseBlockLines:   3,
		TierBonusH1:        25,
		TierBonusH2:        20,
		TierBonusH3:        15,
		TierProximity:      0.95,
		HeadingGate:        80,
		H1Gate:             100,
		H2Gate:             90,
		H3Gate:             80,
	}
}

// Scorer computes heading scores and level assignments for lines
// against a document's derived size map.
type Scorer struct {
	sizes  SizeMap
	config ScoreConfig
}

// NewScorer creates a scorer with default configuration
func NewScorer(sizes SizeMap) *Scorer {
	return NewScorerWithConfig(sizes, DefaultScoreConfig())
}

// NewScorerWithConfig creates a scorer with custom configuration
func NewScorerWithConfig(sizes SizeMap, config ScoreConfig) *Scorer {
	return &Scorer{sizes: sizes, config: config}
}

// Sizes returns the size map the scorer was built with
func (s *Scorer) Sizes() SizeMap {
	return s.sizes
}

// Score computes the integer heading score of a line by summing the
// independent signal bonuses. A line is a heading candidate when the
// score reaches the heading gate.
func (s *Scorer) Score(line model.Line) int {
	avg := line.AverageSize()
	score := 0

	if s.sizes.Body > 0 && avg > s.sizes.Body*s.config.SizeFactor {
		score += s.config.LargeSizeBonus
	}
	if line.HasBold() {
		score += s.config.BoldBonus
	}
	if depth := NumberingDepth(line.Text); depth > 0 {
		score += s.config.NumberedBonus + (depth-1)*s.config.NumberedDepthBonus
	}
	if len(line.Text) < s.config.ShortLineChars {
		score += s.config.ShortLineBonus
	}
	if line.IsCentered {
		score += s.config.CenteredBonus
	}
	if spacing := math.Max(line.SpacingAbove, 0); spacing > avg*s.config.SpacingFactor {
		score += s.config.SpacingBonus
	}
	if line.BlockDensity <= s.config.SparseBlockLines {
		score += s.config.SparseBonus
	}

	switch {
	case s.sizes.HasH1() && avg >= s.sizes.H1*s.config.TierProximity:
		score += s.config.TierBonusH1
	case s.sizes.HasH2() && avg >= s.sizes.H2*s.config.TierProximity:
		score += s.config.TierBonusH2
	case s.sizes.HasH3() && avg >= s.sizes.H3*s.config.TierProximity:
		score += s.config.TierBonusH3
	}

	return score
}

// IsCandidate reports whether the line's score clears the heading gate
func (s *Scorer) IsCandidate(line model.Line) bool {
	return s.Score(line) >= s.config.HeadingGate
}

// AssignLevel decides the outline level for a line with the given
// score. Both numbering depth and size-threshold proximity contribute,
// with score gates per level; ties between numbering and size rules
// favor numbering depth at depth 3 and beyond. Returns
// HeadingLevelUnknown when no level qualifies.
func (s *Scorer) AssignLevel(line model.Line, score int) model.HeadingLevel {
	avg := line.AverageSize()
	depth := NumberingDepth(line.Text)

	h1Cap := math.Inf(1)
	if s.sizes.HasH1() {
		h1Cap = s.sizes.H1
	}
	h2Cap := math.Inf(1)
	if s.sizes.HasH2() {
		h2Cap = s.sizes.H2
	}

	switch {
	case depth == 1 &&
		s.sizes.HasH1() &&
		avg >= s.sizes.H1*s.config.TierProximity &&
		score >= s.config.H1Gate:
		return model.HeadingLevel1

	case depth == 2 ||
		(s.sizes.HasH2() &&
			avg >= s.sizes.H2*s.config.TierProximity &&
			avg < h1Cap*0.9 &&
			score >= s.config.H2Gate):
		return model.HeadingLevel2

	case depth >= 3 ||
		(s.sizes.HasH3() &&
			avg >= s.sizes.H3*s.config.TierProximity &&
			avg < h2Cap*0.9 &&
			score >= s.config.H3Gate):
		return model.HeadingLevel3
	}

	return model.HeadingLevelUnknown
}
