package layout

import (
	"strings"

	"github.com/docsieve/docsieve/model"
)

// GroupConfig holds configuration for multi-line heading grouping
type GroupConfig struct {
	// SizeTolerance is the maximum average-size difference in points
	// between two lines that can merge
	// Default: 1.0
	SizeTolerance float64

	// GapFactor is the size multiple the vertical gap between two
	// lines must stay under for them to merge
	// Default: 1.5
	GapFactor float64
}

// DefaultGroupConfig returns the standard grouping configuration
func DefaultGroupConfig() GroupConfig {
	return GroupConfig{
		SizeTolerance: 1.0,
		GapFactor:     1.5,
	}
}

// Grouper merges adjacent lines that together form one wrapped heading
// or title. Input lines are never mutated; merged groups become new
// derived lines.
type Grouper struct {
	scorer *Scorer
	config GroupConfig
}

// NewGrouper creates a grouper using the given scorer
func NewGrouper(scorer *Scorer) *Grouper {
	return NewGrouperWithConfig(scorer, DefaultGroupConfig())
}

// NewGrouperWithConfig creates a grouper with custom configuration
func NewGrouperWithConfig(scorer *Scorer, config GroupConfig) *Grouper {
	return &Grouper{scorer: scorer, config: config}
}

// Group walks lines in document order and merges runs of
// heading-scored lines that share style and sit close together. A line
// joins the open group when the group's tail scored at or above the
// heading gate, the two average sizes differ by under the size
// tolerance, both lines share the centering flag, and the vertical gap
// is under GapFactor x the joining line's average size. When the chain
// breaks, the open group is flushed as one combined line.
func (g *Grouper) Group(lines []model.Line) []model.Line {
	grouped := make([]model.Line, 0, len(lines))
	var group []model.Line
	var prev *model.Line

	for i := range lines {
		line := lines[i]
		avg := line.AverageSize()
		score := g.scorer.Score(line)

		if prev != nil && score >= g.scorer.config.HeadingGate && len(group) > 0 {
			gap := line.BBox.Y0 - prev.BBox.Y1
			sameStyle := abs(avg-prev.AverageSize()) < g.config.SizeTolerance &&
				line.IsCentered == prev.IsCentered
			if sameStyle && gap < avg*g.config.GapFactor {
				group = append(group, line)
				prev = &lines[i]
				continue
			}
		}

		if len(group) > 0 {
			grouped = append(grouped, combine(group))
			group = nil
		}

		if score >= g.scorer.config.HeadingGate {
			group = []model.Line{line}
		} else {
			grouped = append(grouped, line)
		}
		prev = &lines[i]
	}

	if len(group) > 0 {
		grouped = append(grouped, combine(group))
	}

	return grouped
}

// combine builds one derived line from a group: concatenated text,
// union bounding box, concatenated spans, and centering, spacing, and
// density inherited from the first line.
func combine(group []model.Line) model.Line {
	if len(group) == 1 {
		return group[0]
	}

	first := group[0]
	last := group[len(group)-1]

	texts := make([]string, len(group))
	bbox := model.BBox{X0: first.BBox.X0, Y0: first.BBox.Y0, X1: first.BBox.X1, Y1: last.BBox.Y1}
	var spans []model.Span
	for i, l := range group {
		texts[i] = l.Text
		if l.BBox.X0 < bbox.X0 {
			bbox.X0 = l.BBox.X0
		}
		if l.BBox.X1 > bbox.X1 {
			bbox.X1 = l.BBox.X1
		}
		spans = append(spans, l.Spans...)
	}

	return model.Line{
		Text:         strings.Join(texts, " "),
		Page:         first.Page,
		BBox:         bbox,
		Spans:        spans,
		IsCentered:   first.IsCentered,
		SpacingAbove: first.SpacingAbove,
		BlockDensity: first.BlockDensity,
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
