package layout

import (
	"testing"

	"github.com/docsieve/docsieve/model"
)

func groupScorer() *Scorer {
	return NewScorer(SizeMap{Body: 10, H1: 24})
}

func TestGroupMergesWrappedHeading(t *testing.T) {
	// Two bold 24pt lines close together form one wrapped heading
	first := spanLine("Understanding Layout", 1, 100, 24, model.StyleBold, true)
	second := spanLine("Driven Extraction", 1, 130, 24, model.StyleBold, true)
	body := spanLine("Some body text follows the heading on the page here.", 1, 200, 10, 0, false)
	body.BlockDensity = 8

	grouped := NewGrouper(groupScorer()).Group([]model.Line{first, second, body})

	if len(grouped) != 2 {
		t.Fatalf("Expected 2 lines after grouping, got %d", len(grouped))
	}

	merged := grouped[0]
	if merged.Text != "Understanding Layout Driven Extraction" {
		t.Errorf("Expected joined text, got %q", merged.Text)
	}
	if len(merged.Spans) != 2 {
		t.Errorf("Expected spans concatenated, got %d", len(merged.Spans))
	}
	if merged.BBox.Y0 != first.BBox.Y0 || merged.BBox.Y1 != second.BBox.Y1 {
		t.Errorf("Expected union bbox spanning both lines, got %+v", merged.BBox)
	}
	if !merged.IsCentered {
		t.Error("Expected centering inherited from the first line")
	}
}

func TestGroupBreaksOnSizeDifference(t *testing.T) {
	first := spanLine("Main Heading", 1, 100, 24, model.StyleBold, false)
	second := spanLine("Sub Heading", 1, 130, 18, model.StyleBold, false)

	grouped := NewGrouper(groupScorer()).Group([]model.Line{first, second})
	if len(grouped) != 2 {
		t.Errorf("Expected size difference to prevent merging, got %d lines", len(grouped))
	}
}

func TestGroupBreaksOnGap(t *testing.T) {
	first := spanLine("Part One", 1, 100, 24, model.StyleBold, false)
	// gap of 76pt, far over 1.5x the 24pt size
	second := spanLine("Part Two", 1, 200, 24, model.StyleBold, false)

	grouped := NewGrouper(groupScorer()).Group([]model.Line{first, second})
	if len(grouped) != 2 {
		t.Errorf("Expected wide gap to prevent merging, got %d lines", len(grouped))
	}
}

func TestGroupBreaksOnCenteringMismatch(t *testing.T) {
	first := spanLine("Centered Heading", 1, 100, 24, model.StyleBold, true)
	second := spanLine("Left Heading", 1, 130, 24, model.StyleBold, false)

	grouped := NewGrouper(groupScorer()).Group([]model.Line{first, second})
	if len(grouped) != 2 {
		t.Errorf("Expected centering mismatch to prevent merging, got %d lines", len(grouped))
	}
}

func TestGroupLeavesBodyUntouched(t *testing.T) {
	lines := []model.Line{
		spanLine("Plain paragraph text continues here across the page width evenly.", 1, 100, 10, 0, false),
		spanLine("Another plain paragraph line with nothing heading-like about it.", 1, 115, 10, 0, false),
	}
	for i := range lines {
		lines[i].BlockDensity = 8
	}

	grouped := NewGrouper(groupScorer()).Group(lines)
	if len(grouped) != 2 {
		t.Fatalf("Expected body lines passed through, got %d", len(grouped))
	}
	if grouped[0].Text != lines[0].Text || grouped[1].Text != lines[1].Text {
		t.Error("Expected body lines unchanged")
	}
}

func TestGroupDoesNotMutateInput(t *testing.T) {
	first := spanLine("Wrapped Heading Part", 1, 100, 24, model.StyleBold, false)
	second := spanLine("Continues Here", 1, 130, 24, model.StyleBold, false)
	input := []model.Line{first, second}

	NewGrouper(groupScorer()).Group(input)

	if input[0].Text != "Wrapped Heading Part" || input[1].Text != "Continues Here" {
		t.Error("Expected input lines to be unmodified")
	}
}

func TestCombineSingleLine(t *testing.T) {
	line := spanLine("Solo", 1, 100, 24, model.StyleBold, false)
	combined := combine([]model.Line{line})
	if combined.Text != "Solo" {
		t.Errorf("Expected singleton passthrough, got %q", combined.Text)
	}
}
