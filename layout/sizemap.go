package layout

import (
	"math"
	"sort"

	"github.com/docsieve/docsieve/model"
)

// SizeMap holds the body text size and the font-size thresholds derived
// for each heading level. A level size of 0 means the level is absent:
// no qualifying distinct size cluster exists for it. When present,
// sizes strictly decrease H1 > H2 > H3, and each assigned level is
// below 0.9x the previous level's size (sizes closer than that are the
// same visual tier and collapse).
type SizeMap struct {
	// Body is the dominant font size, the baseline for detecting
	// "larger than normal" heading text. 0 when the document has no
	// usable font sizes.
	Body float64

	// H1, H2, H3 are the per-level size thresholds (0 when absent)
	H1 float64
	H2 float64
	H3 float64
}

// HasH1 reports whether an H1 size tier was found
func (m SizeMap) HasH1() bool { return m.H1 > 0 }

// HasH2 reports whether an H2 size tier was found
func (m SizeMap) HasH2() bool { return m.H2 > 0 }

// HasH3 reports whether an H3 size tier was found
func (m SizeMap) HasH3() bool { return m.H3 > 0 }

// Size returns the threshold for a level and whether it is present
func (m SizeMap) Size(level model.HeadingLevel) (float64, bool) {
	switch level {
	case model.HeadingLevel1:
		return m.H1, m.HasH1()
	case model.HeadingLevel2:
		return m.H2, m.HasH2()
	case model.HeadingLevel3:
		return m.H3, m.HasH3()
	}
	return 0, false
}

// SizeMapConfig holds configuration for size map derivation
type SizeMapConfig struct {
	// MinSpanSize is the minimum span size considered at all; smaller
	// sizes are footnote or artifact noise
	// Default: 6.0
	MinSpanSize float64

	// HeadingSizeFactor is the factor over body size a distinct size
	// must exceed to be a heading size candidate
	// Default: 1.2
	HeadingSizeFactor float64

	// TierCollapseRatio is the ratio under the previous level's size a
	// candidate must stay below to count as its own tier
	// Default: 0.9
	TierCollapseRatio float64
}

// DefaultSizeMapConfig returns the standard derivation configuration
func DefaultSizeMapConfig() SizeMapConfig {
	return SizeMapConfig{
		MinSpanSize:       6.0,
		HeadingSizeFactor: 1.2,
		TierCollapseRatio: 0.9,
	}
}

// BuildSizeMap derives the body text size and heading size thresholds
// from the font-size distribution of all spans in the given lines.
//
// The body size is the median of all span sizes above MinSpanSize,
// overridden upward to the single most frequent size (rounded to one
// decimal) when that mode exceeds the median; this resists skew from a
// few large outlier headings. Candidate heading sizes are the distinct
// sizes above HeadingSizeFactor x body, sorted descending; each level
// after H1 is assigned only when it sits below TierCollapseRatio x the
// previous candidate. With no usable sizes the zero SizeMap is
// returned.
func BuildSizeMap(lines []model.Line) SizeMap {
	return BuildSizeMapWithConfig(lines, DefaultSizeMapConfig())
}

// BuildSizeMapWithConfig derives a SizeMap with custom configuration
func BuildSizeMapWithConfig(lines []model.Line, config SizeMapConfig) SizeMap {
	var sizes []float64
	for _, line := range lines {
		for _, span := range line.Spans {
			if span.Size > config.MinSpanSize {
				sizes = append(sizes, span.Size)
			}
		}
	}
	if len(sizes) == 0 {
		return SizeMap{}
	}

	body := median(sizes)
	if mode, ok := roundedMode(sizes); ok && mode > body {
		body = mode
	}

	candidates := distinctAbove(sizes, body*config.HeadingSizeFactor)

	m := SizeMap{Body: body}
	if len(candidates) >= 1 {
		m.H1 = candidates[0]
	}
	if len(candidates) >= 2 && candidates[1] < candidates[0]*config.TierCollapseRatio {
		m.H2 = candidates[1]
	}
	if len(candidates) >= 3 && candidates[2] < candidates[1]*config.TierCollapseRatio {
		m.H3 = candidates[2]
	}
	return m
}

// median returns the statistical median of the values
func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// roundedMode returns the most frequent size after rounding to one
// decimal place. Ties break toward the larger count first seen in a
// deterministic (sorted) scan.
func roundedMode(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}

	counts := make(map[float64]int)
	for _, v := range values {
		counts[math.Round(v*10)/10]++
	}

	keys := make([]float64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	best := keys[0]
	for _, k := range keys[1:] {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return best, true
}

// distinctAbove returns the distinct values above the threshold, sorted
// descending
func distinctAbove(values []float64, threshold float64) []float64 {
	seen := make(map[float64]bool)
	var result []float64
	for _, v := range values {
		if v > threshold && !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(result)))
	return result
}
