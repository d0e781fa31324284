package sections

import "github.com/docsieve/docsieve/model"

// Confidence weights for the score components. The method weight
// reflects how reliable each strategy is; the quality score rewards
// substantive content and a real title.
const (
	baseConfidence = 0.3

	headerMethodWeight    = 0.4
	paragraphMethodWeight = 0.3
	listMethodWeight      = 0.2
	unknownMethodWeight   = 0.1

	qualityLengthDivisor = 500.0
	titleBonus           = 0.2
	minTitleLength       = 3
)

// Confidence computes a section's detection confidence:
// base + method weight + content quality, clamped to 1.0.
func Confidence(method model.DetectionMethod, title, content string) float64 {
	confidence := baseConfidence + methodWeight(method) + qualityScore(title, content)
	if confidence > 1.0 {
		confidence = 1.0
	}
	return confidence
}

func methodWeight(method model.DetectionMethod) float64 {
	switch method {
	case model.MethodHeader:
		return headerMethodWeight
	case model.MethodParagraph:
		return paragraphMethodWeight
	case model.MethodList:
		return listMethodWeight
	default:
		return unknownMethodWeight
	}
}

// qualityScore rewards longer content (saturating at
// qualityLengthDivisor characters) plus a bonus for a non-trivial
// title.
func qualityScore(title, content string) float64 {
	if content == "" {
		return 0
	}
	score := float64(len(content)) / qualityLengthDivisor
	if score > 1.0 {
		score = 1.0
	}
	if len(title) > minTitleLength {
		score += titleBonus
	}
	return score
}
