package model

// DetectionMethod identifies which strategy found a section
type DetectionMethod int

const (
	MethodUnknown DetectionMethod = iota
	MethodHeader                  // Matched a header pattern with trailing content
	MethodParagraph               // Blank-line delimited paragraph
	MethodList                    // Run of bullet or numbered list items
)

// String returns a human-readable representation of the method
func (m DetectionMethod) String() string {
	switch m {
	case MethodHeader:
		return "header"
	case MethodParagraph:
		return "paragraph"
	case MethodList:
		return "list"
	default:
		return "unknown"
	}
}

// Section is a content segment found by the section detector. Sections
// are created once per document, deduplicated by lowercased title, and
// never mutated afterward; ranking produces enriched copies.
type Section struct {
	// Title is the section title (matched header text, generated
	// paragraph prefix, or list label)
	Title string `json:"section_title"`

	// Content is the section body, length-bounded by the detector
	Content string `json:"content"`

	// Page is the 1-based page number the section starts on
	Page int `json:"page_number"`

	// Method is the detection strategy that produced this section
	Method DetectionMethod `json:"-"`

	// Confidence is the detection confidence in [0,1]
	Confidence float64 `json:"confidence"`
}

// ImportanceLevel buckets a ranked section's relevance
type ImportanceLevel int

const (
	ImportanceLow ImportanceLevel = iota
	ImportanceMedium
	ImportanceHigh
)

// String returns the persisted form of the importance level
func (l ImportanceLevel) String() string {
	switch l {
	case ImportanceHigh:
		return "high"
	case ImportanceMedium:
		return "medium"
	default:
		return "low"
	}
}

// RankedSection is a Section enriched with persona scoring fields.
// It is owned by the ranking pass; the underlying Section is copied,
// never modified in place.
type RankedSection struct {
	Section

	// Document is the source document name, set when ranking spans
	// a collection
	Document string `json:"document,omitempty"`

	// Position is the section's index in pre-ranking order
	Position int `json:"-"`

	// RelevanceScore is the persona-relevance score in [0,1]
	// (role keyword density blended with task keyword overlap)
	RelevanceScore float64 `json:"relevance_score"`

	// FinalScore is the context TF-IDF composite score in [0,1]
	// used for ordering
	FinalScore float64 `json:"final_score"`

	// Importance buckets the relevance evidence into high/medium/low
	Importance ImportanceLevel `json:"-"`

	// Observations are role-specific free-text flags raised by the
	// section content
	Observations []string `json:"role_observations,omitempty"`

	// Concepts are the matched role keywords, capped at five
	Concepts []string `json:"relevant_concepts,omitempty"`
}
