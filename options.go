package docsieve

import (
	"github.com/docsieve/docsieve/rank"
)

// Options holds configuration for extraction and ranking.
type Options struct {
	// Persona and task descriptions for ranking
	role string
	task string

	// maxRanked caps the ranked sections returned; 0 means no cap
	maxRanked int

	// refine controls refined-text extraction
	refine rank.RefineConfig
}

// defaultOptions returns the default extraction options.
func defaultOptions() Options {
	return Options{
		role:      "",
		task:      "",
		maxRanked: 0,
		refine:    rank.DefaultRefineConfig(),
	}
}

// clone creates a copy of Options.
func (o Options) clone() Options {
	return Options{
		role:      o.role,
		task:      o.task,
		maxRanked: o.maxRanked,
		refine:    o.refine,
	}
}
