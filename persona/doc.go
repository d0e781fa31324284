// Package persona classifies free-text role and task descriptions into
// fixed coarse categories and builds the read-only context the ranker
// scores sections against.
//
// The category tables are an ordered, hard-coded taxonomy evaluated by
// first-match substring test: the first category with any keyword hit
// wins, and an unmatched or missing description falls back to the
// general category rather than failing.
package persona
