// Package sections segments page text into content sections using
// three independent strategies: header-pattern matching, blank-line
// paragraph splitting, and list-run grouping. Candidates from all
// strategies are merged, length-filtered, deduplicated by title, and
// capped, each carrying a confidence score derived from its detection
// method and content quality.
//
// This pipeline works on plain page text and is independent of the
// layout-driven outline in the layout package; the two are alternative
// views over the same document.
package sections
