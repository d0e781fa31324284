package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// HeadingLevel represents the hierarchical level of an outline heading
type HeadingLevel int

const (
	HeadingLevelUnknown HeadingLevel = iota
	HeadingLevel1                    // H1 - Main section
	HeadingLevel2                    // H2 - Subsection
	HeadingLevel3                    // H3 - Sub-subsection
)

// String returns the persisted form of the heading level ("H1".."H3")
func (l HeadingLevel) String() string {
	switch l {
	case HeadingLevel1:
		return "H1"
	case HeadingLevel2:
		return "H2"
	case HeadingLevel3:
		return "H3"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the level as its string form
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its string form
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch strings.ToUpper(s) {
	case "H1":
		*l = HeadingLevel1
	case "H2":
		*l = HeadingLevel2
	case "H3":
		*l = HeadingLevel3
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// OutlineEntry is a single leveled heading in a document outline
type OutlineEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// Key returns the deduplication identity of the entry: lowercased
// trimmed text plus page and level. No two entries in an outline
// share the same key.
func (e OutlineEntry) Key() string {
	return fmt.Sprintf("%s\x00%d\x00%s", strings.ToLower(strings.TrimSpace(e.Text)), e.Page, e.Level)
}

// NoTitleFound is the placeholder title used when neither layout
// analysis nor document metadata yields a usable title.
const NoTitleFound = "No Title Found"

// Outline is the structured result of heading extraction: a document
// title plus an ordered sequence of leveled headings. Entries are
// ordered by (page, vertical position).
type Outline struct {
	Title   string         `json:"title"`
	Entries []OutlineEntry `json:"outline"`
}

// EntryCount returns the number of outline entries
func (o *Outline) EntryCount() int {
	if o == nil {
		return 0
	}
	return len(o.Entries)
}

// EntriesAtLevel returns all entries with the given level
func (o *Outline) EntriesAtLevel(level HeadingLevel) []OutlineEntry {
	if o == nil {
		return nil
	}
	var result []OutlineEntry
	for _, e := range o.Entries {
		if e.Level == level {
			result = append(result, e)
		}
	}
	return result
}

// HasTitle reports whether a real title was resolved, as opposed to
// the placeholder
func (o *Outline) HasTitle() bool {
	return o != nil && o.Title != "" && o.Title != NoTitleFound
}
