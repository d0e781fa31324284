package persona

import "strings"

// Context carries the persona and task information sections are scored
// against. Built once per collection and reused read-only across all
// sections and documents.
type Context struct {
	// RoleDescription and TaskDescription are the raw free-text inputs
	RoleDescription string
	TaskDescription string

	// RoleCategory and TaskCategory are the classified coarse buckets
	RoleCategory string
	TaskCategory string

	// RoleKeywords is the fixed keyword list of the role category
	// (nil for general)
	RoleKeywords []string

	// QueryKeywords is the derived set of context keywords: every
	// word over two characters from the combined role and task text,
	// lowercased and deduplicated
	QueryKeywords []string
}

// NewContext classifies the role and task descriptions and derives the
// query keyword set. Empty descriptions classify as general; that is a
// degraded mode, not an error.
func NewContext(roleDescription, taskDescription string) *Context {
	roleCategory := ClassifyRole(roleDescription)
	taskCategory := ClassifyTask(taskDescription)

	return &Context{
		RoleDescription: roleDescription,
		TaskDescription: taskDescription,
		RoleCategory:    roleCategory,
		TaskCategory:    taskCategory,
		RoleKeywords:    RoleKeywords(roleCategory),
		QueryKeywords:   queryKeywords(roleDescription, taskDescription),
	}
}

// queryKeywords extracts the deduplicated words over two characters
// from the combined role and task text, preserving first-seen order so
// downstream scoring stays deterministic.
func queryKeywords(roleDescription, taskDescription string) []string {
	combined := strings.ToLower(roleDescription + " " + taskDescription)
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range strings.Fields(combined) {
		if len(word) <= 2 || seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
	}
	return keywords
}
