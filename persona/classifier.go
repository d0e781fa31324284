package persona

import "strings"

// GeneralCategory is the fallback for descriptions matching no
// category keywords.
const GeneralCategory = "general"

// categoryKeywords pairs a category name with its keyword set. The
// tables below are ordered slices, not maps: the tie-break on multiple
// matching categories is table order, which must stay deterministic.
type categoryKeywords struct {
	category string
	keywords []string
}

// roleTaxonomy maps role descriptions to coarse role categories.
var roleTaxonomy = []categoryKeywords{
	{"researcher", []string{
		"research", "study", "analysis", "methodology", "data", "experiment",
		"hypothesis", "literature", "publication", "findings", "results", "conclusion",
	}},
	{"student", []string{
		"learn", "study", "understand", "concept", "theory", "practice",
		"example", "exercise", "exam", "assignment", "knowledge", "skill",
	}},
	{"analyst", []string{
		"analyze", "evaluate", "assess", "trend", "pattern", "metric",
		"performance", "comparison", "forecast", "strategy", "insight", "recommendation",
	}},
	{"teacher", []string{
		"teach", "explain", "instruction", "curriculum", "lesson", "education",
		"training", "guidance", "demonstration", "assessment", "learning", "development",
	}},
	{"manager", []string{
		"manage", "plan", "organize", "control", "strategy", "decision",
		"resource", "team", "process", "objective", "performance", "leadership",
	}},
	{"entrepreneur", []string{
		"business", "opportunity", "market", "innovation", "startup", "venture",
		"revenue", "growth", "investment", "competition", "strategy", "scalability",
	}},
}

// taskTaxonomy maps job-to-be-done descriptions to task categories.
var taskTaxonomy = []categoryKeywords{
	{"review", []string{"review", "summary", "overview", "evaluation", "assessment", "analysis"}},
	{"learn", []string{"learn", "understand", "study", "master", "practice", "acquire"}},
	{"analyze", []string{"analyze", "examine", "investigate", "evaluate", "assess", "compare"}},
	{"prepare", []string{"prepare", "plan", "organize", "design", "develop", "create"}},
	{"summarize", []string{"summarize", "condense", "extract", "highlight", "synthesize", "distill"}},
}

// ClassifyRole maps a free-text role description to a role category,
// or GeneralCategory when nothing matches.
func ClassifyRole(description string) string {
	return classify(description, roleTaxonomy)
}

// ClassifyTask maps a free-text task description to a task category,
// or GeneralCategory when nothing matches.
func ClassifyTask(description string) string {
	return classify(description, taskTaxonomy)
}

// RoleKeywords returns the fixed keyword list for a role category, or
// nil for the general category.
func RoleKeywords(category string) []string {
	for _, entry := range roleTaxonomy {
		if entry.category == category {
			return entry.keywords
		}
	}
	return nil
}

func classify(description string, taxonomy []categoryKeywords) string {
	normalized := strings.ToLower(description)
	for _, entry := range taxonomy {
		for _, keyword := range entry.keywords {
			if strings.Contains(normalized, keyword) {
				return entry.category
			}
		}
	}
	return GeneralCategory
}
