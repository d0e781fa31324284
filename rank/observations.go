package rank

import "strings"

// observationRule raises a flag when any of its cue words appears in
// the section content.
type observationRule struct {
	cues []string
	flag string
}

// roleObservations holds the per-role evidence rules. Other role
// categories raise no role observations.
var roleObservations = map[string][]observationRule{
	"researcher": {
		{[]string{"methodology", "method", "approach"}, "Research methodology identified"},
		{[]string{"data", "dataset", "sample"}, "Data sources and datasets mentioned"},
		{[]string{"result", "finding", "conclusion"}, "Research findings and results presented"},
	},
	"student": {
		{[]string{"concept", "principle", "theory"}, "Key concepts for learning identified"},
		{[]string{"example", "illustration", "case"}, "Examples and illustrations available"},
		{[]string{"exercise", "problem", "practice"}, "Practice materials and exercises found"},
	},
	"analyst": {
		{[]string{"trend", "pattern", "analysis"}, "Analytical insights and trends identified"},
		{[]string{"metric", "kpi", "performance"}, "Performance metrics and KPIs mentioned"},
		{[]string{"forecast", "prediction", "projection"}, "Forecasting and predictive information"},
	},
}

// taskObservations holds the per-task evidence rules.
var taskObservations = map[string][]observationRule{
	"review": {
		{[]string{"summary", "overview", "abstract"}, "Summary content suitable for review"},
	},
	"analyze": {
		{[]string{"comparison", "contrast", "versus"}, "Comparative analysis opportunities"},
	},
}

// Observations returns the role- and task-specific flags raised by the
// section content. Empty content raises none.
func Observations(content, roleCategory, taskCategory string) []string {
	normalized := strings.ToLower(content)
	var flags []string
	for _, rule := range roleObservations[roleCategory] {
		if anyCue(normalized, rule.cues) {
			flags = append(flags, rule.flag)
		}
	}
	for _, rule := range taskObservations[taskCategory] {
		if anyCue(normalized, rule.cues) {
			flags = append(flags, rule.flag)
		}
	}
	return flags
}

func anyCue(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}
