package rank

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/docsieve/docsieve/model"
	"github.com/docsieve/docsieve/persona"
)

// longWord extracts the words of four or more characters used for task
// keyword overlap.
var longWord = regexp.MustCompile(`\b\w{4,}\b`)

// Weights of the two scoring formulas. These are hand-tuned contract
// values, not free parameters.
const (
	roleWeight = 0.6
	taskWeight = 0.4

	tfidfWeight    = 0.6
	lengthWeight   = 0.3
	positionWeight = 0.1

	// defaultTFIDF applies when the context has no usable keywords
	defaultTFIDF = 0.5

	// maxConcepts caps the matched role keywords reported per section
	maxConcepts = 5
)

// Ranker scores sections against a persona context and orders them by
// final score. A Ranker is stateless and safe for concurrent use.
type Ranker struct{}

// NewRanker creates a ranker
func NewRanker() *Ranker {
	return &Ranker{}
}

// Rank scores every section and returns new enriched copies sorted by
// final score descending. The sort is stable: equal scores preserve
// the input order. Input sections are never modified.
func (r *Ranker) Rank(sections []model.Section, ctx *persona.Context) []model.RankedSection {
	if len(sections) == 0 {
		return nil
	}
	ranked := make([]model.RankedSection, 0, len(sections))
	for i, section := range sections {
		ranked = append(ranked, r.Score(section, ctx, i))
	}
	Sort(ranked)
	return ranked
}

// Sort orders ranked sections by final score descending, stably
func Sort(ranked []model.RankedSection) {
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})
}

// Score computes every scoring field for one section at the given
// pre-ranking position, returning an enriched copy.
func (r *Ranker) Score(section model.Section, ctx *persona.Context, position int) model.RankedSection {
	relevance := r.PersonaRelevance(section.Content, ctx)
	observations := Observations(section.Content, ctx.RoleCategory, ctx.TaskCategory)
	concepts := Concepts(section.Content, ctx.RoleKeywords)

	return model.RankedSection{
		Section:        section,
		Position:       position,
		RelevanceScore: relevance,
		FinalScore:     r.FinalScore(section.Content, ctx, position),
		Importance:     importance(relevance, observations, concepts),
		Observations:   observations,
		Concepts:       concepts,
	}
}

// PersonaRelevance blends role keyword density with task keyword
// overlap: 0.6 x roleScore + 0.4 x taskScore, clamped to [0,1].
func (r *Ranker) PersonaRelevance(content string, ctx *persona.Context) float64 {
	roleScore := r.roleScore(content, ctx.RoleKeywords)
	taskScore := r.taskScore(content, ctx.TaskDescription)
	return clamp(roleWeight*roleScore + taskWeight*taskScore)
}

// roleScore is the fraction of the role category's keywords present in
// the content, clamped; 0 when the category is general (no keywords).
func (r *Ranker) roleScore(content string, keywords []string) float64 {
	if len(keywords) == 0 {
		return 0
	}
	normalized := strings.ToLower(content)
	matches := 0
	for _, keyword := range keywords {
		if strings.Contains(normalized, keyword) {
			matches++
		}
	}
	return clamp(float64(matches) / float64(len(keywords)))
}

// taskScore is the overlap between the task description's long words
// and the content's long words, as a fraction of the task words;
// 0 when the task has no long words.
func (r *Ranker) taskScore(content, taskDescription string) float64 {
	taskWords := wordSet(taskDescription)
	if len(taskWords) == 0 {
		return 0
	}
	contentWords := wordSet(content)
	matched := 0
	for word := range taskWords {
		if contentWords[word] {
			matched++
		}
	}
	return clamp(float64(matched) / float64(len(taskWords)))
}

// FinalScore is the ordering score: 0.6 x context TF-IDF + 0.3 x
// length weight + 0.1 x position weight, clamped to [0,1]. Empty
// content scores 0.
func (r *Ranker) FinalScore(content string, ctx *persona.Context, position int) float64 {
	if content == "" {
		return 0
	}
	score := tfidfWeight*r.TFIDFScore(content, ctx) +
		lengthWeight*ContentLengthWeight(content) +
		positionWeight*PositionWeight(position)
	return clamp(score)
}

// TFIDFScore sums, over every context keyword present in the content,
// term frequency x log(1 + 1/count), clamped to [0,1]. With no
// context keywords it returns the neutral default 0.5.
func (r *Ranker) TFIDFScore(content string, ctx *persona.Context) float64 {
	if len(ctx.QueryKeywords) == 0 {
		return defaultTFIDF
	}

	words := strings.Fields(strings.ToLower(content))
	if len(words) == 0 {
		return 0
	}
	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	total := 0.0
	for _, keyword := range ctx.QueryKeywords {
		count := counts[keyword]
		if count == 0 {
			continue
		}
		tf := float64(count) / float64(len(words))
		idf := math.Log(1 + 1/float64(count))
		total += tf * idf
	}
	return clamp(total)
}

// ContentLengthWeight rewards medium-length sections and penalizes
// both snippets and walls of text.
func ContentLengthWeight(content string) float64 {
	wordCount := len(strings.Fields(content))
	switch {
	case wordCount < 10:
		return 0.3
	case wordCount < 50:
		return 0.8
	case wordCount < 200:
		return 1.0
	case wordCount < 500:
		return 0.7
	default:
		return 0.4
	}
}

// PositionWeight weighs earlier sections higher, reflecting typical
// front-loading of important content.
func PositionWeight(position int) float64 {
	switch {
	case position < 3:
		return 1.0
	case position < 10:
		return 0.8
	default:
		return 0.6
	}
}

// LevelWeight scales outline-derived section scores by heading level:
// top-level sections carry the most weight.
func LevelWeight(level model.HeadingLevel) float64 {
	switch level {
	case model.HeadingLevel1:
		return 1.0
	case model.HeadingLevel2:
		return 0.8
	default:
		return 0.6
	}
}

// importance buckets the relevance evidence: high needs strong
// relevance and at least two observations; medium needs moderate
// relevance plus an observation or several matched concepts.
func importance(relevance float64, observations, concepts []string) model.ImportanceLevel {
	switch {
	case relevance >= 0.6 && len(observations) >= 2:
		return model.ImportanceHigh
	case relevance >= 0.3 && (len(observations) >= 1 || len(concepts) >= 3):
		return model.ImportanceMedium
	default:
		return model.ImportanceLow
	}
}

// Concepts returns the role keywords present in the content, capped at
// five.
func Concepts(content string, roleKeywords []string) []string {
	normalized := strings.ToLower(content)
	var concepts []string
	for _, keyword := range roleKeywords {
		if strings.Contains(normalized, keyword) {
			concepts = append(concepts, keyword)
			if len(concepts) == maxConcepts {
				break
			}
		}
	}
	return concepts
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, word := range longWord.FindAllString(strings.ToLower(text), -1) {
		set[word] = true
	}
	return set
}

func clamp(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}
