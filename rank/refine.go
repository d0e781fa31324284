package rank

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// RefineConfig holds configuration for refined-text extraction
type RefineConfig struct {
	// MaxSentences is the number of top-scoring sentences kept
	// Default: 5
	MaxSentences int

	// MaxChars truncates the assembled refined text
	// Default: 1000
	MaxChars int
}

// DefaultRefineConfig returns the standard refinement configuration
func DefaultRefineConfig() RefineConfig {
	return RefineConfig{
		MaxSentences: 5,
		MaxChars:     1000,
	}
}

// RefineText condenses content to the sentences most relevant to the
// context keywords: each sentence is scored by keyword hits, the top
// scoring sentences with at least one hit are kept in score order, and
// the result is truncated to the configured length. Content with no
// keyword hits refines to "".
func RefineText(content string, keywords []string, config RefineConfig) string {
	sentences := splitSentences(content)
	if len(sentences) == 0 {
		return ""
	}

	type scored struct {
		sentence string
		hits     int
	}
	scoredSentences := make([]scored, 0, len(sentences))
	for _, sentence := range sentences {
		normalized := strings.ToLower(sentence)
		hits := 0
		for _, keyword := range keywords {
			if strings.Contains(normalized, keyword) {
				hits++
			}
		}
		scoredSentences = append(scoredSentences, scored{sentence, hits})
	}

	sort.SliceStable(scoredSentences, func(i, j int) bool {
		return scoredSentences[i].hits > scoredSentences[j].hits
	})

	var kept []string
	for _, s := range scoredSentences {
		if s.hits == 0 || len(kept) >= config.MaxSentences {
			break
		}
		kept = append(kept, s.sentence)
	}

	return truncateRunes(strings.Join(kept, " "), config.MaxChars)
}

// truncateRunes cuts s to at most max bytes without splitting a rune
func truncateRunes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// splitSentences splits text into sentences on terminal punctuation,
// skipping likely abbreviations (a following lowercase letter, or a
// single capital before the period).
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if r != '.' && r != '!' && r != '?' {
			continue
		}
		if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
			continue
		}
		if str := current.String(); len(str) >= 2 {
			prev := rune(str[len(str)-2])
			if unicode.IsUpper(prev) && (len(str) < 3 || unicode.IsSpace(rune(str[len(str)-3]))) {
				continue
			}
		}

		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	if remaining := strings.TrimSpace(current.String()); remaining != "" {
		sentences = append(sentences, remaining)
	}
	return sentences
}
