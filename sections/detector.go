package sections

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/docsieve/docsieve/model"
)

// headerPatterns are the ordered header shapes tested against each
// line; the first match wins.
var headerPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^([A-Z][A-Z\s&]+)$`),                    // ALL-CAPS line
	regexp.MustCompile(`^(\d+\.\s+[A-Z][A-Za-z\s]+)$`),           // "1. Title Case"
	regexp.MustCompile(`^([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*\s*:)$`), // "Title Case:"
	regexp.MustCompile(`^([A-Z][A-Z\s]+(?:\s+[A-Z][A-Z\s]+)*)$`), // long ALL-CAPS phrase
}

// allCapsLine stops header content capture when another ALL-CAPS
// heading begins.
var allCapsLine = regexp.MustCompile(`^[A-Z][A-Z\s]+$`)

var (
	numberedItem = regexp.MustCompile(`^\d+\.`)
	letteredItem = regexp.MustCompile(`^[a-z]\)`)
)

// Config holds configuration for section detection
type Config struct {
	// MinSectionLength is the minimum accepted content length in
	// characters
	// Default: 30
	MinSectionLength int

	// MaxSectionLength is the maximum accepted content length; header
	// content is truncated to it
	// Default: 2000
	MaxSectionLength int

	// MaxSections caps the accepted sections per document, earliest
	// found surviving
	// Default: 50
	MaxSections int

	// MaxContentLines stops header content capture after this many
	// lines
	// Default: 20
	MaxContentLines int

	// MaxHeaderLineLength is the longest line still considered a
	// potential header
	// Default: 100
	MaxHeaderLineLength int

	// MinListRun is the minimum consecutive list lines forming a list
	// section
	// Default: 2
	MinListRun int

	// TitleWords is how many leading words name a paragraph section
	// Default: 5
	TitleWords int
}

// DefaultConfig returns the standard detection configuration
func DefaultConfig() Config {
	return Config{
		MinSectionLength:    30,
		MaxSectionLength:    2000,
		MaxSections:         50,
		MaxContentLines:     20,
		MaxHeaderLineLength: 100,
		MinListRun:          2,
		TitleWords:          5,
	}
}

// Detector finds content sections in a document's page texts
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom configuration
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect runs all three strategies over the document and returns the
// filtered, deduplicated, confidence-scored sections. The seen-title
// set is local to each call.
func (d *Detector) Detect(doc *model.Document) []model.Section {
	if doc == nil {
		return nil
	}

	var candidates []model.Section
	for _, page := range doc.Pages {
		candidates = append(candidates, d.detectByHeaders(page)...)
	}
	for _, page := range doc.Pages {
		candidates = append(candidates, d.detectByParagraphs(page)...)
	}
	for _, page := range doc.Pages {
		candidates = append(candidates, d.detectByLists(page)...)
	}

	return d.filter(candidates)
}

// filter applies the common acceptance rule: content length within
// bounds, title not previously seen (case-insensitive), capped to
// MaxSections in first-found order.
func (d *Detector) filter(candidates []model.Section) []model.Section {
	var accepted []model.Section
	seen := make(map[string]bool)

	for _, section := range candidates {
		if len(accepted) >= d.config.MaxSections {
			break
		}
		if len(section.Content) < d.config.MinSectionLength ||
			len(section.Content) > d.config.MaxSectionLength {
			continue
		}
		key := strings.ToLower(section.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		accepted = append(accepted, section)
	}
	return accepted
}

// detectByHeaders finds header-shaped lines and captures the content
// that follows each one.
func (d *Detector) detectByHeaders(page *model.Page) []model.Section {
	var sections []model.Section
	lines := strings.Split(page.Text, "\n")

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || len(trimmed) >= d.config.MaxHeaderLineLength {
			continue
		}
		title := matchHeader(trimmed)
		if title == "" {
			continue
		}
		content := d.contentAfterHeader(lines, line)
		if content == "" {
			continue
		}
		if len(content) > d.config.MaxSectionLength {
			content = truncateRunes(content, d.config.MaxSectionLength)
		}
		sections = append(sections, d.newSection(title, content, page.Number, model.MethodHeader))
	}
	return sections
}

// matchHeader tests a line against the ordered header patterns and
// returns the captured title, colon stripped
func matchHeader(line string) string {
	for _, pattern := range headerPatterns {
		if m := pattern.FindStringSubmatch(line); m != nil {
			return strings.TrimRight(strings.TrimSpace(m[1]), ":")
		}
	}
	return ""
}

// contentAfterHeader captures lines after the header until a blank
// line follows captured content, the capture exceeds MaxContentLines,
// or another ALL-CAPS line begins.
func (d *Detector) contentAfterHeader(lines []string, header string) string {
	var content []string
	found := false

	for _, line := range lines {
		if strings.TrimSpace(line) == strings.TrimSpace(header) && !found {
			found = true
			continue
		}
		if !found {
			continue
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(content) > 0 {
				break
			}
			continue
		}
		if len(content) > d.config.MaxContentLines {
			break
		}
		if allCapsLine.MatchString(trimmed) {
			break
		}
		content = append(content, line)
	}

	joined := strings.TrimSpace(strings.Join(content, "\n"))
	if len(joined) < d.config.MinSectionLength {
		return ""
	}
	return joined
}

// detectByParagraphs splits the page on blank-line boundaries; each
// in-bounds paragraph becomes a candidate titled by its leading words.
func (d *Detector) detectByParagraphs(page *model.Page) []model.Section {
	var sections []model.Section
	for _, paragraph := range strings.Split(page.Text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if len(paragraph) < d.config.MinSectionLength || len(paragraph) > d.config.MaxSectionLength {
			continue
		}
		sections = append(sections, d.newSection(
			d.paragraphTitle(paragraph), paragraph, page.Number, model.MethodParagraph))
	}
	return sections
}

// paragraphTitle names a paragraph by its first few words
func (d *Detector) paragraphTitle(paragraph string) string {
	words := strings.Fields(paragraph)
	if len(words) > d.config.TitleWords {
		words = words[:d.config.TitleWords]
	}
	return strings.Join(words, " ") + "..."
}

// detectByLists groups runs of consecutive list items (with their
// continuation lines) into list sections.
func (d *Detector) detectByLists(page *model.Page) []model.Section {
	var sections []model.Section
	lines := strings.Split(page.Text, "\n")

	i := 0
	for i < len(lines) {
		if !isListItem(lines[i]) {
			i++
			continue
		}
		start := i
		var content []string
		for i < len(lines) && (isListItem(lines[i]) || isContinuation(lines[i])) {
			content = append(content, strings.TrimSpace(lines[i]))
			i++
		}
		if i-start < d.config.MinListRun {
			continue
		}
		sections = append(sections, d.newSection(
			fmt.Sprintf("List Section %d", start+1),
			strings.Join(content, "\n"),
			page.Number,
			model.MethodList))
	}
	return sections
}

// isListItem reports whether a line starts a list entry: a bullet or
// dash glyph, "digit." or "letter)"
func isListItem(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") ||
		numberedItem.MatchString(line) || letteredItem.MatchString(line)
}

// isContinuation reports whether a non-empty line extends the previous
// list item rather than starting a new one
func isContinuation(line string) bool {
	line = strings.TrimSpace(line)
	return len(line) > 0 && !strings.HasPrefix(line, "•") &&
		!strings.HasPrefix(line, "-") && !numberedItem.MatchString(line)
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

// newSection builds a candidate with its confidence computed
func (d *Detector) newSection(title, content string, page int, method model.DetectionMethod) model.Section {
	return model.Section{
		Title:      title,
		Content:    content,
		Page:       page,
		Method:     method,
		Confidence: Confidence(method, title, content),
	}
}
