package layout

import (
	"strings"

	"github.com/docsieve/docsieve/model"
)

// SectionText gathers the text belonging to outline entry i: every
// line from the heading's vertical position down to the next outline
// entry, spanning intermediate pages when the next heading sits
// further into the document. The heading line itself is excluded.
// Returns "" when the entry index is out of range.
func (asm *Assembly) SectionText(doc *model.Document, i int) string {
	if asm == nil || asm.Outline == nil || i < 0 || i >= len(asm.Outline.Entries) {
		return ""
	}

	entry := asm.Outline.Entries[i]
	startY, _ := asm.EntryPosition(i)

	endPage := doc.PageCount() + 1
	endY := 0.0
	bounded := false
	if i+1 < len(asm.Outline.Entries) {
		next := asm.Outline.Entries[i+1]
		endPage = next.Page
		endY, _ = asm.EntryPosition(i + 1)
		bounded = true
	}

	var parts []string
	for _, page := range doc.Pages {
		if page.Number < entry.Page || page.Number > endPage {
			continue
		}
		for _, line := range page.Lines {
			if page.Number == entry.Page && line.BBox.Y0 <= startY {
				continue
			}
			if bounded && page.Number == endPage && line.BBox.Y0 >= endY {
				continue
			}
			parts = append(parts, line.Text)
		}
	}
	return strings.Join(parts, " ")
}

// Sections materializes every outline entry into a Section record
// whose content is the text down to the next heading. Entries whose
// gathered content is empty still yield a section with empty content;
// downstream filtering decides what survives.
func (asm *Assembly) Sections(doc *model.Document) []model.Section {
	if asm == nil || asm.Outline == nil {
		return nil
	}
	sections := make([]model.Section, 0, len(asm.Outline.Entries))
	for i, entry := range asm.Outline.Entries {
		sections = append(sections, model.Section{
			Title:   entry.Text,
			Content: asm.SectionText(doc, i),
			Page:    entry.Page,
			Method:  model.MethodHeader,
		})
	}
	return sections
}
