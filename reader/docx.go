package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/fumiama/go-docx"

	"github.com/docsieve/docsieve/model"
)

// DOCXReader parses a Word document and lays its styled headings and
// body paragraphs out on synthetic pages.
type DOCXReader struct {
	Path string
}

func (r *DOCXReader) Read() (*model.Document, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat docx: %w", err)
	}

	doc, err := docx.Parse(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	builder := newSyntheticBuilder()
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		text := docxParagraphText(para)
		if text == "" {
			continue
		}
		if level := docxHeadingLevel(para); level > 0 {
			builder.heading(level, text)
		} else {
			builder.paragraph(text)
		}
	}

	return builder.finish(model.Metadata{}), nil
}

// docxHeadingLevel maps a paragraph's style to a heading depth, or 0
// for body text. Word names the styles "Heading1" or "heading 1"
// depending on the producer.
func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	for level := 1; level <= 6; level++ {
		if style == fmt.Sprintf("heading%d", level) {
			return level
		}
	}
	return 0
}

func docxParagraphText(para *docx.Paragraph) string {
	var sb strings.Builder
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		for _, rc := range run.Children {
			if t, ok := rc.(*docx.Text); ok {
				sb.WriteString(t.Text)
			}
		}
	}
	return strings.TrimSpace(sb.String())
}
