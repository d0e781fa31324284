package reader

import (
	"fmt"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/docsieve/docsieve/model"
)

// MarkdownReader parses a Markdown file and lays its headings and
// paragraphs out on synthetic pages.
type MarkdownReader struct {
	Path string
}

func (r *MarkdownReader) Read() (*model.Document, error) {
	src, err := os.ReadFile(r.Path)
	if err != nil {
		return nil, fmt.Errorf("read markdown: %w", err)
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	builder := newSyntheticBuilder()
	err = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := node.(type) {
		case *ast.Heading:
			builder.heading(n.Level, string(node.Text(src)))
			return ast.WalkSkipChildren, nil
		case *ast.Paragraph:
			builder.paragraph(blockText(n, src))
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			builder.paragraph(blockText(n, src))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk markdown: %w", err)
	}

	return builder.finish(model.Metadata{}), nil
}

// blockText collects the source lines spanned by a block node,
// flattened to a single string.
func blockText(node ast.Node, src []byte) string {
	var sb strings.Builder
	collectBlockText(node, src, &sb)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func collectBlockText(node ast.Node, src []byte, sb *strings.Builder) {
	if node.Type() == ast.TypeBlock {
		lines := node.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			sb.Write(line.Value(src))
			sb.WriteByte(' ')
		}
	}
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		collectBlockText(child, src, sb)
	}
}
