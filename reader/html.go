package reader

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/docsieve/docsieve/model"
)

// HTMLReader parses an HTML file and lays its headings and text
// content out on synthetic pages. Boilerplate regions (script, style,
// nav, header, footer) are skipped.
type HTMLReader struct {
	Path string
}

var skipHTMLTags = map[string]bool{
	"script": true,
	"style":  true,
	"nav":    true,
	"header": true,
	"footer": true,
	"aside":  true,
}

var htmlHeadingLevels = map[string]int{
	"h1": 1, "h2": 2, "h3": 3, "h4": 4, "h5": 5, "h6": 6,
}

var htmlBlockTags = map[string]bool{
	"p": true, "li": true, "td": true, "blockquote": true, "pre": true,
}

func (r *HTMLReader) Read() (*model.Document, error) {
	f, err := os.Open(r.Path)
	if err != nil {
		return nil, fmt.Errorf("open html: %w", err)
	}
	defer f.Close()

	root, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	builder := newSyntheticBuilder()
	meta := model.Metadata{}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipHTMLTags[n.Data] {
				return
			}
			if n.Data == "title" {
				meta.Title = strings.TrimSpace(nodeText(n))
				return
			}
			if level, ok := htmlHeadingLevels[n.Data]; ok {
				builder.heading(level, nodeText(n))
				return
			}
			if htmlBlockTags[n.Data] {
				builder.paragraph(nodeText(n))
				return
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return builder.finish(meta), nil
}

// nodeText flattens the text content of a node and its descendants.
func nodeText(n *html.Node) string {
	var sb strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			sb.WriteByte(' ')
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			collect(child)
		}
	}
	collect(n)
	return strings.Join(strings.Fields(sb.String()), " ")
}
