// Package parser extracts table grids from HTML pages, xlsx workbooks and
// content-index JSON.
package parser

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

// BlockClass is the first class of every table block element.
const BlockClass = "table"

// instrumentationPrefixes are the attribute prefixes moved from a source
// row onto its rendered table row.
var instrumentationPrefixes = []string{"data-aue-", "data-richtext-"}

// HTMLBlock pairs an extracted block with its element in the parsed page.
type HTMLBlock struct {
	Node  *html.Node
	Block models.Block
}

// HTMLDocument is a parsed page and the table blocks found in it.
type HTMLDocument struct {
	Root   *html.Node
	Blocks []HTMLBlock
}

// ParseHTML parses an HTML page and extracts every table block.
// Blocks are named "table-1", "table-2", ... in document order.
func ParseHTML(r io.Reader) (*HTMLDocument, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	doc := &HTMLDocument{Root: root}
	var walkErr error
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if walkErr != nil {
			return
		}
		if isTableBlock(n) {
			b, err := extractBlock(n)
			if err != nil {
				walkErr = err
				return
			}
			b.Name = fmt.Sprintf("table-%d", len(doc.Blocks)+1)
			doc.Blocks = append(doc.Blocks, HTMLBlock{Node: n, Block: b})
			// Table blocks do not nest.
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(root)
	if walkErr != nil {
		return nil, fmt.Errorf("extract block: %w", walkErr)
	}

	return doc, nil
}

// isTableBlock reports whether n is a div whose class list starts with "table".
func isTableBlock(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Div {
		return false
	}
	classes := classList(n)
	return len(classes) > 0 && classes[0] == BlockClass
}

// extractBlock reads the rows and cells of a block element.
// Rows are the block's element children; cells are each row's element children.
func extractBlock(n *html.Node) (models.Block, error) {
	b := models.Block{Classes: classList(n)}
	for _, row := range elementChildren(n) {
		var values, content []string
		for _, cell := range elementChildren(row) {
			values = append(values, strings.TrimSpace(textContent(cell)))
			inner, err := innerHTML(cell)
			if err != nil {
				return b, err
			}
			content = append(content, inner)
		}
		b.Grid = append(b.Grid, values)
		b.Content = append(b.Content, content)
		b.RowAttrs = append(b.RowAttrs, instrumentation(row))
	}
	return b, nil
}

func classList(n *html.Node) []string {
	for _, a := range n.Attr {
		if a.Key == "class" {
			return strings.Fields(a.Val)
		}
	}
	return nil
}

func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// textContent concatenates the text of every descendant text node.
func textContent(n *html.Node) string {
	var sb strings.Builder
	var traverse func(*html.Node)
	traverse = func(node *html.Node) {
		if node.Type == html.TextNode {
			sb.WriteString(node.Data)
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return sb.String()
}

func innerHTML(n *html.Node) (string, error) {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// instrumentation returns the editor instrumentation attributes of n.
func instrumentation(n *html.Node) []models.Attr {
	var attrs []models.Attr
	for _, a := range n.Attr {
		for _, p := range instrumentationPrefixes {
			if strings.HasPrefix(a.Key, p) {
				attrs = append(attrs, models.Attr{Name: a.Key, Value: a.Val})
				break
			}
		}
	}
	return attrs
}
