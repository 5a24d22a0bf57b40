// Package output renders reconciled tables as HTML, JSON and xlsx.
package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

// TableNode builds a detached <table> element for t. Header rows go into
// thead and body rows into tbody; both sections are always present.
func TableNode(t models.Table) (*html.Node, error) {
	table := element(atom.Table)
	thead := element(atom.Thead)
	tbody := element(atom.Tbody)

	for _, row := range t.Rows {
		tr := element(atom.Tr)
		for _, a := range row.Attrs {
			tr.Attr = append(tr.Attr, html.Attribute{Key: a.Name, Val: a.Value})
		}

		for _, cell := range row.Cells {
			td, err := cellNode(cell)
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", cell.Row, cell.Col, err)
			}
			tr.AppendChild(td)
		}

		if row.Header {
			thead.AppendChild(tr)
		} else {
			tbody.AppendChild(tr)
		}
	}

	table.AppendChild(thead)
	table.AppendChild(tbody)
	return table, nil
}

func cellNode(cell models.Cell) (*html.Node, error) {
	a := atom.Td
	if cell.Header {
		a = atom.Th
	}
	n := element(a)
	if cell.Scope != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "scope", Val: cell.Scope})
	}
	if cell.Rowspan > 1 {
		n.Attr = append(n.Attr, html.Attribute{Key: "rowspan", Val: strconv.Itoa(cell.Rowspan)})
	}
	if cell.Colspan > 1 {
		n.Attr = append(n.Attr, html.Attribute{Key: "colspan", Val: strconv.Itoa(cell.Colspan)})
	}

	if cell.HTML == "" {
		if cell.Value != "" {
			n.AppendChild(&html.Node{Type: html.TextNode, Data: cell.Value})
		}
		return n, nil
	}

	children, err := html.ParseFragment(strings.NewReader(cell.HTML), element(a))
	if err != nil {
		return nil, err
	}
	for _, c := range children {
		if c.Parent != nil {
			c.Parent.RemoveChild(c)
		}
		n.AppendChild(c)
	}
	return n, nil
}

// RenderHTML writes every table as HTML, one per line.
func RenderHTML(w io.Writer, tables []models.Table) error {
	for _, t := range tables {
		n, err := TableNode(t)
		if err != nil {
			return fmt.Errorf("table %q: %w", t.Name, err)
		}
		if err := html.Render(w, n); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
