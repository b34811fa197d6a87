package source

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gridpdf/gridpdf/table"
)

// HTML extracts the first <table> element from r. Header cells come from
// <th> elements, or from the first row when the table has none.
func HTML(r io.Reader, totalWidth float64) ([]table.Column, [][]string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, err
	}
	tbl := findNode(doc, atom.Table)
	if tbl == nil {
		return nil, nil, ErrNoTable
	}

	var header []string
	var rows [][]string
	walkRows(tbl, func(tr *html.Node) {
		var cells []string
		isHeader := false
		for c := tr.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			switch c.DataAtom {
			case atom.Th:
				isHeader = true
				cells = append(cells, extractText(c))
			case atom.Td:
				cells = append(cells, extractText(c))
			}
		}
		if isHeader && header == nil {
			header = cells
			return
		}
		rows = append(rows, cells)
	})
	if header == nil {
		if len(rows) == 0 {
			return nil, nil, ErrNoTable
		}
		header = rows[0]
		rows = rows[1:]
	}
	if len(header) == 0 {
		return nil, nil, ErrNoTable
	}

	content := make([][]string, len(rows))
	for i, r := range rows {
		content[i] = normalizeRow(r, len(header))
	}
	return spreadColumns(header, totalWidth), content, nil
}

func findNode(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, a); found != nil {
			return found
		}
	}
	return nil
}

func walkRows(n *html.Node, fn func(tr *html.Node)) {
	if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
		fn(n)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkRows(c, fn)
	}
}

func extractText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}
