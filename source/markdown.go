package source

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/gridpdf/gridpdf/table"
)

// Markdown extracts the first GFM table from src. Column widths are spread
// evenly over totalWidth.
func Markdown(src []byte, totalWidth float64) ([]table.Column, [][]string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	doc := md.Parser().Parse(text.NewReader(src))

	var tbl *east.Table
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if t, ok := n.(*east.Table); ok {
			tbl = t
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	if tbl == nil {
		return nil, nil, ErrNoTable
	}

	var header []string
	var rows [][]string
	for child := tbl.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *east.TableHeader:
			header = cellTexts(n, src)
		case *east.TableRow:
			rows = append(rows, cellTexts(n, src))
		}
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

func cellTexts(row ast.Node, src []byte) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*east.TableCell); ok {
			cells = append(cells, string(cell.Text(src)))
		}
	}
	return cells
}
