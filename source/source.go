// Package source builds table content from external formats: GFM markdown
// tables, HTML tables and CSV. Each adapter returns the column set and the
// row-major content matrix; missing trailing cells become empty strings.
package source

import (
	"errors"

	"github.com/gridpdf/gridpdf/table"
)

// ErrNoTable means the input contained no table to extract.
var ErrNoTable = errors.New("source: no table found in input")

// spreadColumns distributes totalWidth evenly over the named columns.
func spreadColumns(names []string, totalWidth float64) []table.Column {
	cols := make([]table.Column, len(names))
	w := totalWidth / float64(len(names))
	for i, name := range names {
		cols[i] = table.Column{Name: name, Width: w}
	}
	return cols
}

// normalizeRow pads or truncates cells to the column count.
func normalizeRow(cells []string, columns int) []string {
	row := make([]string, columns)
	copy(row, cells)
	return row
}
