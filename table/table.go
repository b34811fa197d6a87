// Package table holds the logical description of a tabular report: column
// geometry, row content and page styling. The description is immutable once
// rendering begins and lives only for a single document-generation call.
package table

import (
	"fmt"
	"math"

	"github.com/gridpdf/gridpdf/ir/semantic"
)

// Column describes one column: display name and width in document-space
// units (the same unit as the page geometry).
type Column struct {
	Name  string
	Width float64
}

// PageSize is the physical page extent in document-space units.
type PageSize struct {
	Width  float64
	Height float64
}

// Table is the full logical table. Content is row-major; an empty cell
// renders as empty text. Width is by convention the sum of column widths.
type Table struct {
	Columns    []Column
	Content    [][]string
	RowHeight  float64
	Height     float64
	Width      float64
	Margin     float64
	CellMargin float64
	PageSize   PageSize
	Landscape  bool
	Font       *semantic.Font
	FontSize   float64
}

// NumberOfColumns returns the column count.
func (t *Table) NumberOfColumns() int { return len(t.Columns) }

// NumberOfRows returns the content row count.
func (t *Table) NumberOfRows() int { return len(t.Content) }

// ContractError reports an input that violates the table contract. It is
// raised before any page is drawn.
type ContractError struct {
	Reason string
}

func (e *ContractError) Error() string { return "table: " + e.Reason }

func contractf(format string, args ...interface{}) *ContractError {
	return &ContractError{Reason: fmt.Sprintf(format, args...)}
}

const widthEpsilon = 1e-6

// Validate checks the table invariants eagerly so rendering can fail fast
// instead of drawing a partial document.
func (t *Table) Validate() error {
	if len(t.Columns) == 0 {
		return contractf("no columns")
	}
	sum := 0.0
	for i, c := range t.Columns {
		if c.Width <= 0 {
			return contractf("column %d (%q) has non-positive width %g", i, c.Name, c.Width)
		}
		sum += c.Width
	}
	if math.Abs(sum-t.Width) > widthEpsilon {
		return contractf("declared width %g does not match column width sum %g", t.Width, sum)
	}
	for i, row := range t.Content {
		if len(row) != len(t.Columns) {
			return contractf("row %d has %d cells, want %d", i, len(row), len(t.Columns))
		}
	}
	if t.RowHeight <= 0 {
		return contractf("row height %g must be positive", t.RowHeight)
	}
	if t.Height <= 0 {
		return contractf("drawing height %g must be positive", t.Height)
	}
	if t.Font == nil {
		return contractf("no font set")
	}
	if t.FontSize <= 0 {
		return contractf("font size %g must be positive", t.FontSize)
	}
	return nil
}
