package scripting

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gridpdf/gridpdf/table"
)

type rowProxy struct {
	cols  []table.Column
	cells []string
	index int
}

func (r rowProxy) Cell(column string) string {
	for i, c := range r.cols {
		if c.Name == column && i < len(r.cells) {
			return r.cells[i]
		}
	}
	return ""
}

func (r rowProxy) Index() int { return r.index }

func (r rowProxy) Columns() []string {
	names := make([]string, len(r.cols))
	for i, c := range r.cols {
		names[i] = c.Name
	}
	return names
}

// AppendColumn evaluates expr once per content row and appends the result as
// a new column. The input slices are not modified. A script result of
// null/undefined becomes an empty cell.
func AppendColumn(ctx context.Context, eng Engine, cols []table.Column, content [][]string, col table.Column, expr string) ([]table.Column, [][]string, error) {
	outCols := make([]table.Column, 0, len(cols)+1)
	outCols = append(outCols, cols...)
	outCols = append(outCols, col)

	outRows := make([][]string, len(content))
	for i, row := range content {
		if err := eng.BindRow(rowProxy{cols: cols, cells: row, index: i}); err != nil {
			return nil, nil, fmt.Errorf("scripting: bind row %d: %w", i, err)
		}
		val, err := eng.Execute(ctx, expr)
		if err != nil {
			return nil, nil, fmt.Errorf("scripting: row %d: %w", i, err)
		}
		next := make([]string, 0, len(row)+1)
		next = append(next, row...)
		next = append(next, stringify(val))
		outRows[i] = next
	}
	return outCols, outRows, nil
}

func stringify(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", val)
	}
}
