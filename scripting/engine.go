// Package scripting evaluates JavaScript expressions against table rows,
// used to append computed columns to a report.
package scripting

import "context"

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Execute evaluates a script with whatever row is currently bound.
	Execute(ctx context.Context, script string) (interface{}, error)

	// BindRow exposes one table row to the engine as `row` (cells keyed by
	// column name) plus a global `index`.
	BindRow(row RowProxy) error
}

// RowProxy exposes one table row to scripts.
type RowProxy interface {
	Cell(column string) string
	Index() int
	Columns() []string
}
