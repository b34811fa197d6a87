package table

import "github.com/gridpdf/gridpdf/ir/semantic"

// Builder assembles a Table from parts. It performs no validation; contract
// violations surface from the rendering engine before anything is drawn.
type Builder struct {
	t Table
}

// NewBuilder starts an empty table description.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) Columns(cols ...Column) *Builder {
	b.t.Columns = cols
	return b
}

func (b *Builder) Content(rows [][]string) *Builder {
	b.t.Content = rows
	return b
}

func (b *Builder) RowHeight(h float64) *Builder {
	b.t.RowHeight = h
	return b
}

func (b *Builder) Height(h float64) *Builder {
	b.t.Height = h
	return b
}

func (b *Builder) Width(w float64) *Builder {
	b.t.Width = w
	return b
}

func (b *Builder) Margin(m float64) *Builder {
	b.t.Margin = m
	return b
}

func (b *Builder) CellMargin(m float64) *Builder {
	b.t.CellMargin = m
	return b
}

func (b *Builder) PageSize(s PageSize) *Builder {
	b.t.PageSize = s
	return b
}

func (b *Builder) Landscape(on bool) *Builder {
	b.t.Landscape = on
	return b
}

func (b *Builder) Font(f *semantic.Font) *Builder {
	b.t.Font = f
	return b
}

func (b *Builder) FontSize(s float64) *Builder {
	b.t.FontSize = s
	return b
}

// Build returns the finished table description.
func (b *Builder) Build() *Table {
	t := b.t
	return &t
}
