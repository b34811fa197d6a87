package table

import "github.com/gridpdf/gridpdf/ir/semantic"

// Cursor is a page handle plus the vertical position where the next table
// segment may start. The rendering engine threads it through its per-page
// drawing functions and returns the final position, so a later caller can
// stack more content below an already rendered table.
type Cursor struct {
	Page *semantic.Page
	Y    float64
}

// Advance moves the cursor down by dy.
func (c Cursor) Advance(dy float64) Cursor {
	c.Y -= dy
	return c
}
