// Package layout paginates a logical table onto PDF pages: it computes page
// breaks, draws the cell grid and positions header and content text with
// font-metric-aware vertical centering, in portrait or landscape.
package layout

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/gridpdf/gridpdf/builder"
	"github.com/gridpdf/gridpdf/contentstream"
	"github.com/gridpdf/gridpdf/coords"
	"github.com/gridpdf/gridpdf/ir/semantic"
	"github.com/gridpdf/gridpdf/observability"
	"github.com/gridpdf/gridpdf/table"
)

// ErrPageTooShort means the row height and drawing height leave no room for
// a header row plus at least one data row on a page.
var ErrPageTooShort = errors.New("layout: page too short for header and one data row")

// Engine renders tables into a document builder. Each Render call is
// synchronous; pages are produced strictly in order and the page's drawing
// scope is closed before the next page begins.
type Engine struct {
	doc    *builder.DocumentBuilder
	log    observability.Logger
	tracer observability.Tracer
}

// Option configures the engine.
type Option func(*Engine)

// WithLogger sets the structured logger.
func WithLogger(log observability.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithTracer sets the tracer used for render and per-page spans.
func WithTracer(tr observability.Tracer) Option {
	return func(e *Engine) { e.tracer = tr }
}

// NewEngine creates a rendering engine writing into doc.
func NewEngine(doc *builder.DocumentBuilder, opts ...Option) *Engine {
	e := &Engine{doc: doc, log: observability.NopLogger{}, tracer: observability.NopTracer()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RowsPerPage returns how many content rows fit on one page next to the
// header row that is redrawn on every page.
func RowsPerPage(t *table.Table) int {
	return int(math.Floor(t.Height/t.RowHeight)) - 1
}

// Render paginates and draws the table, appending one page per row slice.
// A table with no content rows yields no pages. The first failure aborts the
// remaining pages.
func (e *Engine) Render(ctx context.Context, t *table.Table) error {
	_, err := e.RenderWithCursor(ctx, t)
	return err
}

// RenderWithCursor is Render plus the position just below the last drawn
// table segment, for callers that stack further content on the final page.
func (e *Engine) RenderWithCursor(ctx context.Context, t *table.Table) (table.Cursor, error) {
	ctx, span := e.tracer.StartSpan(ctx, "layout.render")
	defer span.Finish()

	if err := t.Validate(); err != nil {
		span.SetError(err)
		return table.Cursor{}, err
	}
	rowsPerPage := RowsPerPage(t)
	if rowsPerPage < 1 {
		err := fmt.Errorf("%w: height %g, row height %g", ErrPageTooShort, t.Height, t.RowHeight)
		span.SetError(err)
		return table.Cursor{}, err
	}
	rows := t.NumberOfRows()
	pages := (rows + rowsPerPage - 1) / rowsPerPage
	span.SetTag("pages", pages)
	e.log.Info("rendering table",
		observability.Int("rows", rows),
		observability.Int("columns", t.NumberOfColumns()),
		observability.Int("rows_per_page", rowsPerPage),
		observability.Int("pages", pages))

	var cur table.Cursor
	for pageIndex := 0; pageIndex < pages; pageIndex++ {
		start := pageIndex * rowsPerPage
		end := start + rowsPerPage
		if end > rows {
			end = rows
		}
		c, err := e.renderPage(ctx, t, t.Content[start:end], pageIndex)
		if err != nil {
			span.SetError(err)
			e.log.Error("render aborted", observability.Int("page", pageIndex), observability.Error("err", err))
			return table.Cursor{}, err
		}
		e.log.Debug("page rendered",
			observability.Int("page", pageIndex),
			observability.Int("rows", end-start))
		cur = c
	}
	return cur, nil
}

// renderPage opens one physical page and its drawing scope, draws the grid
// and text for the given row slice, and closes the scope before returning.
func (e *Engine) renderPage(ctx context.Context, t *table.Table, rows [][]string, pageIndex int) (table.Cursor, error) {
	_, span := e.tracer.StartSpan(ctx, "layout.page")
	defer span.Finish()
	span.SetTag("page", pageIndex)

	rotation := 0
	if t.Landscape {
		rotation = 90
	}
	page := e.doc.NewPage(t.PageSize.Width, t.PageSize.Height, rotation)
	scope, err := e.doc.OpenContent(page, contentstream.ModeOverwrite)
	if err != nil {
		span.SetError(err)
		return table.Cursor{}, fmt.Errorf("page %d: %w", pageIndex, err)
	}
	cur, err := e.drawSegment(scope, t, rows, page)
	if cerr := scope.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		span.SetError(err)
		return table.Cursor{}, fmt.Errorf("page %d: %w", pageIndex, err)
	}
	return cur, nil
}

// drawSegment draws one table segment starting at the top of the page and
// returns the cursor just below it.
func (e *Engine) drawSegment(scope *contentstream.Scope, t *table.Table, rows [][]string, page *semantic.Page) (table.Cursor, error) {
	topY := t.PageSize.Height - t.Margin
	if t.Landscape {
		topY = t.PageSize.Width - t.Margin
		if err := scope.Transform(coords.LandscapePage(t.PageSize.Width)); err != nil {
			return table.Cursor{}, err
		}
	}
	cur := table.Cursor{Page: page, Y: topY}
	if err := drawGrid(scope, t, cur, len(rows)); err != nil {
		return table.Cursor{}, err
	}
	return writeText(scope, t, cur, rows)
}

// drawGrid strokes n+2 horizontal lines (top border, header separator, one
// line per content row) and one vertical line per column boundary.
func drawGrid(scope *contentstream.Scope, t *table.Table, cur table.Cursor, n int) error {
	y := cur.Y
	for i := 0; i <= n+1; i++ {
		if err := strokeLine(scope, t.Margin, y, t.Margin+t.Width, y); err != nil {
			return err
		}
		y -= t.RowHeight
	}
	bottomY := cur.Y - t.RowHeight*float64(n+1)
	x := t.Margin
	for i := 0; i <= len(t.Columns); i++ {
		if err := strokeLine(scope, x, cur.Y, x, bottomY); err != nil {
			return err
		}
		if i < len(t.Columns) {
			x += t.Columns[i].Width
		}
	}
	return nil
}

func strokeLine(scope *contentstream.Scope, x1, y1, x2, y2 float64) error {
	if err := scope.MoveTo(x1, y1); err != nil {
		return err
	}
	if err := scope.LineTo(x2, y2); err != nil {
		return err
	}
	return scope.Stroke()
}

// writeText writes the header row from the column names, then the content
// rows. The baseline is centered in each row band: half the row height minus
// a quarter of the scaled glyph bounding-box height.
func writeText(scope *contentstream.Scope, t *table.Table, cur table.Cursor, rows [][]string) (table.Cursor, error) {
	if err := scope.SetFont(t.Font, t.FontSize); err != nil {
		return table.Cursor{}, err
	}
	textY := cur.Y - t.RowHeight/2 - t.Font.BoundingBoxHeight()/1000*t.FontSize/4

	header := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c.Name
	}
	if err := writeRow(scope, t, textY, header); err != nil {
		return table.Cursor{}, err
	}
	for _, row := range rows {
		textY -= t.RowHeight
		if err := writeRow(scope, t, textY, row); err != nil {
			return table.Cursor{}, err
		}
	}
	return cur.Advance(t.RowHeight * float64(len(rows)+1)), nil
}

// writeRow writes one row of cells left-aligned, advancing by each column's
// width. An empty cell still advances the cursor so later columns keep their
// position.
func writeRow(scope *contentstream.Scope, t *table.Table, y float64, cells []string) error {
	x := t.Margin + t.CellMargin
	for i, cell := range cells {
		if err := scope.BeginText(); err != nil {
			return err
		}
		if err := scope.NewLineAtOffset(x, y); err != nil {
			return err
		}
		if err := scope.ShowText(cell); err != nil {
			return err
		}
		if err := scope.EndText(); err != nil {
			return err
		}
		x += t.Columns[i].Width
	}
	return nil
}
