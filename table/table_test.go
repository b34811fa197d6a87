package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gridpdf/gridpdf/fonts"
)

func validTable() *Table {
	return NewBuilder().
		Columns(Column{Name: "A", Width: 100}, Column{Name: "B", Width: 200}).
		Content([][]string{{"1", "2"}, {"3", "4"}}).
		RowHeight(15).
		Height(700).
		Width(300).
		Margin(40).
		CellMargin(2).
		PageSize(PageSize{Width: 595, Height: 842}).
		Font(fonts.Helvetica()).
		FontSize(10).
		Build()
}

func TestValidateOK(t *testing.T) {
	if err := validTable().Validate(); err != nil {
		t.Errorf("valid table rejected: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Table)
		want   string
	}{
		{"no columns", func(t *Table) { t.Columns = nil }, "no columns"},
		{"zero column width", func(t *Table) { t.Columns[0].Width = 0 }, "non-positive width"},
		{"negative column width", func(t *Table) { t.Columns[1].Width = -5 }, "non-positive width"},
		{"width mismatch", func(t *Table) { t.Width = 310 }, "does not match"},
		{"short row", func(t *Table) { t.Content[1] = []string{"only"} }, "row 1 has 1 cells"},
		{"long row", func(t *Table) { t.Content[0] = []string{"a", "b", "c"} }, "row 0 has 3 cells"},
		{"zero row height", func(t *Table) { t.RowHeight = 0 }, "row height"},
		{"zero height", func(t *Table) { t.Height = 0 }, "drawing height"},
		{"nil font", func(t *Table) { t.Font = nil }, "no font"},
		{"zero font size", func(t *Table) { t.FontSize = 0 }, "font size"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tab := validTable()
			tc.mutate(tab)
			err := tab.Validate()
			var cerr *ContractError
			if !errors.As(err, &cerr) {
				t.Fatalf("err = %v, want ContractError", err)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestValidateWidthTolerance(t *testing.T) {
	tab := validTable()
	tab.Width = 300 + 1e-9 // float noise from summing column widths
	if err := tab.Validate(); err != nil {
		t.Errorf("tiny width drift rejected: %v", err)
	}
}

func TestEmptyContentIsValid(t *testing.T) {
	tab := validTable()
	tab.Content = nil
	if err := tab.Validate(); err != nil {
		t.Errorf("empty table rejected: %v", err)
	}
	if tab.NumberOfRows() != 0 {
		t.Errorf("NumberOfRows = %d, want 0", tab.NumberOfRows())
	}
}

func TestCounts(t *testing.T) {
	tab := validTable()
	if got := tab.NumberOfColumns(); got != 2 {
		t.Errorf("NumberOfColumns = %d, want 2", got)
	}
	if got := tab.NumberOfRows(); got != 2 {
		t.Errorf("NumberOfRows = %d, want 2", got)
	}
}

func TestBuilderCopies(t *testing.T) {
	b := NewBuilder().
		Columns(Column{Name: "A", Width: 100}).
		Width(100).
		RowHeight(10)
	first := b.Build()
	b.RowHeight(20)
	second := b.Build()

	if first.RowHeight != 10 {
		t.Errorf("first build mutated: row height %g", first.RowHeight)
	}
	if second.RowHeight != 20 {
		t.Errorf("second build row height %g, want 20", second.RowHeight)
	}
	if diff := cmp.Diff(first.Columns, second.Columns); diff != "" {
		t.Errorf("columns diverged:\n%s", diff)
	}
}

func TestCursorAdvance(t *testing.T) {
	c := Cursor{Y: 750}
	c = c.Advance(20).Advance(30)
	if c.Y != 700 {
		t.Errorf("cursor y = %g, want 700", c.Y)
	}
}
