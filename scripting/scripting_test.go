package scripting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gridpdf/gridpdf/table"
)

func TestExecuteExpression(t *testing.T) {
	eng := NewEngine()
	val, err := eng.Execute(context.Background(), "2 + 3")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got, ok := val.(int64); !ok || got != 5 {
		t.Errorf("result = %v (%T), want 5", val, val)
	}
}

func TestExecuteSyntaxError(t *testing.T) {
	if _, err := NewEngine().Execute(context.Background(), "2 +"); err == nil {
		t.Error("syntax error not reported")
	}
}

func TestExecuteCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewEngine().Execute(ctx, "1"); !errors.Is(err, context.Canceled) {
		t.Errorf("cancelled execute: %v, want context.Canceled", err)
	}
}

func TestExecuteInterruptsLoop(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := NewEngine().Execute(ctx, "while (true) {}")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("looping script: %v, want context.DeadlineExceeded", err)
	}
}

func TestBindRow(t *testing.T) {
	eng := NewEngine()
	err := eng.BindRow(rowProxy{
		cols:  []table.Column{{Name: "First"}, {Name: "Last"}},
		cells: []string{"Ada", "Lovelace"},
		index: 3,
	})
	if err != nil {
		t.Fatalf("BindRow: %v", err)
	}
	val, err := eng.Execute(context.Background(), `row.First + " " + row.Last + " #" + index`)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got := val.(string); got != "Ada Lovelace #3" {
		t.Errorf("result = %q", got)
	}
}

func TestAppendColumn(t *testing.T) {
	cols := []table.Column{{Name: "Qty", Width: 50}, {Name: "Price", Width: 50}}
	content := [][]string{{"2", "10.5"}, {"3", "4"}}

	outCols, outRows, err := AppendColumn(context.Background(), NewEngine(), cols, content,
		table.Column{Name: "Total", Width: 50}, "Number(row.Qty) * Number(row.Price)")
	if err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}
	if len(outCols) != 3 || outCols[2].Name != "Total" {
		t.Errorf("columns = %+v", outCols)
	}
	want := [][]string{{"2", "10.5", "21"}, {"3", "4", "12"}}
	if diff := cmp.Diff(want, outRows); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	// Inputs must stay untouched.
	if len(cols) != 2 || len(content[0]) != 2 {
		t.Error("AppendColumn mutated its inputs")
	}
}

func TestAppendColumnNullResult(t *testing.T) {
	cols := []table.Column{{Name: "A", Width: 50}}
	content := [][]string{{"x"}}
	_, rows, err := AppendColumn(context.Background(), NewEngine(), cols, content,
		table.Column{Name: "B", Width: 50}, "null")
	if err != nil {
		t.Fatalf("AppendColumn: %v", err)
	}
	if rows[0][1] != "" {
		t.Errorf("null result = %q, want empty cell", rows[0][1])
	}
}

func TestAppendColumnScriptError(t *testing.T) {
	cols := []table.Column{{Name: "A", Width: 50}}
	content := [][]string{{"x"}, {"y"}}
	_, _, err := AppendColumn(context.Background(), NewEngine(), cols, content,
		table.Column{Name: "B", Width: 50}, "nosuchfunction()")
	if err == nil {
		t.Fatal("script error not propagated")
	}
}

func TestStringify(t *testing.T) {
	cases := []struct {
		in   interface{}
		want string
	}{
		{nil, ""},
		{"s", "s"},
		{true, "true"},
		{int64(42), "42"},
		{3.5, "3.5"},
	}
	for _, tc := range cases {
		if got := stringify(tc.in); got != tc.want {
			t.Errorf("stringify(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
