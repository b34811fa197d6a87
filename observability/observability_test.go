package observability

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWriterLoggerLine(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf)
	log.Info("rendering table", Int("rows", 21), String("font", "Helvetica"))

	got := buf.String()
	want := "INFO rendering table rows=21 font=Helvetica\n"
	if got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}
}

func TestWriterLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf)
	log.Debug("d")
	log.Warn("w")
	log.Error("e", Error("err", errors.New("boom")))

	out := buf.String()
	for _, want := range []string{"DEBUG d\n", "WARN w\n", "ERROR e err=boom\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriterLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewWriterLogger(&buf).With(String("doc", "report"), Float("scale", 1.5))
	log.Info("page rendered", Int("page", 2))

	want := "INFO page rendered doc=report scale=1.5 page=2\n"
	if got := buf.String(); got != want {
		t.Errorf("log line = %q, want %q", got, want)
	}
}

func TestWithDoesNotLeakBetweenChildren(t *testing.T) {
	var buf bytes.Buffer
	base := NewWriterLogger(&buf)
	a := base.With(String("side", "a"))
	_ = base.With(String("side", "b"))
	a.Info("msg")

	if got := buf.String(); got != "INFO msg side=a\n" {
		t.Errorf("log line = %q", got)
	}
}

func TestFieldAccessors(t *testing.T) {
	if f := Int("k", 7); f.Key() != "k" || f.Value() != 7 {
		t.Errorf("Int field = %v=%v", f.Key(), f.Value())
	}
	err := errors.New("x")
	if f := Error("err", err); f.Value() != err {
		t.Error("Error field lost the error")
	}
}

func TestNopLoggerAndTracer(t *testing.T) {
	// Must not panic and must keep returning usable values.
	var log Logger = NopLogger{}
	log.Info("ignored")
	log = log.With(String("k", "v"))
	log.Error("ignored")

	ctx, span := NopTracer().StartSpan(context.Background(), "noop")
	span.SetTag("k", 1)
	span.SetError(errors.New("x"))
	span.Finish()
	_ = ctx
}
