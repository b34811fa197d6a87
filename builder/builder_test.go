package builder

import (
	"errors"
	"testing"

	"github.com/gridpdf/gridpdf/contentstream"
	"github.com/gridpdf/gridpdf/fonts"
)

func TestPaper(t *testing.T) {
	if size, ok := Paper("a4"); !ok || size != A4 {
		t.Errorf("Paper(a4) = %v, %v", size, ok)
	}
	if size, ok := Paper("Letter"); !ok || size != Letter {
		t.Errorf("Paper(Letter) = %v, %v", size, ok)
	}
	if _, ok := Paper("tabloid"); ok {
		t.Error("Paper(tabloid) resolved unexpectedly")
	}
}

func TestSingleOpenScope(t *testing.T) {
	b := NewDocument()
	p1 := b.NewPage(500, 800, 0)
	p2 := b.NewPage(500, 800, 0)

	s1, err := b.OpenContent(p1, contentstream.ModeOverwrite)
	if err != nil {
		t.Fatalf("first OpenContent: %v", err)
	}
	if _, err := b.OpenContent(p2, contentstream.ModeOverwrite); !errors.Is(err, ErrScopeOpen) {
		t.Fatalf("second OpenContent: %v, want ErrScopeOpen", err)
	}
	if err := s1.Close(); err != nil {
		t.Fatal(err)
	}
	s2, err := b.OpenContent(p2, contentstream.ModeOverwrite)
	if err != nil {
		t.Fatalf("OpenContent after close: %v", err)
	}
	if err := s2.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestOpenContentForeignPage(t *testing.T) {
	b := NewDocument()
	other := NewDocument().NewPage(500, 800, 0)
	if _, err := b.OpenContent(other, contentstream.ModeOverwrite); err == nil {
		t.Error("opened a scope on a page from another document")
	}
	if _, err := b.OpenContent(nil, contentstream.ModeOverwrite); err == nil {
		t.Error("opened a scope on a nil page")
	}
}

func TestBuildWithOpenScope(t *testing.T) {
	b := NewDocument()
	p := b.NewPage(500, 800, 0)
	scope, err := b.OpenContent(p, contentstream.ModeOverwrite)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := b.Build(); !errors.Is(err, ErrScopeOpen) {
		t.Fatalf("Build with open scope: %v, want ErrScopeOpen", err)
	}
	if err := scope.Close(); err != nil {
		t.Fatal(err)
	}
	doc, err := b.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Pages) != 1 {
		t.Errorf("got %d pages, want 1", len(doc.Pages))
	}
}

func TestRegisterFontStableNames(t *testing.T) {
	b := NewDocument()
	helv := fonts.Helvetica()
	times := fonts.TimesRoman()

	if name := b.RegisterFont(helv); name != "F1" {
		t.Errorf("first font name = %q, want F1", name)
	}
	if name := b.RegisterFont(times); name != "F2" {
		t.Errorf("second font name = %q, want F2", name)
	}
	if name := b.RegisterFont(helv); name != "F1" {
		t.Errorf("re-registering returned %q, want F1", name)
	}
}

func TestNewPageRotation(t *testing.T) {
	b := NewDocument()
	cases := []struct{ in, want int }{
		{0, 0}, {90, 90}, {450, 90}, {-90, 270}, {45, 0},
	}
	for _, tc := range cases {
		if p := b.NewPage(100, 100, tc.in); p.Rotate != tc.want {
			t.Errorf("NewPage rotation %d -> %d, want %d", tc.in, p.Rotate, tc.want)
		}
	}
}

func TestPageIndexes(t *testing.T) {
	b := NewDocument()
	b.NewPage(100, 100, 0)
	b.NewPage(100, 100, 0)
	doc, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	for i, p := range doc.Pages {
		if p.Index != i {
			t.Errorf("page %d has index %d", i, p.Index)
		}
	}
}
