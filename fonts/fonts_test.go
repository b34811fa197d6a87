package fonts

import (
	"bytes"
	"math"
	"testing"

	"github.com/gridpdf/gridpdf/ir/semantic"
)

func TestStandardKnownFonts(t *testing.T) {
	for _, name := range []string{"Helvetica", "Helvetica-Bold", "Times-Roman", "Courier"} {
		f, err := Standard(name)
		if err != nil {
			t.Fatalf("Standard(%q): %v", name, err)
		}
		if f.Subtype != "Type1" || f.BaseFont != name || f.Encoding != "WinAnsiEncoding" {
			t.Errorf("%s: unexpected font dict %+v", name, f)
		}
		if f.Descriptor == nil {
			t.Fatalf("%s: no descriptor", name)
		}
		if f.BoundingBoxHeight() <= 0 {
			t.Errorf("%s: bounding box height %g", name, f.BoundingBoxHeight())
		}
		if len(f.Widths) != 95 { // printable ASCII 32..126
			t.Errorf("%s: %d widths, want 95", name, len(f.Widths))
		}
	}
}

func TestStandardUnknown(t *testing.T) {
	if _, err := Standard("Comic-Sans"); err == nil {
		t.Error("unknown font resolved")
	}
}

func TestHelveticaMetrics(t *testing.T) {
	f := Helvetica()
	// AFM reference values.
	if w := f.Widths[' ']; w != 278 {
		t.Errorf("space width = %d, want 278", w)
	}
	if w := f.Widths['W']; w != 944 {
		t.Errorf("W width = %d, want 944", w)
	}
	if got := f.BoundingBoxHeight(); got != 1156 {
		t.Errorf("bbox height = %g, want 1156", got)
	}
}

func TestCourierIsFixedPitch(t *testing.T) {
	f := Courier()
	for code, w := range f.Widths {
		if w != 600 {
			t.Fatalf("Courier width for %d = %d, want 600", code, w)
		}
	}
}

func TestEncodeSimpleFont(t *testing.T) {
	got := Encode(Helvetica(), "Hi")
	if !bytes.Equal(got, []byte("Hi")) {
		t.Errorf("Encode = %v, want raw bytes", got)
	}
}

func TestEncodeCompositeFont(t *testing.T) {
	f := &semantic.Font{
		Subtype:  "Type0",
		Encoding: "Identity-H",
		ToUnicode: map[int][]rune{
			3:  {'A'},
			17: {'B'},
		},
	}
	got := Encode(f, "AB")
	want := []byte{0x00, 0x03, 0x00, 0x11}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode = %v, want %v", got, want)
	}
	// Unmapped runes encode as CID 0 (notdef).
	if got := Encode(f, "C"); !bytes.Equal(got, []byte{0, 0}) {
		t.Errorf("Encode unmapped = %v, want [0 0]", got)
	}
}

func TestTextWidth(t *testing.T) {
	f := Helvetica()
	// "AV" = 667 + 667 at size 10.
	if got, want := TextWidth(f, "AV", 10), 1.334*10; math.Abs(got-want) > 1e-9 {
		t.Errorf("TextWidth(AV) = %g, want %g", got, want)
	}
	if TextWidth(f, "iii", 10) >= TextWidth(f, "WWW", 10) {
		t.Error("narrow glyphs measured wider than wide glyphs")
	}
	// Fallback for fonts without metrics.
	if got := TextWidth(nil, "abcd", 10); got != 20 {
		t.Errorf("fallback width = %g, want 20", got)
	}
}
