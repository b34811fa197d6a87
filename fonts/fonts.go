package fonts

import (
	"fmt"
	"sync"

	"github.com/gridpdf/gridpdf/ir/semantic"
)

// Standard returns one of the built-in (non-embedded) Type1 fonts with AFM
// metrics attached. Supported names: Helvetica, Helvetica-Bold, Times-Roman,
// Courier.
func Standard(name string) (*semantic.Font, error) {
	m, ok := standardMetrics[name]
	if !ok {
		return nil, fmt.Errorf("fonts: unknown standard font %q", name)
	}
	widths := make(map[int]int, len(m.widths))
	for i, w := range m.widths {
		widths[i+firstChar] = w
	}
	return &semantic.Font{
		Subtype:  "Type1",
		BaseFont: name,
		Encoding: "WinAnsiEncoding",
		Widths:   widths,
		Descriptor: &semantic.FontDescriptor{
			FontName:    name,
			Flags:       m.flags,
			ItalicAngle: m.italicAngle,
			Ascent:      m.ascent,
			Descent:     m.descent,
			CapHeight:   m.capHeight,
			StemV:       m.stemV,
			FontBBox:    m.bbox,
		},
	}, nil
}

// Helvetica returns the built-in Helvetica font.
func Helvetica() *semantic.Font { f, _ := Standard("Helvetica"); return f }

// HelveticaBold returns the built-in Helvetica-Bold font.
func HelveticaBold() *semantic.Font { f, _ := Standard("Helvetica-Bold"); return f }

// TimesRoman returns the built-in Times-Roman font.
func TimesRoman() *semantic.Font { f, _ := Standard("Times-Roman"); return f }

// Courier returns the built-in Courier font.
func Courier() *semantic.Font { f, _ := Standard("Courier"); return f }

var (
	cmapMu    sync.Mutex
	cmapCache = map[*semantic.Font]map[rune]int{}
)

func runeToCID(font *semantic.Font) map[rune]int {
	cmapMu.Lock()
	defer cmapMu.Unlock()
	if m, ok := cmapCache[font]; ok {
		return m
	}
	if len(font.ToUnicode) == 0 {
		cmapCache[font] = nil
		return nil
	}
	m := make(map[rune]int)
	for cid, runes := range font.ToUnicode {
		for _, r := range runes {
			if _, exists := m[r]; !exists {
				m[r] = cid
			}
		}
	}
	cmapCache[font] = m
	return m
}

// Encode converts text to the byte sequence a Tj operand needs for the given
// font: 2-byte CIDs for Type0 Identity-H fonts, raw bytes otherwise.
func Encode(font *semantic.Font, text string) []byte {
	if font != nil && font.Subtype == "Type0" && font.Encoding == "Identity-H" {
		cmap := runeToCID(font)
		buf := make([]byte, 0, len(text)*2)
		for _, r := range text {
			cid := 0
			if cmap != nil {
				cid = cmap[r]
			}
			buf = append(buf, byte(cid>>8), byte(cid))
		}
		return buf
	}
	return []byte(text)
}

// TextWidth measures text in document-space units at the given size.
func TextWidth(font *semantic.Font, text string, size float64) float64 {
	if size <= 0 {
		size = 12
	}
	if font == nil || len(font.Widths) == 0 {
		return float64(len(text)) * size * 0.5
	}
	cmap := runeToCID(font)
	sum := 0.0
	for _, r := range text {
		code := int(r)
		if font.Subtype == "Type0" && font.Encoding == "Identity-H" && cmap != nil {
			if cid, ok := cmap[r]; ok {
				code = cid
			}
		}
		if w, ok := font.Widths[code]; ok {
			sum += float64(w)
		} else {
			sum += 500
		}
	}
	return sum / 1000 * size
}
