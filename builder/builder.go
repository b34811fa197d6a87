package builder

import (
	"errors"
	"fmt"

	"github.com/gridpdf/gridpdf/contentstream"
	"github.com/gridpdf/gridpdf/ir/semantic"
)

// PaperSize is a page size in points.
type PaperSize struct {
	Width  float64
	Height float64
}

var (
	A4     = PaperSize{Width: 595, Height: 842}
	A5     = PaperSize{Width: 420, Height: 595}
	Letter = PaperSize{Width: 612, Height: 792}
	Legal  = PaperSize{Width: 612, Height: 1008}
)

// Paper resolves a named paper size.
func Paper(name string) (PaperSize, bool) {
	switch name {
	case "a4", "A4":
		return A4, true
	case "a5", "A5":
		return A5, true
	case "letter", "Letter":
		return Letter, true
	case "legal", "Legal":
		return Legal, true
	}
	return PaperSize{}, false
}

var ErrScopeOpen = errors.New("builder: a drawing scope is already open")

// DocumentBuilder assembles a semantic.Document page by page. It owns font
// resource naming and guarantees at most one open drawing scope at a time.
type DocumentBuilder struct {
	pages     []*semantic.Page
	info      *semantic.DocumentInfo
	fontNames map[*semantic.Font]string
	open      *contentstream.Scope
}

// NewDocument constructs an empty document builder.
func NewDocument() *DocumentBuilder {
	return &DocumentBuilder{fontNames: make(map[*semantic.Font]string)}
}

// NewPage appends a page of the given size and rotation (degrees, multiples
// of 90) and returns its handle.
func (b *DocumentBuilder) NewPage(width, height float64, rotation int) *semantic.Page {
	p := &semantic.Page{
		Index:    len(b.pages),
		MediaBox: semantic.Rectangle{URX: width, URY: height},
		Rotate:   normalizeRotation(rotation),
	}
	b.pages = append(b.pages, p)
	return p
}

// SetInfo attaches the document information dictionary.
func (b *DocumentBuilder) SetInfo(info *semantic.DocumentInfo) *DocumentBuilder {
	b.info = info
	return b
}

// RegisterFont assigns (or returns the previously assigned) resource name
// for the font. Names are stable across pages.
func (b *DocumentBuilder) RegisterFont(font *semantic.Font) string {
	if name, ok := b.fontNames[font]; ok {
		return name
	}
	name := fmt.Sprintf("F%d", len(b.fontNames)+1)
	b.fontNames[font] = name
	return name
}

// OpenContent opens a drawing scope on the page. Only one scope may be open
// per document; the previous scope must be closed first.
func (b *DocumentBuilder) OpenContent(page *semantic.Page, mode contentstream.Mode) (*contentstream.Scope, error) {
	if page == nil {
		return nil, errors.New("builder: nil page")
	}
	if b.open != nil && !b.open.Closed() {
		return nil, ErrScopeOpen
	}
	owned := false
	for _, p := range b.pages {
		if p == page {
			owned = true
			break
		}
	}
	if !owned {
		return nil, errors.New("builder: page does not belong to this document")
	}
	scope := contentstream.NewScope(page, mode, b.RegisterFont, func() { b.open = nil })
	b.open = scope
	return scope, nil
}

// Build finalizes and returns the document. Building with an open drawing
// scope is an error.
func (b *DocumentBuilder) Build() (*semantic.Document, error) {
	if b.open != nil && !b.open.Closed() {
		return nil, ErrScopeOpen
	}
	for i, p := range b.pages {
		p.Index = i
	}
	return &semantic.Document{Pages: b.pages, Info: b.info}, nil
}

func normalizeRotation(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	if deg%90 != 0 {
		return 0
	}
	return deg
}
