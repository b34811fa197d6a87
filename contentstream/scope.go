package contentstream

import (
	"errors"
	"fmt"

	"github.com/gridpdf/gridpdf/coords"
	"github.com/gridpdf/gridpdf/fonts"
	"github.com/gridpdf/gridpdf/ir/semantic"
)

// Mode selects what happens to content already present on the page when the
// scope is closed.
type Mode int

const (
	ModeOverwrite Mode = iota
	ModeAppend
)

var (
	ErrClosed         = errors.New("contentstream: scope is closed")
	ErrTextOpen       = errors.New("contentstream: text object still open")
	ErrTextNotOpen    = errors.New("contentstream: no open text object")
	ErrNoFont         = errors.New("contentstream: no font set")
	ErrNoCurrentPoint = errors.New("contentstream: no current point")
	ErrLateTransform  = errors.New("contentstream: transform after drawing started")
)

// Scope is a bounded unit of drawing operations on one page. Operations are
// buffered and flushed to the page when the scope is closed. A page never has
// more than one open scope; the owning document builder enforces that.
type Scope struct {
	page    *semantic.Page
	mode    Mode
	nameFor func(*semantic.Font) string
	onClose func()

	ops      []semantic.Operation
	font     *semantic.Font
	textOpen bool
	hasPoint bool
	drawn    bool
	closed   bool
}

// NewScope opens a drawing scope on page. nameFor resolves a font to its
// page-resource name and must also record the font with the document; onClose
// is invoked exactly once when the scope closes.
func NewScope(page *semantic.Page, mode Mode, nameFor func(*semantic.Font) string, onClose func()) *Scope {
	return &Scope{page: page, mode: mode, nameFor: nameFor, onClose: onClose}
}

func (s *Scope) emit(op string, operands ...semantic.Operand) {
	s.ops = append(s.ops, semantic.Operation{Operator: op, Operands: operands})
}

func num(v float64) semantic.Operand { return semantic.NumberOperand{Value: v} }

// SetFont selects the font and size for subsequent ShowText calls and
// registers the font on the page resources.
func (s *Scope) SetFont(font *semantic.Font, size float64) error {
	if s.closed {
		return ErrClosed
	}
	if font == nil {
		return errors.New("contentstream: nil font")
	}
	if size <= 0 {
		return fmt.Errorf("contentstream: invalid font size %g", size)
	}
	name := s.nameFor(font)
	if s.page.Resources == nil {
		s.page.Resources = &semantic.Resources{}
	}
	if s.page.Resources.Fonts == nil {
		s.page.Resources.Fonts = make(map[string]*semantic.Font)
	}
	s.page.Resources.Fonts[name] = font
	s.font = font
	s.emit("Tf", semantic.NameOperand{Value: name}, num(size))
	return nil
}

// Transform concatenates m onto the page's coordinate system. It is only
// valid before the first stroke or text operation of the scope, so the whole
// page shares one logical coordinate space.
func (s *Scope) Transform(m coords.Matrix) error {
	if s.closed {
		return ErrClosed
	}
	if s.drawn {
		return ErrLateTransform
	}
	s.emit("cm", num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
	return nil
}

// MoveTo starts a new path segment at (x, y).
func (s *Scope) MoveTo(x, y float64) error {
	if s.closed {
		return ErrClosed
	}
	if s.textOpen {
		return ErrTextOpen
	}
	s.emit("m", num(x), num(y))
	s.hasPoint = true
	s.drawn = true
	return nil
}

// LineTo appends a straight segment from the current point to (x, y).
func (s *Scope) LineTo(x, y float64) error {
	if s.closed {
		return ErrClosed
	}
	if s.textOpen {
		return ErrTextOpen
	}
	if !s.hasPoint {
		return ErrNoCurrentPoint
	}
	s.emit("l", num(x), num(y))
	return nil
}

// Stroke paints the current path.
func (s *Scope) Stroke() error {
	if s.closed {
		return ErrClosed
	}
	if s.textOpen {
		return ErrTextOpen
	}
	s.emit("S")
	s.hasPoint = false
	s.drawn = true
	return nil
}

// BeginText opens a text object.
func (s *Scope) BeginText() error {
	if s.closed {
		return ErrClosed
	}
	if s.textOpen {
		return ErrTextOpen
	}
	s.emit("BT")
	s.textOpen = true
	s.drawn = true
	return nil
}

// NewLineAtOffset moves the text position by (tx, ty) relative to the start
// of the current line.
func (s *Scope) NewLineAtOffset(tx, ty float64) error {
	if s.closed {
		return ErrClosed
	}
	if !s.textOpen {
		return ErrTextNotOpen
	}
	s.emit("Td", num(tx), num(ty))
	return nil
}

// ShowText paints text at the current text position.
func (s *Scope) ShowText(text string) error {
	if s.closed {
		return ErrClosed
	}
	if !s.textOpen {
		return ErrTextNotOpen
	}
	if s.font == nil {
		return ErrNoFont
	}
	s.emit("Tj", semantic.StringOperand{Value: fonts.Encode(s.font, text)})
	return nil
}

// EndText closes the current text object.
func (s *Scope) EndText() error {
	if s.closed {
		return ErrClosed
	}
	if !s.textOpen {
		return ErrTextNotOpen
	}
	s.emit("ET")
	s.textOpen = false
	return nil
}

// Close flushes the buffered operations to the page and releases the scope.
// Closing with an open text object is an error and the content is discarded.
func (s *Scope) Close() error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	if s.onClose != nil {
		defer s.onClose()
	}
	if s.textOpen {
		return ErrTextOpen
	}
	cs := semantic.ContentStream{Operations: s.ops}
	switch s.mode {
	case ModeOverwrite:
		s.page.Contents = []semantic.ContentStream{cs}
	default:
		s.page.Contents = append(s.page.Contents, cs)
	}
	return nil
}

// Closed reports whether the scope has been released.
func (s *Scope) Closed() bool { return s.closed }
