package semantic

// Document is the semantic representation of a PDF being generated.
type Document struct {
	Pages []*Page
	Info  *DocumentInfo
}

// Page models a single PDF page.
type Page struct {
	Index     int
	MediaBox  Rectangle
	Rotate    int // degrees: 0/90/180/270
	Resources *Resources
	Contents  []ContentStream
}

// ContentStream is a sequence of operations on a page.
type ContentStream struct {
	Operations []Operation
	RawBytes   []byte
}

// Operation represents a PDF operator and operands.
type Operation struct {
	Operator string
	Operands []Operand
}

// Operand is a type-safe operand value.
type Operand interface {
	operand()
	Type() string
}

type NumberOperand struct{ Value float64 }

func (NumberOperand) operand()     {}
func (NumberOperand) Type() string { return "number" }

type NameOperand struct{ Value string }

func (NameOperand) operand()     {}
func (NameOperand) Type() string { return "name" }

type StringOperand struct{ Value []byte }

func (StringOperand) operand()     {}
func (StringOperand) Type() string { return "string" }

type ArrayOperand struct{ Values []Operand }

func (ArrayOperand) operand()     {}
func (ArrayOperand) Type() string { return "array" }

// Resources holds per-page resources. Only fonts are needed on the
// generation path.
type Resources struct {
	Fonts map[string]*Font
}

// Font represents a font resource.
type Font struct {
	Subtype        string // Type1 (default), TrueType, Type0
	BaseFont       string
	Encoding       string      // WinAnsiEncoding, Identity-H
	Widths         map[int]int // character code (or CID) -> width in 1000-unit em
	ToUnicode      map[int][]rune
	CIDSystemInfo  *CIDSystemInfo
	DescendantFont *CIDFont
	Descriptor     *FontDescriptor
}

// BoundingBoxHeight returns the vertical glyph extent of the font in
// 1000-unit em units, or 0 when no descriptor is attached.
func (f *Font) BoundingBoxHeight() float64 {
	if f == nil || f.Descriptor == nil {
		return 0
	}
	bbox := f.Descriptor.FontBBox
	return bbox[3] - bbox[1]
}

// CIDSystemInfo describes the registry/ordering of a CID font.
type CIDSystemInfo struct {
	Registry   string
	Ordering   string
	Supplement int
}

// CIDFont is the descendant font of a Type0 composite font.
type CIDFont struct {
	Subtype       string // CIDFontType2
	BaseFont      string
	CIDSystemInfo CIDSystemInfo
	DW            int
	W             map[int]int // CID -> width
	Descriptor    *FontDescriptor
}

// FontDescriptor carries font-wide metrics.
type FontDescriptor struct {
	FontName     string
	Flags        int
	ItalicAngle  float64
	Ascent       float64
	Descent      float64
	CapHeight    float64
	StemV        float64
	FontBBox     [4]float64
	FontFile     []byte // embedded program, FontFile2 for TrueType
	FontFileType string
}

// Rectangle represents a PDF rectangle.
type Rectangle struct {
	LLX, LLY, URX, URY float64
}

// Width returns the horizontal extent.
func (r Rectangle) Width() float64 { return r.URX - r.LLX }

// Height returns the vertical extent.
func (r Rectangle) Height() float64 { return r.URY - r.LLY }

// DocumentInfo mirrors the PDF Info dictionary.
type DocumentInfo struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Creator  string
	Producer string
}
