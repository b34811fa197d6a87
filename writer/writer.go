package writer

import (
	"context"
	"io"

	"github.com/gridpdf/gridpdf/ir/semantic"
)

type PDFVersion string

const (
	PDF17 PDFVersion = "1.7"
)

type ContentFilter int

const (
	FilterNone ContentFilter = iota
	FilterFlate
	FilterASCIIHex
)

// Config controls serialization.
type Config struct {
	Version       PDFVersion
	Compression   int // flate level, 0 means default when FilterFlate is chosen
	ContentFilter ContentFilter
	Deterministic bool // derive the trailer /ID from content instead of a random UUID
}

// Writer serializes a semantic.Document to PDF bytes.
type Writer interface {
	Write(ctx context.Context, doc *semantic.Document, out io.Writer, cfg Config) error
}

// New returns the default writer implementation.
func New() Writer { return &impl{} }
