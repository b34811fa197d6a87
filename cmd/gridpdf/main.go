// Command gridpdf renders a CSV, Markdown or HTML table to a paginated PDF.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gridpdf/gridpdf/builder"
	"github.com/gridpdf/gridpdf/config"
	"github.com/gridpdf/gridpdf/ir/semantic"
	"github.com/gridpdf/gridpdf/layout"
	"github.com/gridpdf/gridpdf/observability"
	"github.com/gridpdf/gridpdf/scripting"
	"github.com/gridpdf/gridpdf/source"
	"github.com/gridpdf/gridpdf/table"
	"github.com/gridpdf/gridpdf/writer"
)

func main() {
	var (
		inPath        = flag.String("in", "", "input table (.csv, .md or .html)")
		outPath       = flag.String("o", "report.pdf", "output PDF path")
		cfgPath       = flag.String("config", "", "YAML layout preset")
		title         = flag.String("title", "", "document title")
		compute       = flag.String("compute", "", "computed column as Name=jsExpression")
		deterministic = flag.Bool("deterministic", false, "content-derived trailer ID")
		verbose       = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "gridpdf: -in is required")
		flag.Usage()
		os.Exit(2)
	}
	if err := run(*inPath, *outPath, *cfgPath, *title, *compute, *deterministic, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "gridpdf: %v\n", err)
		os.Exit(1)
	}
}

func run(inPath, outPath, cfgPath, title, compute string, deterministic, verbose bool) error {
	cfg := config.Default()
	if cfgPath != "" {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	totalWidth, height, err := cfg.DrawingArea()
	if err != nil {
		return err
	}
	cols, content, err := readSource(inPath, totalWidth)
	if err != nil {
		return err
	}

	ctx := context.Background()
	if compute != "" {
		name, expr, ok := strings.Cut(compute, "=")
		if !ok {
			return fmt.Errorf("bad -compute value %q, want Name=expression", compute)
		}
		cols, content, err = scripting.AppendColumn(ctx, scripting.NewEngine(), cols, content,
			table.Column{Name: name}, expr)
		if err != nil {
			return err
		}
		// Rebalance so the new column shares the same total width.
		w := totalWidth / float64(len(cols))
		for i := range cols {
			cols[i].Width = w
		}
	}

	font, err := cfg.ResolveFont()
	if err != nil {
		return err
	}
	size, err := cfg.PaperSize()
	if err != nil {
		return err
	}
	t := table.NewBuilder().
		Columns(cols...).
		Content(content).
		RowHeight(cfg.Table.RowHeight).
		Height(height).
		Width(totalWidth).
		Margin(cfg.Page.Margin).
		CellMargin(cfg.Table.CellMargin).
		PageSize(table.PageSize{Width: size.Width, Height: size.Height}).
		Landscape(cfg.Page.Landscape).
		Font(font).
		FontSize(cfg.Font.Size).
		Build()

	log := observability.Logger(observability.NopLogger{})
	if verbose {
		log = observability.NewWriterLogger(os.Stderr)
	}
	doc := builder.NewDocument()
	if title != "" {
		doc.SetInfo(&semantic.DocumentInfo{Title: title, Producer: "gridpdf"})
	}
	engine := layout.NewEngine(doc, layout.WithLogger(log))
	if err := engine.Render(ctx, t); err != nil {
		return err
	}
	built, err := doc.Build()
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	wcfg := writer.Config{Deterministic: deterministic, ContentFilter: writer.FilterFlate}
	if err := writer.New().Write(ctx, built, &buf, wcfg); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return err
	}
	log.Info("wrote document", observability.String("path", outPath), observability.Int("bytes", buf.Len()))
	return nil
}

func readSource(path string, totalWidth float64) ([]table.Column, [][]string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		return source.CSV(f, totalWidth)
	case ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		return source.Markdown(data, totalWidth)
	case ".html", ".htm":
		f, err := os.Open(path)
		if err != nil {
			return nil, nil, err
		}
		defer f.Close()
		return source.HTML(f, totalWidth)
	default:
		return nil, nil, fmt.Errorf("unsupported input type %q", ext)
	}
}
