package tableblock

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/net/html"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/output"
	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/parser"
)

// Decorate reads the table blocks of a source file and reconciles them.
// The parser is chosen by extension: .html/.htm pages, .xlsx workbooks and
// .json content-index payloads.
func Decorate(ctx context.Context, path string, opts Options) (*models.Document, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	blocks, err := readBlocks(path, opts)
	if err != nil {
		return nil, NewDecorationError(filepath.Base(path), "parse", err)
	}

	tables, err := buildTables(ctx, blocks, opts)
	if err != nil {
		return nil, err
	}

	return &models.Document{
		Source: filepath.Base(path),
		Tables: tables,
	}, nil
}

func readBlocks(path string, opts Options) ([]models.Block, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".html", ".htm":
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		doc, err := parser.ParseHTML(fh)
		if err != nil {
			return nil, err
		}
		blocks := make([]models.Block, 0, len(doc.Blocks))
		for _, b := range doc.Blocks {
			blocks = append(blocks, b.Block)
		}
		return blocks, nil
	case ".xlsx":
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parser.ExtractBlocks(f, opts.Sheet, opts.ShouldUsePrintArea())
	case ".json":
		fh, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer fh.Close()
		return parser.ParseSheetJSON(fh)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedInput, ext)
	}
}

// buildTables reconciles every block. Empty blocks are skipped with a
// warning; ragged blocks are an error.
func buildTables(ctx context.Context, blocks []models.Block, opts Options) ([]models.Table, error) {
	logger := LoggerFromContext(ctx)

	tables := make([]models.Table, 0, len(blocks))
	for _, b := range blocks {
		t, ok, err := buildOne(ctx, b, opts)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		tables = append(tables, t)
	}
	logger.Debug("decorated blocks", "tables", len(tables), "blocks", len(blocks))
	return tables, nil
}

func buildOne(ctx context.Context, b models.Block, opts Options) (models.Table, bool, error) {
	logger := LoggerFromContext(ctx)

	t, err := BuildTable(b, opts.ShouldRenderHeader(b.Classes))
	switch {
	case errors.Is(err, ErrEmptyGrid):
		logger.Warn("skipping empty block", "block", b.Name)
		return t, false, nil
	case err != nil:
		return t, false, NewDecorationError(b.Name, "validate", err)
	}

	logger.Debug("reconciled table",
		"table", t.Name,
		"rows", t.RowCount,
		"cols", t.ColCount,
		"merged", mergedPositions(t),
		"header", t.Header,
	)
	return t, true, nil
}

// DecorateHTML decorates a page in place: the children of every table
// block are replaced by the rendered table and the page is written to w.
// It returns the number of blocks decorated.
func DecorateHTML(ctx context.Context, r io.Reader, w io.Writer, opts Options) (int, error) {
	doc, err := parser.ParseHTML(r)
	if err != nil {
		return 0, NewDecorationError("html", "parse", err)
	}

	decorated := 0
	for _, hb := range doc.Blocks {
		t, ok, err := buildOne(ctx, hb.Block, opts)
		if err != nil {
			return decorated, err
		}
		if !ok {
			continue
		}

		table, err := output.TableNode(t)
		if err != nil {
			return decorated, NewDecorationError(t.Name, "render", err)
		}
		for c := hb.Node.FirstChild; c != nil; c = hb.Node.FirstChild {
			hb.Node.RemoveChild(c)
		}
		hb.Node.AppendChild(table)
		decorated++
	}

	if err := html.Render(w, doc.Root); err != nil {
		return decorated, NewDecorationError("html", "render", err)
	}
	return decorated, nil
}
