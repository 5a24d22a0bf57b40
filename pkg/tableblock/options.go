// Package tableblock decorates table blocks: it reads table-like source
// structures, merges visually identical adjacent cells, and renders the
// result as HTML, JSON or xlsx.
package tableblock

import (
	"fmt"
	"strings"
)

// Format represents the output format.
type Format string

const (
	// FormatHTML renders tables as HTML markup.
	FormatHTML Format = "html"
	// FormatJSON renders the reconciled document as JSON.
	FormatJSON Format = "json"
	// FormatXLSX writes one sheet per table with merged cells.
	FormatXLSX Format = "xlsx"
)

// NoHeaderClass is the block class that disables the header row.
const NoHeaderClass = "no-header"

// Options configures decoration behavior.
type Options struct {
	// Format specifies the output format (html, json, xlsx).
	Format Format
	// NoHeader renders every row as a body row.
	NoHeader bool
	// Sheet restricts xlsx input to a single sheet. Empty means all sheets.
	Sheet string
	// UsePrintArea specifies whether xlsx input is cropped to the print area.
	// If nil, defaults to true.
	UsePrintArea *bool
}

// DefaultOptions returns default decoration options.
func DefaultOptions() Options {
	return Options{
		Format: FormatHTML,
	}
}

// ShouldRenderHeader returns whether the first row of a block with the
// given classes is rendered as a header row.
func (o Options) ShouldRenderHeader(classes []string) bool {
	if o.NoHeader {
		return false
	}
	for _, c := range classes {
		if c == NoHeaderClass {
			return false
		}
	}
	return true
}

// ShouldUsePrintArea returns whether xlsx input is cropped to the print area.
func (o Options) ShouldUsePrintArea() bool {
	if o.UsePrintArea != nil {
		return *o.UsePrintArea
	}
	return true
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatHTML, FormatJSON, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %s (must be html, json, or xlsx)", ErrInvalidFormat, s)
	}
}
