package parser

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

const (
	sheetType      = "sheet"
	multiSheetType = "multi-sheet"
)

// sheetPayload is one sheet of a content-index response such as
// /media-releases.json.
type sheetPayload struct {
	Total   int              `json:"total"`
	Offset  int              `json:"offset"`
	Limit   int              `json:"limit"`
	Columns []string         `json:"columns"`
	Data    []map[string]any `json:"data"`
	Type    string           `json:":type"`
}

// ParseSheetJSON reads a content-index payload and returns one block per
// sheet. The first grid row holds the column names; the remaining rows
// hold the data entries in order. Without a "columns" list the column
// names are the union of entry keys, sorted.
func ParseSheetJSON(r io.Reader) ([]models.Block, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read sheet json: %w", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode sheet json: %w", err)
	}

	var typ string
	if t, ok := raw[":type"]; ok {
		if err := json.Unmarshal(t, &typ); err != nil {
			return nil, fmt.Errorf("decode :type: %w", err)
		}
	}

	switch typ {
	case multiSheetType:
		var names []string
		if err := json.Unmarshal(raw[":names"], &names); err != nil {
			return nil, fmt.Errorf("decode :names: %w", err)
		}
		blocks := make([]models.Block, 0, len(names))
		for _, name := range names {
			msg, ok := raw[name]
			if !ok {
				return nil, fmt.Errorf("sheet %q listed in :names but missing", name)
			}
			var p sheetPayload
			if err := json.Unmarshal(msg, &p); err != nil {
				return nil, fmt.Errorf("decode sheet %q: %w", name, err)
			}
			blocks = append(blocks, p.block(name))
		}
		return blocks, nil
	case sheetType, "":
		var p sheetPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("decode sheet: %w", err)
		}
		return []models.Block{p.block("data")}, nil
	default:
		return nil, fmt.Errorf("unsupported sheet type %q", typ)
	}
}

func (p sheetPayload) block(name string) models.Block {
	columns := p.Columns
	if len(columns) == 0 {
		seen := make(map[string]bool)
		for _, entry := range p.Data {
			for k := range entry {
				if !seen[k] {
					seen[k] = true
					columns = append(columns, k)
				}
			}
		}
		sort.Strings(columns)
	}

	grid := make(models.Grid, 0, len(p.Data)+1)
	grid = append(grid, append([]string(nil), columns...))
	for _, entry := range p.Data {
		row := make([]string, len(columns))
		for i, col := range columns {
			row[i] = cellText(entry[col])
		}
		grid = append(grid, row)
	}
	return models.Block{Name: name, Grid: grid}
}

func cellText(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	default:
		return strings.TrimSpace(fmt.Sprint(val))
	}
}
