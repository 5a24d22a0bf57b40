package models

// Attr is a single markup attribute.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Block represents one table-like source structure before reconciliation.
type Block struct {
	// Name identifies the block within its source (sheet name, "table-1", ...).
	Name string `json:"name"`
	// Classes is the block's class list, e.g. ["table", "no-header"].
	Classes []string `json:"classes,omitempty"`
	// Grid holds the trimmed text content of every cell.
	Grid Grid `json:"grid"`
	// Content optionally holds the inner HTML of every cell, same shape as Grid.
	Content [][]string `json:"-"`
	// RowAttrs optionally holds the instrumentation attributes of every row.
	RowAttrs [][]Attr `json:"-"`
}

// HasClass reports whether the block carries the given class.
func (b Block) HasClass(name string) bool {
	for _, c := range b.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// CellHTML returns the inner HTML recorded for a position, or "" if none.
func (b Block) CellHTML(row, col int) string {
	if row >= len(b.Content) || col >= len(b.Content[row]) {
		return ""
	}
	return b.Content[row][col]
}

// Attrs returns the attributes recorded for a row, or nil if none.
func (b Block) Attrs(row int) []Attr {
	if row >= len(b.RowAttrs) {
		return nil
	}
	return b.RowAttrs[row]
}
