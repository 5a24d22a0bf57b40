package models

// Cell is one rendered cell: a non-skipped grid position with its spans.
type Cell struct {
	// Value is the cell text.
	Value string `json:"value"`
	// HTML is the cell's inner HTML (empty when the source carried text only).
	HTML string `json:"html,omitempty"`
	// Row is the 0-based grid row of the cell's top-left position.
	Row int `json:"row"`
	// Col is the 0-based grid column of the cell's top-left position.
	Col int `json:"col"`
	// Rowspan is the number of rows the cell occupies.
	Rowspan int `json:"rowspan"`
	// Colspan is the number of columns the cell occupies.
	Colspan int `json:"colspan"`
	// Header marks a th cell.
	Header bool `json:"header,omitempty"`
	// Scope is the th scope attribute ("column" for header cells).
	Scope string `json:"scope,omitempty"`
}

// Row is one rendered table row.
type Row struct {
	// Header marks a row placed in thead.
	Header bool `json:"header,omitempty"`
	// Attrs are the instrumentation attributes moved from the source row.
	Attrs []Attr `json:"attrs,omitempty"`
	// Cells are the non-skipped cells of the row, in column order.
	Cells []Cell `json:"cells"`
}

// Table is a reconciled table ready for rendering.
type Table struct {
	// Name identifies the table within its source.
	Name string `json:"name"`
	// Header reports whether the first row is rendered as a header.
	Header bool `json:"header"`
	// RowCount is the number of visual rows.
	RowCount int `json:"row_count"`
	// ColCount is the number of visual columns.
	ColCount int `json:"col_count"`
	// Rows holds the rendered rows. A row may have no cells when every
	// position was absorbed by a span.
	Rows []Row `json:"rows"`
}

// Document is the set of tables decorated from one source.
type Document struct {
	// Source is the input file name (no path).
	Source string `json:"source"`
	// Tables holds the decorated tables in source order.
	Tables []Table `json:"tables"`
}
