package models

// Span is the reconciled output for one grid position.
type Span struct {
	// Value is the cell text at this position.
	Value string `json:"value"`
	// Rowspan is the number of rows the rendered cell occupies (>= 1).
	Rowspan int `json:"rowspan"`
	// Colspan is the number of columns the rendered cell occupies (>= 1).
	Colspan int `json:"colspan"`
	// Skip marks a position absorbed into an earlier cell's span.
	Skip bool `json:"skip"`
}
