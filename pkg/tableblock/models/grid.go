// Package models defines data structures for table block decoration.
package models

// Grid is a rectangular 2-D sequence of cell text values.
// Values are already stripped of surrounding whitespace.
type Grid [][]string

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g)
}

// Cols returns the number of columns, taken from the first row.
func (g Grid) Cols() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// IsRectangular reports whether every row has the same length as the first.
func (g Grid) IsRectangular() bool {
	cols := g.Cols()
	for _, row := range g {
		if len(row) != cols {
			return false
		}
	}
	return true
}
