// Package span computes rowspan and colspan merges for table grids.
//
// Adjacent cells with identical, non-empty text collapse into one merged
// cell. Vertical merging is applied to the first column only; horizontal
// merging applies to every row. The computation is pure: the same grid
// always yields the same spans.
package span

import (
	"fmt"
	"strings"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

// Reconcile computes the span of every position in grid.
// The grid must be rectangular with at least one row and one column.
func Reconcile(grid models.Grid) [][]models.Span {
	rows := len(grid)
	cols := len(grid[0])

	spans := make([][]models.Span, rows)
	for r := range spans {
		spans[r] = make([]models.Span, cols)
		for c := range spans[r] {
			spans[r][c] = models.Span{Value: grid[r][c], Rowspan: 1, Colspan: 1}
		}
	}

	// Vertical pass, first column only.
	for r := 0; r < rows; r++ {
		if spans[r][0].Skip || !mergeable(grid[r][0]) {
			continue
		}
		rowspan := 1
		for next := r + 1; next < rows; next++ {
			v := grid[next][0]
			if !mergeable(v) || v != grid[r][0] || spans[next][0].Skip {
				break
			}
			rowspan++
			spans[next][0].Skip = true
		}
		spans[r][0].Rowspan = rowspan
	}

	// Horizontal pass, every row.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if spans[r][c].Skip || !mergeable(grid[r][c]) {
				continue
			}
			colspan := 1
			for next := c + 1; next < cols; next++ {
				v := grid[r][next]
				if !mergeable(v) || v != grid[r][c] {
					break
				}
				colspan++
				spans[r][next].Skip = true
			}
			spans[r][c].Colspan = colspan
		}
	}

	return spans
}

// mergeable reports whether a value may take part in a merge.
// Empty and whitespace-only values never merge.
func mergeable(v string) bool {
	return strings.TrimSpace(v) != ""
}

// Flatten expands every non-skipped span into Rowspan x Colspan copies of
// its value. For grids without overlapping regions it reproduces the grid
// that was reconciled.
func Flatten(spans [][]models.Span) models.Grid {
	grid := make(models.Grid, len(spans))
	for r := range spans {
		grid[r] = make([]string, len(spans[r]))
	}
	for r, row := range spans {
		for c, s := range row {
			if s.Skip {
				continue
			}
			for dr := 0; dr < s.Rowspan && r+dr < len(grid); dr++ {
				for dc := 0; dc < s.Colspan && c+dc < len(grid[r+dr]); dc++ {
					grid[r+dr][c+dc] = s.Value
				}
			}
		}
	}
	return grid
}

// Coverage counts, for every position, how many non-skipped regions cover
// it. It returns an error describing the first position covered zero or
// more than one times, or a region that extends past the grid.
func Coverage(spans [][]models.Span) ([][]int, error) {
	counts := make([][]int, len(spans))
	for r := range spans {
		counts[r] = make([]int, len(spans[r]))
	}

	var firstErr error
	for r, row := range spans {
		for c, s := range row {
			if s.Skip {
				continue
			}
			if r+s.Rowspan > len(spans) || c+s.Colspan > len(row) {
				if firstErr == nil {
					firstErr = fmt.Errorf("span at (%d,%d) extends past %dx%d grid", r, c, len(spans), len(row))
				}
			}
			for dr := 0; dr < s.Rowspan && r+dr < len(counts); dr++ {
				for dc := 0; dc < s.Colspan && c+dc < len(counts[r+dr]); dc++ {
					counts[r+dr][c+dc]++
				}
			}
		}
	}
	if firstErr != nil {
		return counts, firstErr
	}

	for r, row := range counts {
		for c, n := range row {
			switch {
			case n == 0:
				return counts, fmt.Errorf("position (%d,%d) is not covered", r, c)
			case n > 1:
				return counts, fmt.Errorf("position (%d,%d) is covered %d times", r, c, n)
			}
		}
	}
	return counts, nil
}
