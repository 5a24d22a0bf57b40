package parser

import (
	"strings"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

// cropGrid copies the inclusive 0-based region of rows into a rectangular
// grid, padding cells missing from ragged rows with empty strings.
func cropGrid(rows [][]string, minRow, maxRow, minCol, maxCol int) models.Grid {
	if minRow < 0 || minCol < 0 || maxRow < minRow || maxCol < minCol {
		return nil
	}

	grid := make(models.Grid, 0, maxRow-minRow+1)
	for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
		var row []string
		if rowIdx < len(rows) {
			row = rows[rowIdx]
		}
		out := make([]string, maxCol-minCol+1)
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			out[colIdx-minCol] = strings.TrimSpace(row[colIdx])
		}
		grid = append(grid, out)
	}
	return grid
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when there is no data.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if strings.TrimSpace(cell) != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}
