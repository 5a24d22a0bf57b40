package parser

import (
	"fmt"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid extracts a rectangular text grid from a sheet.
// When area is non-nil the grid is cropped to it; otherwise it is cropped
// to the bounding box of non-empty cells. An empty sheet yields a nil grid.
func ExtractGrid(f *excelize.File, sheetName string, area *models.Area) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	if area != nil {
		// Area is 1-based inclusive; bounds are 0-based inclusive.
		return cropGrid(rows, area.R1-1, area.R2-1, area.C1-1, area.C2-1), nil
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil, nil
	}
	return cropGrid(rows, minRow, maxRow, minCol, maxCol), nil
}

// ExtractBlocks extracts one block per sheet. Only the named sheet is read
// when sheetName is non-empty. Sheets without data are omitted.
func ExtractBlocks(f *excelize.File, sheetName string, usePrintArea bool) ([]models.Block, error) {
	sheets := f.GetSheetList()
	if sheetName != "" {
		if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
			return nil, fmt.Errorf("sheet %q not found", sheetName)
		}
		sheets = []string{sheetName}
	}

	var printAreas map[string][]models.Area
	if usePrintArea {
		var err error
		if printAreas, err = ExtractPrintAreas(f); err != nil {
			return nil, err
		}
	}

	var blocks []models.Block
	for _, name := range sheets {
		var area *models.Area
		if areas := printAreas[name]; len(areas) > 0 {
			area = &areas[0]
		}
		grid, err := ExtractGrid(f, name, area)
		if err != nil {
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
		if grid.Rows() == 0 || grid.Cols() == 0 {
			continue
		}
		blocks = append(blocks, models.Block{Name: name, Grid: grid})
	}
	return blocks, nil
}
