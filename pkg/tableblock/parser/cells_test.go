package parser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

// saveAndOpen round-trips f through a temp file so reads see saved data.
func saveAndOpen(t *testing.T, f *excelize.File) *excelize.File {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.SaveAs(tmpFile))

	f2, err := excelize.OpenFile(tmpFile)
	require.NoError(t, err)
	t.Cleanup(func() { f2.Close() })
	return f2
}

func TestExtractGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "B2", "Region")
	f.SetCellValue(sheetName, "C2", "City")
	f.SetCellValue(sheetName, "B3", "NSW")
	f.SetCellValue(sheetName, "C3", "Sydney")
	f.SetCellValue(sheetName, "B4", "  NSW  ")

	grid, err := ExtractGrid(saveAndOpen(t, f), sheetName, nil)
	require.NoError(t, err)

	assert.Equal(t, models.Grid{
		{"Region", "City"},
		{"NSW", "Sydney"},
		{"NSW", ""},
	}, grid)
	assert.True(t, grid.IsRectangular())
}

func TestExtractGridWithArea(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "outside")
	f.SetCellValue(sheetName, "B2", "in")
	f.SetCellValue(sheetName, "C3", 42)

	area := &models.Area{R1: 2, C1: 2, R2: 4, C2: 3}
	grid, err := ExtractGrid(saveAndOpen(t, f), sheetName, area)
	require.NoError(t, err)

	assert.Equal(t, models.Grid{
		{"in", ""},
		{"", "42"},
		{"", ""},
	}, grid)
}

func TestExtractGridEmptySheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	grid, err := ExtractGrid(f, "Sheet1", nil)
	require.NoError(t, err)
	assert.Nil(t, grid)
}

func TestExtractBlocks(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	f.SetCellValue("Sheet1", "A1", "a")
	_, err := f.NewSheet("Empty")
	require.NoError(t, err)
	_, err = f.NewSheet("Fares")
	require.NoError(t, err)
	f.SetCellValue("Fares", "A1", "Route")
	f.SetCellValue("Fares", "B1", "Fare")

	opened := saveAndOpen(t, f)

	blocks, err := ExtractBlocks(opened, "", false)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Sheet1", blocks[0].Name)
	assert.Equal(t, "Fares", blocks[1].Name)
	assert.Equal(t, models.Grid{{"Route", "Fare"}}, blocks[1].Grid)

	blocks, err = ExtractBlocks(opened, "Fares", false)
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.Equal(t, "Fares", blocks[0].Name)

	_, err = ExtractBlocks(opened, "Missing", false)
	assert.Error(t, err)
}

func TestFindDataBounds(t *testing.T) {
	tests := []struct {
		name                           string
		rows                           [][]string
		minRow, maxRow, minCol, maxCol int
	}{
		{"empty", nil, -1, -1, -1, -1},
		{"blank cells only", [][]string{{"", " "}}, -1, -1, -1, -1},
		{"single", [][]string{{"", ""}, {"", "x"}}, 1, 1, 1, 1},
		{"ragged", [][]string{{"", "a"}, {"b"}, {"", "", "", "c"}}, 0, 2, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			minRow, maxRow, minCol, maxCol := findDataBounds(tt.rows)
			assert.Equal(t, []int{tt.minRow, tt.maxRow, tt.minCol, tt.maxCol},
				[]int{minRow, maxRow, minCol, maxCol})
		})
	}
}

func TestCropGridPadsRaggedRows(t *testing.T) {
	rows := [][]string{{"a", "b", "c"}, {"d"}}
	assert.Equal(t, models.Grid{{"a", "b", "c"}, {"d", "", ""}}, cropGrid(rows, 0, 1, 0, 2))
	assert.Nil(t, cropGrid(rows, -1, -1, -1, -1))
}
