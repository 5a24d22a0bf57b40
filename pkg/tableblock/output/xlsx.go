package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

// maxSheetNameLen is Excel's sheet name length limit.
const maxSheetNameLen = 31

// WriteXLSX writes one sheet per table to w. Each cell's value is placed at
// its top-left grid position and spans larger than one position become
// merged ranges. Header rows are bold.
func WriteXLSX(w io.Writer, tables []models.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	used := make(map[string]bool)
	for i, t := range tables {
		sheet := uniqueSheetName(t.Name, i, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}

		if err := writeTable(f, sheet, t, bold); err != nil {
			return fmt.Errorf("table %q: %w", t.Name, err)
		}
	}

	return f.Write(w)
}

func writeTable(f *excelize.File, sheet string, t models.Table, headerStyle int) error {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			topLeft, err := excelize.CoordinatesToCellName(cell.Col+1, cell.Row+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, topLeft, cell.Value); err != nil {
				return err
			}

			bottomRight := topLeft
			if cell.Rowspan > 1 || cell.Colspan > 1 {
				bottomRight, err = excelize.CoordinatesToCellName(cell.Col+cell.Colspan, cell.Row+cell.Rowspan)
				if err != nil {
					return err
				}
				if err := f.MergeCell(sheet, topLeft, bottomRight); err != nil {
					return err
				}
			}
			if cell.Header {
				if err := f.SetCellStyle(sheet, topLeft, bottomRight, headerStyle); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// uniqueSheetName derives a valid, unused sheet name from a table name.
func uniqueSheetName(name string, index int, used map[string]bool) string {
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(`:\/?*[]`, r) {
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))
	if name == "" {
		name = fmt.Sprintf("table-%d", index+1)
	}
	if len([]rune(name)) > maxSheetNameLen {
		name = string([]rune(name)[:maxSheetNameLen])
	}

	candidate := name
	for n := 2; used[strings.ToLower(candidate)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		base := []rune(name)
		if len(base)+len(suffix) > maxSheetNameLen {
			base = base[:maxSheetNameLen-len(suffix)]
		}
		candidate = string(base) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
