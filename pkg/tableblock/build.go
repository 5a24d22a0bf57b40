package tableblock

import (
	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/span"
)

// BuildTable reconciles a block's grid and classifies its rows.
// The first row becomes the header row when header is true and the block
// does not carry the no-header class.
func BuildTable(b models.Block, header bool) (models.Table, error) {
	if b.Grid.Rows() == 0 || b.Grid.Cols() == 0 {
		return models.Table{}, ErrEmptyGrid
	}
	if !b.Grid.IsRectangular() {
		return models.Table{}, ErrRaggedGrid
	}

	header = header && !b.HasClass(NoHeaderClass)
	spans := span.Reconcile(b.Grid)

	t := models.Table{
		Name:     b.Name,
		Header:   header,
		RowCount: b.Grid.Rows(),
		ColCount: b.Grid.Cols(),
		Rows:     make([]models.Row, 0, len(spans)),
	}
	for r, row := range spans {
		isHeader := r == 0 && header
		out := models.Row{
			Header: isHeader,
			Attrs:  b.Attrs(r),
			Cells:  make([]models.Cell, 0, len(row)),
		}
		for c, sp := range row {
			if sp.Skip {
				continue
			}
			cell := models.Cell{
				Value:   sp.Value,
				HTML:    b.CellHTML(r, c),
				Row:     r,
				Col:     c,
				Rowspan: sp.Rowspan,
				Colspan: sp.Colspan,
				Header:  isHeader,
			}
			if isHeader {
				cell.Scope = "column"
			}
			out.Cells = append(out.Cells, cell)
		}
		t.Rows = append(t.Rows, out)
	}
	return t, nil
}

// mergedPositions counts the positions absorbed into another cell's span.
func mergedPositions(t models.Table) int {
	covered := 0
	for _, row := range t.Rows {
		covered += len(row.Cells)
	}
	return t.RowCount*t.ColCount - covered
}
