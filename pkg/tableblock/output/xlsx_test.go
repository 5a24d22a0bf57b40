package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXLSX(&buf, []models.Table{sampleTable(), sampleTable()}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"table-1", "table-1 (2)"}, f.GetSheetList())

	v, err := f.GetCellValue("table-1", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Fares", v)
	v, err = f.GetCellValue("table-1", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Sydney", v)

	merges, err := f.GetMergeCells("table-1")
	require.NoError(t, err)
	ranges := make(map[string]string)
	for _, m := range merges {
		ranges[m.GetStartAxis()] = m.GetEndAxis()
	}
	assert.Equal(t, map[string]string{"A1": "B1", "A2": "A3"}, ranges)
}

func TestUniqueSheetName(t *testing.T) {
	used := make(map[string]bool)
	assert.Equal(t, "Fares", uniqueSheetName("Fares", 0, used))
	assert.Equal(t, "fares (2)", uniqueSheetName("fares", 1, used))
	assert.Equal(t, "table-3", uniqueSheetName("", 2, used))
	assert.Equal(t, "a_b_c", uniqueSheetName("a/b[c", 3, used))

	long := uniqueSheetName("abcdefghijklmnopqrstuvwxyz0123456789", 4, used)
	assert.Len(t, long, maxSheetNameLen)
}
