package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		wantSheet string
		wantAreas []models.Area
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.Area{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'Fare Table'!$B$2:$C$3", "Fare Table", []models.Area{{R1: 2, C1: 2, R2: 3, C2: 3}}},
		{
			"Sheet1!$A$1:$B$2,Sheet1!$D$4:$E$5",
			"Sheet1",
			[]models.Area{{R1: 1, C1: 1, R2: 2, C2: 2}, {R1: 4, C1: 4, R2: 5, C2: 5}},
		},
		{"Sheet1!A1", "Sheet1", nil},
		{"", "", nil},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			sheet, areas := parsePrintAreaReference(tt.ref)
			assert.Equal(t, tt.wantSheet, sheet)
			assert.Equal(t, tt.wantAreas, areas)
		})
	}
}

func TestParseRangeToAreaInvalid(t *testing.T) {
	assert.Nil(t, parseRangeToArea("$A$1"))
	assert.Nil(t, parseRangeToArea("1A:B2"))
}
