package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
)

const pageHTML = `<!DOCTYPE html>
<html><body><main>
<div class="section">
  <div class="table no-header">
    <div data-aue-resource="urn:row1" data-aue-type="component" id="keep">
      <div> Region </div>
      <div><p><strong>Sydney</strong></p></div>
    </div>
    <div>
      <div>Region</div>
      <div>Melbourne</div>
    </div>
  </div>
  <div class="tables-wrapper"><p>not a block</p></div>
  <div class="table">
    <div><div>Header 1</div><div>Header 2</div></div>
  </div>
</div>
</main></body></html>`

func TestParseHTML(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(pageHTML))
	require.NoError(t, err)
	require.NotNil(t, doc.Root)
	require.Len(t, doc.Blocks, 2)

	first := doc.Blocks[0].Block
	assert.Equal(t, "table-1", first.Name)
	assert.Equal(t, []string{"table", "no-header"}, first.Classes)
	assert.Equal(t, models.Grid{{"Region", "Sydney"}, {"Region", "Melbourne"}}, first.Grid)
	assert.Equal(t, "<p><strong>Sydney</strong></p>", first.Content[0][1])
	assert.Equal(t, " Region ", first.Content[0][0])
	assert.Equal(t, []models.Attr{
		{Name: "data-aue-resource", Value: "urn:row1"},
		{Name: "data-aue-type", Value: "component"},
	}, first.RowAttrs[0])
	assert.Empty(t, first.RowAttrs[1])

	second := doc.Blocks[1].Block
	assert.Equal(t, "table-2", second.Name)
	assert.Equal(t, models.Grid{{"Header 1", "Header 2"}}, second.Grid)
	assert.Equal(t, "div", doc.Blocks[1].Node.Data)
}

func TestParseHTMLNoBlocks(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(`<div class="cards"><div><div>x</div></div></div>`))
	require.NoError(t, err)
	assert.Empty(t, doc.Blocks)
}

func TestParseHTMLRaggedBlock(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(
		`<div class="table"><div><div>a</div><div>b</div></div><div><div>c</div></div></div>`))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.False(t, doc.Blocks[0].Block.Grid.IsRectangular())
}

func TestInstrumentation(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(
		`<div class="table"><div data-richtext-prop="text" data-other="x" class="row"><div>a</div></div></div>`))
	require.NoError(t, err)
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, []models.Attr{{Name: "data-richtext-prop", Value: "text"}}, doc.Blocks[0].Block.RowAttrs[0])
}
