package main

import (
	"bytes"
	"fmt"

	"github.com/aemdemos/xwalk-qantas/pkg/tableblock"
	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/models"
	"github.com/aemdemos/xwalk-qantas/pkg/tableblock/output"
)

func write(buf *bytes.Buffer, doc *models.Document, format tableblock.Format, pretty bool) error {
	switch format {
	case tableblock.FormatHTML:
		return output.RenderHTML(buf, doc.Tables)
	case tableblock.FormatJSON:
		data, err := output.ToJSON(doc, pretty)
		if err != nil {
			return err
		}
		buf.Write(data)
		buf.WriteByte('\n')
		return nil
	case tableblock.FormatXLSX:
		return output.WriteXLSX(buf, doc.Tables)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
