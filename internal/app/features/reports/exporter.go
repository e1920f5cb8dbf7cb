// internal/app/features/reports/exporter.go
package reports

import (
	"encoding/csv"
	"io"

	"github.com/dalemusser/incharge/internal/domain/reportrows"
)

// RowExporter renders a header plus flat rows into an output stream.
// CSV is the only implementation today; a spreadsheet or PDF exporter would
// plug in here without touching the handlers.
type RowExporter interface {
	// ContentType is the MIME type of the rendered output.
	ContentType() string
	// Ext is the filename extension including the dot.
	Ext() string
	// Export writes the header and rows to w.
	Export(w io.Writer, header []string, rows []reportrows.Row) error
}

// csvExporter writes CSV the way spreadsheet programs expect: a UTF-8 BOM so
// Excel detects Unicode, and CRLF line endings.
type csvExporter struct{}

func (csvExporter) ContentType() string { return "text/csv; charset=utf-8" }
func (csvExporter) Ext() string         { return ".csv" }

func (csvExporter) Export(w io.Writer, header []string, rows []reportrows.Row) error {
	if _, err := w.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
