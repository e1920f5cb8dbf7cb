package reports

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/incharge/internal/domain/reportrows"
)

func TestCSVExporter_BOMAndCRLF(t *testing.T) {
	var buf bytes.Buffer
	rows := []reportrows.Row{
		{"C-001", "Acme", "March reel", "video", "reel", "approved", "2024-03-15", "2024-03-13", "Jane"},
	}

	if err := (csvExporter{}).Export(&buf, reportrows.Columns, rows); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	out := buf.Bytes()
	if !bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}) {
		t.Error("output missing UTF-8 BOM")
	}
	if !bytes.Contains(out, []byte("\r\n")) {
		t.Error("output missing CRLF line endings")
	}

	body := string(out[3:])
	lines := strings.Split(strings.TrimRight(body, "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2 (header + row)", len(lines))
	}
	if !strings.HasPrefix(lines[0], "client_id,client_name") {
		t.Errorf("header = %q, want client columns first", lines[0])
	}
	if !strings.Contains(lines[1], "March reel") {
		t.Errorf("row = %q, want task name", lines[1])
	}
}

func TestExportFilenameFromQuery(t *testing.T) {
	tests := []struct {
		name   string
		target string
		want   string
	}{
		{"explicit", "/reports/tasks.csv?filename=march.csv", "march.csv"},
		{"extension appended", "/reports/tasks.csv?filename=march", "march.csv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if got := exportFilenameFromQuery(r, "tasks", ".csv"); got != tt.want {
				t.Errorf("exportFilenameFromQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExportFilenameFromQuery_Default(t *testing.T) {
	r := httptest.NewRequest("GET", "/reports/tasks.csv", nil)
	got := exportFilenameFromQuery(r, "tasks", ".csv")
	if !strings.HasPrefix(got, "tasks_") || !strings.HasSuffix(got, ".csv") {
		t.Errorf("exportFilenameFromQuery() = %q, want tasks_<timestamp>.csv", got)
	}
}
