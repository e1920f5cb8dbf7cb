package csvutil

import (
	"strings"
	"testing"
)

func TestPreScanImportCSV(t *testing.T) {
	in := strings.Join([]string{
		"Client Id,Client Name,Ideas,Content,Reference,Special Notes,Department,Type,Post Date",
		"C-1,Acme,spring promo,launch copy,https://ref.example,rush,video,reel,2024-03-15",
		"C-1,Acme,second idea,,,,graphics,carousel,45000",
		",Orphan,no client id,,,,video,reel,2024-03-15",
		"C-2,,no client name,,,,video,reel,2024-03-15",
		"C-2,Bright,other dept,,,,social-media,post,2024-03-20",
	}, "\n")

	rows, err := PreScanImportCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("PreScanImportCSV failed: %v", err)
	}

	// Rows missing client id or name are silently dropped.
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	if rows[0].ClientID != "C-1" || rows[0].Department != "video" || rows[0].PostDate != "2024-03-15" {
		t.Errorf("row 0 = %+v", rows[0])
	}

	// Serial dates pass through raw; conversion happens at write time.
	if rows[1].PostDate != "45000" {
		t.Errorf("row 1 post date = %q, want raw serial", rows[1].PostDate)
	}

	// Departments outside video/graphics normalize to graphics.
	if rows[2].Department != "graphics" {
		t.Errorf("row 2 department = %q, want graphics", rows[2].Department)
	}
}

func TestPreScanImportCSV_NoHeader(t *testing.T) {
	in := "C-1,Acme,idea,,,,video,reel,2024-03-15\n"

	rows, err := PreScanImportCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("PreScanImportCSV failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("headerless sheet should keep the first row, got %d rows", len(rows))
	}
}

func TestPreScanImportCSV_Empty(t *testing.T) {
	rows, err := PreScanImportCSV(strings.NewReader(""))
	if err != nil {
		t.Fatalf("PreScanImportCSV failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestPreScanImportCSV_ShortRows(t *testing.T) {
	// Rows narrower than 9 columns must not panic; missing cells are blank.
	in := "C-1,Acme,idea\n"

	rows, err := PreScanImportCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("PreScanImportCSV failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	if rows[0].PostDate != "" || rows[0].Department != "graphics" {
		t.Errorf("short row = %+v", rows[0])
	}
}

func TestGroupByClientID(t *testing.T) {
	rows := []ImportRow{
		{ClientID: "C-2", TaskType: "a"},
		{ClientID: "C-1", TaskType: "b"},
		{ClientID: "C-2", TaskType: "c"},
	}

	order, byID := GroupByClientID(rows)
	if len(order) != 2 || order[0] != "C-2" || order[1] != "C-1" {
		t.Errorf("order = %v, want first-seen order", order)
	}
	if len(byID["C-2"]) != 2 || byID["C-2"][1].TaskType != "c" {
		t.Errorf("rows for C-2 = %+v", byID["C-2"])
	}
}
