// internal/app/system/csvutil/importsheet.go
package csvutil

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/domain/lifecycle"
)

// ImportRow is a normalized row of the bulk-import sheet. Columns are
// positional: ClientId, ClientName, Ideas, Content, ReferenceLink,
// SpecialNotes, Department, Type, PostDate (0–8).
type ImportRow struct {
	ClientID      string
	ClientName    string
	Ideas         string
	Content       string
	ReferenceLink string
	SpecialNotes  string
	Department    string
	TaskType      string
	PostDate      string // raw cell: serial number or date string
}

// PreScanImportCSV reads all rows from r, skips a header row if present, and
// returns the normalized rows. It never writes to a DB; it's safe to call
// before any mutations.
//
// Rows missing a client id or client name are silently dropped — the sheets
// this ingests routinely carry note rows and separators. Departments outside
// video/graphics are normalized to graphics; that is the documented default
// for the import path, not an error.
func PreScanImportCSV(r io.Reader) ([]ImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	first, ferr := reader.Read()
	if ferr == io.EOF {
		return nil, nil
	}
	if ferr != nil {
		return nil, ferr
	}

	var raw [][]string
	if isImportHeader(first) {
		// header detected → skip
	} else {
		raw = append(raw, first)
	}
	for {
		rec, e := reader.Read()
		if e == io.EOF {
			break
		}
		if e != nil || len(rec) == 0 {
			continue
		}
		raw = append(raw, rec)
	}

	var rows []ImportRow
	for _, rec := range raw {
		row := normalizeImportRow(rec)
		if row.ClientID == "" || row.ClientName == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func isImportHeader(rec []string) bool {
	if len(rec) < 2 {
		return false
	}
	c0 := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(rec[0]), " ", ""))
	c1 := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(rec[1]), " ", ""))
	return (c0 == "clientid" || c0 == "client_id") && (c1 == "clientname" || c1 == "client_name")
}

func normalizeImportRow(rec []string) ImportRow {
	col := func(i int) string {
		if i < len(rec) {
			return strings.TrimSpace(rec[i])
		}
		return ""
	}

	dept := normalize.Department(col(6))
	if dept != lifecycle.DeptVideo && dept != lifecycle.DeptGraphics {
		dept = lifecycle.DeptGraphics
	}

	return ImportRow{
		ClientID:      normalize.ClientID(col(0)),
		ClientName:    normalize.Name(col(1)),
		Ideas:         col(2),
		Content:       col(3),
		ReferenceLink: col(4),
		SpecialNotes:  col(5),
		Department:    dept,
		TaskType:      col(7),
		PostDate:      col(8),
	}
}

// GroupByClientID groups rows by client id, preserving first-seen order of
// ids and row order within each id.
func GroupByClientID(rows []ImportRow) (order []string, byID map[string][]ImportRow) {
	byID = make(map[string][]ImportRow)
	for _, row := range rows {
		if _, seen := byID[row.ClientID]; !seen {
			order = append(order, row.ClientID)
		}
		byID[row.ClientID] = append(byID[row.ClientID], row)
	}
	return order, byID
}
