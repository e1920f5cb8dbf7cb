// Package reportrows projects filtered task groups into flat export rows.
// Formatting (CSV today, spreadsheet/PDF behind the same interface) is the
// exporter's concern; this package only decides columns and values.
package reportrows

import "github.com/dalemusser/incharge/internal/domain/grouping"

// Columns is the header row for task exports, in output order.
var Columns = []string{
	"client_id",
	"client_name",
	"task_name",
	"department",
	"task_type",
	"status",
	"post_date",
	"deadline",
	"assigned_to",
}

// Row is one export row, values aligned with Columns.
type Row []string

// FromGroups flattens groups into export rows, preserving group order.
// Clients with zero tasks produce no rows; the report is a task listing,
// not the board view.
func FromGroups(groups []grouping.Group) []Row {
	var rows []Row
	for _, g := range groups {
		for _, t := range g.Tasks {
			rows = append(rows, Row{
				g.ClientID,
				g.ClientName,
				t.TaskName,
				t.Department,
				t.TaskType,
				t.Status,
				t.PostDate,
				t.Deadline,
				t.AssignedEmployeeName,
			})
		}
	}
	return rows
}
