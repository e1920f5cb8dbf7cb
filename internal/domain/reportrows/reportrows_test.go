package reportrows

import (
	"reflect"
	"testing"

	"github.com/dalemusser/incharge/internal/domain/grouping"
	"github.com/dalemusser/incharge/internal/domain/models"
)

func TestFromGroups(t *testing.T) {
	groups := []grouping.Group{
		{
			ClientID:   "C-1",
			ClientName: "Acme",
			Tasks: []models.Task{
				{
					TaskName:             "Reel edit",
					Department:           "video",
					TaskType:             "reel",
					Status:               "in-progress",
					PostDate:             "2024-03-15",
					Deadline:             "2024-03-13",
					AssignedEmployeeName: "Priya",
				},
			},
		},
		{ClientID: "C-2", ClientName: "Empty"}, // zero tasks → zero rows
		{
			ClientID:   "C-3",
			ClientName: "Bright",
			Tasks:      []models.Task{{TaskName: "Carousel", Department: "graphics", Status: "approved", PostDate: "2024-03-20", Deadline: "2024-03-18"}},
		},
	}

	rows := FromGroups(groups)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	want := Row{"C-1", "Acme", "Reel edit", "video", "reel", "in-progress", "2024-03-15", "2024-03-13", "Priya"}
	if !reflect.DeepEqual(rows[0], want) {
		t.Errorf("row[0] = %v, want %v", rows[0], want)
	}
	if rows[1][0] != "C-3" {
		t.Errorf("group order not preserved: %v", rows[1])
	}

	for i, row := range rows {
		if len(row) != len(Columns) {
			t.Errorf("row %d has %d values for %d columns", i, len(row), len(Columns))
		}
	}
}
