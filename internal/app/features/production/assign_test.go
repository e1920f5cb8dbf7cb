package production

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/incharge/internal/testutil"
	"go.uber.org/zap"
)

func TestCountMissingDepartment(t *testing.T) {
	tests := []struct {
		name  string
		tasks []models.Task
		want  int
	}{
		{
			name:  "empty selection",
			tasks: nil,
			want:  0,
		},
		{
			name: "all departments set",
			tasks: []models.Task{
				{TaskName: "a", Department: "video"},
				{TaskName: "b", Department: "graphics"},
			},
			want: 0,
		},
		{
			name: "some missing",
			tasks: []models.Task{
				{TaskName: "a", Department: "video"},
				{TaskName: "b"},
				{TaskName: "c"},
			},
			want: 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countMissingDepartment(tt.tasks); got != tt.want {
				t.Errorf("countMissingDepartment() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestHandleBulkAssign(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	h := NewHandler(db, zap.NewNop())

	emp := fx.CreateEmployee(ctx, "Dana Reyes", "dana@example.com", "employee")
	reel := fx.CreateTask(ctx, "C-001", "Acme", "March reel", "2024-03-10")
	static := fx.CreateTask(ctx, "C-001", "Acme", "March static", "2024-03-12")

	body := fmt.Sprintf(`{"task_ids":[%q,%q],"employee_id":%q}`,
		reel.ID.Hex(), static.ID.Hex(), emp.ID.Hex())
	req := httptest.NewRequest("POST", "/production/tasks/assign/bulk", strings.NewReader(body))
	req = testutil.WithUser(req, testutil.HeadUser())
	w := testutil.NewRecorder()
	h.HandleBulkAssign(w.ResponseRecorder, req)
	w.AssertStatus(t, 200)

	var resp bulkAssignResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Assigned != 2 || resp.Failed != 0 {
		t.Errorf("assigned/failed = %d/%d, want 2/0", resp.Assigned, resp.Failed)
	}

	for _, task := range []models.Task{reel, static} {
		got, err := h.Tasks.GetByID(ctx, task.ID)
		if err != nil {
			t.Fatalf("GetByID() error = %v", err)
		}
		if got.Status != string(lifecycle.AssignedToDepartment) {
			t.Errorf("task %q status = %q, want %q", task.TaskName, got.Status, lifecycle.AssignedToDepartment)
		}
		if got.AssignedEmployeeName != "Dana Reyes" {
			t.Errorf("task %q assignee = %q, want %q", task.TaskName, got.AssignedEmployeeName, "Dana Reyes")
		}
	}
}

func TestHandleBulkAssign_RejectsWhenDepartmentMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx := testutil.TestContext(t)
	fx := testutil.NewFixtures(t, db)
	h := NewHandler(db, zap.NewNop())

	ready := fx.CreateTask(ctx, "C-001", "Acme", "March reel", "2024-03-10")
	bare, err := h.Tasks.Create(ctx, models.Task{
		TaskName: "March static",
		ClientID: "C-001",
		PostDate: "2024-03-12",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	body := fmt.Sprintf(`{"task_ids":[%q,%q]}`, ready.ID.Hex(), bare.ID.Hex())
	req := httptest.NewRequest("POST", "/production/tasks/assign/bulk", strings.NewReader(body))
	req = testutil.WithUser(req, testutil.HeadUser())
	w := testutil.NewRecorder()
	h.HandleBulkAssign(w.ResponseRecorder, req)
	w.AssertStatus(t, 400)

	// The whole call is rejected with zero writes; even the task that would
	// have passed on its own stays untouched.
	got, err := h.Tasks.GetByID(ctx, ready.ID)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Status != string(lifecycle.PendingProduction) {
		t.Errorf("status = %q, want %q", got.Status, lifecycle.PendingProduction)
	}
	if got.AssignedAt != nil || got.AssignedEmployeeID != nil {
		t.Error("task was written despite the rejected call")
	}
}
