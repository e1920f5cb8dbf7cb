// internal/app/features/production/assign.go
package production

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/authz"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type assignRequest struct {
	Department string `json:"department"`
	EmployeeID string `json:"employee_id"`
}

// HandleAssign handles POST /production/tasks/{id}/assign: stamps the
// department (and optionally an employee) and moves the task to
// assigned-to-department.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	dept := normalize.Department(req.Department)
	if !lifecycle.ValidDepartment(dept) {
		apierr.Validation(w, "unknown department")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	t, err := h.Tasks.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "task not found")
		return
	}
	if err != nil {
		h.Log.Error("assign: load task failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	emp, ok := h.loadEmployee(ctx, w, req.EmployeeID)
	if !ok {
		return
	}

	actor := authz.ActorName(r)
	if err := h.Tasks.AssignToDepartment(ctx, oid, dept, emp, actor); err != nil {
		h.Log.Error("assign task failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	h.notifyAssignment(ctx, t, emp, actor)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": string(lifecycle.AssignedToDepartment)})
}

type bulkAssignRequest struct {
	TaskIDs    []string `json:"task_ids"`
	EmployeeID string   `json:"employee_id"`
}

type bulkAssignResponse struct {
	Assigned int `json:"assigned"`
	Failed   int `json:"failed"`
}

// countMissingDepartment is the bulk-assign validation gate: every selected
// task must already carry a department before any write happens.
func countMissingDepartment(tasks []models.Task) int {
	n := 0
	for _, t := range tasks {
		if t.Department == "" {
			n++
		}
	}
	return n
}

// HandleBulkAssign handles POST /production/tasks/assign/bulk.
//
// Validation is all-or-nothing: if any selected task is missing, deleted, or
// has no department, the whole call is rejected with zero writes. Execution
// is per-item: once validation passes, each task is written independently
// and one failure doesn't roll back the others.
func (h *Handler) HandleBulkAssign(w http.ResponseWriter, r *http.Request) {
	var req bulkAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	if len(req.TaskIDs) == 0 {
		apierr.Validation(w, "no tasks selected")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch)
	defer cancel()

	tasks := make([]models.Task, 0, len(req.TaskIDs))
	for _, idHex := range req.TaskIDs {
		oid, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			apierr.Validation(w, fmt.Sprintf("invalid task id %q", idHex))
			return
		}
		t, err := h.Tasks.GetByID(ctx, oid)
		if err == mongo.ErrNoDocuments {
			apierr.Validation(w, fmt.Sprintf("task %s not found", idHex))
			return
		}
		if err != nil {
			h.Log.Error("bulk assign: load task failed", zap.Error(err))
			apierr.Unavailable(w)
			return
		}
		if t.Deleted {
			apierr.Validation(w, fmt.Sprintf("task %s has been deleted", idHex))
			return
		}
		tasks = append(tasks, *t)
	}

	if missing := countMissingDepartment(tasks); missing > 0 {
		apierr.Validation(w, fmt.Sprintf("%d selected task(s) have no department; assign departments first", missing))
		return
	}

	emp, ok := h.loadEmployee(ctx, w, req.EmployeeID)
	if !ok {
		return
	}

	actor := authz.ActorName(r)
	var resp bulkAssignResponse
	for _, t := range tasks {
		if err := h.Tasks.AssignToDepartment(ctx, t.ID, t.Department, emp, actor); err != nil {
			h.Log.Error("bulk assign: write failed", zap.String("task_id", t.ID.Hex()), zap.Error(err))
			resp.Failed++
			continue
		}
		h.notifyAssignment(ctx, &t, emp, actor)
		resp.Assigned++
	}

	h.Log.Info("bulk assign finished",
		zap.Int("assigned", resp.Assigned), zap.Int("failed", resp.Failed))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

// loadEmployee resolves an optional employee id, writing the error response
// itself. ok=false means a response has been written.
func (h *Handler) loadEmployee(ctx context.Context, w http.ResponseWriter, idHex string) (*models.Employee, bool) {
	if idHex == "" {
		return nil, true
	}
	eid, err := primitive.ObjectIDFromHex(idHex)
	if err != nil {
		apierr.Validation(w, "invalid employee id")
		return nil, false
	}
	emp, err := h.Employees.GetByID(ctx, eid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "employee not found")
		return nil, false
	}
	if err != nil {
		h.Log.Error("load employee failed", zap.Error(err))
		apierr.Unavailable(w)
		return nil, false
	}
	if emp.Deleted {
		apierr.Validation(w, "employee has been removed")
		return nil, false
	}
	return emp, true
}

func (h *Handler) notifyAssignment(ctx context.Context, t *models.Task, emp *models.Employee, actor string) {
	if emp == nil {
		return
	}
	if err := h.Notifications.Add(ctx, models.Notification{
		Type:      notificationstore.TypeAssignment,
		Message:   emp.EmployeeName + " assigned to task " + t.TaskName,
		ClientID:  t.ClientID,
		TaskID:    &t.ID,
		ActorName: actor,
	}); err != nil {
		h.Log.Warn("assignment notification failed", zap.Error(err))
	}
}
