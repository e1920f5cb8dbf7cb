// internal/app/features/employees/delete.go
package employees

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/authz"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/app/system/txn"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type deleteResponse struct {
	Deleted        bool  `json:"deleted"`
	TasksReset     int64 `json:"tasks_reset"`
	TasksUnlinked  int64 `json:"tasks_unlinked"`
	ClientsCleared int64 `json:"clients_cleared"`
}

// HandleDelete handles DELETE /employees/{id}: the deletion cascade.
//
// The writes run inside one transaction so a half-finished cascade can't
// leave dangling references. Order matters: statuses are reset while the
// assignment keys still match, then the keys are cleared, then the employee
// document goes last.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	emp, err := h.Employees.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "employee not found")
		return
	}
	if err != nil {
		h.Log.Error("employee delete: load failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	var resp deleteResponse
	err = txn.WithTransaction(ctx, h.DB.Client(), h.Log, func(txCtx context.Context) error {
		reset, err := h.Tasks.ResetStatusesForEmployee(txCtx, emp)
		if err != nil {
			return err
		}
		unlinked, err := h.Tasks.ClearEmployeeAssignments(txCtx, emp)
		if err != nil {
			return err
		}
		cleared, err := h.Clients.ClearEmployeeAssignments(txCtx, emp)
		if err != nil {
			return err
		}
		if _, err := h.Employees.Delete(txCtx, oid); err != nil {
			return err
		}
		resp = deleteResponse{
			Deleted:        true,
			TasksReset:     reset,
			TasksUnlinked:  unlinked,
			ClientsCleared: cleared,
		}
		return nil
	})
	if err != nil {
		h.Log.Error("employee delete cascade failed",
			zap.String("employee_id", oid.Hex()), zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	h.Log.Info("employee deleted",
		zap.String("employee_id", oid.Hex()),
		zap.String("email", emp.Email),
		zap.Int64("tasks_reset", resp.TasksReset),
		zap.Int64("tasks_unlinked", resp.TasksUnlinked),
		zap.Int64("clients_cleared", resp.ClientsCleared),
		zap.String("actor", authz.ActorName(r)))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
