// internal/app/features/clients/assign.go
package clients

import (
	"context"
	"encoding/json"
	"net/http"

	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/authz"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type assignRequest struct {
	// EmployeeID empty clears the assignment.
	EmployeeID string `json:"employee_id"`
}

// HandleAssign handles POST /clients/{id}/assign.
func (h *Handler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req assignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	c, err := h.Clients.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "client not found")
		return
	}
	if err != nil {
		h.Log.Error("get client failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	var emp *models.Employee
	if req.EmployeeID != "" {
		eid, err := primitive.ObjectIDFromHex(req.EmployeeID)
		if err != nil {
			apierr.Validation(w, "invalid employee id")
			return
		}
		emp, err = h.Employees.GetByID(ctx, eid)
		if err == mongo.ErrNoDocuments {
			apierr.NotFound(w, "employee not found")
			return
		}
		if err != nil {
			h.Log.Error("get employee failed", zap.Error(err))
			apierr.Unavailable(w)
			return
		}
		if emp.Deleted {
			apierr.Validation(w, "employee has been removed")
			return
		}
	}

	if err := h.Clients.AssignEmployee(ctx, oid, emp); err != nil {
		h.Log.Error("assign employee failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	if emp != nil {
		if err := h.Notifications.Add(ctx, models.Notification{
			Type:      notificationstore.TypeAssignment,
			Message:   emp.EmployeeName + " assigned to client " + c.ClientName,
			ClientID:  c.ClientID,
			ActorName: authz.ActorName(r),
		}); err != nil {
			h.Log.Warn("assignment notification failed", zap.Error(err))
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"assigned": emp != nil})
}
