// internal/app/features/production/status.go
package production

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/authz"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type statusRequest struct {
	Status string `json:"status"`
}

// HandleStatus handles POST /production/tasks/{id}/status: a status change
// validated against the lifecycle graph.
func (h *Handler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	to, err := lifecycle.Parse(normalize.Status(req.Status))
	if err != nil {
		apierr.Validation(w, err.Error())
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
		h.Log.Error("status: load task failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	next, err := lifecycle.Transition(lifecycle.Status(t.Status), to)
	if err != nil {
		apierr.Validation(w, err.Error())
		return
	}

	if err := h.Tasks.SetStatus(ctx, oid, next); err != nil {
		h.Log.Error("status write failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": string(next)})
}

// HandleForceStatus handles POST /production/tasks/{id}/force-status: the
// manual-correction escape hatch. Any enum member is accepted regardless of
// the current status; the actor and both endpoints are logged.
func (h *Handler) HandleForceStatus(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	to, err := lifecycle.ForceSet(lifecycle.Status(normalize.Status(req.Status)))
	if err != nil {
		apierr.Validation(w, err.Error())
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
		h.Log.Error("force-status: load task failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	if err := h.Tasks.SetStatus(ctx, oid, to); err != nil {
		h.Log.Error("force-status write failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	h.Log.Warn("task status force-set",
		zap.String("task_id", oid.Hex()),
		zap.String("from", t.Status),
		zap.String("to", string(to)),
		zap.String("actor", authz.ActorName(r)))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": string(to)})
}
