// internal/app/features/strategyhead/records.go
package strategyhead

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type listResponse struct {
	Records []models.StrategyHeadClient `json:"records"`
	Total   int                         `json:"total"`
}

// HandleList handles GET /strategy-head: every live hand-off record, most
// recent first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	recs, err := h.StrategyHead.ListAll(ctx)
	if err != nil {
		h.Log.Error("strategy-head list failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{Records: recs, Total: len(recs)})
}

type tasksResponse struct {
	Record models.StrategyHeadClient `json:"record"`
	Tasks  []models.Task             `json:"tasks"`
}

// HandleTasks handles GET /strategy-head/{id}/tasks: the live tasks behind a
// hand-off record, matched by the snapshotted client id or client name. The
// record's TaskCount is the count at hand-off time and may differ from what
// this returns.
func (h *Handler) HandleTasks(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	rec, err := h.StrategyHead.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "record not found")
		return
	}
	if err != nil {
		h.Log.Error("strategy-head: load record failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	if rec.Deleted {
		apierr.NotFound(w, "record not found")
		return
	}

	tasks, err := h.Tasks.ListForClientKeys(ctx, rec.ClientID, rec.ClientName)
	if err != nil {
		h.Log.Error("strategy-head: list tasks failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tasksResponse{Record: *rec, Tasks: tasks})
}

type stageRequest struct {
	Stage string `json:"stage"`
}

// HandleStage handles PUT /strategy-head/{id}/stage. The stage is free text;
// new records start at information-gathering.
func (h *Handler) HandleStage(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var req stageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	stage := normalize.Name(req.Stage)
	if stage == "" {
		apierr.Validation(w, "stage is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	rec, err := h.StrategyHead.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "record not found")
		return
	}
	if err != nil {
		h.Log.Error("stage: load record failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	if rec.Deleted {
		apierr.NotFound(w, "record not found")
		return
	}

	if err := h.StrategyHead.SetStage(ctx, oid, stage); err != nil {
		h.Log.Error("stage write failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"stage": stage})
}

// HandleDelete handles DELETE /strategy-head/{id}: a soft delete of the
// hand-off record. The source client keeps its sent flag.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	n, err := h.StrategyHead.SoftDelete(ctx, oid)
	if err != nil {
		h.Log.Error("strategy-head delete failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	if n == 0 {
		apierr.NotFound(w, "record not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Validation(w, "invalid record id")
		return primitive.NilObjectID, false
	}
	return oid, true
}
