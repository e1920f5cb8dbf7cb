// internal/app/features/clients/handoff.go
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

// handoffOutcome classifies one hand-off attempt.
type handoffOutcome int

const (
	handoffSent handoffOutcome = iota
	handoffAlreadySent
	handoffNotFound
	handoffFailed
)

// handoffOne performs the hand-off pair for a single client: snapshot record
// first, then the client flag. The pair is deliberately not transactional;
// the repair worker reconciles a record whose flag write never landed.
// Already-sent is an outcome, not an error: the caller reports it.
func (h *Handler) handoffOne(ctx context.Context, id primitive.ObjectID, actor string) handoffOutcome {
	c, err := h.Clients.GetByID(ctx, id)
	if err == mongo.ErrNoDocuments {
		return handoffNotFound
	}
	if err != nil {
		h.Log.Error("handoff: load client failed", zap.String("id", id.Hex()), zap.Error(err))
		return handoffFailed
	}
	if c.Deleted {
		return handoffNotFound
	}
	if c.SentToStrategyHead {
		return handoffAlreadySent
	}

	taskCount, err := h.Tasks.CountForClientKeys(ctx, c.ClientID, c.ClientName)
	if err != nil {
		h.Log.Error("handoff: task count failed", zap.String("id", id.Hex()), zap.Error(err))
		return handoffFailed
	}

	if _, err := h.StrategyHead.CreateFromClient(ctx, c, int(taskCount), actor); err != nil {
		h.Log.Error("handoff: snapshot write failed", zap.String("id", id.Hex()), zap.Error(err))
		return handoffFailed
	}

	if err := h.Clients.MarkSentToStrategyHead(ctx, c.ID, actor); err != nil {
		// The snapshot exists; the repair worker will set the flag.
		h.Log.Error("handoff: flag write failed after snapshot; repair worker will reconcile",
			zap.String("id", id.Hex()), zap.Error(err))
		return handoffFailed
	}

	if err := h.Notifications.Add(ctx, models.Notification{
		Type:      notificationstore.TypeHandOff,
		Message:   "client " + c.ClientName + " sent to strategy head",
		ClientID:  c.ClientID,
		ActorName: actor,
	}); err != nil {
		h.Log.Warn("handoff notification failed", zap.Error(err))
	}

	return handoffSent
}

// HandleHandoff handles POST /clients/{id}/handoff.
func (h *Handler) HandleHandoff(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	switch h.handoffOne(ctx, oid, authz.ActorName(r)) {
	case handoffSent:
		_ = json.NewEncoder(w).Encode(map[string]string{"result": "sent"})
	case handoffAlreadySent:
		_ = json.NewEncoder(w).Encode(map[string]string{"result": "already_sent"})
	case handoffNotFound:
		apierr.NotFound(w, "client not found")
	default:
		apierr.Unavailable(w)
	}
}

type bulkHandoffRequest struct {
	ClientIDs []string `json:"client_ids"`
}

type bulkHandoffResponse struct {
	Sent        int `json:"sent"`
	AlreadySent int `json:"already_sent"`
	NotFound    int `json:"not_found"`
	Failed      int `json:"failed"`
}

// HandleBulkHandoff handles POST /clients/handoff/bulk. Each client is tried
// independently; one failure never blocks the rest, and the caller gets the
// aggregate summary.
func (h *Handler) HandleBulkHandoff(w http.ResponseWriter, r *http.Request) {
	var req bulkHandoffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	if len(req.ClientIDs) == 0 {
		apierr.Validation(w, "no clients selected")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch)
	defer cancel()

	actor := authz.ActorName(r)

	var resp bulkHandoffResponse
	for _, idHex := range req.ClientIDs {
		oid, err := primitive.ObjectIDFromHex(idHex)
		if err != nil {
			resp.NotFound++
			continue
		}
		switch h.handoffOne(ctx, oid, actor) {
		case handoffSent:
			resp.Sent++
		case handoffAlreadySent:
			resp.AlreadySent++
		case handoffNotFound:
			resp.NotFound++
		default:
			resp.Failed++
		}
	}

	h.Log.Info("bulk hand-off finished",
		zap.Int("sent", resp.Sent),
		zap.Int("already_sent", resp.AlreadySent),
		zap.Int("not_found", resp.NotFound),
		zap.Int("failed", resp.Failed))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
