// internal/app/features/notifications/feed.go
package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type feedResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Unread        int64                 `json:"unread"`
}

// HandleList handles GET /notifications?limit=N: the feed, unread first.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	var limit int64
	if raw := query.Get(r, "limit"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	ns, err := h.Notifications.List(ctx, limit)
	if err != nil {
		h.Log.Error("notification list failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	unread, err := h.Notifications.CountUnread(ctx)
	if err != nil {
		h.Log.Error("notification count failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(feedResponse{Notifications: ns, Unread: unread})
}

// HandleMarkRead handles POST /notifications/{id}/read. Marking an
// already-read notification again is a no-op, not an error.
func (h *Handler) HandleMarkRead(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Validation(w, "invalid notification id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	if _, err := h.Notifications.MarkRead(ctx, oid); err != nil {
		h.Log.Error("mark read failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"read": true})
}

// HandleMarkAllRead handles POST /notifications/read-all.
func (h *Handler) HandleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	n, err := h.Notifications.MarkAllRead(ctx)
	if err != nil {
		h.Log.Error("mark all read failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{"marked": n})
}
