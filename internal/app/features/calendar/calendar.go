// internal/app/features/calendar/calendar.go
package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/authz"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// monthKey reads the month query parameter, defaulting to the current month.
func monthKey(r *http.Request) (string, bool) {
	key := normalize.QueryParam(query.Get(r, "month"))
	if key == "" {
		return time.Now().Format("2006-01"), true
	}
	if _, err := time.Parse("2006-01", key); err != nil {
		return "", false
	}
	return key, true
}

type monthResponse struct {
	Month string        `json:"month"`
	Tasks []models.Task `json:"tasks"`
}

// HandleMonth handles GET /calendar?month=YYYY-MM: every task admitted to
// the calendar whose post date falls in the month.
func (h *Handler) HandleMonth(w http.ResponseWriter, r *http.Request) {
	key, ok := monthKey(r)
	if !ok {
		apierr.Validation(w, "invalid month: want YYYY-MM")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	tasks, err := h.Tasks.ListForMonth(ctx, key)
	if err != nil {
		h.Log.Error("calendar: list month failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	admitted := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AddedToCalendar {
			admitted = append(admitted, t)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(monthResponse{Month: key, Tasks: admitted})
}

// HandleApprove handles POST /calendar/tasks/{id}/approve. Approval is the
// only operation that admits a task to the calendar: it moves
// pending-production to approved and stamps the approver.
func (h *Handler) HandleApprove(w http.ResponseWriter, r *http.Request) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Validation(w, "invalid task id")
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
		h.Log.Error("approve: load task failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	if t.Deleted {
		apierr.NotFound(w, "task not found")
		return
	}

	if _, err := lifecycle.Transition(lifecycle.Status(t.Status), lifecycle.Approved); err != nil {
		apierr.Validation(w, err.Error())
		return
	}

	actor := authz.ActorName(r)
	if err := h.Tasks.ApproveForCalendar(ctx, oid, actor); err != nil {
		h.Log.Error("approve write failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": string(lifecycle.Approved)})
}

type sendToStrategyResponse struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// HandleSendToStrategy handles POST /calendar/send-to-strategy?month=YYYY-MM.
//
// Every approved, calendar-admitted task in the month is handed back to
// strategy: flagged SentToStrategy and moved to contact-client. Writes are
// independent; partial failure is reported, never rolled back.
func (h *Handler) HandleSendToStrategy(w http.ResponseWriter, r *http.Request) {
	key, ok := monthKey(r)
	if !ok {
		apierr.Validation(w, "invalid month: want YYYY-MM")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch)
	defer cancel()

	tasks, err := h.Tasks.ListForMonth(ctx, key)
	if err != nil {
		h.Log.Error("send-to-strategy: list month failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	actor := authz.ActorName(r)
	var resp sendToStrategyResponse
	for _, t := range tasks {
		if !t.AddedToCalendar || t.Status != string(lifecycle.Approved) {
			continue
		}
		if err := h.Tasks.MarkSentToStrategy(ctx, t.ID, actor); err != nil {
			h.Log.Error("send-to-strategy: write failed",
				zap.String("task_id", t.ID.Hex()), zap.Error(err))
			resp.Failed++
			continue
		}
		resp.Sent++
	}

	if resp.Sent > 0 {
		if err := h.Notifications.Add(ctx, models.Notification{
			Type:      notificationstore.TypeCalendarSend,
			Message:   key + " calendar sent to strategy",
			ActorName: actor,
		}); err != nil {
			h.Log.Warn("calendar-send notification failed", zap.Error(err))
		}
	}

	h.Log.Info("calendar sent to strategy",
		zap.String("month", key), zap.Int("sent", resp.Sent), zap.Int("failed", resp.Failed))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
