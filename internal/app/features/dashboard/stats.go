// internal/app/features/dashboard/stats.go
package dashboard

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"go.uber.org/zap"
)

type statsResponse struct {
	Clients struct {
		Active         int64 `json:"active"`
		SentToStrategy int64 `json:"sent_to_strategy"`
	} `json:"clients"`
	Tasks struct {
		Active   int64            `json:"active"`
		ByStatus map[string]int64 `json:"by_status"`
	} `json:"tasks"`
	Employees     int64 `json:"employees"`
	HandOffs      int64 `json:"hand_offs"`
	UnreadNotices int64 `json:"unread_notices"`
}

// HandleStats handles GET /dashboard/stats: the counters behind the landing
// page tiles. Counts are issued sequentially against live collections; the
// page tolerates slight skew between tiles.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	var resp statsResponse
	var err error

	if resp.Clients.Active, err = h.Clients.CountActive(ctx); err != nil {
		h.fail(w, "count clients", err)
		return
	}
	if resp.Clients.SentToStrategy, err = h.Clients.CountSentToStrategyHead(ctx); err != nil {
		h.fail(w, "count handed-off clients", err)
		return
	}
	if resp.Tasks.Active, err = h.Tasks.CountActive(ctx); err != nil {
		h.fail(w, "count tasks", err)
		return
	}

	resp.Tasks.ByStatus = make(map[string]int64)
	for _, st := range []lifecycle.Status{
		lifecycle.PendingProduction,
		lifecycle.Approved,
		lifecycle.AssignedToDepartment,
		lifecycle.InProgress,
		lifecycle.PendingClientApproval,
		lifecycle.RevisionRequired,
		lifecycle.Completed,
		lifecycle.Posted,
		lifecycle.ContactClient,
	} {
		n, err := h.Tasks.CountByStatus(ctx, st)
		if err != nil {
			h.fail(w, "count tasks by status", err)
			return
		}
		resp.Tasks.ByStatus[string(st)] = n
	}

	if resp.Employees, err = h.Employees.CountActive(ctx); err != nil {
		h.fail(w, "count employees", err)
		return
	}
	if resp.HandOffs, err = h.StrategyHead.CountActive(ctx); err != nil {
		h.fail(w, "count hand-offs", err)
		return
	}
	if resp.UnreadNotices, err = h.Notifications.CountUnread(ctx); err != nil {
		h.fail(w, "count notifications", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) fail(w http.ResponseWriter, what string, err error) {
	h.Log.Error("dashboard stats: "+what+" failed", zap.Error(err))
	apierr.Unavailable(w)
}
