// internal/app/features/production/board.go
package production

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/filterquery"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/grouping"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

// HandleBoard handles GET /production/board.
//
// The board is derived per request from store snapshots: clients seed groups
// only once handed off to the strategy head, tasks are filtered by window,
// category, and refinement, then attached to their group by the dual-key
// match. The derivation is pure, so the same snapshots always render the
// same board.
func (h *Handler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	f, err := filterquery.ParseFilter(r)
	if err != nil {
		apierr.Validation(w, err.Error())
		return
	}

	page := 1
	if raw := query.Get(r, "page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	clients, err := h.Clients.ListAll(ctx)
	if err != nil {
		h.Log.Error("board: list clients failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	tasks, err := h.Tasks.ListAll(ctx)
	if err != nil {
		h.Log.Error("board: list tasks failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	groups := grouping.Derive(tasks, clients, f)
	result := grouping.Paginate(groups, page)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}
