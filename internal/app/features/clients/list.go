// internal/app/features/clients/list.go
package clients

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/paging"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

type listResponse struct {
	Clients    []models.Client `json:"clients"`
	Total      int64           `json:"total"`
	HasPrev    bool            `json:"has_prev"`
	HasNext    bool            `json:"has_next"`
	PrevCursor string          `json:"prev_cursor,omitempty"`
	NextCursor string          `json:"next_cursor,omitempty"`
}

// HandleList handles GET /clients.
//
// Query params: q (name prefix, folded), status (active|disabled), before /
// after (keyset cursors on client_name_ci).
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	q := normalize.QueryParam(query.Get(r, "q"))
	statusFilter := normalize.Status(query.Get(r, "status"))
	before := query.Get(r, "before")
	after := query.Get(r, "after")

	filter := bson.M{"deleted": false}
	if statusFilter != "" {
		filter["status"] = statusFilter
	}
	if q != "" {
		qFold := text.Fold(q)
		filter["client_name_ci"] = bson.M{"$gte": qFold, "$lt": qFold + "\uffff"}
	}

	coll := h.DB.Collection("clients")

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		h.Log.Error("count clients failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	const sortField = "client_name_ci"
	find := options.Find().SetLimit(paging.LimitPlusOne())
	if before != "" {
		if c, ok := wafflemongo.DecodeCursor(before); ok {
			for k, v := range wafflemongo.KeysetWindow(sortField, "lt", c.CI, c.ID) {
				filter[k] = v
			}
		}
		find.SetSort(bson.D{{Key: sortField, Value: -1}, {Key: "_id", Value: -1}})
	} else {
		if after != "" {
			if c, ok := wafflemongo.DecodeCursor(after); ok {
				for k, v := range wafflemongo.KeysetWindow(sortField, "gt", c.CI, c.ID) {
					filter[k] = v
				}
			}
		}
		find.SetSort(bson.D{{Key: sortField, Value: 1}, {Key: "_id", Value: 1}})
	}

	cur, err := coll.Find(ctx, filter, find)
	if err != nil {
		h.Log.Error("find clients failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	defer cur.Close(ctx)

	var rows []models.Client
	if err := cur.All(ctx, &rows); err != nil {
		h.Log.Error("decode clients failed", zap.Error(err))
		apierr.Internal(w)
		return
	}

	if before != "" {
		for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
			rows[i], rows[j] = rows[j], rows[i]
		}
	}

	page := paging.TrimPage(&rows, before, after)

	resp := listResponse{
		Clients: rows,
		Total:   total,
		HasPrev: page.HasPrev,
		HasNext: page.HasNext,
	}
	if len(rows) > 0 {
		resp.PrevCursor = wafflemongo.EncodeCursor(rows[0].ClientNameCI, rows[0].ID)
		resp.NextCursor = wafflemongo.EncodeCursor(rows[len(rows)-1].ClientNameCI, rows[len(rows)-1].ID)
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
