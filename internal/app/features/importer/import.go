// internal/app/features/importer/import.go
package importer

import (
	"context"
	"encoding/json"
	"net/http"

	notificationstore "github.com/dalemusser/incharge/internal/app/store/notifications"
	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/authz"
	"github.com/dalemusser/incharge/internal/app/system/csvutil"
	"github.com/dalemusser/incharge/internal/app/system/sanitize"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/incharge/internal/domain/sheetdate"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type importResponse struct {
	BatchID        string `json:"batch_id"`
	RowsRead       int    `json:"rows_read"`
	ClientsMatched int    `json:"clients_matched"`
	ClientsCreated int    `json:"clients_created"`
	TasksCreated   int    `json:"tasks_created"`
	Failed         int    `json:"failed"`
}

// HandleImport handles POST /import: a multipart CSV upload of the content
// sheet.
//
// The file is pre-scanned in full before any write, so a malformed upload is
// rejected with zero side effects. After the scan, inserts are per-row and
// independent: one bad row is counted and skipped, never rolled back. The
// whole batch shares one correlation id.
func (h *Handler) HandleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, csvutil.MaxUploadSize)
	if err := r.ParseMultipartForm(csvutil.MaxUploadSize); err != nil {
		apierr.Validation(w, "upload too large or malformed")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		apierr.Validation(w, `missing "file" upload`)
		return
	}
	defer file.Close()

	rows, err := csvutil.PreScanImportCSV(file)
	if err != nil {
		apierr.Validation(w, "could not parse CSV: "+err.Error())
		return
	}
	if len(rows) == 0 {
		apierr.Validation(w, "no importable rows found")
		return
	}
	if len(rows) > csvutil.MaxRows {
		apierr.Validation(w, "sheet exceeds the row limit")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch)
	defer cancel()

	batchID := uuid.NewString()
	actor := authz.ActorName(r)
	resp := importResponse{BatchID: batchID, RowsRead: len(rows)}

	order, byID := csvutil.GroupByClientID(rows)
	for _, clientID := range order {
		group := byID[clientID]

		c, err := h.Clients.GetByClientID(ctx, clientID)
		if err == mongo.ErrNoDocuments {
			created, cerr := h.Clients.Create(ctx, models.Client{
				ClientID:           clientID,
				ClientName:         group[0].ClientName,
				SentToStrategyHead: false,
			})
			if cerr != nil {
				h.Log.Error("import: client create failed",
					zap.String("client_id", clientID), zap.Error(cerr))
				resp.Failed += len(group)
				continue
			}
			c = &created
			resp.ClientsCreated++
		} else if err != nil {
			h.Log.Error("import: client lookup failed",
				zap.String("client_id", clientID), zap.Error(err))
			resp.Failed += len(group)
			continue
		} else {
			resp.ClientsMatched++
		}

		for _, row := range group {
			postDate := sheetdate.Normalize(row.PostDate)
			task := models.Task{
				TaskName:      row.Content,
				ClientID:      c.ClientID,
				ClientName:    c.ClientName,
				Department:    row.Department,
				TaskType:      row.TaskType,
				Description:   sanitize.Text(row.Ideas),
				ReferenceLink: row.ReferenceLink,
				PostDate:      postDate,
				Deadline:      sheetdate.DeadlineFor(postDate),
				ImportBatchID: batchID,
				CreatedBy:     actor,
			}
			if task.TaskName == "" {
				task.TaskName = row.Ideas
			}
			switch row.Department {
			case lifecycle.DeptVideo:
				task.ClientInstructions = c.VideoInstructions
			case lifecycle.DeptGraphics:
				task.ClientInstructions = c.GraphicsInstructions
			}
			if row.SpecialNotes != "" {
				task.Description = sanitize.Text(row.Ideas + "\n" + row.SpecialNotes)
			}

			if _, err := h.Tasks.Create(ctx, task); err != nil {
				h.Log.Error("import: task insert failed",
					zap.String("client_id", clientID), zap.Error(err))
				resp.Failed++
				continue
			}
			resp.TasksCreated++
		}
	}

	if err := h.Notifications.Add(ctx, models.Notification{
		Type:      notificationstore.TypeImport,
		Message:   "bulk import finished",
		ActorName: actor,
	}); err != nil {
		h.Log.Warn("import notification failed", zap.Error(err))
	}

	h.Log.Info("bulk import finished",
		zap.String("batch_id", batchID),
		zap.Int("rows_read", resp.RowsRead),
		zap.Int("clients_created", resp.ClientsCreated),
		zap.Int("tasks_created", resp.TasksCreated),
		zap.Int("failed", resp.Failed))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
