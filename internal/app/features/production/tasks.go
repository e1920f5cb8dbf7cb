// internal/app/features/production/tasks.go
package production

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	taskstore "github.com/dalemusser/incharge/internal/app/store/tasks"
	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/authz"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/sanitize"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/lifecycle"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/incharge/internal/domain/sheetdate"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type taskForm struct {
	TaskName      string `json:"task_name"`
	ClientID      string `json:"client_id"`
	ClientName    string `json:"client_name"`
	Department    string `json:"department"`
	TaskType      string `json:"task_type"`
	Description   string `json:"description"`
	ReferenceLink string `json:"reference_link"`
	PostDate      string `json:"post_date"`
}

// HandleCreateTask handles POST /production/tasks.
//
// The client's department brief is copied onto the task at creation time and
// the deadline is derived as post date minus two calendar days. Neither is
// re-derived when the client or the post date changes later.
func (h *Handler) HandleCreateTask(w http.ResponseWriter, r *http.Request) {
	var form taskForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	if normalize.Name(form.TaskName) == "" {
		apierr.Validation(w, "task name is required")
		return
	}
	if normalize.ClientID(form.ClientID) == "" && normalize.Name(form.ClientName) == "" {
		apierr.Validation(w, "client id or client name is required")
		return
	}
	dept := normalize.Department(form.Department)
	if dept != "" && !lifecycle.ValidDepartment(dept) {
		apierr.Validation(w, "unknown department")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	postDate := sheetdate.Normalize(form.PostDate)

	instructions := ""
	if c, err := h.Clients.GetByClientID(ctx, form.ClientID); err == nil {
		switch dept {
		case lifecycle.DeptVideo:
			instructions = c.VideoInstructions
		case lifecycle.DeptGraphics:
			instructions = c.GraphicsInstructions
		}
		if form.ClientName == "" {
			form.ClientName = c.ClientName
		}
	} else if err != mongo.ErrNoDocuments {
		h.Log.Error("create task: client lookup failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	t, err := h.Tasks.Create(ctx, models.Task{
		TaskName:           form.TaskName,
		ClientID:           form.ClientID,
		ClientName:         form.ClientName,
		Department:         dept,
		TaskType:           form.TaskType,
		Description:        sanitize.Text(form.Description),
		ClientInstructions: sanitize.Text(instructions),
		ReferenceLink:      form.ReferenceLink,
		PostDate:           postDate,
		Deadline:           sheetdate.DeadlineFor(postDate),
		CreatedBy:          authz.ActorName(r),
	})
	if err != nil {
		if errors.Is(err, taskstore.ErrNameRequired) || errors.Is(err, taskstore.ErrNoClientKey) {
			apierr.Validation(w, err.Error())
			return
		}
		h.Log.Error("create task failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	h.Log.Info("task created", zap.String("task", t.TaskName), zap.String("id", t.ID.Hex()))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// HandleUpdateTask handles PUT /production/tasks/{id}. Editing the post date
// does not recompute the deadline.
func (h *Handler) HandleUpdateTask(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	var form taskForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	if normalize.Name(form.TaskName) == "" {
		apierr.Validation(w, "task name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	err := h.Tasks.UpdateFields(ctx, oid, taskstore.Update{
		TaskName:      form.TaskName,
		Department:    form.Department,
		TaskType:      form.TaskType,
		Description:   sanitize.Text(form.Description),
		ReferenceLink: form.ReferenceLink,
		PostDate:      sheetdate.Normalize(form.PostDate),
	})
	if err != nil {
		if errors.Is(err, taskstore.ErrNameRequired) {
			apierr.Validation(w, err.Error())
			return
		}
		h.Log.Error("update task failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"updated": true})
}

// HandleDeleteTask handles DELETE /production/tasks/{id}.
func (h *Handler) HandleDeleteTask(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathTaskID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	deleted, err := h.Tasks.SoftDelete(ctx, oid)
	if err != nil {
		h.Log.Error("delete task failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	if deleted == 0 {
		apierr.NotFound(w, "task not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
}

func (h *Handler) pathTaskID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Validation(w, "invalid task id")
		return primitive.NilObjectID, false
	}
	return oid, true
}
