// internal/app/features/clients/crud.go
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	clientstore "github.com/dalemusser/incharge/internal/app/store/clients"
	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/sanitize"
	"github.com/dalemusser/incharge/internal/app/system/status"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/validate"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type clientForm struct {
	ClientID             string `json:"client_id"`
	ClientName           string `json:"client_name"`
	ContactNumber        string `json:"contact_number"`
	Email                string `json:"email"`
	VideoInstructions    string `json:"video_instructions"`
	GraphicsInstructions string `json:"graphics_instructions"`
	Status               string `json:"status"`
}

func (f *clientForm) validate() string {
	if normalize.Name(f.ClientName) == "" {
		return "client name is required"
	}
	if n := normalize.ContactNumber(f.ContactNumber); n != "" && !normalize.ValidContactNumber(n) {
		return "contact number must be 10 digits"
	}
	if e := normalize.Email(f.Email); e != "" && !validate.SimpleEmailValid(e) {
		return "email address is not valid"
	}
	return ""
}

// HandleCreate handles POST /clients.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var form clientForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	if msg := form.validate(); msg != "" {
		apierr.Validation(w, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	c, err := h.Clients.Create(ctx, models.Client{
		ClientID:             form.ClientID,
		ClientName:           form.ClientName,
		ContactNumber:        form.ContactNumber,
		Email:                form.Email,
		VideoInstructions:    sanitize.Text(form.VideoInstructions),
		GraphicsInstructions: sanitize.Text(form.GraphicsInstructions),
		Status:               normalize.Status(form.Status),
	})
	if err != nil {
		if errors.Is(err, clientstore.ErrNameRequired) {
			apierr.Validation(w, err.Error())
			return
		}
		h.Log.Error("create client failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	h.Log.Info("client created", zap.String("client_id", c.ClientID), zap.String("id", c.ID.Hex()))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(c)
}

// HandleGet handles GET /clients/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	c, err := h.Clients.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "client not found")
		return
	}
	if err != nil {
		h.Log.Error("get client failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(c)
}

// HandleUpdate handles PUT /clients/{id}.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var form clientForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	if msg := form.validate(); msg != "" {
		apierr.Validation(w, msg)
		return
	}
	st := normalize.Status(form.Status)
	if st == "" {
		st = status.Active
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	err := h.Clients.UpdateFields(ctx, oid, clientstore.Update{
		ClientName:           form.ClientName,
		ClientID:             form.ClientID,
		ContactNumber:        form.ContactNumber,
		Email:                form.Email,
		VideoInstructions:    sanitize.Text(form.VideoInstructions),
		GraphicsInstructions: sanitize.Text(form.GraphicsInstructions),
		Status:               st,
	})
	if err != nil {
		if errors.Is(err, clientstore.ErrNameRequired) {
			apierr.Validation(w, err.Error())
			return
		}
		h.Log.Error("update client failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]bool{"updated": true})
}

// HandleToggleStatus handles POST /clients/{id}/toggle-status.
func (h *Handler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	c, err := h.Clients.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "client not found")
		return
	}
	if err != nil {
		h.Log.Error("get client failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	next := status.Toggle(c.Status)
	if err := h.Clients.SetStatus(ctx, oid, next); err != nil {
		h.Log.Error("toggle client status failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": next})
}

// HandleDelete handles DELETE /clients/{id}. The client is soft-deleted and
// every task matched by the dual-key rule is soft-deleted with it. The two
// writes are independent; a partial failure leaves tasks visible, which the
// board then drops because the seed client is gone.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long)
	defer cancel()

	c, err := h.Clients.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "client not found")
		return
	}
	if err != nil {
		h.Log.Error("get client failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	deleted, err := h.Clients.SoftDelete(ctx, oid)
	if err != nil {
		h.Log.Error("delete client failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	if deleted == 0 {
		apierr.NotFound(w, "client not found")
		return
	}

	tasksDeleted, err := h.Tasks.SoftDeleteForClientKeys(ctx, c.ClientID, c.ClientName)
	if err != nil {
		h.Log.Error("cascade task delete failed",
			zap.String("client_id", c.ClientID), zap.Error(err))
	}

	h.Log.Info("client deleted",
		zap.String("client_id", c.ClientID),
		zap.Int64("tasks_deleted", tasksDeleted))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]int64{"tasks_deleted": tasksDeleted})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Validation(w, "invalid client id")
		return primitive.NilObjectID, false
	}
	return oid, true
}
