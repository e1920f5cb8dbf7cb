// internal/app/features/login/handler.go
package login

import (
	"context"
	"encoding/json"
	"net/http"

	employeestore "github.com/dalemusser/incharge/internal/app/store/employees"
	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/status"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type Handler struct {
	DB         *mongo.Database
	Log        *zap.Logger
	SessionMgr *auth.Manager
	Employees  *employeestore.Store
}

func NewHandler(db *mongo.Database, sessionMgr *auth.Manager, logger *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Log:        logger,
		SessionMgr: sessionMgr,
		Employees:  employeestore.New(db),
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// HandleLogin handles POST /login.
//
// The failure message never distinguishes a missing account from a wrong
// password.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}

	email := normalize.Email(req.Email)
	if email == "" || req.Password == "" {
		apierr.Validation(w, "email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	e, err := h.Employees.GetByEmail(ctx, email)
	switch err {
	case nil:
		// found – continue
	case mongo.ErrNoDocuments:
		apierr.Validation(w, "invalid email or password")
		return
	default:
		h.Log.Error("login: employee lookup failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	if e.Deleted || e.Status != status.Active {
		h.Log.Info("login rejected for inactive employee", zap.String("employee_id", e.ID.Hex()))
		apierr.Validation(w, "invalid email or password")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(e.PasswordHash), []byte(req.Password)) != nil {
		apierr.Validation(w, "invalid email or password")
		return
	}

	u := auth.SessionUser{
		ID:    e.ID.Hex(),
		Name:  e.EmployeeName,
		Email: e.Email,
		Role:  e.Role,
	}
	if err := h.SessionMgr.SignIn(w, r, u); err != nil {
		h.Log.Error("login: session save failed", zap.Error(err))
		apierr.Internal(w)
		return
	}

	h.Log.Info("employee signed in", zap.String("employee_id", u.ID), zap.String("role", u.Role))

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(loginResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
}
