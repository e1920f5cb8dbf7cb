// internal/app/features/employees/crud.go
package employees

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	employeestore "github.com/dalemusser/incharge/internal/app/store/employees"
	"github.com/dalemusser/incharge/internal/app/system/apierr"
	"github.com/dalemusser/incharge/internal/app/system/normalize"
	"github.com/dalemusser/incharge/internal/app/system/status"
	"github.com/dalemusser/incharge/internal/app/system/timeouts"
	"github.com/dalemusser/incharge/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/validate"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type employeeForm struct {
	EmployeeName string `json:"employee_name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	Status       string `json:"status"`
}

func (f *employeeForm) validate(passwordRequired bool) string {
	f.EmployeeName = normalize.Name(f.EmployeeName)
	f.Email = normalize.Email(f.Email)
	f.Role = normalize.Status(f.Role)
	f.Status = normalize.Status(f.Status)

	if f.EmployeeName == "" {
		return "employee name is required"
	}
	if !validate.SimpleEmailValid(f.Email) {
		return "a valid email is required"
	}
	if f.Role != "employee" && f.Role != "head" {
		return `role must be "employee" or "head"`
	}
	if passwordRequired && f.Password == "" {
		return "password is required"
	}
	if f.Password != "" && len(f.Password) < 8 {
		return "password must be at least 8 characters"
	}
	if f.Status != "" && !status.IsValid(f.Status) {
		return `status must be "active" or "disabled"`
	}
	return ""
}

type listResponse struct {
	Employees []models.Employee `json:"employees"`
	Total     int               `json:"total"`
}

// HandleList handles GET /employees: the full roster, ordered by name.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	emps, err := h.Employees.ListAll(ctx)
	if err != nil {
		h.Log.Error("employee list failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(listResponse{Employees: emps, Total: len(emps)})
}

// HandleGet handles GET /employees/{id}.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short)
	defer cancel()

	emp, err := h.Employees.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "employee not found")
		return
	}
	if err != nil {
		h.Log.Error("employee get failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	if emp.Deleted {
		apierr.NotFound(w, "employee not found")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(emp)
}

// HandleCreate handles POST /employees. The password is bcrypt-hashed here;
// stores never see plaintext.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var form employeeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	if msg := form.validate(true); msg != "" {
		apierr.Validation(w, msg)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
	if err != nil {
		h.Log.Error("password hash failed", zap.Error(err))
		apierr.Internal(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	emp, err := h.Employees.Create(ctx, models.Employee{
		EmployeeName: form.EmployeeName,
		Email:        form.Email,
		PasswordHash: string(hash),
		Role:         form.Role,
		Status:       form.Status,
	})
	if errors.Is(err, employeestore.ErrDuplicateEmail) {
		apierr.Validation(w, err.Error())
		return
	}
	if err != nil {
		h.Log.Error("employee create failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(emp)
}

// HandleUpdate handles PUT /employees/{id}. A blank password leaves the
// current hash untouched.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var form employeeForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		apierr.Validation(w, "invalid request body")
		return
	}
	if msg := form.validate(false); msg != "" {
		apierr.Validation(w, msg)
		return
	}
	if form.Status == "" {
		form.Status = status.Active
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	if _, err := h.Employees.GetByID(ctx, oid); err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "employee not found")
		return
	} else if err != nil {
		h.Log.Error("employee update: load failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	taken, err := h.Employees.EmailExistsForOther(ctx, form.Email, oid)
	if err != nil {
		h.Log.Error("employee update: email check failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}
	if taken {
		apierr.Validation(w, employeestore.ErrDuplicateEmail.Error())
		return
	}

	upd := employeestore.Update{
		EmployeeName: form.EmployeeName,
		Email:        form.Email,
		Role:         form.Role,
		Status:       form.Status,
	}
	if form.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), bcrypt.DefaultCost)
		if err != nil {
			h.Log.Error("password hash failed", zap.Error(err))
			apierr.Internal(w)
			return
		}
		upd.PasswordHash = string(hash)
	}

	if err := h.Employees.UpdateFields(ctx, oid, upd); err != nil {
		if errors.Is(err, employeestore.ErrDuplicateEmail) {
			apierr.Validation(w, err.Error())
			return
		}
		h.Log.Error("employee update failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	emp, err := h.Employees.GetByID(ctx, oid)
	if err != nil {
		h.Log.Error("employee reload failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(emp)
}

// HandleToggleStatus handles POST /employees/{id}/toggle-status. A disabled
// employee's next request signs them out; their assignments stay in place.
func (h *Handler) HandleToggleStatus(w http.ResponseWriter, r *http.Request) {
	oid, ok := h.pathID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium)
	defer cancel()

	emp, err := h.Employees.GetByID(ctx, oid)
	if err == mongo.ErrNoDocuments {
		apierr.NotFound(w, "employee not found")
		return
	}
	if err != nil {
		h.Log.Error("toggle status: load failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	next := status.Toggle(emp.Status)
	if err := h.Employees.SetStatus(ctx, oid, next); err != nil {
		h.Log.Error("toggle status failed", zap.Error(err))
		apierr.Unavailable(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": next})
}

func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierr.Validation(w, "invalid employee id")
		return primitive.NilObjectID, false
	}
	return oid, true
}
