// internal/app/features/employees/routes.go
package employees

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all employee routes under the path where the caller mounts
// it. Typically: r.Mount("/employees", employees.Routes(handler))
//
// Reading the roster only needs a session; mutations are head-only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.HandleList)
		pr.Get("/{id}", h.HandleGet)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole("head"))

		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Post("/{id}/toggle-status", h.HandleToggleStatus)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
