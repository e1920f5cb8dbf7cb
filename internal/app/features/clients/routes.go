// internal/app/features/clients/routes.go
package clients

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all client routes under the path where the caller mounts it.
// Typically: r.Mount("/clients", clients.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.HandleList)
		pr.Post("/", h.HandleCreate)
		pr.Get("/{id}", h.HandleGet)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Post("/{id}/toggle-status", h.HandleToggleStatus)
		pr.Delete("/{id}", h.HandleDelete)
		pr.Post("/{id}/assign", h.HandleAssign)

		pr.Post("/{id}/handoff", h.HandleHandoff)
		pr.Post("/handoff/bulk", h.HandleBulkHandoff)
	})

	return r
}
