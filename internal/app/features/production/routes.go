// internal/app/features/production/routes.go
package production

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all production-board routes under the path where the caller
// mounts it. Typically: r.Mount("/production", production.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/board", h.HandleBoard)

		pr.Post("/tasks", h.HandleCreateTask)
		pr.Put("/tasks/{id}", h.HandleUpdateTask)
		pr.Delete("/tasks/{id}", h.HandleDeleteTask)

		pr.Post("/tasks/{id}/assign", h.HandleAssign)
		pr.Post("/tasks/assign/bulk", h.HandleBulkAssign)

		pr.Post("/tasks/{id}/status", h.HandleStatus)
		pr.Post("/tasks/{id}/force-status", h.HandleForceStatus)
	})

	return r
}
