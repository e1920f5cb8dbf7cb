// internal/app/features/strategyhead/routes.go
package strategyhead

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all strategy-head routes under the path where the caller
// mounts it. Typically: r.Mount("/strategy-head", strategyhead.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.HandleList)
		pr.Get("/{id}/tasks", h.HandleTasks)
		pr.Put("/{id}/stage", h.HandleStage)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
