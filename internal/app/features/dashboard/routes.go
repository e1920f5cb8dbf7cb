// internal/app/features/dashboard/routes.go
package dashboard

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the dashboard routes under the path where the caller mounts
// it. Typically: r.Mount("/dashboard", dashboard.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/stats", h.HandleStats)
	})

	return r
}
