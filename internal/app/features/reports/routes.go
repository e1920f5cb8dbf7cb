// internal/app/features/reports/routes.go
package reports

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the report routes under the path where the caller mounts it.
// Typically: r.Mount("/reports", reports.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/tasks.csv", h.ServeTasksCSV)
	})

	return r
}
