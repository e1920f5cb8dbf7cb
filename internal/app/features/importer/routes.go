// internal/app/features/importer/routes.go
package importer

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the import routes under the path where the caller mounts it.
// Typically: r.Mount("/import", importer.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Post("/", h.HandleImport)
	})

	return r
}
