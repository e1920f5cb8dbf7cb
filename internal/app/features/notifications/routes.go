// internal/app/features/notifications/routes.go
package notifications

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the notification routes under the path where the caller
// mounts it. Typically: r.Mount("/notifications", notifications.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.HandleList)
		pr.Post("/{id}/read", h.HandleMarkRead)
		pr.Post("/read-all", h.HandleMarkAllRead)
	})

	return r
}
