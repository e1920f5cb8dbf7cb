// internal/app/features/calendar/routes.go
package calendar

import (
	"github.com/dalemusser/incharge/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all calendar routes under the path where the caller mounts
// it. Typically: r.Mount("/calendar", calendar.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)

		pr.Get("/", h.HandleMonth)
		pr.Post("/tasks/{id}/approve", h.HandleApprove)
		pr.Post("/send-to-strategy", h.HandleSendToStrategy)
	})

	return r
}
