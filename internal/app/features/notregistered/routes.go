// internal/app/features/notregistered/routes.go
package notregistered

import "github.com/go-chi/chi/v5"

// Routes returns the router for the not-registered page.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeNotRegistered)
	return r
}
