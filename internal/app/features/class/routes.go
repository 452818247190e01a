// internal/app/features/class/routes.go
package class

import (
	"github.com/go-chi/chi/v5"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/auth"
	"github.com/jutionck/enigma-upskilling-platform/internal/domain/models"
)

// Routes returns the router for the class page. Viewing requires a signed-in
// user; submitting a summary requires the member role so admins stay
// read-only.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.ServeClass)

	r.Group(func(r chi.Router) {
		r.Use(sm.RequireRole(models.RoleUser))
		r.Post("/summaries", h.ServeSubmitSummary)
	})

	return r
}
