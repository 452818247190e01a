// internal/app/features/notregistered/handler.go
package notregistered

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/features/authgoogle"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the page shown when a Google identity has no directory
// record. The page is gated by the one-time flag the OAuth callback sets:
// navigating here directly, or reloading after the first view, goes back
// to the login page instead.
type Handler struct {
	Log          *zap.Logger
	SupportEmail string
}

func NewHandler(supportEmail string, logger *zap.Logger) *Handler {
	return &Handler{
		Log:          logger,
		SupportEmail: supportEmail,
	}
}

type pageData struct {
	viewdata.BaseVM
	SupportEmail string
}

// ServeNotRegistered handles GET /not-registered.
func (h *Handler) ServeNotRegistered(w http.ResponseWriter, r *http.Request) {
	if _, err := r.Cookie(authgoogle.NotRegisteredCookie); err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	// Consume the flag so the page renders once per rejected sign-in.
	http.SetCookie(w, &http.Cookie{
		Name:     authgoogle.NotRegisteredCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	data := pageData{
		BaseVM:       viewdata.NewBaseVM(r, "Account not registered", "/login"),
		SupportEmail: h.SupportEmail,
	}

	templates.Render(w, r, "not_registered", data)
}
