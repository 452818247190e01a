// internal/app/features/login/handler.go
package login

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/auth"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the sign-in page. Actual authentication happens in the
// Google OAuth feature; this page just offers the button and reports
// failures passed back through the error query parameter.
type Handler struct {
	Log           *zap.Logger
	GoogleEnabled bool
}

func NewHandler(googleEnabled bool, logger *zap.Logger) *Handler {
	return &Handler{
		Log:           logger,
		GoogleEnabled: googleEnabled,
	}
}

type loginPageData struct {
	viewdata.BaseVM
	Error         string
	ReturnURL     string
	GoogleEnabled bool
}

// errorMessages maps error codes from the OAuth flow to user-facing text.
// Unknown codes fall back to a generic message so internals never leak.
var errorMessages = map[string]string{
	"google_denied":         "Google sign-in was cancelled or denied.",
	"google_not_configured": "Google sign-in is not available right now.",
	"invalid_state":         "The sign-in attempt expired. Please try again.",
	"invalid_code":          "The sign-in attempt was incomplete. Please try again.",
	"token_exchange":        "Could not complete sign-in with Google. Please try again.",
	"user_info":             "Could not read your Google profile. Please try again.",
	"account_disabled":      "Your account has been disabled. Contact an administrator.",
	"session":               "Could not start your session. Please try again.",
	"internal":              "Something went wrong. Please try again.",
}

// ServeLogin handles GET /login.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	// Signed-in viewers don't need the login page.
	if _, ok := auth.CurrentUser(r); ok {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	var errMsg string
	if code := query.Get(r, "error"); code != "" {
		msg, known := errorMessages[code]
		if !known {
			msg = errorMessages["internal"]
		}
		errMsg = msg
		h.Log.Debug("login page shown with error", zap.String("code", code))
	}

	data := loginPageData{
		BaseVM:        viewdata.NewBaseVM(r, "Sign in", "/"),
		Error:         errMsg,
		ReturnURL:     query.Get(r, "return"),
		GoogleEnabled: h.GoogleEnabled,
	}

	templates.Render(w, r, "login", data)
}
