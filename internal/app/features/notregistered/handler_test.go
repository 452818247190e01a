package notregistered_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jutionck/enigma-upskilling-platform/internal/app/features/authgoogle"
	"github.com/jutionck/enigma-upskilling-platform/internal/app/features/notregistered"
	"go.uber.org/zap"
)

func TestServeNotRegistered_NoFlag_RedirectsToLogin(t *testing.T) {
	h := notregistered.NewHandler("help@example.com", zap.NewNop())

	req := httptest.NewRequest("GET", "/not-registered", nil)
	rec := httptest.NewRecorder()

	h.ServeNotRegistered(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestServeNotRegistered_FlagConsumed(t *testing.T) {
	h := notregistered.NewHandler("", zap.NewNop())

	req := httptest.NewRequest("GET", "/not-registered", nil)
	req.AddCookie(&http.Cookie{Name: authgoogle.NotRegisteredCookie, Value: "some-token"})
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests - that's expected
			}
		}()
		h.ServeNotRegistered(rec, req)
	}()

	if rec.Code == http.StatusSeeOther {
		t.Fatal("flagged request should render, not redirect")
	}

	// The flag cookie must be deleted so a reload goes back to login.
	deleted := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == authgoogle.NotRegisteredCookie && c.MaxAge == -1 {
			deleted = true
		}
	}
	if !deleted {
		t.Error("expected the not-registered flag cookie to be deleted")
	}
}
