package login_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jutionck/enigma-upskilling-platform/internal/app/features/login"
	"github.com/jutionck/enigma-upskilling-platform/internal/testutil"
	"go.uber.org/zap"
)

func TestServeLogin_AlreadySignedIn(t *testing.T) {
	h := login.NewHandler(true, zap.NewNop())

	req := testutil.NewAuthenticatedRequest("GET", "/login", testutil.MemberUser())
	rec := httptest.NewRecorder()

	h.ServeLogin(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
	}
}

func TestServeLogin_RendersForAnonymous(t *testing.T) {
	h := login.NewHandler(true, zap.NewNop())

	req := httptest.NewRequest("GET", "/login?error=invalid_state", nil)
	rec := httptest.NewRecorder()

	// Handler will try to render a template which may panic without initialized templates
	func() {
		defer func() {
			if r := recover(); r != nil {
				// Template rendering may panic in tests - that's expected
			}
		}()
		h.ServeLogin(rec, req)
	}()

	// Must not have redirected: anonymous viewers see the page.
	if rec.Code == http.StatusSeeOther {
		t.Errorf("anonymous request should not redirect, got %d", rec.Code)
	}
}
