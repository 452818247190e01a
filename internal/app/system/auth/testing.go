// internal/app/system/auth/testing.go
package auth

import "net/http"

// WithTestUser injects a SessionUser into the request context, bypassing the
// session middleware. For use by tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	return withUser(r, u)
}
