package middleware

import (
	"net/http"
)

// LoginPath is where unauthenticated navigations are sent.
const LoginPath = "/"

// RequireLogin redirects navigations without a logged-in session to the login
// page. It must run after LoadSession.
func RequireLogin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !LoggedIn(r.Context()) {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireLoginAPI is the API counterpart of RequireLogin and answers 401.
func RequireLoginAPI() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !LoggedIn(r.Context()) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"title":"Unauthorized","status":401,"detail":"login required"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
