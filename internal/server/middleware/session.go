package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/gosuda/snet/internal/session"
)

// CookieName is the cookie carrying the session token.
const CookieName = "snet_session"

// SessionResolver turns a token into a live session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*session.Session, error)
}

// LoadSession attaches the caller's session to the request context when the
// request carries a valid token. It never rejects a request.
func LoadSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractToken(r)
			if tok == "" {
				next.ServeHTTP(w, r)
				return
			}

			s, err := resolver.Resolve(r.Context(), tok)
			if err != nil {
				if !errors.Is(err, session.ErrNoSession) {
					log.Warn().Err(err).Msg("middleware: session lookup failed")
				}
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s, tok)))
		})
	}
}

// extractToken prefers the Authorization header over the cookie.
func extractToken(r *http.Request) string {
	if tok := extractBearer(r); tok != "" {
		return tok
	}
	if c, err := r.Cookie(CookieName); err == nil {
		return c.Value
	}
	return ""
}

func extractBearer(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) > 7 && strings.EqualFold(auth[:7], "bearer ") {
		return auth[7:]
	}
	return ""
}
