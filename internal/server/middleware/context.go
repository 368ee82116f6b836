package middleware

import (
	"context"

	"github.com/gosuda/snet/internal/session"
)

type contextKey string

const (
	ContextKeySession contextKey = "session"
	ContextKeyToken   contextKey = "session_token"
)

// WithSession attaches s and the token it was resolved from to ctx.
func WithSession(ctx context.Context, s *session.Session, token string) context.Context {
	ctx = context.WithValue(ctx, ContextKeySession, s)
	return context.WithValue(ctx, ContextKeyToken, token)
}

func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	v, ok := ctx.Value(ContextKeySession).(*session.Session)
	return v, ok && v != nil
}

func TokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(ContextKeyToken).(string)
	return v, ok && v != ""
}

// LoggedIn reports whether ctx carries a logged-in session.
func LoggedIn(ctx context.Context) bool {
	s, ok := SessionFromContext(ctx)
	return ok && s.Logged
}
