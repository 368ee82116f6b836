package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/gosuda/snet/internal/server/middleware"
)

type SessionBody struct {
	Logged    bool       `json:"logged" doc:"Whether the caller may navigate protected pages"`
	ExpiresAt *time.Time `json:"expires_at,omitempty" doc:"Session expiry"`
}

type CreateSessionInput struct{}

type CreateSessionOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
	Body      struct {
		SessionBody
		Token string `json:"token" doc:"Session token, also set as cookie"` //nolint:gosec // G117: session response DTO
	}
}

type GetSessionInput struct{}

type GetSessionOutput struct {
	Body SessionBody
}

type DeleteSessionInput struct{}

type DeleteSessionOutput struct {
	SetCookie http.Cookie `header:"Set-Cookie"`
}

// RegisterSessionRoutes registers the session operations. They sit outside
// the login guard.
func RegisterSessionRoutes(api huma.API, sessions SessionManager, secureCookie bool) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-session",
		Method:        http.MethodPost,
		Path:          "/session",
		Summary:       "Log in and start a session",
		Tags:          []string{"Session"},
		DefaultStatus: http.StatusCreated,
	}, func(ctx context.Context, _ *CreateSessionInput) (*CreateSessionOutput, error) {
		if prev, ok := middleware.TokenFromContext(ctx); ok {
			if err := sessions.Logout(ctx, prev); err != nil {
				log.Warn().Err(err).Msg("v1: failed to revoke previous session")
			}
		}

		token, s, err := sessions.Login(ctx)
		if err != nil {
			return nil, huma.Error500InternalServerError("failed to create session", err)
		}

		out := &CreateSessionOutput{SetCookie: sessionCookie(token, sessions.TTL(), secureCookie)}
		out.Body.Logged = s.Logged
		out.Body.ExpiresAt = &s.ExpiresAt
		out.Body.Token = token
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/session",
		Summary:     "Report the current session",
		Tags:        []string{"Session"},
	}, func(ctx context.Context, _ *GetSessionInput) (*GetSessionOutput, error) {
		out := &GetSessionOutput{}
		if s, ok := middleware.SessionFromContext(ctx); ok {
			out.Body.Logged = s.Logged
			out.Body.ExpiresAt = &s.ExpiresAt
		}
		return out, nil
	})

	huma.Register(api, huma.Operation{
		OperationID:   "delete-session",
		Method:        http.MethodDelete,
		Path:          "/session",
		Summary:       "Log out",
		Tags:          []string{"Session"},
		DefaultStatus: http.StatusNoContent,
	}, func(ctx context.Context, _ *DeleteSessionInput) (*DeleteSessionOutput, error) {
		if token, ok := middleware.TokenFromContext(ctx); ok {
			if err := sessions.Logout(ctx, token); err != nil {
				return nil, huma.Error500InternalServerError("failed to end session", err)
			}
		}

		cookie := sessionCookie("", 0, secureCookie)
		cookie.MaxAge = -1
		cookie.Expires = time.Unix(0, 0)
		return &DeleteSessionOutput{SetCookie: cookie}, nil
	})
}

func sessionCookie(token string, ttl time.Duration, secure bool) http.Cookie {
	return http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
}
