// Package session replaces the browser-local "logged" flag with an explicit
// session object. Sessions are referenced by signed tokens and persisted in a
// Store.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrNoSession is returned when a token does not resolve to a live session.
var ErrNoSession = errors.New("session: not found") //nolint:gochecknoglobals // sentinel error

const issuer = "snet"

// Session is the navigation context of one console user.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Logged    bool      `json:"logged"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Store persists sessions.
type Store interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type claims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// Manager issues, resolves and revokes session tokens.
type Manager struct {
	store  Store
	secret string
	ttl    time.Duration
	now    func() time.Time
}

// NewManager creates a Manager signing tokens with secret. Sessions live for ttl.
func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Login creates a logged-in session and returns its token.
func (m *Manager) Login(ctx context.Context) (string, *Session, error) {
	now := m.now()
	s := &Session{
		ID:        uuid.New(),
		Logged:    true,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}

	if err := m.store.Save(ctx, s, m.ttl); err != nil {
		return "", nil, fmt.Errorf("session.Manager.Login: %w", err)
	}

	token, err := m.sign(s)
	if err != nil {
		return "", nil, fmt.Errorf("session.Manager.Login: %w", err)
	}

	return token, s, nil
}

// Resolve returns the session referenced by token. Invalid, expired and
// revoked tokens yield ErrNoSession.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	id, err := m.parse(token)
	if err != nil {
		return nil, fmt.Errorf("session.Manager.Resolve: %w", err)
	}

	s, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("session.Manager.Resolve: %w", err)
	}

	if !s.ExpiresAt.IsZero() && !m.now().Before(s.ExpiresAt) {
		return nil, fmt.Errorf("session.Manager.Resolve: %w", ErrNoSession)
	}

	return s, nil
}

// Logout revokes the session referenced by token. Unknown sessions are not an
// error.
func (m *Manager) Logout(ctx context.Context, token string) error {
	id, err := m.parse(token)
	if err != nil {
		return nil //nolint:nilerr // nothing to revoke
	}

	if err := m.store.Delete(ctx, id); err != nil && !errors.Is(err, ErrNoSession) {
		return fmt.Errorf("session.Manager.Logout: %w", err)
	}
	return nil
}

func (m *Manager) sign(s *Session) (string, error) {
	c := claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.CreatedAt),
			ExpiresAt: jwt.NewNumericDate(s.ExpiresAt),
			Issuer:    issuer,
		},
		SessionID: s.ID.String(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(m.secret))
	if err != nil {
		return "", fmt.Errorf("sign: %w", err)
	}
	return signed, nil
}

func (m *Manager) parse(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrNoSession
	}

	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(_ *jwt.Token) (any, error) {
		return []byte(m.secret), nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrNoSession
	}

	id, err := uuid.Parse(c.SessionID)
	if err != nil {
		return uuid.Nil, ErrNoSession
	}
	return id, nil
}
