package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gosuda/snet/internal/session"
)

// SessionStore persists console sessions in Redis with a per-key TTL.
type SessionStore struct {
	client *redis.Client
}

var _ session.Store = (*SessionStore)(nil) //nolint:gochecknoglobals // compile-time check

// New connects to Redis and verifies the connection.
func New(ctx context.Context, addr, password string, db int) (*SessionStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis.New: ping: %w", err)
	}

	return &SessionStore{client: client}, nil
}

// NewWithClient wraps an existing client.
func NewWithClient(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) Close() error {
	if err := s.client.Close(); err != nil {
		return fmt.Errorf("redis.SessionStore.Close: %w", err)
	}
	return nil
}

func (s *SessionStore) Save(ctx context.Context, sess *session.Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("redis.SessionStore.Save: marshal: %w", err)
	}

	if err := s.client.Set(ctx, SessionKey(sess.ID), payload, ttl).Err(); err != nil {
		return fmt.Errorf("redis.SessionStore.Save: %w", err)
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	payload, err := s.client.Get(ctx, SessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrNoSession
		}
		return nil, fmt.Errorf("redis.SessionStore.Get: %w", err)
	}

	var sess session.Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("redis.SessionStore.Get: unmarshal: %w", err)
	}
	return &sess, nil
}

func (s *SessionStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, SessionKey(id)).Err(); err != nil {
		return fmt.Errorf("redis.SessionStore.Delete: %w", err)
	}
	return nil
}

// SessionKey returns the Redis key holding a session.
func SessionKey(id uuid.UUID) string {
	return "session:" + id.String()
}
