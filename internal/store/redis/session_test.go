package redis_test

import (
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gosuda/snet/internal/session"
	redisstore "github.com/gosuda/snet/internal/store/redis"
)

func newTestStore(t *testing.T) (*redisstore.SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redisstore.NewWithClient(client), mr
}

func TestSessionKey(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")

	t.Run("happy path", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "session:aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", redisstore.SessionKey(id))
	})

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()

		got := redisstore.SessionKey(uuid.New())
		assert.True(t, strings.HasPrefix(got, "session:"), "expected prefix 'session:', got %q", got)
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("connects", func(t *testing.T) {
		t.Parallel()

		mr := miniredis.RunT(t)
		store, err := redisstore.New(t.Context(), mr.Addr(), "", 0)
		require.NoError(t, err)
		assert.NoError(t, store.Close())
	})

	t.Run("unreachable", func(t *testing.T) {
		t.Parallel()

		mr := miniredis.RunT(t)
		addr := mr.Addr()
		mr.Close()

		_, err := redisstore.New(t.Context(), addr, "", 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "redis.New: ping")
	})
}

func TestSessionStore_SaveGetDelete(t *testing.T) {
	t.Parallel()

	store, mr := newTestStore(t)
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := &session.Session{
		ID:        uuid.New(),
		Logged:    true,
		CreatedAt: created,
		ExpiresAt: created.Add(time.Hour),
	}

	require.NoError(t, store.Save(t.Context(), s, time.Hour))
	assert.True(t, mr.Exists(redisstore.SessionKey(s.ID)))
	assert.Equal(t, time.Hour, mr.TTL(redisstore.SessionKey(s.ID)))

	got, err := store.Get(t.Context(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)
	assert.True(t, got.Logged)
	assert.True(t, s.ExpiresAt.Equal(got.ExpiresAt))

	require.NoError(t, store.Delete(t.Context(), s.ID))
	_, err = store.Get(t.Context(), s.ID)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestSessionStore_Expiry(t *testing.T) {
	t.Parallel()

	store, mr := newTestStore(t)
	s := &session.Session{ID: uuid.New(), Logged: true}

	require.NoError(t, store.Save(t.Context(), s, time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Get(t.Context(), s.ID)
	assert.ErrorIs(t, err, session.ErrNoSession)
}

func TestSessionStore_CorruptPayload(t *testing.T) {
	t.Parallel()

	store, mr := newTestStore(t)
	id := uuid.New()
	require.NoError(t, mr.Set(redisstore.SessionKey(id), "{not json"))

	_, err := store.Get(t.Context(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, session.ErrNoSession)
	assert.Contains(t, err.Error(), "unmarshal")
}

func TestSessionStore_WithManager(t *testing.T) {
	t.Parallel()

	store, _ := newTestStore(t)
	m := session.NewManager(store, "0123456789abcdef0123456789abcdef", time.Hour)

	token, s, err := m.Login(t.Context())
	require.NoError(t, err)

	got, err := m.Resolve(t.Context(), token)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	require.NoError(t, m.Logout(t.Context(), token))
	_, err = m.Resolve(t.Context(), token)
	assert.ErrorIs(t, err, session.ErrNoSession)
}
