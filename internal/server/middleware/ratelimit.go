package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	limiterSweepInterval = 10 * time.Minute
	limiterIdleTimeout   = 30 * time.Minute
)

const tooManyRequestsBody = `{"title":"Too Many Requests","status":429,"detail":"rate limit exceeded"}`

type keyedLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// limiterSet hands out one token bucket per key and forgets keys that have
// been idle for limiterIdleTimeout.
type limiterSet[K comparable] struct {
	mu       sync.Mutex
	limiters map[K]*keyedLimiter
	limit    rate.Limit
	burst    int
}

func newLimiterSet[K comparable](ctx context.Context, rps float64, burst int) *limiterSet[K] {
	ls := &limiterSet[K]{
		limiters: make(map[K]*keyedLimiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}
	go ls.sweep(ctx)
	return ls
}

func (ls *limiterSet[K]) allow(key K) bool {
	now := time.Now()

	ls.mu.Lock()
	kl, ok := ls.limiters[key]
	if !ok {
		kl = &keyedLimiter{limiter: rate.NewLimiter(ls.limit, ls.burst)}
		ls.limiters[key] = kl
	}
	kl.lastAccess = now
	ls.mu.Unlock()

	return kl.limiter.AllowN(now, 1)
}

func (ls *limiterSet[K]) sweep(ctx context.Context) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ls.evictIdle(time.Now().Add(-limiterIdleTimeout))
		case <-ctx.Done():
			return
		}
	}
}

func (ls *limiterSet[K]) evictIdle(cutoff time.Time) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for key, kl := range ls.limiters {
		if kl.lastAccess.Before(cutoff) {
			delete(ls.limiters, key)
		}
	}
}

func (ls *limiterSet[K]) size() int {
	ls.mu.Lock()
	defer ls.mu.Unlock()
	return len(ls.limiters)
}

// rateLimitBy limits requests per key. Requests for which key reports false
// are not limited.
func rateLimitBy[K comparable](ls *limiterSet[K], key func(*http.Request) (K, bool)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			k, ok := key(r)
			if ok && !ls.allow(k) {
				w.Header().Set("Retry-After", "1")
				http.Error(w, tooManyRequestsBody, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitByIP limits requests per client address for endpoints reachable
// without a session. Behind chi's RealIP middleware RemoteAddr carries the
// forwarded address.
func RateLimitByIP(ctx context.Context, requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	return rateLimitBy(newLimiterSet[string](ctx, requestsPerSecond, burst), remoteAddr)
}

// RateLimit limits requests per console session. Requests without a session
// pass through; the login guard decides what happens to them.
func RateLimit(ctx context.Context, requestsPerSecond float64, burst int) func(http.Handler) http.Handler {
	return rateLimitBy(newLimiterSet[uuid.UUID](ctx, requestsPerSecond, burst), sessionKey)
}

func remoteAddr(r *http.Request) (string, bool) {
	return r.RemoteAddr, r.RemoteAddr != ""
}

func sessionKey(r *http.Request) (uuid.UUID, bool) {
	s, ok := SessionFromContext(r.Context())
	if !ok {
		return uuid.Nil, false
	}
	return s.ID, true
}
