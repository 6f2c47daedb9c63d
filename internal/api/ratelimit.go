package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cadence/pkg/httputil"
	"golang.org/x/time/rate"
)

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps a token bucket per authenticated user. Entries that
// haven't been touched for two cleanup intervals are dropped.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mu       sync.Mutex
	limiters map[uuid.UUID]*userLimiter

	cleanupInterval time.Duration
	stopCh          chan struct{}
}

func NewRateLimiter(perMinute int, burst int) *RateLimiter {
	rl := &RateLimiter{
		limit:           rate.Limit(float64(perMinute) / 60.0),
		burst:           burst,
		limiters:        make(map[uuid.UUID]*userLimiter),
		cleanupInterval: time.Minute * 5,
		stopCh:          make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// Middleware must be placed after AuthMiddleware: it limits per user id.
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := GetUIDFromContext(r)
		if err != nil {
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
			return
		}
		if !rl.allow(uid) {
			logger := GetLoggerFromCtx(r.Context())
			logger.Warn("rate limit exceeded")
			retryAfter := int(1.0 / float64(rl.limit))
			httputil.WriteRetryAfterResponse(w, http.StatusTooManyRequests, "too many requests", retryAfter)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (rl *RateLimiter) allow(uid uuid.UUID) bool {
	rl.mu.Lock()
	ul, exists := rl.limiters[uid]
	if !exists {
		ul = &userLimiter{
			limiter: rate.NewLimiter(rl.limit, rl.burst),
		}
		rl.limiters[uid] = ul
	}
	ul.lastAccess = time.Now()
	rl.mu.Unlock()
	return ul.limiter.Allow()
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.cleanupInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	ttl := rl.cleanupInterval * 2
	now := time.Now()
	rl.mu.Lock()
	for uid, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > ttl {
			delete(rl.limiters, uid)
		}
	}
	rl.mu.Unlock()
}
