package middleware

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CounterStore counts requests per key within a fixed window. Implementations
// must be safe for concurrent use.
type CounterStore interface {
	// Incr increments the counter for key in the window starting at
	// windowStart (unix seconds) and returns the new count.
	Incr(key string, windowStart int64) (int64, error)
}

// RateLimiter enforces a fixed-window request limit per client. A store
// error fails open: the request is allowed and the error logged, so the
// endpoint stays available when the counter backend is down.
type RateLimiter struct {
	store       CounterStore
	maxRequests int64
	window      time.Duration
}

// NewRateLimiter creates a limiter allowing maxRequests per window per client.
func NewRateLimiter(store CounterStore, maxRequests int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:       store,
		maxRequests: maxRequests,
		window:      window,
	}
}

// RateLimit returns the gin middleware enforcing the limit, keyed by client IP.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	windowSeconds := int64(rl.window / time.Second)

	return func(c *gin.Context) {
		key := c.ClientIP()
		now := time.Now().Unix()
		windowStart := now - now%windowSeconds

		count, err := rl.store.Incr(key, windowStart)
		if err != nil {
			// Fail open for availability
			log.Printf("Rate limit check failed, allowing request: %v", err)
			c.Next()
			return
		}

		if count > rl.maxRequests {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please wait before making more requests.",
				"details": gin.H{
					"limit":          rl.maxRequests,
					"window_seconds": windowSeconds,
					"retry_after":    windowStart + windowSeconds - now,
				},
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

type windowCount struct {
	windowStart int64
	count       int64
}

// MemoryStore is an in-process CounterStore. Each key keeps only its current
// window; a request in a newer window resets the counter.
type MemoryStore struct {
	mu     sync.Mutex
	counts map[string]*windowCount
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counts: make(map[string]*windowCount)}
}

// Incr implements CounterStore.
func (m *MemoryStore) Incr(key string, windowStart int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	wc := m.counts[key]
	if wc == nil || wc.windowStart != windowStart {
		wc = &windowCount{windowStart: windowStart}
		m.counts[key] = wc
	}
	wc.count++
	return wc.count, nil
}
