package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"internhub/config"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a sliding-window request counter keyed per caller.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	limit   int
	window  time.Duration
}

func NewRateLimiter(cfg *config.RateLimitConfig) *RateLimiter {
	r := &RateLimiter{
		windows: make(map[string][]time.Time),
		limit:   cfg.Requests,
		window:  cfg.Window,
	}
	go r.evictLoop()
	return r
}

func (r *RateLimiter) Allow(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	cutoff := now.Add(-r.window)
	var live []time.Time
	for _, t := range r.windows[key] {
		if t.After(cutoff) {
			live = append(live, t)
		}
	}
	if len(live) >= r.limit {
		r.windows[key] = live
		return false
	}
	r.windows[key] = append(live, now)
	return true
}

func (r *RateLimiter) evictLoop() {
	tick := time.NewTicker(time.Minute)
	for range tick.C {
		r.mu.Lock()
		cutoff := time.Now().Add(-r.window)
		for k, times := range r.windows {
			var live []time.Time
			for _, t := range times {
				if t.After(cutoff) {
					live = append(live, t)
				}
			}
			if len(live) == 0 {
				delete(r.windows, k)
			} else {
				r.windows[k] = live
			}
		}
		r.mu.Unlock()
	}
}

// callerKey identifies the caller for rate limiting: the authenticated user
// when AuthRequired has already run, the client IP otherwise. Keying on the
// user keeps clients behind a shared NAT from exhausting each other's quota.
func callerKey(c *gin.Context) string {
	if id := GetUserID(c); id != 0 {
		return fmt.Sprintf("user:%d", id)
	}
	return "ip:" + c.ClientIP()
}

// RateLimit rejects callers that exceed the configured request budget with
// 429 Too Many Requests.
func RateLimit(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(callerKey(c)) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
