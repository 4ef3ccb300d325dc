// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/time-tracker/backend/internal/domain/error"
	"github.com/time-tracker/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts bounds login attempts per client IP per window.
	defaultMaxAttempts = 5
	defaultWindow      = 1 * time.Minute
)

type clientWindow struct {
	attempts    int
	windowStart time.Time
}

// RateLimiter enforces a fixed-window, per-client-IP attempt limit. It is
// applied to the login route only; all state is in memory and resets on
// restart.
type RateLimiter struct {
	mu          sync.Mutex
	clients     map[string]*clientWindow
	maxAttempts int
	window      time.Duration
}

// NewRateLimiter creates a rate limiter with the default login limits.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultMaxAttempts, defaultWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with custom limits.
func NewRateLimiterWithConfig(maxAttempts int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients:     make(map[string]*clientWindow),
		maxAttempts: maxAttempts,
		window:      window,
	}
}

// Middleware returns a gin handler that rejects over-limit clients with 429
// and the rate-limited error code.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key, time.Now()) {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	w, ok := rl.clients[key]
	if !ok || now.Sub(w.windowStart) >= rl.window {
		rl.clients[key] = &clientWindow{attempts: 1, windowStart: now}
		return true
	}

	if w.attempts < rl.maxAttempts {
		w.attempts++
		return true
	}
	return false
}

// Cleanup drops expired windows. Called opportunistically; the map only
// grows with distinct client IPs inside the current window otherwise.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, w := range rl.clients {
		if now.Sub(w.windowStart) >= rl.window {
			delete(rl.clients, key)
		}
	}
}
