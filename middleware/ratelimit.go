package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type ipWindow struct {
	count   int
	resetAt time.Time
}

// RateLimiter returns a fixed-window per-IP limiter. Each returned
// handler owns its own state, so separate route groups can carry
// separate limits.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	var (
		mu      sync.Mutex
		windows = make(map[string]*ipWindow)
	)

	// Expired windows are swept periodically so idle IPs don't
	// accumulate forever.
	go func() {
		ticker := time.NewTicker(window)
		defer ticker.Stop()
		for range ticker.C {
			mu.Lock()
			now := time.Now()
			for ip, w := range windows {
				if now.After(w.resetAt) {
					delete(windows, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		mu.Lock()
		w, ok := windows[ip]
		if !ok || now.After(w.resetAt) {
			windows[ip] = &ipWindow{count: 1, resetAt: now.Add(window)}
			mu.Unlock()
			c.Next()
			return
		}
		if w.count >= limit {
			retryAfter := w.resetAt.Sub(now).Seconds()
			mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": retryAfter,
			})
			c.Abort()
			return
		}
		w.count++
		mu.Unlock()

		c.Next()
	}
}
