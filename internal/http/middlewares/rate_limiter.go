package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// RateLimiter allows limit requests per client IP in each fixed window.
// Expired windows are dropped whenever a new window starts for any client.
func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	type clientWindow struct {
		count int
		start time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*clientWindow)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			key := c.RealIP()

			mu.Lock()
			w, ok := clients[key]
			if !ok || now.Sub(w.start) > window {
				for ip, old := range clients {
					if now.Sub(old.start) > window {
						delete(clients, ip)
					}
				}
				w = &clientWindow{start: now}
				clients[key] = w
			}

			if w.count >= limit {
				retry := window - now.Sub(w.start)
				mu.Unlock()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(retry.Seconds())+1))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}

			w.count++
			remaining := limit - w.count
			mu.Unlock()

			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			return next(c)
		}
	}
}
