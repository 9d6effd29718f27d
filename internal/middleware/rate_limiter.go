package middleware

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/Arun-Dalakoti/CardGenius/internal/errors"
)

// Per-IP token buckets. The recommendation endpoints are recomputed on
// every slider drag, so the defaults are more generous than a typical
// write-heavy API would allow.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type visitorRegistry struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	rps      rate.Limit
	burst    int
}

// RateLimiter creates a middleware limiting each client IP to rps requests
// per second with the given burst
func RateLimiter(rps int, burst int) echo.MiddlewareFunc {
	registry := &visitorRegistry{
		visitors: make(map[string]*visitor),
		rps:      rate.Limit(rps),
		burst:    burst,
	}

	go registry.cleanupLoop()

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !registry.allow(clientIP(c)) {
				traceID := GetTraceID(c)
				response := errors.NewErrorResponse(errors.SystemRateLimitExceeded, traceID)
				return c.JSON(http.StatusTooManyRequests, response)
			}

			return next(c)
		}
	}
}

func (r *visitorRegistry) allow(ip string) bool {
	r.mu.Lock()
	v, exists := r.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r.rps, r.burst)}
		r.visitors[ip] = v
	}
	v.lastSeen = time.Now()
	r.mu.Unlock()

	return v.limiter.Allow()
}

// cleanupLoop drops buckets for IPs idle longer than three minutes so the
// registry does not grow without bound
func (r *visitorRegistry) cleanupLoop() {
	for {
		time.Sleep(time.Minute)

		cutoff := time.Now().Add(-3 * time.Minute)
		r.mu.Lock()
		for ip, v := range r.visitors {
			if v.lastSeen.Before(cutoff) {
				delete(r.visitors, ip)
			}
		}
		r.mu.Unlock()
	}
}

func clientIP(c echo.Context) string {
	if xff := c.Request().Header.Get("X-Forwarded-For"); xff != "" {
		if idx := strings.IndexByte(xff, ','); idx >= 0 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := c.Request().Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return c.RealIP()
}
