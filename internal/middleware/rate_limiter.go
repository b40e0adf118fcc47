package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/EN-BAAK/Company-management-system-server/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Fixed-window per-IP request caps. Login gets its own tight limiter because
// the phone+password endpoint is the credential-stuffing target; the rest of
// the API shares one loose global limit.

type ipLimiter struct {
	limit  int
	window time.Duration

	mu      sync.Mutex
	buckets map[string]*ipBucket
}

type ipBucket struct {
	hits    int
	resetAt time.Time
}

const sweepInterval = 5 * time.Minute

func newIPLimiter(limit int, window time.Duration) *ipLimiter {
	l := &ipLimiter{
		limit:   limit,
		window:  window,
		buckets: make(map[string]*ipBucket),
	}
	go l.sweep()
	return l
}

// take counts one request against the IP's current window and reports
// whether it is still under the cap, plus when the window resets.
func (l *ipLimiter) take(ip string) (bool, time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b := l.buckets[ip]
	if b == nil || now.After(b.resetAt) {
		b = &ipBucket{resetAt: now.Add(l.window)}
		l.buckets[ip] = b
	}
	b.hits++
	return b.hits <= l.limit, b.resetAt
}

// sweep drops expired buckets so IPs that never return do not accumulate.
func (l *ipLimiter) sweep() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		l.mu.Lock()
		swept := 0
		for ip, b := range l.buckets {
			if now.After(b.resetAt) {
				delete(l.buckets, ip)
				swept++
			}
		}
		remaining := len(l.buckets)
		l.mu.Unlock()

		if swept > 0 {
			log.Debug().
				Int("swept", swept).
				Int("remaining", remaining).
				Msg("rate limiter buckets swept")
		}
	}
}

// LoginRateLimiter caps login attempts at 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	l := newIPLimiter(20, time.Minute)
	return func(c *gin.Context) {
		if ok, _ := l.take(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.Body("Too many login attempts. Try again in a minute."))
			return
		}
		c.Next()
	}
}

// RateLimiter caps requests per IP across the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newIPLimiter(limit, window)
	return func(c *gin.Context) {
		if ok, resetAt := l.take(c.ClientIP()); !ok {
			c.Header("Retry-After", resetAt.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				apierror.Body("Too many requests. Try again in a moment."))
			return
		}
		c.Next()
	}
}
