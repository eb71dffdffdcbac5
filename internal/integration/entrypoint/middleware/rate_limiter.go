package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	domainerror "github.com/spendtrack/backend/internal/domain/error"
	"github.com/spendtrack/backend/internal/integration/entrypoint/dto"
)

const (
	// defaultMaxAttempts is the default burst allowed per client.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the time over which the burst refills.
	defaultWindowDuration = 1 * time.Minute
)

// RateLimiter provides IP-based token bucket rate limiting. Idle clients are
// forgotten after a few windows.
type RateLimiter struct {
	limiters *gocache.Cache
	limit    rate.Limit
	burst    int
	enabled  bool
}

// NewRateLimiterWithConfig allows maxAttempts requests per window for each client.
func NewRateLimiterWithConfig(maxAttempts int, windowDuration time.Duration, enabled bool) *RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if windowDuration <= 0 {
		windowDuration = defaultWindowDuration
	}
	return &RateLimiter{
		limiters: gocache.New(3*windowDuration, windowDuration),
		limit:    rate.Every(windowDuration / time.Duration(maxAttempts)),
		burst:    maxAttempts,
		enabled:  enabled,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		if !rl.limiterFor(clientIP).Allow() {
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

func (rl *RateLimiter) limiterFor(key string) *rate.Limiter {
	if v, ok := rl.limiters.Get(key); ok {
		rl.limiters.SetDefault(key, v)
		return v.(*rate.Limiter)
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	// Add fails when a concurrent request created the entry first.
	if err := rl.limiters.Add(key, limiter, gocache.DefaultExpiration); err != nil {
		if v, ok := rl.limiters.Get(key); ok {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// Reset clears the rate limiter state.
func (rl *RateLimiter) Reset() {
	rl.limiters.Flush()
}
