// file: internal/middleware/rate_limiter.go
package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"jobtrust/internal/cache"
	"jobtrust/internal/config"
	"jobtrust/internal/services"
)

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
	LimitType  string
}

// RateLimiter enforces fixed window limits per client IP using the cache
type RateLimiter struct {
	cache  cache.Cache
	config config.RateLimitConfig
	logger *zap.Logger
}

// NewRateLimiter creates a new rate limiter
func NewRateLimiter(c cache.Cache, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{cache: c, config: cfg, logger: logger}
}

// RateLimit creates rate limiting middleware. Write methods share a
// tighter budget on top of the overall one.
func RateLimit(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.config.Enabled || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			ip := getClientIP(r)

			result := limiter.check(ctx, "rl:all:"+ip, limiter.config.Requests, "ip")
			if result.Allowed && isWrite(r.Method) && limiter.config.WriteRequests > 0 {
				if writes := limiter.check(ctx, "rl:write:"+ip, limiter.config.WriteRequests, "write"); !writes.Allowed || writes.Remaining < result.Remaining {
					result = writes
				}
			}

			limiter.writeHeaders(w, result)
			if !result.Allowed {
				GetRequestLogger(r).Warn("Rate limit exceeded",
					zap.String("limit_type", result.LimitType),
					zap.Int("limit", result.Limit),
					zap.Duration("retry_after", result.RetryAfter),
				)
				err := services.NewRateLimitError("Rate limit exceeded", map[string]interface{}{
					"limit":       result.Limit,
					"retry_after": int(result.RetryAfter.Seconds()),
				})
				writeError(w, r, err, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// check counts this request against key. Cache failures let the request through.
func (rl *RateLimiter) check(ctx context.Context, key string, limit int, limitType string) *RateLimitResult {
	window := rl.config.Window
	count, err := rl.cache.Increment(ctx, key, 1, window)
	if err != nil {
		rl.logger.Warn("Rate limit cache unavailable, allowing request",
			zap.String("limit_type", limitType),
			zap.Error(err),
		)
		return &RateLimitResult{Allowed: true, Limit: limit, Remaining: limit, LimitType: limitType}
	}

	remaining := limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	result := &RateLimitResult{
		Allowed:   int(count) <= limit,
		Limit:     limit,
		Remaining: remaining,
		LimitType: limitType,
	}
	if !result.Allowed {
		ttl, err := rl.cache.TTL(ctx, key)
		if err != nil || ttl <= 0 {
			ttl = window
		}
		result.RetryAfter = ttl
	}
	return result
}

func (rl *RateLimiter) writeHeaders(w http.ResponseWriter, result *RateLimitResult) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	if !result.Allowed {
		secs := int(result.RetryAfter.Round(time.Second).Seconds())
		if secs < 1 {
			secs = 1
		}
		w.Header().Set("Retry-After", fmt.Sprint(secs))
	}
}

func isWrite(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}
