package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"cv-manager-backend/internal/delivery/http/response"
	"cv-manager-backend/pkg/logger"
	"cv-manager-backend/pkg/redis"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

type RateLimitConfig struct {
	// Requests per window
	Limit  int
	Window time.Duration
	// Extracts the bucket key from the request
	KeyFunc func(*gin.Context) string
	// Key prefix in Redis; also separates the in-memory buckets
	KeyPrefix string
	// Reject instead of falling back to memory when Redis errors
	FailClosed bool
}

// GlobalRateLimitConfig limits every route per client IP and fails open.
func GlobalRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:ip:",
		KeyFunc:   clientIP,
	}
}

// LoginRateLimitConfig is the strict limit for credential endpoints.
func LoginRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:login:",
		FailClosed: true,
		KeyFunc:    clientIP,
	}
}

// UploadRateLimitConfig limits photo uploads per authenticated user.
func UploadRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:     limit,
		Window:    window,
		KeyPrefix: "rl:upload:",
		KeyFunc: func(c *gin.Context) string {
			if id, ok := CurrentUserID(c); ok {
				return id.String()
			}
			return c.ClientIP()
		},
	}
}

func clientIP(c *gin.Context) string {
	return c.ClientIP()
}

// Increments the counter, starting the TTL on the first hit.
// Returns {count, ttl_seconds}.
var rateLimitScript = goredis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`)

type window struct {
	count   int
	resetAt time.Time
}

// memoryCounter is the fixed-window fallback used without Redis.
type memoryCounter struct {
	mu      sync.Mutex
	windows map[string]*window
	hits    int
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{windows: make(map[string]*window)}
}

func (m *memoryCounter) incr(key string, size time.Duration, now time.Time) (int, time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Sweep expired windows every so often instead of running a janitor
	if m.hits++; m.hits%1000 == 0 {
		for k, w := range m.windows {
			if now.After(w.resetAt) {
				delete(m.windows, k)
			}
		}
	}

	w, ok := m.windows[key]
	if !ok || now.After(w.resetAt) {
		w = &window{resetAt: now.Add(size)}
		m.windows[key] = w
	}
	w.count++
	return w.count, w.resetAt
}

// RateLimitMiddleware counts requests in Redis when it is connected and in
// process memory otherwise.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	memory := newMemoryCounter()

	return func(c *gin.Context) {
		key := config.KeyPrefix + config.KeyFunc(c)
		now := time.Now()

		var (
			count   int
			resetAt time.Time
		)
		client := redis.Client()
		if client != nil {
			var err error
			count, resetAt, err = incrRedis(c.Request.Context(), client, key, config.Window)
			if err != nil {
				logRateLimitError(c, err)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = memory.incr(key, config.Window, now)
			}
		} else {
			count, resetAt = memory.incr(key, config.Window, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := max(1, int(resetAt.Sub(now).Seconds()))
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit triggered",
				"request_id", c.GetString(RequestIDKey),
				"ip", c.ClientIP(),
				"path", c.FullPath(),
				"bucket", config.KeyPrefix,
			)
			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

func incrRedis(ctx context.Context, client *goredis.Client, key string, size time.Duration) (int, time.Time, error) {
	ttlSeconds := max(1, int(size.Seconds()))

	result, err := rateLimitScript.Run(ctx, client, []string{key}, ttlSeconds).Int64Slice()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit script failed: %w", err)
	}
	if len(result) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result: %v", result)
	}

	return int(result[0]), time.Now().Add(time.Duration(result[1]) * time.Second), nil
}

func logRateLimitError(c *gin.Context, err error) {
	logger.Log.Error("rate limit store unavailable",
		"request_id", c.GetString(RequestIDKey),
		"path", c.FullPath(),
		"error", err,
	)
}
