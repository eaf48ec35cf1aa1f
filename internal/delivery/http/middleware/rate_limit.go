package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/pkg/logger"
	"job-finder-backend/pkg/redis"
)

// RateLimitConfig describes one limiter: how many requests per window, how
// the client key is derived, and whether an unavailable Redis rejects
// requests or lets them through.
type RateLimitConfig struct {
	Limit      int
	Window     time.Duration
	KeyFunc    func(*gin.Context) string
	KeyPrefix  string
	FailClosed bool
}

func clientIPKey(c *gin.Context) string {
	return c.ClientIP()
}

// GlobalRateLimitConfig caps everything a single client can do across a
// service. Fails open so an unavailable Redis never takes the API down.
func GlobalRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:     100,
		Window:    15 * time.Minute,
		KeyPrefix: "rl:global:",
		KeyFunc:   clientIPKey,
	}
}

// RegisterRateLimitConfig throttles account creation.
func RegisterRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:      5,
		Window:     15 * time.Minute,
		KeyPrefix:  "rl:register:",
		FailClosed: true,
		KeyFunc:    clientIPKey,
	}
}

// SessionRateLimitConfig throttles login and logout attempts.
func SessionRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:      10,
		Window:     10 * time.Minute,
		KeyPrefix:  "rl:session:",
		FailClosed: true,
		KeyFunc:    clientIPKey,
	}
}

// RecoveryRateLimitConfig throttles password-reset and activation flows.
func RecoveryRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Limit:      5,
		Window:     15 * time.Minute,
		KeyPrefix:  "rl:recovery:",
		FailClosed: true,
		KeyFunc:    clientIPKey,
	}
}

// INCR the counter, arm the TTL on first hit, report both. Atomic so two
// service instances sharing Redis never double-arm the window.
// KEYS[1] counter key, ARGV[1] window seconds; returns {count, ttl}.
const counterScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimit counts requests per key over a sliding window start. Counters
// live in Redis when a client is configured, otherwise in process memory,
// which is also the fallback for fail-open limiters when Redis errors.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	sweepOnce.Do(startSweeper)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + cfg.KeyFunc(c)

		var (
			count   int
			resetAt time.Time
		)
		if client := redis.Client(); client != nil {
			var err error
			count, resetAt, err = redisCount(c.Request.Context(), client, key, cfg.Window)
			if err != nil {
				if cfg.FailClosed {
					logger.Log.Error("rate limiter unavailable", "error", err, "key_prefix", cfg.KeyPrefix)
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", "")
					c.Abort()
					return
				}
				count, resetAt = memoryCount(key, cfg.Window)
			}
		} else {
			count, resetAt = memoryCount(key, cfg.Window)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > cfg.Limit {
			retryAfter := int(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Warn("rate limit exceeded",
				"ip", c.ClientIP(), "path", c.FullPath(), "key_prefix", cfg.KeyPrefix)
			response.Error(c, http.StatusTooManyRequests, "Too many requests. Please try again later.", "")
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(max(cfg.Limit-count, 0)))
		c.Next()
	}
}

func redisCount(ctx context.Context, client *goredis.Client, key string, window time.Duration) (int, time.Time, error) {
	result, err := client.Eval(ctx, counterScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: %w", err)
	}

	values, ok := result.([]interface{})
	if !ok || len(values) < 2 {
		return 0, time.Time{}, fmt.Errorf("rate limit eval: unexpected reply %T", result)
	}
	count, _ := values[0].(int64)
	ttl, _ := values[1].(int64)

	return int(count), time.Now().Add(time.Duration(ttl) * time.Second), nil
}

// In-process counters. Shared across all limiters in the service; keys are
// prefixed per limiter so they never collide.
type memoryCounter struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	memoryCounters sync.Map
	sweepOnce      sync.Once
)

func memoryCount(key string, window time.Duration) (int, time.Time) {
	now := time.Now()
	loaded, _ := memoryCounters.LoadOrStore(key, &memoryCounter{resetAt: now.Add(window)})
	counter := loaded.(*memoryCounter)

	counter.mu.Lock()
	defer counter.mu.Unlock()

	if now.After(counter.resetAt) {
		counter.count = 0
		counter.resetAt = now.Add(window)
	}
	counter.count++

	return counter.count, counter.resetAt
}

// startSweeper drops expired counters so long-running services do not
// accumulate one entry per client IP forever.
func startSweeper() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			memoryCounters.Range(func(key, value any) bool {
				counter := value.(*memoryCounter)
				counter.mu.Lock()
				expired := now.After(counter.resetAt)
				counter.mu.Unlock()
				if expired {
					memoryCounters.Delete(key)
				}
				return true
			})
		}
	}()
}
