package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"job-finder-backend/internal/delivery/http/middleware"
)

// With no Redis client configured the limiter runs on the in-memory store,
// which is what these tests exercise.
func TestRateLimitInMemory(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limited := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "rl:test:limit:",
		KeyFunc:   func(c *gin.Context) string { return "fixed" },
	})

	router := gin.New()
	router.GET("/ping", limited, func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return rec
	}

	first := hit()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	second := hit()
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, "0", second.Header().Get("X-RateLimit-Remaining"))

	third := hit()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.Contains(t, third.Body.String(), "Too many requests. Please try again later.")
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}

func TestRateLimitKeysAreIndependent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limited := middleware.RateLimit(middleware.RateLimitConfig{
		Limit:     1,
		Window:    time.Minute,
		KeyPrefix: "rl:test:keys:",
		KeyFunc:   func(c *gin.Context) string { return c.Query("who") },
	})

	router := gin.New()
	router.GET("/ping", limited, func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(who string) int {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping?who="+who, nil))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, hit("alice"))
	assert.Equal(t, http.StatusTooManyRequests, hit("alice"))
	// A different client is counted against its own key.
	assert.Equal(t, http.StatusOK, hit("bob"))
}
