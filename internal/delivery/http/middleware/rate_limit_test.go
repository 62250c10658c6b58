package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-treeservices-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckRateLimitInMemory(t *testing.T) {
	config := RateLimitConfig{Limit: 3, Window: time.Minute}
	now := time.Now()
	key := "rl:test:" + t.Name()

	for i := 1; i <= 4; i++ {
		count, _ := checkRateLimitInMemory(key, config, now)
		assert.Equal(t, i, count)
	}

	// After the window passes, the counter resets
	later := now.Add(config.Window + time.Second)
	count, resetAt := checkRateLimitInMemory(key, config, later)
	assert.Equal(t, 1, count)
	assert.True(t, resetAt.After(later))
}

func TestRateLimitMiddlewareRejectsOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.Use(RateLimitMiddleware(RateLimitConfig{
		Limit:     2,
		Window:    time.Minute,
		KeyPrefix: "rl:test-mw:",
		KeyFunc:   func(c *gin.Context) string { return "fixed" },
	}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		return w
	}

	first := do()
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, do().Code)

	third := do()
	assert.Equal(t, http.StatusTooManyRequests, third.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded. Please try again later."}`, third.Body.String())
	assert.NotEmpty(t, third.Header().Get("Retry-After"))
}
