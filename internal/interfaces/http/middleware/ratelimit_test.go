package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Run("within limit", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute)
		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("c1"), "request %d", i+1)
		}
		assert.False(t, limiter.Allow("c1"))
	})

	t.Run("keys are independent", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)
		assert.True(t, limiter.Allow("a"))
		assert.False(t, limiter.Allow("a"))
		assert.True(t, limiter.Allow("b"))
	})

	t.Run("budget resets after window", func(t *testing.T) {
		limiter := NewRateLimiter(1, 40*time.Millisecond)
		assert.True(t, limiter.Allow("c2"))
		assert.False(t, limiter.Allow("c2"))

		time.Sleep(50 * time.Millisecond)
		assert.True(t, limiter.Allow("c2"))
	})

	t.Run("concurrent callers never exceed limit", func(t *testing.T) {
		limiter := NewRateLimiter(100, time.Minute)
		var wg sync.WaitGroup
		var mu sync.Mutex
		allowed := 0

		for i := 0; i < 150; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("shared") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 100, allowed)
	})
}

func TestRateLimiter_Remaining(t *testing.T) {
	limiter := NewRateLimiter(4, time.Minute)

	assert.Equal(t, 4, limiter.Remaining("fresh"))

	limiter.Allow("fresh")
	limiter.Allow("fresh")
	assert.Equal(t, 2, limiter.Remaining("fresh"))
}

func limitedEngine(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimit(limiter))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func doGet(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("sets limit headers while allowed", func(t *testing.T) {
		router := limitedEngine(NewRateLimiter(3, time.Minute))

		w := doGet(router, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("rejects with 429 and Retry-After once exhausted", func(t *testing.T) {
		router := limitedEngine(NewRateLimiter(2, time.Minute))

		for i := 0; i < 2; i++ {
			assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
		}

		w := doGet(router, "10.0.0.1:1234")
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "60", w.Header().Get("Retry-After"))
		assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
	})

	t.Run("keys on client IP", func(t *testing.T) {
		router := limitedEngine(NewRateLimiter(1, time.Minute))

		assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusTooManyRequests, doGet(router, "10.0.0.1:1234").Code)
		assert.Equal(t, http.StatusOK, doGet(router, "10.0.0.2:1234").Code)
	})
}

func TestRateLimitByKey(t *testing.T) {
	gin.SetMode(gin.TestMode)

	limiter := NewRateLimiter(1, time.Minute)
	router := gin.New()
	router.Use(RateLimitByKey(limiter, func(c *gin.Context) string {
		return c.GetHeader("X-Client-ID")
	}))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	send := func(clientID string) int {
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set("X-Client-ID", clientID)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, send("client-1"))
	assert.Equal(t, http.StatusTooManyRequests, send("client-1"))
	assert.Equal(t, http.StatusOK, send("client-2"))
}
