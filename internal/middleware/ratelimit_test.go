package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func limitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(limiter.Handler())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func getFrom(router *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	limiter := NewRateLimiter(60, 5, zap.NewNop())
	router := limitedRouter(limiter)

	for i := 0; i < 5; i++ {
		w := getFrom(router, "10.0.0.1:4000")
		assert.Equal(t, http.StatusOK, w.Code, "request %d should pass", i+1)
	}
}

func TestRateLimiterBlocksExcessRequests(t *testing.T) {
	limiter := NewRateLimiter(60, 2, zap.NewNop())
	router := limitedRouter(limiter)

	getFrom(router, "10.0.0.1:4000")
	getFrom(router, "10.0.0.1:4000")
	w := getFrom(router, "10.0.0.1:4000")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rate limit exceeded", body["error"])
	assert.Equal(t, "Demasiados requests. Por favor intente nuevamente más tarde.", body["message"])
}

func TestRateLimiterTracksClientsSeparately(t *testing.T) {
	limiter := NewRateLimiter(60, 1, zap.NewNop())
	router := limitedRouter(limiter)

	assert.Equal(t, http.StatusOK, getFrom(router, "10.0.0.1:4000").Code)
	assert.Equal(t, http.StatusTooManyRequests, getFrom(router, "10.0.0.1:4000").Code)

	// A different client is not throttled.
	assert.Equal(t, http.StatusOK, getFrom(router, "10.0.0.2:4000").Code)
}

func TestRateLimiterCleanupResetsLargeMaps(t *testing.T) {
	limiter := NewRateLimiter(60, 1, zap.NewNop())

	for i := 0; i < 10001; i++ {
		limiter.getLimiter(fmt.Sprintf("10.0.%d.%d", i/256, i%256))
	}
	require.Greater(t, len(limiter.limiters), 10000)

	limiter.Cleanup()
	assert.Empty(t, limiter.limiters)
}

func TestRateLimiterCleanupKeepsSmallMaps(t *testing.T) {
	limiter := NewRateLimiter(60, 1, zap.NewNop())

	limiter.getLimiter("10.0.0.1")
	limiter.getLimiter("10.0.0.2")
	limiter.Cleanup()

	assert.Len(t, limiter.limiters, 2)
}
