package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"medibook/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rateLimitedRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func pingFrom(r *gin.Engine, remoteAddr string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddleware_RejectsAfterBurst(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 3
	r := rateLimitedRouter(t)

	for i := 0; i < 3; i++ {
		w := pingFrom(r, "10.0.0.1:5000", nil)
		require.Equal(t, http.StatusOK, w.Code, "request %d within the burst must pass", i+1)
	}

	w := pingFrom(r, "10.0.0.1:5000", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimitMiddleware_LimitsPerClient(t *testing.T) {
	config.AppConfig.MaxRequestsPerMin = 2
	r := rateLimitedRouter(t)

	for i := 0; i < 2; i++ {
		pingFrom(r, "10.0.0.2:5000", nil)
	}
	require.Equal(t, http.StatusTooManyRequests, pingFrom(r, "10.0.0.2:5000", nil).Code)

	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, pingFrom(r, "10.0.0.3:5000", nil).Code)
}

func TestGetClientIP_PrefersForwardedFor(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.1:443"
	c.Request.Header.Set("X-Forwarded-For", "203.0.113.7, 70.41.3.18")

	assert.Equal(t, "203.0.113.7", getClientIP(c))
}

func TestGetClientIP_SkipsUnparseableForwardedEntries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.1:443"
	c.Request.Header.Set("X-Forwarded-For", "not-an-ip, 203.0.113.7")

	assert.Equal(t, "203.0.113.7", getClientIP(c))
}

func TestGetClientIP_FallsBackToRealIPThenRemoteAddr(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.RemoteAddr = "192.0.2.1:443"
	c.Request.Header.Set("X-Real-IP", "198.51.100.9")
	assert.Equal(t, "198.51.100.9", getClientIP(c))

	c2, _ := gin.CreateTestContext(httptest.NewRecorder())
	c2.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c2.Request.RemoteAddr = "192.0.2.1:443"
	assert.Equal(t, "192.0.2.1", getClientIP(c2))
}
