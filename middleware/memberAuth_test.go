package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memberAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(JWTAuthMemberMiddleware())
	r.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"memberID": c.GetString("memberID")})
	})
	return r
}

func authedRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMemberMiddleware_MissingHeader(t *testing.T) {
	r := memberAuthRouter(t)
	assert.Equal(t, http.StatusUnauthorized, authedRequest(r, "").Code)
}

func TestJWTAuthMemberMiddleware_MalformedHeader(t *testing.T) {
	r := memberAuthRouter(t)
	assert.Equal(t, http.StatusUnauthorized, authedRequest(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, authedRequest(r, "Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, authedRequest(r, "Bearer not-a-jwt").Code)
}

func TestJWTAuthMemberMiddleware_ExpiredToken(t *testing.T) {
	r := memberAuthRouter(t)

	token, err := utils.GenerateToken("member-9", "member@example.com", -time.Minute)
	require.NoError(t, err)

	assert.Equal(t, http.StatusUnauthorized, authedRequest(r, "Bearer "+token).Code)
}

func TestJWTAuthMemberMiddleware_ValidTokenWithoutAuthCache(t *testing.T) {
	// No auth cache client is configured in tests: the middleware must degrade
	// to plain JWT validation instead of failing the request.
	require.Nil(t, utils.AuthCacheClient)
	r := memberAuthRouter(t)

	token, err := utils.GenerateToken("member-9", "member@example.com", time.Hour)
	require.NoError(t, err)

	w := authedRequest(r, "Bearer "+token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "member-9")
}
