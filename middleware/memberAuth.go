package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"

	"medibook/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// JWTAuthMemberMiddleware authenticates member requests. Token hashes are
// cached in Redis so repeat requests skip signature verification; a cache miss
// falls back to full JWT validation and repopulates the cache.
func JWTAuthMemberMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Recover from unexpected panics.
		defer func() {
			if r := recover(); r != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  500,
				})
			}
		}()

		ctx := context.Background()

		// Retrieve token from header.
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		memberID, err := utils.ExtractMemberIDFromToken(tokenString)
		if err != nil || memberID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
				"code":  0,
			})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + memberID

		// Read the client variable directly: a nil client means the auth cache
		// was never initialized, which must degrade to plain JWT validation
		// instead of forcing a connection.
		authCache := utils.AuthCacheClient
		if authCache == nil {
			// Treat an unavailable cache as a miss; the JWT already validated.
			log.Printf("WARNING: Auth cache client not available. Skipping token cache.")
			c.Set("memberID", memberID)
			c.Next()
			return
		}

		cachedHash, err := authCache.Get(ctx, cacheKey).Result()
		if err == nil {
			if cachedHash != computedHash {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Token mismatch",
					"code":  0,
				})
				return
			}
			// Refresh TTL on a valid hit.
			_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
		} else {
			if err != redis.Nil {
				log.Printf("WARNING: Error retrieving auth cache key: %v.", err)
			}
			_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
		}

		c.Set("memberID", memberID)
		c.Next()
	}
}
