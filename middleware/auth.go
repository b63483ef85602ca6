package middleware

import (
	"context"
	"net/http"
	"strings"

	"mensa/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware gates a route on a verified bearer token. The
// verified subject is stored in the context as "userID".
//
// Issued tokens are recorded in the auth cache at login; a token missing
// from the cache has been revoked. If the cache itself is unreachable
// the signature check alone decides, so a cache outage degrades
// revocation rather than locking everyone out.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token"})
			return
		}

		userID, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		cacheKey := utils.AuthCachePrefix + utils.HashToken(tokenString)
		_, err = utils.GetAuthCacheClient().Get(context.Background(), cacheKey).Result()
		if err == redis.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}
		if err != nil {
			utils.GetLogger().Warn("auth cache unavailable, accepting signature-verified token",
				zap.Error(err))
		}

		c.Set("userID", userID)
		c.Next()
	}
}
