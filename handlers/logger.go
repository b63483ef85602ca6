package handlers

import (
	"github.com/gin-gonic/gin"

	"mensa/utils"
)

// authedUserID pulls the user ID set by the auth middleware. The second
// return is false when the route was reached without authentication.
func authedUserID(c *gin.Context) (string, bool) {
	val, exists := c.Get("userID")
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

// getLogger returns the shared zap logger.
var getLogger = utils.GetLogger
