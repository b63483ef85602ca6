package handlers

import (
	"net/http"

	"mensa/services/profile"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProfileHandler serves the merged booking/invoice read view.
type ProfileHandler struct {
	Service profile.ProfileService
}

// NewProfileHandler returns a handler wired to the given profile service.
func NewProfileHandler(svc profile.ProfileService) *ProfileHandler {
	return &ProfileHandler{Service: svc}
}

// GetProfileHandler handles GET /api/profile.
func (h *ProfileHandler) GetProfileHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token"})
		return
	}

	view, err := h.Service.GetProfile(userID)
	if err != nil {
		getLogger().Error("Profile aggregation failed", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, view)
}
