package handlers

import (
	"errors"
	"net/http"

	bookingRepo "mensa/database/repository/booking"
	"mensa/models"
	"mensa/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes booking CRUD and status transitions.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler returns a handler wired to the given booking service.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /api/bookings. A successful call
// persists the booking and its derived invoice.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token"})
		return
	}

	var req models.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	_, _, err := h.Service.Create(userID, req)
	if err != nil {
		var inputErr booking.InvalidInputError
		if errors.As(err, &inputErr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": inputErr.Reason})
			return
		}
		getLogger().Error("Booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Booking & Invoice created successfully",
	})
}

// GetAllBookingsHandler handles GET /api/bookings.
func (h *BookingHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.GetAll()
	if err != nil {
		getLogger().Error("Failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingHandler handles PUT /api/bookings/:id (contact fields).
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	id := c.Param("id")

	var req models.BookingContactUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	updated, err := h.Service.UpdateContact(id, req)
	if err != nil {
		var inputErr booking.InvalidInputError
		switch {
		case errors.As(err, &inputErr):
			c.JSON(http.StatusBadRequest, gin.H{"message": inputErr.Reason})
		case errors.Is(err, bookingRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		default:
			getLogger().Error("Booking update failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, updated)
}

// UpdateBookingStatusHandler handles PUT /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	updated, err := h.Service.UpdateStatus(id, req.Status)
	if err != nil {
		var inputErr booking.InvalidInputError
		switch {
		case errors.As(err, &inputErr):
			c.JSON(http.StatusBadRequest, gin.H{"message": inputErr.Reason})
		case errors.Is(err, bookingRepo.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Booking not found"})
		default:
			getLogger().Error("Booking status update failed", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "booking": updated})
}

// DeleteBookingHandler handles DELETE /api/bookings/:id. Deletion is
// idempotent and never cascades to the booking's invoice.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		getLogger().Error("Booking delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
