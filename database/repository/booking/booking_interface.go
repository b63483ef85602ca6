package bookingRepo

import (
	"errors"

	"mensa/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no booking matches the given identifier.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record, stamping timestamps.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetAll retrieves all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// GetLatestByUserID retrieves a user's most recent booking.
	// Returns (nil, nil) when the user has no bookings.
	GetLatestByUserID(userID string) (*models.Booking, error)
	// UpdateSet applies a $set update and returns the updated booking.
	UpdateSet(id string, fields bson.M) (*models.Booking, error)
	// Delete removes a booking by ID. Deleting a booking that does not
	// exist is not an error.
	Delete(id string) error
}
