package booking

import "mensa/models"

// BookingService defines booking operations, including the invoice
// derivation that accompanies every successful creation.
type BookingService interface {
	// Create persists a booking and derives exactly one invoice from it.
	// The two writes are sequential and non-transactional: if the invoice
	// write fails the booking stays persisted and the error is surfaced.
	Create(userID string, req models.BookingCreateRequest) (*models.Booking, *models.Invoice, error)
	// GetAll lists all bookings, newest first.
	GetAll() ([]models.Booking, error)
	// UpdateContact edits a booking's contact fields.
	UpdateContact(id string, req models.BookingContactUpdateRequest) (*models.Booking, error)
	// UpdateStatus applies a booking status transition. Only "Complete"
	// and "Incomplete" are accepted; both are reachable from each other.
	UpdateStatus(id, status string) (*models.Booking, error)
	// Delete removes a booking. Deleting an absent booking succeeds, and
	// the booking's invoice is never cascaded.
	Delete(id string) error
}
