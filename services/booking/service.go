package booking

import (
	"fmt"

	bookingRepo "mensa/database/repository/booking"
	invoiceRepo "mensa/database/repository/invoice"
	"mensa/models"
	"mensa/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultBookingService is the standard BookingService implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	InvoiceRepo invoiceRepo.InvoiceRepository
}

// Create persists a booking and derives its invoice. At least one
// service with a non-blank name is mandatory.
func (s *DefaultBookingService) Create(userID string, req models.BookingCreateRequest) (*models.Booking, *models.Invoice, error) {
	services := NormalizeServices(req.Services)
	serviceString := JoinServiceNames(services)
	if serviceString == "" {
		return nil, nil, InvalidInputError{Reason: "Service name cannot be empty"}
	}

	bkg := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        userID,
		CustomerName:  req.CustomerName,
		CompanyName:   req.CompanyName,
		Email:         req.Email,
		Mobile:        req.Mobile,
		Address:       req.Address,
		Services:      services,
		TotalAmount:   req.TotalAmount,
		ServiceStatus: models.BookingStatusIncomplete,
	}
	if err := s.Repo.Create(bkg); err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	inv := deriveInvoice(bkg, serviceString)
	if err := s.InvoiceRepo.Create(inv); err != nil {
		// The booking is already committed. No compensating delete: the
		// orphan is surfaced, not masked.
		utils.GetLogger().Error("Create: invoice derivation write failed, booking orphaned",
			zap.String("bookingId", bkg.ID), zap.Error(err))
		return bkg, nil, fmt.Errorf("failed to create invoice for booking %s: %w", bkg.ID, err)
	}

	return bkg, inv, nil
}

// deriveInvoice synthesizes the single invoice summarizing a booking.
func deriveInvoice(bkg *models.Booking, serviceString string) *models.Invoice {
	return &models.Invoice{
		ID:            uuid.New().String(),
		UserID:        bkg.UserID,
		BookingID:     bkg.ID,
		CompanyName:   bkg.CompanyName,
		Service:       serviceString,
		Amount:        bkg.TotalAmount,
		InvoiceStatus: models.InvoiceStatusGenerated,
	}
}

// GetAll lists all bookings, newest first.
func (s *DefaultBookingService) GetAll() ([]models.Booking, error) {
	return s.Repo.GetAll()
}

// UpdateContact edits a booking's contact fields.
func (s *DefaultBookingService) UpdateContact(id string, req models.BookingContactUpdateRequest) (*models.Booking, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, InvalidInputError{Reason: "Invalid booking ID"}
	}

	return s.Repo.UpdateSet(id, bson.M{
		"customerName": req.CustomerName,
		"companyName":  req.CompanyName,
		"email":        req.Email,
		"mobile":       req.Mobile,
	})
}

// UpdateStatus applies a booking status transition.
func (s *DefaultBookingService) UpdateStatus(id, status string) (*models.Booking, error) {
	if status != models.BookingStatusComplete && status != models.BookingStatusIncomplete {
		return nil, InvalidInputError{Reason: "Invalid status"}
	}
	return s.Repo.UpdateSet(id, bson.M{"serviceStatus": status})
}

// Delete removes a booking without touching its invoice.
func (s *DefaultBookingService) Delete(id string) error {
	return s.Repo.Delete(id)
}
