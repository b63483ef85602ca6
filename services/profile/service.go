package profile

import (
	"errors"
	"strconv"

	bookingRepo "mensa/database/repository/booking"
	invoiceRepo "mensa/database/repository/invoice"
	userRepo "mensa/database/repository/user"
	"mensa/models"
	svcBooking "mensa/services/booking"
)

// Placeholder rendered for any field with no backing data.
const Placeholder = "-"

// ProfileService builds the merged read view for a user.
type ProfileService interface {
	GetProfile(userID string) (*models.Profile, error)
}

// DefaultProfileService combines the latest booking and latest invoice,
// each independently newest-first, into a single view.
//
// Precedence: the invoice's service string is the finalized billing
// truth and wins over booking-derived names; contact fields are never
// captured on the invoice, so they always come from the booking.
type DefaultProfileService struct {
	UserRepo    userRepo.UserRepository
	BookingRepo bookingRepo.BookingRepository
	InvoiceRepo invoiceRepo.InvoiceRepository

	// CurrencyPrefix is prepended to the estimate, e.g. "₹".
	CurrencyPrefix string
}

// GetProfile assembles the profile view for the given user.
func (s *DefaultProfileService) GetProfile(userID string) (*models.Profile, error) {
	view := &models.Profile{
		Name:          Placeholder,
		Mobile:        Placeholder,
		Address:       Placeholder,
		Service:       Placeholder,
		Estimate:      Placeholder,
		InvoiceStatus: Placeholder,
	}

	usr, err := s.UserRepo.GetByID(userID)
	if err != nil && !errors.Is(err, userRepo.ErrNotFound) {
		return nil, err
	}
	if usr != nil && usr.Name != "" {
		view.Name = usr.Name
	}

	latestBooking, err := s.BookingRepo.GetLatestByUserID(userID)
	if err != nil {
		return nil, err
	}
	latestInvoice, err := s.InvoiceRepo.GetLatestByUserID(userID)
	if err != nil {
		return nil, err
	}

	if latestInvoice != nil && latestInvoice.Service != "" {
		view.Service = latestInvoice.Service
	} else if latestBooking != nil && len(latestBooking.Services) > 0 {
		if joined := svcBooking.JoinServiceNames(latestBooking.Services); joined != "" {
			view.Service = joined
		}
	}

	if latestBooking != nil {
		if latestBooking.Mobile != "" {
			view.Mobile = latestBooking.Mobile
		}
		if latestBooking.Address != "" {
			view.Address = latestBooking.Address
		}
	}

	if latestInvoice != nil {
		view.Estimate = s.CurrencyPrefix + formatAmount(latestInvoice.Amount)
		view.InvoiceStatus = latestInvoice.InvoiceStatus
	}

	return view, nil
}

// formatAmount renders an amount without a forced decimal part, so 500
// stays "500" and 500.5 stays "500.5".
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
