package invoice

import (
	"errors"
	"strings"

	bookingRepo "mensa/database/repository/booking"
	invoiceRepo "mensa/database/repository/invoice"
	"mensa/models"
	"mensa/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// settableStatuses is the whitelist for the generic status setter.
// Rejected and Confirmed represent out-of-band human decisions and are
// only reachable through Reject and Confirm.
var settableStatuses = map[string]bool{
	models.InvoiceStatusGenerated:  true,
	models.InvoiceStatusApproved:   true,
	models.InvoiceStatusInProgress: true,
	models.InvoiceStatusCompleted:  true,
}

// DefaultInvoiceService is the standard InvoiceService implementation.
type DefaultInvoiceService struct {
	Repo        invoiceRepo.InvoiceRepository
	BookingRepo bookingRepo.BookingRepository
}

// GetByID fetches a single invoice.
func (s *DefaultInvoiceService) GetByID(id string) (*models.Invoice, error) {
	return s.Repo.GetByID(id)
}

// GetByUser lists a user's invoices, newest first.
func (s *DefaultInvoiceService) GetByUser(userID string) ([]models.Invoice, error) {
	return s.Repo.GetByUserID(userID)
}

// GetAll lists all invoices, newest first.
func (s *DefaultInvoiceService) GetAll() ([]models.Invoice, error) {
	return s.Repo.GetAll()
}

// UpdateStatus applies a workflow transition through the whitelist.
func (s *DefaultInvoiceService) UpdateStatus(id, status string) error {
	if !settableStatuses[status] {
		return InvalidInputError{Reason: "Invalid status"}
	}
	_, err := s.Repo.UpdateSet(id, bson.M{"invoiceStatus": status})
	return err
}

// Reject forces the status to Rejected regardless of prior state.
func (s *DefaultInvoiceService) Reject(id string) error {
	_, err := s.Repo.UpdateSet(id, bson.M{"invoiceStatus": models.InvoiceStatusRejected})
	return err
}

// Confirm forces the status to Confirmed regardless of prior state.
func (s *DefaultInvoiceService) Confirm(id string) error {
	_, err := s.Repo.UpdateSet(id, bson.M{"invoiceStatus": models.InvoiceStatusConfirmed})
	return err
}

// UpdateDetails edits billing fields and, for a non-empty service edit,
// rewrites the originating booking's line items. Each comma-separated
// segment becomes a fresh item with price forced to zero; previously
// stored per-item prices are discarded. The sync is one-way only.
func (s *DefaultInvoiceService) UpdateDetails(id string, req models.InvoiceUpdateRequest) (*models.Invoice, error) {
	fields := bson.M{}
	if req.CompanyName != nil {
		fields["companyName"] = *req.CompanyName
	}
	if req.Service != nil {
		fields["service"] = *req.Service
	}
	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}
	if len(fields) == 0 {
		return nil, InvalidInputError{Reason: "No fields to update"}
	}

	inv, err := s.Repo.UpdateSet(id, fields)
	if err != nil {
		return nil, err
	}

	if inv.BookingID != "" && req.Service != nil && *req.Service != "" {
		items := splitServiceString(*req.Service)
		if _, err := s.BookingRepo.UpdateSet(inv.BookingID, bson.M{"services": items}); err != nil {
			// The invoice edit is already committed. A booking that no
			// longer exists makes this a no-op; anything else is surfaced.
			if errors.Is(err, bookingRepo.ErrNotFound) {
				utils.GetLogger().Warn("UpdateDetails: originating booking missing, skipping service sync",
					zap.String("invoiceId", inv.ID), zap.String("bookingId", inv.BookingID))
			} else {
				return inv, err
			}
		}
	}

	return inv, nil
}

// splitServiceString turns a comma-separated service description into
// line items with prices reset to zero.
func splitServiceString(service string) []models.ServiceItem {
	segments := strings.Split(service, ",")
	items := make([]models.ServiceItem, 0, len(segments))
	for _, segment := range segments {
		items = append(items, models.ServiceItem{
			ServiceName: strings.TrimSpace(segment),
			Price:       0,
		})
	}
	return items
}

// Delete removes an invoice.
func (s *DefaultInvoiceService) Delete(id string) error {
	return s.Repo.Delete(id)
}
