package invoiceRepo

import (
	"errors"

	"mensa/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned when no invoice matches the given identifier.
var ErrNotFound = errors.New("invoice not found")

// InvoiceRepository defines methods for invoice data access.
type InvoiceRepository interface {
	// Create inserts a new invoice record, stamping the creation time.
	Create(invoice *models.Invoice) error
	// GetByID retrieves an invoice by its unique ID.
	GetByID(id string) (*models.Invoice, error)
	// GetAll retrieves all invoices, newest first.
	GetAll() ([]models.Invoice, error)
	// GetByUserID retrieves a user's invoices, newest first.
	GetByUserID(userID string) ([]models.Invoice, error)
	// GetLatestByUserID retrieves a user's most recent invoice.
	// Returns (nil, nil) when the user has no invoices.
	GetLatestByUserID(userID string) (*models.Invoice, error)
	// UpdateSet applies a $set update and returns the updated invoice.
	UpdateSet(id string, fields bson.M) (*models.Invoice, error)
	// Delete removes an invoice by ID. Deleting an invoice that does not
	// exist is not an error.
	Delete(id string) error
}
