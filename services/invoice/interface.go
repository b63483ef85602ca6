package invoice

import "mensa/models"

// InvoiceService defines the invoice status workflow and field edits.
type InvoiceService interface {
	// GetByID fetches a single invoice.
	GetByID(id string) (*models.Invoice, error)
	// GetByUser lists a user's invoices, newest first.
	GetByUser(userID string) ([]models.Invoice, error)
	// GetAll lists all invoices, newest first.
	GetAll() ([]models.Invoice, error)
	// UpdateStatus applies a workflow transition. Only Generated,
	// Approved, In Progress and Completed are accepted here; Rejected and
	// Confirmed have dedicated operations.
	UpdateStatus(id, status string) error
	// Reject forces the status to Rejected regardless of prior state.
	Reject(id string) error
	// Confirm forces the status to Confirmed regardless of prior state.
	Confirm(id string) error
	// UpdateDetails edits billing fields. A non-empty service edit also
	// rewrites the originating booking's line items with prices reset to
	// zero (one-way sync).
	UpdateDetails(id string, req models.InvoiceUpdateRequest) (*models.Invoice, error)
	// Delete removes an invoice. Deleting an absent invoice succeeds.
	Delete(id string) error
}
