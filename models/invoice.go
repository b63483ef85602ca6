package models

import "time"

// Invoice status literals. Rejected and Confirmed are reachable only
// through their dedicated operations, never the generic status setter.
const (
	InvoiceStatusGenerated  = "Generated"
	InvoiceStatusApproved   = "Approved"
	InvoiceStatusInProgress = "In Progress"
	InvoiceStatusCompleted  = "Completed"
	InvoiceStatusRejected   = "Rejected"
	InvoiceStatusConfirmed  = "Confirmed"
)

// Invoice is the billing record derived from a booking. Exactly one is
// created per successful booking creation; BookingID is set once and
// never changes afterwards.
type Invoice struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	CompanyName   string    `bson:"companyName" json:"companyName"`
	Service       string    `bson:"service" json:"service"`
	Amount        float64   `bson:"amount" json:"amount"`
	InvoiceStatus string    `bson:"invoiceStatus" json:"invoiceStatus"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}
