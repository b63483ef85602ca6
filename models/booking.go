package models

import "time"

// Booking status literals.
const (
	BookingStatusIncomplete = "Incomplete"
	BookingStatusComplete   = "Complete"
)

// ServiceItem is a single line item on a booking.
type ServiceItem struct {
	ServiceName string  `bson:"serviceName" json:"serviceName"`
	Price       float64 `bson:"price" json:"price"`
}

// Booking represents a customer's requested set of services and contact details.
type Booking struct {
	ID            string        `bson:"id" json:"id"`
	UserID        string        `bson:"userId" json:"userId"`
	CustomerName  string        `bson:"customerName" json:"customerName"`
	CompanyName   string        `bson:"companyName" json:"companyName"`
	Email         string        `bson:"email" json:"email"`
	Mobile        string        `bson:"mobile" json:"mobile"`
	Address       string        `bson:"address" json:"address"`
	Services      []ServiceItem `bson:"services" json:"services"`
	TotalAmount   float64       `bson:"totalAmount" json:"totalAmount"`
	ServiceStatus string        `bson:"serviceStatus" json:"serviceStatus"`
	CreatedAt     time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time     `bson:"updatedAt" json:"updatedAt"`
}
