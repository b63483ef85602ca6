package models

// SignupRequest is the payload for account creation.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the payload for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest replaces a user's password by email.
type ForgotPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ServiceItemInput is a submitted line item. Clients send either
// "serviceName" or the legacy "name" field; price is optional.
type ServiceItemInput struct {
	ServiceName string  `json:"serviceName"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
}

// BookingCreateRequest is the payload for booking creation.
type BookingCreateRequest struct {
	CustomerName string             `json:"customerName"`
	CompanyName  string             `json:"companyName"`
	Email        string             `json:"email"`
	Mobile       string             `json:"mobile"`
	Address      string             `json:"address"`
	Services     []ServiceItemInput `json:"services"`
	TotalAmount  float64            `json:"totalAmount"`
}

// BookingContactUpdateRequest edits a booking's contact fields.
type BookingContactUpdateRequest struct {
	CustomerName string `json:"customerName"`
	CompanyName  string `json:"companyName"`
	Email        string `json:"email"`
	Mobile       string `json:"mobile"`
}

// StatusUpdateRequest carries a target status literal.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// InvoiceUpdateRequest edits invoice billing fields. Absent fields are
// left untouched.
type InvoiceUpdateRequest struct {
	CompanyName *string  `json:"companyName"`
	Service     *string  `json:"service"`
	Amount      *float64 `json:"amount"`
}
