package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct for route
// registration.
type HandlerBundle struct {
	// Auth endpoints
	SignupHandler         gin.HandlerFunc
	LoginHandler          gin.HandlerFunc
	ForgotPasswordHandler gin.HandlerFunc
	VerifyTokenHandler    gin.HandlerFunc
	LogoutHandler         gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler       gin.HandlerFunc
	GetAllBookingsHandler      gin.HandlerFunc
	UpdateBookingHandler       gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc

	// Invoice endpoints
	MyInvoicesHandler          gin.HandlerFunc
	AllInvoicesHandler         gin.HandlerFunc
	UpdateInvoiceHandler       gin.HandlerFunc
	UpdateInvoiceStatusHandler gin.HandlerFunc
	RejectInvoiceHandler       gin.HandlerFunc
	ConfirmInvoiceHandler      gin.HandlerFunc
	DeleteInvoiceHandler       gin.HandlerFunc
	InvoicePDFHandler          gin.HandlerFunc

	// Profile endpoint
	GetProfileHandler gin.HandlerFunc
}
