package handlers

import (
	"errors"
	"fmt"
	"net/http"

	invoiceRepo "mensa/database/repository/invoice"
	"mensa/models"
	"mensa/services/invoice"
	"mensa/services/pdf"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler exposes the invoice workflow and PDF rendering.
type InvoiceHandler struct {
	Service  invoice.InvoiceService
	Renderer pdf.Renderer
}

// NewInvoiceHandler returns a handler wired to the given service and renderer.
func NewInvoiceHandler(svc invoice.InvoiceService, renderer pdf.Renderer) *InvoiceHandler {
	return &InvoiceHandler{Service: svc, Renderer: renderer}
}

// MyInvoicesHandler handles GET /api/invoices for the authenticated user.
func (h *InvoiceHandler) MyInvoicesHandler(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "No token"})
		return
	}

	invoices, err := h.Service.GetByUser(userID)
	if err != nil {
		getLogger().Error("Failed to list user invoices", zap.String("userId", userID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

// AllInvoicesHandler handles GET /api/invoices/all.
func (h *InvoiceHandler) AllInvoicesHandler(c *gin.Context) {
	invoices, err := h.Service.GetAll()
	if err != nil {
		getLogger().Error("Failed to list invoices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if invoices == nil {
		invoices = []models.Invoice{}
	}
	c.JSON(http.StatusOK, invoices)
}

// UpdateInvoiceStatusHandler handles PUT /api/invoices/:id/status.
// Rejected and Confirmed are not accepted here.
func (h *InvoiceHandler) UpdateInvoiceStatusHandler(c *gin.Context) {
	id := c.Param("id")

	var req models.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	if err := h.Service.UpdateStatus(id, req.Status); err != nil {
		h.respondInvoiceError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RejectInvoiceHandler handles PUT /api/invoices/:id/reject.
func (h *InvoiceHandler) RejectInvoiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Reject(id); err != nil {
		h.respondInvoiceError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking rejected successfully"})
}

// ConfirmInvoiceHandler handles PUT /api/invoices/:id/confirm.
func (h *InvoiceHandler) ConfirmInvoiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Confirm(id); err != nil {
		h.respondInvoiceError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed successfully"})
}

// UpdateInvoiceHandler handles PUT /api/invoices/:id (field edits). A
// non-empty service edit also rewrites the originating booking's line
// items with prices reset to zero.
func (h *InvoiceHandler) UpdateInvoiceHandler(c *gin.Context) {
	id := c.Param("id")

	var req models.InvoiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	if _, err := h.Service.UpdateDetails(id, req); err != nil {
		h.respondInvoiceError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteInvoiceHandler handles DELETE /api/invoices/:id (idempotent).
func (h *InvoiceHandler) DeleteInvoiceHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.Delete(id); err != nil {
		getLogger().Error("Invoice delete failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// InvoicePDFHandler handles GET /api/invoices/:id/pdf, streaming the
// rendered document inline.
func (h *InvoiceHandler) InvoicePDFHandler(c *gin.Context) {
	id := c.Param("id")

	inv, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, invoiceRepo.ErrNotFound) {
			c.String(http.StatusNotFound, "Invoice not found")
			return
		}
		getLogger().Error("Invoice fetch for PDF failed", zap.String("id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Error generating PDF")
		return
	}

	data, err := h.Renderer.Render(inv)
	if err != nil {
		getLogger().Error("Invoice PDF render failed", zap.String("id", id), zap.Error(err))
		c.String(http.StatusInternalServerError, "Error generating PDF")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=invoice-%s.pdf", inv.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *InvoiceHandler) respondInvoiceError(c *gin.Context, id string, err error) {
	var inputErr invoice.InvalidInputError
	switch {
	case errors.As(err, &inputErr):
		c.JSON(http.StatusBadRequest, gin.H{"message": inputErr.Reason})
	case errors.Is(err, invoiceRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found"})
	default:
		getLogger().Error("Invoice operation failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
	}
}
