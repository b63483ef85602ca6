package invoice

import (
	"testing"
	"time"

	bookingRepo "mensa/database/repository/booking"
	invoiceRepo "mensa/database/repository/invoice"
	"mensa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeInvoiceRepo struct {
	invoices map[string]*models.Invoice
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*models.Invoice)}
}

func (f *fakeInvoiceRepo) Create(inv *models.Invoice) error {
	inv.CreatedAt = time.Now()
	copied := *inv
	f.invoices[inv.ID] = &copied
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, invoiceRepo.ErrNotFound
	}
	copied := *inv
	return &copied, nil
}

func (f *fakeInvoiceRepo) GetAll() ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.invoices {
		out = append(out, *inv)
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetByUserID(userID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for _, inv := range f.invoices {
		if inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetLatestByUserID(userID string) (*models.Invoice, error) {
	for _, inv := range f.invoices {
		if inv.UserID == userID {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) UpdateSet(id string, fields bson.M) (*models.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, invoiceRepo.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "companyName":
			inv.CompanyName = value.(string)
		case "service":
			inv.Service = value.(string)
		case "amount":
			inv.Amount = value.(float64)
		case "invoiceStatus":
			inv.InvoiceStatus = value.(string)
		}
	}
	copied := *inv
	return &copied, nil
}

func (f *fakeInvoiceRepo) Delete(id string) error {
	delete(f.invoices, id)
	return nil
}

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	copied := *b
	f.bookings[b.ID] = &copied
	return nil
}

func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) { return nil, nil }

func (f *fakeBookingRepo) GetLatestByUserID(string) (*models.Booking, error) { return nil, nil }

func (f *fakeBookingRepo) UpdateSet(id string, fields bson.M) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "services":
			b.Services = value.([]models.ServiceItem)
		case "serviceStatus":
			b.ServiceStatus = value.(string)
		case "updatedAt":
			b.UpdatedAt = value.(time.Time)
		}
	}
	copied := *b
	return &copied, nil
}

func (f *fakeBookingRepo) Delete(id string) error {
	delete(f.bookings, id)
	return nil
}

func newService() (*DefaultInvoiceService, *fakeInvoiceRepo, *fakeBookingRepo) {
	iRepo := newFakeInvoiceRepo()
	bRepo := newFakeBookingRepo()
	return &DefaultInvoiceService{Repo: iRepo, BookingRepo: bRepo}, iRepo, bRepo
}

func seedInvoice(iRepo *fakeInvoiceRepo, id, bookingID string) {
	iRepo.invoices[id] = &models.Invoice{
		ID:            id,
		UserID:        "user-1",
		BookingID:     bookingID,
		Service:       "Wiring",
		Amount:        500,
		InvoiceStatus: models.InvoiceStatusGenerated,
		CreatedAt:     time.Now(),
	}
}

func TestUpdateStatusWhitelist(t *testing.T) {
	svc, iRepo, _ := newService()
	seedInvoice(iRepo, "i1", "b1")

	for _, status := range []string{"Generated", "Approved", "In Progress", "Completed"} {
		require.NoError(t, svc.UpdateStatus("i1", status))
		assert.Equal(t, status, iRepo.invoices["i1"].InvoiceStatus)
	}
}

func TestUpdateStatusRejectsOutOfBandLiterals(t *testing.T) {
	svc, iRepo, _ := newService()
	seedInvoice(iRepo, "i1", "b1")

	// Rejected and Confirmed are reserved for the dedicated operations.
	for _, status := range []string{"Rejected", "Confirmed", "approved", "Paid", ""} {
		err := svc.UpdateStatus("i1", status)
		var inputErr InvalidInputError
		require.ErrorAs(t, err, &inputErr, "status %q must be rejected", status)
	}
	assert.Equal(t, models.InvoiceStatusGenerated, iRepo.invoices["i1"].InvoiceStatus)
}

func TestRejectAndConfirmForceStatus(t *testing.T) {
	svc, iRepo, _ := newService()

	for _, prior := range []string{"Generated", "Completed", "Confirmed"} {
		seedInvoice(iRepo, "i1", "b1")
		iRepo.invoices["i1"].InvoiceStatus = prior

		require.NoError(t, svc.Reject("i1"))
		assert.Equal(t, models.InvoiceStatusRejected, iRepo.invoices["i1"].InvoiceStatus)

		require.NoError(t, svc.Confirm("i1"))
		assert.Equal(t, models.InvoiceStatusConfirmed, iRepo.invoices["i1"].InvoiceStatus)
	}
}

func TestRejectMissingInvoice(t *testing.T) {
	svc, _, _ := newService()
	assert.ErrorIs(t, svc.Reject("nope"), invoiceRepo.ErrNotFound)
	assert.ErrorIs(t, svc.Confirm("nope"), invoiceRepo.ErrNotFound)
}

func TestServiceEditRewritesBookingItems(t *testing.T) {
	svc, iRepo, bRepo := newService()
	seedInvoice(iRepo, "i1", "b1")
	bRepo.bookings["b1"] = &models.Booking{
		ID: "b1",
		Services: []models.ServiceItem{
			{ServiceName: "Wiring", Price: 500},
			{ServiceName: "Earthing", Price: 120},
		},
	}

	service := "A, B"
	updated, err := svc.UpdateDetails("i1", models.InvoiceUpdateRequest{Service: &service})
	require.NoError(t, err)
	assert.Equal(t, "A, B", updated.Service)

	// Prior per-item prices are discarded, not preserved.
	assert.Equal(t, []models.ServiceItem{
		{ServiceName: "A", Price: 0},
		{ServiceName: "B", Price: 0},
	}, bRepo.bookings["b1"].Services)
}

func TestServiceEditSkipsMissingBooking(t *testing.T) {
	svc, iRepo, _ := newService()
	seedInvoice(iRepo, "i1", "b-gone")

	service := "Rewiring"
	updated, err := svc.UpdateDetails("i1", models.InvoiceUpdateRequest{Service: &service})
	require.NoError(t, err)
	assert.Equal(t, "Rewiring", updated.Service)
}

func TestUpdateDetailsPartialFields(t *testing.T) {
	svc, iRepo, bRepo := newService()
	seedInvoice(iRepo, "i1", "b1")
	bRepo.bookings["b1"] = &models.Booking{
		ID:       "b1",
		Services: []models.ServiceItem{{ServiceName: "Wiring", Price: 500}},
	}

	amount := 900.0
	updated, err := svc.UpdateDetails("i1", models.InvoiceUpdateRequest{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 900.0, updated.Amount)
	assert.Equal(t, "Wiring", updated.Service)

	// No service edit, so the booking's line items are untouched.
	assert.Equal(t, 500.0, bRepo.bookings["b1"].Services[0].Price)

	_, err = svc.UpdateDetails("i1", models.InvoiceUpdateRequest{})
	var inputErr InvalidInputError
	require.ErrorAs(t, err, &inputErr)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, _, _ := newService()
	assert.NoError(t, svc.Delete("never-existed"))
}
