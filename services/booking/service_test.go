package booking

import (
	"errors"
	"testing"
	"time"

	bookingRepo "mensa/database/repository/booking"
	"mensa/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings  map[string]*models.Booking
	order     []string
	createErr error
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]*models.Booking)}
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now
	copied := *b
	f.bookings[b.ID] = &copied
	f.order = append(f.order, b.ID)
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

func (f *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	out := make([]models.Booking, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, *f.bookings[f.order[i]])
	}
	return out, nil
}

func (f *fakeBookingRepo) GetLatestByUserID(userID string) (*models.Booking, error) {
	for i := len(f.order) - 1; i >= 0; i-- {
		if b := f.bookings[f.order[i]]; b.UserID == userID {
			copied := *b
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) UpdateSet(id string, fields bson.M) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	for key, value := range fields {
		switch key {
		case "customerName":
			b.CustomerName = value.(string)
		case "companyName":
			b.CompanyName = value.(string)
		case "email":
			b.Email = value.(string)
		case "mobile":
			b.Mobile = value.(string)
		case "serviceStatus":
			b.ServiceStatus = value.(string)
		case "services":
			b.Services = value.([]models.ServiceItem)
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

type fakeInvoiceRepo struct {
	invoices  map[string]*models.Invoice
	order     []string
	createErr error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: make(map[string]*models.Invoice)}
}

func (f *fakeInvoiceRepo) Create(inv *models.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	inv.CreatedAt = time.Now()
	copied := *inv
	f.invoices[inv.ID] = &copied
	f.order = append(f.order, inv.ID)
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id string) (*models.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, errors.New("invoice not found")
	}
	copied := *inv
	return &copied, nil
}

func (f *fakeInvoiceRepo) GetAll() ([]models.Invoice, error) {
	out := make([]models.Invoice, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		out = append(out, *f.invoices[f.order[i]])
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetByUserID(userID string) ([]models.Invoice, error) {
	var out []models.Invoice
	for i := len(f.order) - 1; i >= 0; i-- {
		if inv := f.invoices[f.order[i]]; inv.UserID == userID {
			out = append(out, *inv)
		}
	}
	return out, nil
}

func (f *fakeInvoiceRepo) GetLatestByUserID(userID string) (*models.Invoice, error) {
	for i := len(f.order) - 1; i >= 0; i-- {
		if inv := f.invoices[f.order[i]]; inv.UserID == userID {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeInvoiceRepo) UpdateSet(id string, fields bson.M) (*models.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, errors.New("invoice not found")
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

func newService() (*DefaultBookingService, *fakeBookingRepo, *fakeInvoiceRepo) {
	bRepo := newFakeBookingRepo()
	iRepo := newFakeInvoiceRepo()
	return &DefaultBookingService{Repo: bRepo, InvoiceRepo: iRepo}, bRepo, iRepo
}

func TestCreateRejectsEmptyServiceNames(t *testing.T) {
	svc, bRepo, iRepo := newService()

	cases := []struct {
		name     string
		services []models.ServiceItemInput
	}{
		{"no services", nil},
		{"empty list", []models.ServiceItemInput{}},
		{"blank names", []models.ServiceItemInput{{ServiceName: ""}, {Name: ""}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Create("user-1", models.BookingCreateRequest{Services: tc.services})
			var inputErr InvalidInputError
			require.ErrorAs(t, err, &inputErr)
			assert.Empty(t, bRepo.bookings, "no booking may be persisted")
			assert.Empty(t, iRepo.invoices, "no invoice may be persisted")
		})
	}
}

func TestCreateDerivesExactlyOneInvoice(t *testing.T) {
	svc, bRepo, iRepo := newService()

	req := models.BookingCreateRequest{
		CustomerName: "Asha",
		CompanyName:  "Acme Industrial",
		Email:        "asha@example.com",
		Mobile:       "555",
		Address:      "X St",
		TotalAmount:  750,
		Services: []models.ServiceItemInput{
			{ServiceName: "Wiring", Price: 500},
			{Name: "Panel Setup", Price: 250}, // legacy field
			{ServiceName: ""},                 // blank, filtered from the description
		},
	}

	bkg, inv, err := svc.Create("user-1", req)
	require.NoError(t, err)
	require.NotNil(t, bkg)
	require.NotNil(t, inv)

	assert.Len(t, bRepo.bookings, 1)
	assert.Len(t, iRepo.invoices, 1)

	assert.Equal(t, bkg.ID, inv.BookingID)
	assert.Equal(t, "user-1", inv.UserID)
	assert.Equal(t, bkg.TotalAmount, inv.Amount)
	assert.Equal(t, "Wiring, Panel Setup", inv.Service)
	assert.Equal(t, "Acme Industrial", inv.CompanyName)
	assert.Equal(t, models.InvoiceStatusGenerated, inv.InvoiceStatus)

	assert.Equal(t, models.BookingStatusIncomplete, bkg.ServiceStatus)
	// The blank item survives normalization; only the description filters it.
	require.Len(t, bkg.Services, 3)
	assert.Equal(t, "Panel Setup", bkg.Services[1].ServiceName)
	assert.Equal(t, 250.0, bkg.Services[1].Price)
}

func TestCreateSurfacesOrphanedBooking(t *testing.T) {
	svc, bRepo, iRepo := newService()
	iRepo.createErr = errors.New("write concern failure")

	bkg, inv, err := svc.Create("user-1", models.BookingCreateRequest{
		Services: []models.ServiceItemInput{{ServiceName: "Wiring"}},
	})

	require.Error(t, err)
	assert.Nil(t, inv)
	// No compensating rollback: the booking stays committed.
	require.NotNil(t, bkg)
	assert.Len(t, bRepo.bookings, 1)
	assert.Empty(t, iRepo.invoices)
}

func TestUpdateStatusWhitelist(t *testing.T) {
	svc, bRepo, _ := newService()
	bRepo.bookings["b1"] = &models.Booking{ID: "b1", ServiceStatus: models.BookingStatusIncomplete}
	bRepo.order = append(bRepo.order, "b1")

	for _, status := range []string{"Complete", "Incomplete"} {
		updated, err := svc.UpdateStatus("b1", status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.ServiceStatus)
	}

	for _, status := range []string{"Done", "complete", "", "Generated"} {
		_, err := svc.UpdateStatus("b1", status)
		var inputErr InvalidInputError
		require.ErrorAs(t, err, &inputErr, "status %q must be rejected", status)
	}
	// The rejected transitions left the last valid status in place.
	assert.Equal(t, models.BookingStatusIncomplete, bRepo.bookings["b1"].ServiceStatus)
}

func TestUpdateStatusMissingBooking(t *testing.T) {
	svc, _, _ := newService()
	_, err := svc.UpdateStatus("nope", models.BookingStatusComplete)
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}

func TestUpdateContactValidatesID(t *testing.T) {
	svc, _, _ := newService()
	_, err := svc.UpdateContact("not-a-uuid", models.BookingContactUpdateRequest{})
	var inputErr InvalidInputError
	require.ErrorAs(t, err, &inputErr)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc, _, _ := newService()
	assert.NoError(t, svc.Delete("ffffffff-0000-0000-0000-000000000000"))
}

func TestNormalizeServices(t *testing.T) {
	items := NormalizeServices([]models.ServiceItemInput{
		{ServiceName: "Wiring", Price: 100},
		{Name: "Earthing"},
		{},
	})
	require.Len(t, items, 3)
	assert.Equal(t, models.ServiceItem{ServiceName: "Wiring", Price: 100}, items[0])
	assert.Equal(t, models.ServiceItem{ServiceName: "Earthing", Price: 0}, items[1])
	assert.Equal(t, models.ServiceItem{ServiceName: "", Price: 0}, items[2])

	assert.Equal(t, "Wiring, Earthing", JoinServiceNames(items))
	assert.Equal(t, "", JoinServiceNames(nil))
}
