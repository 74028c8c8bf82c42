package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megacitycab/internal/backend"
	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
)

func adminSession(t *testing.T, store session.Store) *models.Session {
	t.Helper()
	sess := &models.Session{ID: session.NewID(), Credentials: models.Credentials{
		Token: "admin-tok", UserID: "1", Role: models.RoleAdmin, Username: "root",
	}}
	require.NoError(t, store.Save(context.Background(), sess.ID, &sess.Credentials, time.Hour))
	return sess
}

func customerSession() *models.Session {
	return &models.Session{ID: session.NewID(), Credentials: models.Credentials{
		Token: "c-tok", UserID: "7", Role: models.RoleCustomer,
	}}
}

func TestVehicleListFilterAndAdminOnly(t *testing.T) {
	store := session.NewMemoryStore()
	fb := &fakeBackend{allVehicles: []models.Vehicle{
		{ID: "1", RegistrationStatus: models.RegistrationPending},
		{ID: "2", RegistrationStatus: models.RegistrationApproved},
		{ID: "3", RegistrationStatus: models.RegistrationRejected},
	}}
	svc := NewVehicleService(fb, nil, 0, store, logger.NewNop())
	sess := adminSession(t, store)

	all, err := svc.List(context.Background(), sess, models.VehicleFilterAll)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	pending, err := svc.List(context.Background(), sess, models.VehicleFilterPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "1", pending[0].Key())

	_, err = svc.List(context.Background(), customerSession(), models.VehicleFilterAll)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.List(context.Background(), nil, models.VehicleFilterAll)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestVehicleCatalogueCachesAndFilters(t *testing.T) {
	fb := &fakeBackend{vehicles: []models.Vehicle{
		{ID: "1", Transmission: "Auto", FuelType: "Petrol"},
		{ID: "2", Transmission: "Manual", FuelType: "Diesel"},
	}}
	cache := newMemCache()
	store := session.NewMemoryStore()
	svc := NewVehicleService(fb, cache, time.Minute, store, logger.NewNop())

	got, err := svc.Catalogue(context.Background(), models.VehicleFilter{Transmission: "manual", FuelType: "all"})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].Key())

	_, err = svc.Catalogue(context.Background(), models.VehicleFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, fb.vehicleCalls)

	require.NoError(t, svc.Approve(context.Background(), adminSession(t, store), "9"))
	_, err = svc.Catalogue(context.Background(), models.VehicleFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, fb.vehicleCalls)
}

func TestSelectForBookingNeedsLogin(t *testing.T) {
	svc := NewVehicleService(&fakeBackend{vehicles: []models.Vehicle{{ID: "1"}}}, nil, 0, session.NewMemoryStore(), logger.NewNop())

	_, err := svc.SelectForBooking(context.Background(), nil, "1")
	assert.EqualError(t, err, "You must be logged in to book a taxi.")

	v, err := svc.SelectForBooking(context.Background(), customerSession(), "1")
	require.NoError(t, err)
	assert.Equal(t, "1", v.Key())
}

func TestAdminUnauthorizedClearsSession(t *testing.T) {
	store := session.NewMemoryStore()
	fb := &fakeBackend{unauthorized: true}
	svc := NewDriverService(fb, store, logger.NewNop())
	sess := adminSession(t, store)

	err := svc.Approve(context.Background(), sess, "d1")
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = store.Load(context.Background(), sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestDriverApprovedFiltersStatus(t *testing.T) {
	store := session.NewMemoryStore()
	fb := &fakeBackend{drivers: []models.Driver{
		{DriverID: "1", RegistrationStatus: models.RegistrationApproved},
		{DriverID: "2", RegistrationStatus: models.RegistrationPending},
	}}
	svc := NewDriverService(fb, store, logger.NewNop())

	drivers, err := svc.Approved(context.Background(), adminSession(t, store))
	require.NoError(t, err)
	require.Len(t, drivers, 1)
	assert.Equal(t, models.ID("1"), drivers[0].DriverID)
}

func TestDriverActionFailureMessage(t *testing.T) {
	store := session.NewMemoryStore()
	fb := &fakeBackend{actionErr: &backend.APIError{StatusCode: 409, Message: "Driver already approved"}}
	svc := NewDriverService(fb, store, logger.NewNop())

	err := svc.Approve(context.Background(), adminSession(t, store), "d1")
	assert.EqualError(t, err, "Failed to approve driver: Driver already approved")

	driver, err := NewDriverService(&fakeBackend{}, store, logger.NewNop()).ToggleStatus(context.Background(), adminSession(t, store), "d2")
	require.NoError(t, err)
	assert.Equal(t, models.DriverUnavailable, driver.Status)
}

func TestCategoryLifecycle(t *testing.T) {
	store := session.NewMemoryStore()
	fb := &fakeBackend{categories: []models.Category{{CategoryID: "c1", CategoryName: "Van", PricePerKm: 120}}}
	svc := NewCategoryService(fb, store, logger.NewNop())
	sess := adminSession(t, store)
	ctx := context.Background()

	list, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	price := 95.5
	created, err := svc.Add(ctx, sess, &models.CategoryForm{CategoryName: " Sedan ", PricePerKm: &price})
	require.NoError(t, err)
	assert.Equal(t, "Sedan", created.CategoryName)
	assert.Equal(t, 95.5, created.PricePerKm)

	_, err = svc.Add(ctx, sess, &models.CategoryForm{CategoryName: "Bad"})
	var errs validators.ValidationErrors
	assert.ErrorAs(t, err, &errs)

	_, err = svc.Update(ctx, sess, "c1", &models.CategoryForm{CategoryName: "Van", PricePerKm: &price})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, sess, "c1"))

	assert.Equal(t, []string{"add-category:Sedan", "update-category:c1", "delete-category:c1"}, fb.actions)

	_, err = svc.Add(ctx, customerSession(), &models.CategoryForm{CategoryName: "X", PricePerKm: &price})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDashboardCounts(t *testing.T) {
	store := session.NewMemoryStore()
	fb := &fakeBackend{
		allVehicles: []models.Vehicle{
			{RegistrationStatus: models.RegistrationPending},
			{RegistrationStatus: models.RegistrationPending},
			{RegistrationStatus: models.RegistrationApproved},
			{RegistrationStatus: models.RegistrationRejected},
		},
		drivers: []models.Driver{
			{RegistrationStatus: models.RegistrationApproved},
			{RegistrationStatus: models.RegistrationPending},
		},
		pendingDrivers: []models.Driver{{}},
		categories:     []models.Category{{}, {}},
	}
	svc := NewAdminService(fb, fb, store, logger.NewNop())

	stats, err := svc.Dashboard(context.Background(), adminSession(t, store))
	require.NoError(t, err)
	assert.Equal(t, models.DashboardStats{
		TotalVehicles:    4,
		PendingVehicles:  2,
		ApprovedVehicles: 1,
		RejectedVehicles: 1,
		ApprovedDrivers:  1,
		PendingDrivers:   1,
		Categories:       2,
	}, *stats)
}

func TestAdminProfile(t *testing.T) {
	store := session.NewMemoryStore()
	fb := &fakeBackend{admins: []models.Admin{{ID: "1", FirstName: "Root"}, {ID: "2", FirstName: "Nadee"}}}
	svc := NewAdminService(fb, fb, store, logger.NewNop())
	sess := adminSession(t, store)
	ctx := context.Background()

	me, err := svc.Get(ctx, sess, "me")
	require.NoError(t, err)
	assert.Equal(t, "Root", me.FirstName)

	_, err = svc.Get(ctx, sess, "99")
	assert.True(t, backend.IsStatus(err, 404))

	updated, err := svc.Update(ctx, sess, "", &models.AdminUpdate{FirstName: "R", LastName: "T", Email: "r@t.lk"})
	require.NoError(t, err)
	assert.Equal(t, models.ID("1"), updated.ID)

	assert.EqualError(t, svc.Delete(ctx, sess, "1"), "You cannot delete your own account.")
	require.NoError(t, svc.Delete(ctx, sess, "2"))

	_, err = svc.UploadPicture(ctx, sess, "me", nil)
	assert.EqualError(t, err, "Please select a file to upload.")

	_, err = svc.UploadPicture(ctx, sess, "me", &models.FileUpload{Data: []byte("plain text")})
	var errs validators.ValidationErrors
	assert.ErrorAs(t, err, &errs)
}

func TestCustomerProfileUsesSessionUser(t *testing.T) {
	store := session.NewMemoryStore()
	fb := &fakeBackend{customer: &models.Customer{FirstName: "Ama"}}
	svc := NewCustomerService(fb, store, logger.NewNop())
	sess := customerSession()

	c, err := svc.Profile(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "Ama", c.FirstName)

	_, err = svc.UpdateProfile(context.Background(), sess, &models.CustomerUpdate{FirstName: "Ama", LastName: "P", Email: "ama@mail.lk", Phone: "0771234567"})
	require.NoError(t, err)
	assert.Equal(t, []string{"update-customer:7"}, fb.actions)

	_, err = svc.Profile(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
