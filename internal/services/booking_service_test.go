package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"megacitycab/internal/backend"
	"megacitycab/internal/fare"
	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/pkg/logger"
	"megacitycab/pkg/maps"
)

var colombo, _ = time.LoadLocation("Asia/Colombo")

type bookingFixture struct {
	backend *fakeBackend
	maps    *fakeMaps
	store   *session.MemoryStore
	sess    *models.Session
	service BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	t.Helper()
	log := logger.NewNop()
	fb := &fakeBackend{vehicles: []models.Vehicle{
		{ID: "v1", Model: "Prius", PricePerKm: 3.5},
		{ID: "v2", Model: "Alto"},
	}}
	fm := &fakeMaps{meters: 10000, seconds: 1200}
	store := session.NewMemoryStore()

	sess := &models.Session{ID: session.NewID(), Credentials: models.Credentials{
		Token: "tok", UserID: "42", Role: models.RoleCustomer, Username: "ama",
	}}
	require.NoError(t, store.Save(context.Background(), sess.ID, &sess.Credentials, time.Hour))

	now := func() time.Time { return time.Date(2026, 5, 10, 8, 0, 0, 0, colombo) }
	vehicles := NewVehicleService(fb, nil, 0, store, log)
	svc := NewBookingService(fb, NewRouteService(fm, log), vehicles, fare.NewCalculator(5, 2, "LKR"), store, now, colombo, log)

	return &bookingFixture{backend: fb, maps: fm, store: store, sess: sess, service: svc}
}

func bookingForm() *models.BookingForm {
	return &models.BookingForm{
		PickupLocation:  "Colombo Fort",
		DropOffLocation: "Dehiwala",
		PickupDate:      "2026-05-10",
		PickupTime:      "09:00",
		CustomerName:    "Ama Perera",
		CustomerEmail:   "ama@mail.lk",
		CustomerPhone:   "0771234567",
	}
}

func TestSubmitBookingSuccess(t *testing.T) {
	fx := newBookingFixture(t)

	result, err := fx.service.Submit(context.Background(), fx.sess, bookingForm())
	require.NoError(t, err)
	assert.Equal(t, models.FormStateSubmitted, result.State)
	assert.Equal(t, MsgBookingSuccess, result.Message)
	assert.Equal(t, 25.0, result.Fare.Amount)
	assert.Equal(t, 10.0, result.Route.DistanceKm)

	require.Len(t, fx.backend.bookings, 1)
	req := fx.backend.bookings[0]
	assert.Equal(t, "42", req.CustomerID)
	assert.Equal(t, "Dehiwala", req.Destination)
	assert.Equal(t, req.DropOffLocation, req.Destination)
	assert.Equal(t, models.RideStatusPending, req.RideStatus)
	assert.Equal(t, models.PaymentStatusUnpaid, req.PaymentStatus)
	assert.True(t, req.IsActive)
	assert.False(t, req.IsDriverAccepted)
	assert.Nil(t, req.VehicleID)
	assert.Equal(t, 25.0, req.TotalFare)
}

func TestSubmitBookingUsesVehicleRate(t *testing.T) {
	fx := newBookingFixture(t)
	form := bookingForm()
	form.VehicleID = "v1"

	result, err := fx.service.Submit(context.Background(), fx.sess, form)
	require.NoError(t, err)
	assert.Equal(t, 40.0, result.Fare.Amount)
	require.NotNil(t, fx.backend.bookings[0].VehicleID)
	assert.Equal(t, "v1", *fx.backend.bookings[0].VehicleID)
}

func TestSubmitBookingVehicleWithoutRateUsesDefault(t *testing.T) {
	fx := newBookingFixture(t)
	form := bookingForm()
	form.VehicleID = "v2"

	result, err := fx.service.Submit(context.Background(), fx.sess, form)
	require.NoError(t, err)
	assert.Equal(t, 25.0, result.Fare.Amount)
}

func TestSubmitBookingValidationStaysEditing(t *testing.T) {
	fx := newBookingFixture(t)
	form := bookingForm()
	form.CustomerPhone = "12345"

	result, err := fx.service.Submit(context.Background(), fx.sess, form)
	require.NoError(t, err)
	assert.Equal(t, models.FormStateEditing, result.State)
	assert.Equal(t, "Phone number must be exactly 10 characters long.", result.Error)
	assert.Empty(t, fx.backend.bookings)
	assert.Zero(t, fx.maps.calls)
}

func TestSubmitBookingPastPickup(t *testing.T) {
	fx := newBookingFixture(t)
	form := bookingForm()
	form.PickupTime = "07:30"

	result, err := fx.service.Submit(context.Background(), fx.sess, form)
	require.NoError(t, err)
	assert.Equal(t, "Pickup date and time cannot be in the past.", result.Error)
}

func TestSubmitBookingBackendFailure(t *testing.T) {
	fx := newBookingFixture(t)
	fx.backend.bookingErr = &backend.APIError{StatusCode: 500}

	result, err := fx.service.Submit(context.Background(), fx.sess, bookingForm())
	require.NoError(t, err)
	assert.Equal(t, models.FormStateEditing, result.State)
	assert.Equal(t, MsgBookingFailed, result.Error)
	assert.NotNil(t, result.Fare)
}

func TestSubmitBookingTransportFailure(t *testing.T) {
	fx := newBookingFixture(t)
	fx.backend.bookingErr = backend.ErrTransport

	result, err := fx.service.Submit(context.Background(), fx.sess, bookingForm())
	require.NoError(t, err)
	assert.Equal(t, MsgBookingFailed, result.Error)
}

func TestSubmitBookingUnauthorizedClearsSession(t *testing.T) {
	fx := newBookingFixture(t)
	fx.backend.unauthorized = true

	result, err := fx.service.Submit(context.Background(), fx.sess, bookingForm())
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSessionExpired)

	_, err = fx.store.Load(context.Background(), fx.sess.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSubmitBookingNoRoute(t *testing.T) {
	fx := newBookingFixture(t)
	fx.maps.err = maps.ErrNoRoute

	result, err := fx.service.Submit(context.Background(), fx.sess, bookingForm())
	require.NoError(t, err)
	assert.Equal(t, models.FormStateEditing, result.State)
	assert.Equal(t, ErrNoRoute.Error(), result.Error)
}

func TestSubmitBookingDirectionsError(t *testing.T) {
	fx := newBookingFixture(t)
	fx.maps.err = errors.New("quota exceeded")

	result, err := fx.service.Submit(context.Background(), fx.sess, bookingForm())
	require.NoError(t, err)
	assert.Equal(t, MsgBookingFailed, result.Error)
}

func TestSubmitBookingUnknownVehicle(t *testing.T) {
	fx := newBookingFixture(t)
	form := bookingForm()
	form.VehicleID = "nope"

	result, err := fx.service.Submit(context.Background(), fx.sess, form)
	require.NoError(t, err)
	assert.Equal(t, "Selected vehicle is not available.", result.Error)
}

func TestSubmitBookingRequiresSession(t *testing.T) {
	fx := newBookingFixture(t)

	_, err := fx.service.Submit(context.Background(), nil, bookingForm())
	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "You must be logged in to book a taxi.", userErr.Message)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestEstimate(t *testing.T) {
	fx := newBookingFixture(t)
	fx.maps.meters = 0

	est, err := fx.service.Estimate(context.Background(), &models.EstimateRequest{
		PickupLocation: "Kandy", DropOffLocation: "Kandy",
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, est.Fare.Amount)
	assert.Equal(t, "20 mins", est.Route.DurationText)
}

func TestEstimateEmptyAddress(t *testing.T) {
	fx := newBookingFixture(t)

	_, err := fx.service.Estimate(context.Background(), &models.EstimateRequest{PickupLocation: "Kandy"})
	assert.ErrorIs(t, err, maps.ErrEmptyAddress)
}
