package services

import (
	"context"
	"errors"
	"time"

	"megacitycab/internal/fare"
	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/utils"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
)

const (
	MsgBookingSuccess = "Booking successful! A driver will be assigned to you shortly."
	MsgBookingFailed  = "Failed to create booking. Please try again."
)

type BookingService interface {
	// Estimate prices the ride between two addresses without booking it.
	Estimate(ctx context.Context, req *models.EstimateRequest) (*models.Estimate, error)
	// Submit validates the form, prices the route and creates the booking.
	// Form-level outcomes come back in the FormResult; the error is reserved
	// for missing or expired sessions.
	Submit(ctx context.Context, sess *models.Session, form *models.BookingForm) (*models.FormResult, error)
}

type BookingBackend interface {
	CreateBooking(ctx context.Context, token string, req *models.BookingRequest) (*models.Booking, error)
}

type Clock func() time.Time

type bookingService struct {
	backend  BookingBackend
	routes   RouteService
	vehicles VehicleService
	fares    *fare.Calculator
	guard    *sessionGuard
	now      Clock
	location *time.Location
	logger   *logger.Logger
}

func NewBookingService(
	b BookingBackend,
	routes RouteService,
	vehicles VehicleService,
	fares *fare.Calculator,
	store session.Store,
	now Clock,
	location *time.Location,
	log *logger.Logger,
) BookingService {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.UTC
	}
	return &bookingService{
		backend:  b,
		routes:   routes,
		vehicles: vehicles,
		fares:    fares,
		guard:    &sessionGuard{store: store, logger: log},
		now:      now,
		location: location,
		logger:   log,
	}
}

func (s *bookingService) Estimate(ctx context.Context, req *models.EstimateRequest) (*models.Estimate, error) {
	ratePerKm, err := s.vehicleRate(ctx, req.VehicleID)
	if err != nil {
		return nil, err
	}

	route, err := s.routes.Route(ctx, req.PickupLocation, req.DropOffLocation)
	if err != nil {
		return nil, err
	}

	estimate, err := s.fares.Calculate(route.DistanceKm, ratePerKm)
	if err != nil {
		return nil, err
	}

	return &models.Estimate{Route: route, Fare: estimate}, nil
}

// vehicleRate returns the selected vehicle's per-km price, or nil to use the
// default rate.
func (s *bookingService) vehicleRate(ctx context.Context, vehicleID string) (*float64, error) {
	if vehicleID == "" || s.vehicles == nil {
		return nil, nil
	}
	vehicle, err := s.vehicles.Find(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle.PricePerKm <= 0 {
		return nil, nil
	}
	rate := float64(vehicle.PricePerKm)
	return &rate, nil
}

func (s *bookingService) Submit(ctx context.Context, sess *models.Session, form *models.BookingForm) (*models.FormResult, error) {
	if err := requireSession(sess); err != nil {
		return nil, userError(utils.ErrLoginToBook, ErrNotLoggedIn)
	}

	editing := func(message string) *models.FormResult {
		return &models.FormResult{State: models.FormStateEditing, Error: message}
	}

	if formErr := validators.ValidateBookingForm(form, s.now(), s.location); formErr != nil {
		s.logger.LogBookingEvent(sess.UserID, utils.EventBookingRejected, map[string]interface{}{
			"field":  formErr.Field,
			"reason": formErr.Message,
		})
		return editing(formErr.Message), nil
	}

	estimate, err := s.Estimate(ctx, &models.EstimateRequest{
		PickupLocation:  form.PickupLocation,
		DropOffLocation: form.DropOffLocation,
		VehicleID:       form.VehicleID,
	})
	if err != nil {
		var userErr *UserError
		switch {
		case errors.Is(err, ErrNoRoute):
			return editing(ErrNoRoute.Error()), nil
		case errors.As(err, &userErr):
			return editing(userErr.Message), nil
		}
		s.logger.WithError(err).WithUserID(sess.UserID).Error("Failed to price booking")
		return editing(MsgBookingFailed), nil
	}

	req := buildBookingRequest(sess, form, estimate.Fare.Amount)

	created, err := s.backend.CreateBooking(ctx, sess.Token, req)
	if err := s.guard.check(ctx, sess, err); err != nil {
		if errors.Is(err, ErrSessionExpired) {
			return nil, err
		}
		s.logger.LogBookingEvent(sess.UserID, utils.EventBookingFailed, map[string]interface{}{
			"error": err.Error(),
		})
		result := editing(MsgBookingFailed)
		result.Route = estimate.Route
		result.Fare = estimate.Fare
		return result, nil
	}

	s.logger.LogBookingEvent(sess.UserID, utils.EventBookingCreated, map[string]interface{}{
		"total_fare": req.TotalFare,
		"vehicle_id": form.VehicleID,
	})

	return &models.FormResult{
		State:   models.FormStateSubmitted,
		Message: MsgBookingSuccess,
		Booking: req,
		Created: created,
		Route:   estimate.Route,
		Fare:    estimate.Fare,
	}, nil
}

func buildBookingRequest(sess *models.Session, form *models.BookingForm, totalFare float64) *models.BookingRequest {
	var vehicleID *string
	if form.VehicleID != "" {
		id := form.VehicleID
		vehicleID = &id
	}

	return &models.BookingRequest{
		CustomerID:       sess.UserID,
		CustomerName:     form.CustomerName,
		CustomerEmail:    form.CustomerEmail,
		CustomerPhone:    form.CustomerPhone,
		PickupDate:       form.PickupDate,
		PickupTime:       form.PickupTime,
		PickupLocation:   form.PickupLocation,
		DropOffLocation:  form.DropOffLocation,
		RideStatus:       models.RideStatusPending,
		TotalFare:        totalFare,
		IsActive:         true,
		Destination:      form.DropOffLocation,
		IsDriverAccepted: false,
		PaymentStatus:    models.PaymentStatusUnpaid,
		VehicleID:        vehicleID,
	}
}
