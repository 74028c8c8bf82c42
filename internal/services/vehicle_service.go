package services

import (
	"context"
	"fmt"
	"time"

	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

type VehicleService interface {
	// Catalogue lists approved vehicles for customers, narrowed by filter.
	Catalogue(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error)
	// Find looks a vehicle up in the approved catalogue.
	Find(ctx context.Context, id string) (*models.Vehicle, error)
	// SelectForBooking requires a session; the page sends guests to login.
	SelectForBooking(ctx context.Context, sess *models.Session, id string) (*models.Vehicle, error)

	List(ctx context.Context, sess *models.Session, filter models.VehicleStatusFilter) ([]models.Vehicle, error)
	Approve(ctx context.Context, sess *models.Session, id string) error
	Reject(ctx context.Context, sess *models.Session, id string) error
}

type VehicleBackend interface {
	ApprovedVehicles(ctx context.Context) ([]models.Vehicle, error)
	AllVehicles(ctx context.Context, token string) ([]models.Vehicle, error)
	ApproveVehicle(ctx context.Context, token, id string) error
	RejectVehicle(ctx context.Context, token, id string) error
}

const approvedVehiclesKey = utils.CacheVehiclesPrefix + "approved"

type vehicleService struct {
	backend  VehicleBackend
	cache    CacheService
	cacheTTL time.Duration
	guard    *sessionGuard
	logger   *logger.Logger
}

func NewVehicleService(b VehicleBackend, c CacheService, cacheTTL time.Duration, store session.Store, log *logger.Logger) VehicleService {
	if c == nil {
		c = NoopCache{}
	}
	return &vehicleService{
		backend:  b,
		cache:    c,
		cacheTTL: cacheTTL,
		guard:    &sessionGuard{store: store, logger: log},
		logger:   log,
	}
}

func (s *vehicleService) approved(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.cache.Get(ctx, approvedVehiclesKey, &vehicles)
	if err == nil {
		return vehicles, nil
	}
	if !isCacheMiss(err) {
		s.logger.WithError(err).Warn("Vehicle cache read failed")
	}

	vehicles, err = s.backend.ApprovedVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}

	if s.cacheTTL > 0 {
		if err := s.cache.Set(ctx, approvedVehiclesKey, vehicles, s.cacheTTL); err != nil {
			s.logger.WithError(err).Warn("Vehicle cache write failed")
		}
	}
	return vehicles, nil
}

func (s *vehicleService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, approvedVehiclesKey); err != nil {
		s.logger.WithError(err).Warn("Vehicle cache invalidation failed")
	}
}

func (s *vehicleService) Catalogue(ctx context.Context, filter models.VehicleFilter) ([]models.Vehicle, error) {
	vehicles, err := s.approved(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		if filter.Match(&vehicles[i]) {
			out = append(out, vehicles[i])
		}
	}
	return out, nil
}

func (s *vehicleService) Find(ctx context.Context, id string) (*models.Vehicle, error) {
	vehicles, err := s.approved(ctx)
	if err != nil {
		return nil, err
	}
	for i := range vehicles {
		if vehicles[i].Key() == id {
			v := vehicles[i]
			return &v, nil
		}
	}
	return nil, userError("Selected vehicle is not available.", nil)
}

func (s *vehicleService) SelectForBooking(ctx context.Context, sess *models.Session, id string) (*models.Vehicle, error) {
	if err := requireSession(sess); err != nil {
		return nil, userError(utils.ErrLoginToBook, ErrNotLoggedIn)
	}
	return s.Find(ctx, id)
}

func (s *vehicleService) List(ctx context.Context, sess *models.Session, filter models.VehicleStatusFilter) ([]models.Vehicle, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	vehicles, err := s.backend.AllVehicles(ctx, sess.Token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}

	out := make([]models.Vehicle, 0, len(vehicles))
	for i := range vehicles {
		if filter.Match(&vehicles[i]) {
			out = append(out, vehicles[i])
		}
	}
	return out, nil
}

func (s *vehicleService) Approve(ctx context.Context, sess *models.Session, id string) error {
	return s.review(ctx, sess, id, "approve", s.backend.ApproveVehicle)
}

func (s *vehicleService) Reject(ctx context.Context, sess *models.Session, id string) error {
	return s.review(ctx, sess, id, "reject", s.backend.RejectVehicle)
}

func (s *vehicleService) review(ctx context.Context, sess *models.Session, id, action string, call func(ctx context.Context, token, id string) error) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	err := call(ctx, sess.Token, id)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return wrapBackendError(err, fmt.Sprintf("Failed to %s vehicle", action))
	}

	s.invalidate(ctx)
	s.logger.LogAdminAction(sess.UserID, action, "vehicle", id)
	return nil
}
