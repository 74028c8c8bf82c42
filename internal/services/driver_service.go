package services

import (
	"context"

	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/pkg/logger"
)

type DriverService interface {
	// Approved lists drivers that passed review.
	Approved(ctx context.Context, sess *models.Session) ([]models.Driver, error)
	Pending(ctx context.Context, sess *models.Session) ([]models.Driver, error)
	Approve(ctx context.Context, sess *models.Session, id string) error
	Reject(ctx context.Context, sess *models.Session, id string) error
	ToggleStatus(ctx context.Context, sess *models.Session, id string) (*models.Driver, error)
	Delete(ctx context.Context, sess *models.Session, id string) error
}

type DriverBackend interface {
	AllDrivers(ctx context.Context, token string) ([]models.Driver, error)
	PendingDrivers(ctx context.Context, token string) ([]models.Driver, error)
	ApproveDriver(ctx context.Context, token, id string) error
	RejectDriver(ctx context.Context, token, id string) error
	ToggleDriverStatus(ctx context.Context, token, id string) (*models.Driver, error)
	DeleteDriver(ctx context.Context, token, id string) error
}

type driverService struct {
	backend DriverBackend
	guard   *sessionGuard
	logger  *logger.Logger
}

func NewDriverService(b DriverBackend, store session.Store, log *logger.Logger) DriverService {
	return &driverService{
		backend: b,
		guard:   &sessionGuard{store: store, logger: log},
		logger:  log,
	}
}

func (s *driverService) Approved(ctx context.Context, sess *models.Session) ([]models.Driver, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	drivers, err := s.backend.AllDrivers(ctx, sess.Token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}

	approved := make([]models.Driver, 0, len(drivers))
	for _, d := range drivers {
		if d.RegistrationStatus == models.RegistrationApproved {
			approved = append(approved, d)
		}
	}
	return approved, nil
}

func (s *driverService) Pending(ctx context.Context, sess *models.Session) ([]models.Driver, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	drivers, err := s.backend.PendingDrivers(ctx, sess.Token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}
	return drivers, nil
}

func (s *driverService) Approve(ctx context.Context, sess *models.Session, id string) error {
	return s.act(ctx, sess, id, "approve", "Failed to approve driver", s.backend.ApproveDriver)
}

func (s *driverService) Reject(ctx context.Context, sess *models.Session, id string) error {
	return s.act(ctx, sess, id, "reject", "Failed to reject driver", s.backend.RejectDriver)
}

func (s *driverService) Delete(ctx context.Context, sess *models.Session, id string) error {
	return s.act(ctx, sess, id, "delete", "Failed to delete driver", s.backend.DeleteDriver)
}

func (s *driverService) ToggleStatus(ctx context.Context, sess *models.Session, id string) (*models.Driver, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	driver, err := s.backend.ToggleDriverStatus(ctx, sess.Token, id)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, wrapBackendError(err, "Failed to update driver status")
	}

	s.logger.LogAdminAction(sess.UserID, "toggle_status", "driver", id)
	return driver, nil
}

func (s *driverService) act(ctx context.Context, sess *models.Session, id, action, fallback string, call func(ctx context.Context, token, id string) error) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	err := call(ctx, sess.Token, id)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return wrapBackendError(err, fallback)
	}

	s.logger.LogAdminAction(sess.UserID, action, "driver", id)
	return nil
}
