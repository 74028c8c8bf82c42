package services

import (
	"context"

	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
)

type CustomerService interface {
	Profile(ctx context.Context, sess *models.Session) (*models.Customer, error)
	UpdateProfile(ctx context.Context, sess *models.Session, update *models.CustomerUpdate) (*models.Customer, error)
}

type CustomerBackend interface {
	Customer(ctx context.Context, token, id string) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, token, id string, update *models.CustomerUpdate) (*models.Customer, error)
}

type customerService struct {
	backend CustomerBackend
	guard   *sessionGuard
	logger  *logger.Logger
}

func NewCustomerService(b CustomerBackend, store session.Store, log *logger.Logger) CustomerService {
	return &customerService{
		backend: b,
		guard:   &sessionGuard{store: store, logger: log},
		logger:  log,
	}
}

func (s *customerService) Profile(ctx context.Context, sess *models.Session) (*models.Customer, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}

	customer, err := s.backend.Customer(ctx, sess.Token, sess.UserID)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, wrapBackendError(err, "Failed to fetch customer details")
	}
	return customer, nil
}

func (s *customerService) UpdateProfile(ctx context.Context, sess *models.Session, update *models.CustomerUpdate) (*models.Customer, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if errs := validators.ValidateCustomerUpdate(update); len(errs) > 0 {
		return nil, errs
	}

	customer, err := s.backend.UpdateCustomer(ctx, sess.Token, sess.UserID, update)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, wrapBackendError(err, "Failed to update customer details")
	}

	s.logger.WithUserID(sess.UserID).Info("Customer profile updated")
	return customer, nil
}
