package services

import (
	"context"
	"strings"

	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
)

type CategoryService interface {
	// List is public; the vehicle registration form reads it too.
	List(ctx context.Context, sess *models.Session) ([]models.Category, error)
	Add(ctx context.Context, sess *models.Session, form *models.CategoryForm) (*models.Category, error)
	Update(ctx context.Context, sess *models.Session, id string, form *models.CategoryForm) (*models.Category, error)
	Delete(ctx context.Context, sess *models.Session, id string) error
}

type CategoryBackend interface {
	Categories(ctx context.Context, token string) ([]models.Category, error)
	AddCategory(ctx context.Context, token string, category *models.Category) (*models.Category, error)
	UpdateCategory(ctx context.Context, token, id string, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, token, id string) error
}

type categoryService struct {
	backend CategoryBackend
	guard   *sessionGuard
	logger  *logger.Logger
}

func NewCategoryService(b CategoryBackend, store session.Store, log *logger.Logger) CategoryService {
	return &categoryService{
		backend: b,
		guard:   &sessionGuard{store: store, logger: log},
		logger:  log,
	}
}

func (s *categoryService) List(ctx context.Context, sess *models.Session) ([]models.Category, error) {
	token := ""
	if sess != nil {
		token = sess.Token
	}
	categories, err := s.backend.Categories(ctx, token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}
	return categories, nil
}

func toCategory(form *models.CategoryForm) *models.Category {
	return &models.Category{
		CategoryName: strings.TrimSpace(form.CategoryName),
		PricePerKm:   *form.PricePerKm,
	}
}

func (s *categoryService) Add(ctx context.Context, sess *models.Session, form *models.CategoryForm) (*models.Category, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if errs := validators.ValidateCategory(form); len(errs) > 0 {
		return nil, errs
	}

	created, err := s.backend.AddCategory(ctx, sess.Token, toCategory(form))
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, wrapBackendError(err, "Failed to add category")
	}

	s.logger.LogAdminAction(sess.UserID, "create", "category", form.CategoryName)
	return created, nil
}

func (s *categoryService) Update(ctx context.Context, sess *models.Session, id string, form *models.CategoryForm) (*models.Category, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if errs := validators.ValidateCategory(form); len(errs) > 0 {
		return nil, errs
	}

	updated, err := s.backend.UpdateCategory(ctx, sess.Token, id, toCategory(form))
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, wrapBackendError(err, "Failed to update category")
	}

	s.logger.LogAdminAction(sess.UserID, "update", "category", id)
	return updated, nil
}

func (s *categoryService) Delete(ctx context.Context, sess *models.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}

	err := s.backend.DeleteCategory(ctx, sess.Token, id)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return wrapBackendError(err, "Failed to delete category")
	}

	s.logger.LogAdminAction(sess.UserID, "delete", "category", id)
	return nil
}
