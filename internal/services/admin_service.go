package services

import (
	"context"
	"strings"

	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
)

type AdminService interface {
	List(ctx context.Context, sess *models.Session) ([]models.Admin, error)
	Get(ctx context.Context, sess *models.Session, id string) (*models.Admin, error)
	Update(ctx context.Context, sess *models.Session, id string, update *models.AdminUpdate) (*models.Admin, error)
	Delete(ctx context.Context, sess *models.Session, id string) error
	UploadPicture(ctx context.Context, sess *models.Session, id string, upload *models.FileUpload) (string, error)
	Dashboard(ctx context.Context, sess *models.Session) (*models.DashboardStats, error)
}

type AdminBackend interface {
	Admins(ctx context.Context, token string) ([]models.Admin, error)
	Admin(ctx context.Context, token, id string) (*models.Admin, error)
	UpdateAdmin(ctx context.Context, token, id string, update *models.AdminUpdate) (*models.Admin, error)
	DeleteAdmin(ctx context.Context, token, id string) error
	UploadAdminPicture(ctx context.Context, token, id string, upload *models.FileUpload) (string, error)
}

// DashboardBackend is what the overview counts are built from.
type DashboardBackend interface {
	AllVehicles(ctx context.Context, token string) ([]models.Vehicle, error)
	AllDrivers(ctx context.Context, token string) ([]models.Driver, error)
	PendingDrivers(ctx context.Context, token string) ([]models.Driver, error)
	Categories(ctx context.Context, token string) ([]models.Category, error)
}

type adminService struct {
	backend   AdminBackend
	dashboard DashboardBackend
	guard     *sessionGuard
	logger    *logger.Logger
}

func NewAdminService(b AdminBackend, dashboard DashboardBackend, store session.Store, log *logger.Logger) AdminService {
	return &adminService{
		backend:   b,
		dashboard: dashboard,
		guard:     &sessionGuard{store: store, logger: log},
		logger:    log,
	}
}

func (s *adminService) List(ctx context.Context, sess *models.Session) ([]models.Admin, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	admins, err := s.backend.Admins(ctx, sess.Token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}
	return admins, nil
}

// resolveID maps "me" to the logged-in admin.
func resolveID(sess *models.Session, id string) string {
	if id == "" || strings.EqualFold(id, "me") {
		return sess.UserID
	}
	return id
}

func (s *adminService) Get(ctx context.Context, sess *models.Session, id string) (*models.Admin, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	admin, err := s.backend.Admin(ctx, sess.Token, resolveID(sess, id))
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) Update(ctx context.Context, sess *models.Session, id string, update *models.AdminUpdate) (*models.Admin, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	if errs := validators.ValidateAdminUpdate(update); len(errs) > 0 {
		return nil, errs
	}

	id = resolveID(sess, id)
	admin, err := s.backend.UpdateAdmin(ctx, sess.Token, id, update)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, wrapBackendError(err, "Failed to update admin")
	}

	s.logger.LogAdminAction(sess.UserID, "update", "admin", id)
	return admin, nil
}

func (s *adminService) Delete(ctx context.Context, sess *models.Session, id string) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if resolveID(sess, id) == sess.UserID {
		return userError("You cannot delete your own account.", nil)
	}

	err := s.backend.DeleteAdmin(ctx, sess.Token, id)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return wrapBackendError(err, "Failed to delete admin")
	}

	s.logger.LogAdminAction(sess.UserID, "delete", "admin", id)
	return nil
}

func (s *adminService) UploadPicture(ctx context.Context, sess *models.Session, id string, upload *models.FileUpload) (string, error) {
	if err := requireAdmin(sess); err != nil {
		return "", err
	}
	if upload == nil || len(upload.Data) == 0 {
		return "", userError("Please select a file to upload.", nil)
	}
	upload.FieldName = "file"
	if err := validators.ValidateImage(upload, validators.DefaultImageRules()); err != nil {
		return "", validators.ValidationErrors{*err}
	}

	id = resolveID(sess, id)
	pictureURL, err := s.backend.UploadAdminPicture(ctx, sess.Token, id, upload)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return "", wrapBackendError(err, "Failed to upload profile picture")
	}

	s.logger.LogAdminAction(sess.UserID, "upload_picture", "admin", id)
	return pictureURL, nil
}

func (s *adminService) Dashboard(ctx context.Context, sess *models.Session) (*models.DashboardStats, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}

	vehicles, err := s.dashboard.AllVehicles(ctx, sess.Token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}
	drivers, err := s.dashboard.AllDrivers(ctx, sess.Token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}
	pending, err := s.dashboard.PendingDrivers(ctx, sess.Token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}
	categories, err := s.dashboard.Categories(ctx, sess.Token)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalVehicles:  len(vehicles),
		PendingDrivers: len(pending),
		Categories:     len(categories),
	}
	for _, v := range vehicles {
		switch v.RegistrationStatus {
		case models.RegistrationPending:
			stats.PendingVehicles++
		case models.RegistrationApproved:
			stats.ApprovedVehicles++
		case models.RegistrationRejected:
			stats.RejectedVehicles++
		}
	}
	for _, d := range drivers {
		if d.RegistrationStatus == models.RegistrationApproved {
			stats.ApprovedDrivers++
		}
	}
	return stats, nil
}
