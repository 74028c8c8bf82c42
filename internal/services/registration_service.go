package services

import (
	"context"
	"errors"
	"strings"

	"megacitycab/internal/config"
	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/utils"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
)

const (
	MsgDriverRegistered  = "Driver registration successful! Awaiting admin approval."
	MsgDriverAdded       = "Driver added successfully! Awaiting approval."
	MsgVehicleRegistered = "Vehicle registration submitted! Awaiting admin approval."
)

type RegistrationService interface {
	RegisterDriver(ctx context.Context, form *models.DriverForm, images models.DriverImages) (string, error)
	// AddDriver is the back-office form; it registers the driver with an
	// empty vehicle.
	AddDriver(ctx context.Context, sess *models.Session, form *models.DriverForm, images models.DriverImages) (string, error)
	RegisterVehicle(ctx context.Context, reg *models.VehicleRegistration) (string, error)
}

type RegistrationBackend interface {
	RegisterDriver(ctx context.Context, reg *models.DriverRegistration, images models.DriverImages) (string, error)
	AddDriver(ctx context.Context, token string, reg *models.DriverRegistration, images models.DriverImages) (string, error)
	RegisterVehicle(ctx context.Context, reg *models.VehicleRegistration) (string, error)
}

type registrationService struct {
	backend RegistrationBackend
	upload  *config.UploadConfig
	guard   *sessionGuard
	logger  *logger.Logger
}

func NewRegistrationService(b RegistrationBackend, upload *config.UploadConfig, store session.Store, log *logger.Logger) RegistrationService {
	return &registrationService{
		backend: b,
		upload:  upload,
		guard:   &sessionGuard{store: store, logger: log},
		logger:  log,
	}
}

func (s *registrationService) imageRules() validators.ImageRules {
	rules := validators.DefaultImageRules()
	if s.upload != nil {
		if s.upload.MaxImageSize > 0 {
			rules.MaxSize = s.upload.MaxImageSize
		}
		if len(s.upload.AllowedImageTypes) > 0 {
			rules.AllowedTypes = s.upload.AllowedImageTypes
		}
	}
	return rules
}

// prepareImages validates every upload and downsizes the oversized ones in
// place.
func (s *registrationService) prepareImages(uploads ...*models.FileUpload) error {
	rules := s.imageRules()
	if errs := validators.ValidateImages(uploads, rules); len(errs) > 0 {
		return errs
	}

	for _, upload := range uploads {
		if upload == nil {
			continue
		}
		upload.ContentType = utils.DetectImageType(upload.Data)
		if s.upload == nil {
			continue
		}
		resized, err := utils.ResizeImage(upload.Data, upload.ContentType, s.upload.MaxImageWidth, s.upload.MaxImageHeight, s.upload.JPEGQuality)
		if err != nil {
			return validators.ValidationErrors{{
				Field:   upload.FieldName,
				Tag:     "image_decode",
				Message: "image could not be read",
			}}
		}
		upload.Data = resized
	}
	return nil
}

func driverRegistration(form *models.DriverForm) *models.DriverRegistration {
	return &models.DriverRegistration{
		FirstName:          strings.TrimSpace(form.FirstName),
		LastName:           strings.TrimSpace(form.LastName),
		Email:              strings.TrimSpace(form.Email),
		NIC:                strings.TrimSpace(form.NIC),
		Phone:              strings.TrimSpace(form.Phone),
		LicenseNumber:      strings.TrimSpace(form.LicenseNumber),
		LicenseExpiry:      form.LicenseExpiry,
		ExperienceYears:    utils.StringToInt(form.ExperienceYears),
		UserName:           strings.TrimSpace(form.UserName),
		Password:           form.Password,
		RegistrationStatus: models.RegistrationPending,
	}
}

func (s *registrationService) checkDriver(form *models.DriverForm, images models.DriverImages) error {
	if errs := validators.ValidateDriverForm(form); len(errs) > 0 {
		return errs
	}
	if images.Profile != nil && images.Profile.FieldName == "" {
		images.Profile.FieldName = "profileImage"
	}
	if images.License != nil && images.License.FieldName == "" {
		images.License.FieldName = "licenseImage"
	}
	return s.prepareImages(images.Profile, images.License)
}

func (s *registrationService) RegisterDriver(ctx context.Context, form *models.DriverForm, images models.DriverImages) (string, error) {
	if err := s.checkDriver(form, images); err != nil {
		return "", err
	}

	if _, err := s.backend.RegisterDriver(ctx, driverRegistration(form), images); err != nil {
		return "", s.registrationError(err, "Registration failed")
	}

	s.logger.WithField("username", form.UserName).Info("Driver registered")
	return MsgDriverRegistered, nil
}

func (s *registrationService) AddDriver(ctx context.Context, sess *models.Session, form *models.DriverForm, images models.DriverImages) (string, error) {
	if err := requireAdmin(sess); err != nil {
		return "", err
	}
	if err := s.checkDriver(form, images); err != nil {
		return "", err
	}

	_, err := s.backend.AddDriver(ctx, sess.Token, driverRegistration(form), images)
	if err := s.guard.check(ctx, sess, err); err != nil {
		return "", s.registrationError(err, "Failed to add driver")
	}

	s.logger.LogAdminAction(sess.UserID, "create", "driver", form.UserName)
	return MsgDriverAdded, nil
}

func (s *registrationService) RegisterVehicle(ctx context.Context, reg *models.VehicleRegistration) (string, error) {
	if errs := validators.ValidateVehicleRegistration(reg); len(errs) > 0 {
		return "", errs
	}
	if err := s.prepareImages(reg.Images...); err != nil {
		return "", err
	}

	if _, err := s.backend.RegisterVehicle(ctx, reg); err != nil {
		return "", s.registrationError(err, "Vehicle registration failed")
	}

	s.logger.WithField("vehicle_no", reg.VehicleNo).Info("Vehicle registration submitted")
	return MsgVehicleRegistered, nil
}

func (s *registrationService) registrationError(err error, fallback string) error {
	if !errors.Is(err, ErrSessionExpired) {
		s.logger.WithError(err).Warn(fallback)
	}
	return wrapBackendError(err, fallback)
}
