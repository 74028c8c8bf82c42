package handlers

import (
	"github.com/gin-gonic/gin"

	"megacitycab/internal/models"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

var vehicleImageFields = []string{"vehicleImage", "licenseImage", "insuranceImage", "driverlicenseImage"}

type RegistrationHandler struct {
	registrationService services.RegistrationService
	maxImageSize        int64
	logger              *logger.Logger
}

func NewRegistrationHandler(registrationService services.RegistrationService, maxImageSize int64, log *logger.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		registrationService: registrationService,
		maxImageSize:        maxImageSize,
		logger:              log,
	}
}

// BindDriverForm reads the driver form and its two optional images.
func BindDriverForm(c *gin.Context, maxImageSize int64) (*models.DriverForm, models.DriverImages, error) {
	var form models.DriverForm
	if err := c.ShouldBind(&form); err != nil {
		return nil, models.DriverImages{}, err
	}

	profile, err := ReadUpload(c, "profileImage", maxImageSize)
	if err != nil {
		return nil, models.DriverImages{}, err
	}
	license, err := ReadUpload(c, "licenseImage", maxImageSize)
	if err != nil {
		return nil, models.DriverImages{}, err
	}

	return &form, models.DriverImages{Profile: profile, License: license}, nil
}

// RegisterDriver submits a driver application for approval
func (h *RegistrationHandler) RegisterDriver(c *gin.Context) {
	form, images, err := BindDriverForm(c, h.maxImageSize)
	if err != nil {
		BindError(c, err)
		return
	}

	msg, err := h.registrationService.RegisterDriver(c.Request.Context(), form, images)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.RedirectResponse(c, msg, nil, utils.LoginPath)
}

// RegisterVehicle submits a vehicle application for approval
func (h *RegistrationHandler) RegisterVehicle(c *gin.Context) {
	var reg models.VehicleRegistration
	if err := c.ShouldBind(&reg); err != nil {
		BindError(c, err)
		return
	}

	images, err := ReadUploads(c, h.maxImageSize, vehicleImageFields...)
	if err != nil {
		BindError(c, err)
		return
	}
	reg.Images = images

	msg, err := h.registrationService.RegisterVehicle(c.Request.Context(), &reg)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.CreatedResponse(c, msg, nil)
}
