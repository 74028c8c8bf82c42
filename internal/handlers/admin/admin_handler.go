package admin

import (
	"github.com/gin-gonic/gin"

	handlers "megacitycab/internal/handlers/shared"
	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

// AdminHandler serves the back-office pages. Every route sits behind
// middleware.AdminRequired; the services check the role again.
type AdminHandler struct {
	adminService        services.AdminService
	vehicleService      services.VehicleService
	driverService       services.DriverService
	categoryService     services.CategoryService
	registrationService services.RegistrationService
	maxImageSize        int64
	logger              *logger.Logger
}

func NewAdminHandler(
	adminService services.AdminService,
	vehicleService services.VehicleService,
	driverService services.DriverService,
	categoryService services.CategoryService,
	registrationService services.RegistrationService,
	maxImageSize int64,
	log *logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		adminService:        adminService,
		vehicleService:      vehicleService,
		driverService:       driverService,
		categoryService:     categoryService,
		registrationService: registrationService,
		maxImageSize:        maxImageSize,
		logger:              log,
	}
}

func (h *AdminHandler) fail(c *gin.Context, err error) {
	handlers.RespondError(c, h.logger, err)
}

// Dashboard returns the overview counts
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Dashboard retrieved successfully", stats)
}

func (h *AdminHandler) ListAdmins(c *gin.Context) {
	admins, err := h.adminService.List(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponseWithMeta(c, "Admins retrieved successfully", admins, &utils.Meta{Total: len(admins)})
}

// GetAdmin accepts "me" for the signed-in admin
func (h *AdminHandler) GetAdmin(c *gin.Context) {
	admin, err := h.adminService.Get(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Admin retrieved successfully", admin)
}

func (h *AdminHandler) UpdateAdmin(c *gin.Context) {
	var update models.AdminUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	admin, err := h.adminService.Update(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), &update)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Admin updated successfully", admin)
}

func (h *AdminHandler) DeleteAdmin(c *gin.Context) {
	if err := h.adminService.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Admin deleted successfully", nil)
}

// UploadPicture replaces an admin's profile picture
func (h *AdminHandler) UploadPicture(c *gin.Context) {
	upload, err := handlers.ReadUpload(c, "file", h.maxImageSize)
	if err != nil {
		handlers.BindError(c, err)
		return
	}

	pictureURL, err := h.adminService.UploadPicture(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"), upload)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Profile picture uploaded successfully", gin.H{"profilePicture": pictureURL})
}
