package admin

import (
	"github.com/gin-gonic/gin"

	handlers "megacitycab/internal/handlers/shared"
	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
	"megacitycab/internal/utils"
)

// ListDrivers returns approved drivers
func (h *AdminHandler) ListDrivers(c *gin.Context) {
	drivers, err := h.driverService.Approved(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponseWithMeta(c, "Drivers retrieved successfully", drivers, &utils.Meta{Total: len(drivers)})
}

func (h *AdminHandler) PendingDrivers(c *gin.Context) {
	drivers, err := h.driverService.Pending(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponseWithMeta(c, "Pending drivers retrieved successfully", drivers, &utils.Meta{Total: len(drivers)})
}

func (h *AdminHandler) ApproveDriver(c *gin.Context) {
	if err := h.driverService.Approve(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Driver approved successfully", gin.H{"registrationStatus": models.RegistrationApproved})
}

func (h *AdminHandler) RejectDriver(c *gin.Context) {
	if err := h.driverService.Reject(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Driver rejected successfully", gin.H{"registrationStatus": models.RegistrationRejected})
}

// ToggleDriverStatus flips a driver between AVAILABLE and UNAVAILABLE
func (h *AdminHandler) ToggleDriverStatus(c *gin.Context) {
	driver, err := h.driverService.ToggleStatus(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Driver status updated successfully", driver)
}

func (h *AdminHandler) DeleteDriver(c *gin.Context) {
	if err := h.driverService.Delete(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Driver deleted successfully", nil)
}

// AddDriver registers a driver from the back office
func (h *AdminHandler) AddDriver(c *gin.Context) {
	form, images, err := handlers.BindDriverForm(c, h.maxImageSize)
	if err != nil {
		handlers.BindError(c, err)
		return
	}

	msg, err := h.registrationService.AddDriver(c.Request.Context(), middleware.CurrentSession(c), form, images)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.CreatedResponse(c, msg, nil)
}
