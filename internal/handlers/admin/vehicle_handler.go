package admin

import (
	"strings"

	"github.com/gin-gonic/gin"

	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
	"megacitycab/internal/utils"
)

// ListVehicles takes ?status=all|pending|approved
func (h *AdminHandler) ListVehicles(c *gin.Context) {
	filter := models.VehicleStatusFilter(strings.ToLower(c.DefaultQuery("status", string(models.VehicleFilterAll))))
	switch filter {
	case models.VehicleFilterAll, models.VehicleFilterPending, models.VehicleFilterApproved:
	default:
		utils.BadRequestResponse(c, "status must be one of all, pending, approved")
		return
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), middleware.CurrentSession(c), filter)
	if err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", vehicles, &utils.Meta{Total: len(vehicles)})
}

func (h *AdminHandler) ApproveVehicle(c *gin.Context) {
	if err := h.vehicleService.Approve(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Vehicle approved successfully", gin.H{"registrationStatus": models.RegistrationApproved})
}

func (h *AdminHandler) RejectVehicle(c *gin.Context) {
	if err := h.vehicleService.Reject(c.Request.Context(), middleware.CurrentSession(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	utils.SuccessResponse(c, "Vehicle rejected successfully", gin.H{"registrationStatus": models.RegistrationRejected})
}
