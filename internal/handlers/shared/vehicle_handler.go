package handlers

import (
	"github.com/gin-gonic/gin"

	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

type VehicleHandler struct {
	vehicleService  services.VehicleService
	categoryService services.CategoryService
	logger          *logger.Logger
}

func NewVehicleHandler(vehicleService services.VehicleService, categoryService services.CategoryService, log *logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService:  vehicleService,
		categoryService: categoryService,
		logger:          log,
	}
}

// Catalogue lists approved vehicles, optionally by transmission and fuel type
func (h *VehicleHandler) Catalogue(c *gin.Context) {
	var filter models.VehicleFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		BindError(c, err)
		return
	}

	vehicles, err := h.vehicleService.Catalogue(c.Request.Context(), filter)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", vehicles, &utils.Meta{Total: len(vehicles)})
}

func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.Find(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// Select picks a vehicle for the booking form; guests are sent to login
func (h *VehicleHandler) Select(c *gin.Context) {
	vehicle, err := h.vehicleService.SelectForBooking(c.Request.Context(), middleware.CurrentSession(c), c.Param("id"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.RedirectResponse(c, "Vehicle selected", vehicle, "/booking?vehicleId="+vehicle.Key())
}

func (h *VehicleHandler) Categories(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Categories retrieved successfully", categories, &utils.Meta{Total: len(categories)})
}
