package handlers

import (
	"github.com/gin-gonic/gin"

	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

type BookingHandler struct {
	bookingService services.BookingService
	routeService   services.RouteService
	logger         *logger.Logger
}

func NewBookingHandler(bookingService services.BookingService, routeService services.RouteService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
		routeService:   routeService,
		logger:         log,
	}
}

// Estimate prices a ride without booking it
func (h *BookingHandler) Estimate(c *gin.Context) {
	var req models.EstimateRequest
	if err := c.ShouldBind(&req); err != nil {
		BindError(c, err)
		return
	}

	estimate, err := h.bookingService.Estimate(c.Request.Context(), &req)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Fare estimated successfully", estimate)
}

// Submit validates the booking form and creates the booking
func (h *BookingHandler) Submit(c *gin.Context) {
	var form models.BookingForm
	if err := c.ShouldBind(&form); err != nil {
		BindError(c, err)
		return
	}

	result, err := h.bookingService.Submit(c.Request.Context(), middleware.CurrentSession(c), &form)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	if result.State != models.FormStateSubmitted {
		utils.FormErrorResponse(c, result.Error, result)
		return
	}

	utils.CreatedResponse(c, result.Message, result)
}

// Route resolves the driving route between two addresses
func (h *BookingHandler) Route(c *gin.Context) {
	route, err := h.routeService.Route(c.Request.Context(), c.Query("pickup"), c.Query("dropOff"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Route retrieved successfully", route)
}

// Suggest autocompletes a pickup or drop-off address
func (h *BookingHandler) Suggest(c *gin.Context) {
	predictions, err := h.routeService.Suggest(c.Request.Context(), c.Query("input"))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Suggestions retrieved successfully", predictions, &utils.Meta{Total: len(predictions)})
}
