package handlers

import (
	"github.com/gin-gonic/gin"

	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

type CustomerHandler struct {
	customerService services.CustomerService
	logger          *logger.Logger
}

func NewCustomerHandler(customerService services.CustomerService, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          log,
	}
}

func (h *CustomerHandler) GetProfile(c *gin.Context) {
	customer, err := h.customerService.Profile(c.Request.Context(), middleware.CurrentSession(c))
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Profile retrieved successfully", customer)
}

func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	var update models.CustomerUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		BindError(c, err)
		return
	}

	customer, err := h.customerService.UpdateProfile(c.Request.Context(), middleware.CurrentSession(c), &update)
	if err != nil {
		RespondError(c, h.logger, err)
		return
	}

	utils.SuccessResponse(c, "Profile updated successfully", customer)
}
