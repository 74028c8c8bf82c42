package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"megacitycab/internal/backend"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
	"megacitycab/pkg/maps"
)

// RespondError maps a service error onto the response envelope.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	var (
		userErr *services.UserError
		errs    validators.ValidationErrors
		apiErr  *backend.APIError
	)

	switch {
	case errors.Is(err, services.ErrSessionExpired):
		utils.SessionExpiredResponse(c)
	case errors.Is(err, services.ErrNotLoggedIn):
		message := ""
		if errors.As(err, &userErr) {
			message = userErr.Message
		}
		utils.UnauthorizedResponse(c, message)
	case errors.Is(err, services.ErrForbidden):
		utils.ForbiddenResponse(c)
	case errors.As(err, &errs):
		utils.ValidationErrorResponse(c, errs.Map())
	case errors.Is(err, maps.ErrEmptyAddress):
		utils.BadRequestResponse(c, "Please enter both pickup and drop-off locations.")
	case errors.Is(err, services.ErrNoRoute):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "NO_ROUTE", err.Error())
	case errors.Is(err, backend.ErrTransport):
		log.WithError(err).Warn("Backend unavailable")
		utils.ServiceUnavailableResponse(c)
	case errors.As(err, &userErr):
		utils.ErrorResponse(c, http.StatusUnprocessableEntity, "REQUEST_REJECTED", userErr.Message)
	case errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound:
		utils.ErrorResponse(c, http.StatusNotFound, "NOT_FOUND", utils.CoalesceString(apiErr.Message, "not found"))
	case errors.As(err, &apiErr):
		utils.BadGatewayResponse(c, utils.CoalesceString(apiErr.Message, "backend request failed"))
	default:
		log.WithError(err).Error("Request failed")
		utils.InternalServerErrorResponse(c)
	}
}

// BindError reports a body that could not be decoded at all. Oversized
// uploads get 413 and rejected parts the usual field details.
func BindError(c *gin.Context, err error) {
	var (
		errs   validators.ValidationErrors
		tooBig *http.MaxBytesError
	)

	switch {
	case errors.As(err, &errs):
		utils.ValidationErrorResponse(c, errs.Map())
	case errors.As(err, &tooBig):
		utils.ErrorResponse(c, http.StatusRequestEntityTooLarge, "REQUEST_TOO_LARGE", utils.ErrRequestTooLarge)
	default:
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
	}
}
