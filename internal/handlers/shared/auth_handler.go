package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"megacitycab/internal/backend"
	"megacitycab/internal/config"
	"megacitycab/internal/middleware"
	"megacitycab/internal/models"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
)

type AuthHandler struct {
	authService services.AuthService
	security    *config.SecurityConfig
	logger      *logger.Logger
}

func NewAuthHandler(authService services.AuthService, security *config.SecurityConfig, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		security:    security,
		logger:      log,
	}
}

// sessionView is what the page keeps about the signed-in user. The backend
// token stays server-side.
type sessionView struct {
	SessionID string      `json:"session_id,omitempty"`
	UserID    string      `json:"userId"`
	Role      models.Role `json:"role"`
	Username  string      `json:"username"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func newSessionView(id string, creds *models.Credentials) sessionView {
	return sessionView{
		SessionID: id,
		UserID:    creds.UserID,
		Role:      creds.Role,
		Username:  creds.Username,
		ExpiresAt: creds.ExpiresAt,
	}
}

// Login exchanges username and password for a portal session
func (h *AuthHandler) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		BindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &form)
	if err != nil {
		var (
			errs    validators.ValidationErrors
			userErr *services.UserError
		)
		switch {
		case errors.As(err, &errs):
			utils.ValidationErrorResponse(c, errs.Map())
		case errors.Is(err, backend.ErrTransport):
			utils.ServiceUnavailableResponse(c)
		case errors.Is(err, services.ErrUnknownRole):
			utils.ErrorResponse(c, http.StatusUnauthorized, "LOGIN_FAILED", err.Error())
		case errors.As(err, &userErr):
			utils.ErrorResponse(c, http.StatusUnauthorized, "LOGIN_FAILED", userErr.Message)
		default:
			RespondError(c, h.logger, err)
		}
		return
	}

	maxAge := int(time.Until(result.User.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.security.SessionCookieName, result.SessionID, maxAge, "/", "", h.security.SecureCookies, true)

	utils.RedirectResponse(c, "Login successful", newSessionView(result.SessionID, result.User), result.Redirect)
}

// Logout drops the stored credentials
func (h *AuthHandler) Logout(c *gin.Context) {
	id := middleware.SessionID(c, h.security.SessionCookieName)
	if err := h.authService.Logout(c.Request.Context(), id); err != nil {
		RespondError(c, h.logger, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.security.SessionCookieName, "", -1, "/", "", h.security.SecureCookies, true)

	utils.RedirectResponse(c, "Logged out", nil, utils.LoginPath)
}

// Me returns the signed-in user
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		utils.UnauthorizedResponse(c, "")
		return
	}
	utils.SuccessResponse(c, "Session retrieved successfully", newSessionView("", &sess.Credentials))
}
