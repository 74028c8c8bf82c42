package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"megacitycab/internal/models"
	"megacitycab/internal/services"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

const (
	SessionKey = "session"
	UserIDKey  = "user_id"
	RoleKey    = "user_role"
)

// SessionID reads the session ID from the X-Session-ID header, falling back
// to the session cookie.
func SessionID(c *gin.Context, cookieName string) string {
	if id := c.GetHeader(utils.SessionHeader); id != "" {
		return id
	}
	if id, err := c.Cookie(cookieName); err == nil {
		return id
	}
	return ""
}

// SessionLoader attaches the stored credentials to the context when the
// request carries a live session. Requests without one pass through.
func SessionLoader(auth services.AuthService, cookieName string, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := SessionID(c, cookieName)
		if id == "" {
			c.Next()
			return
		}

		sess, err := auth.Session(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(SessionKey, sess)
			c.Set(UserIDKey, sess.UserID)
			c.Set(RoleKey, string(sess.Role))
		case errors.Is(err, services.ErrNotLoggedIn):
		default:
			log.WithError(err).Error("Failed to load session")
		}

		c.Next()
	}
}

// CurrentSession returns the session set by SessionLoader, or nil.
func CurrentSession(c *gin.Context) *models.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*models.Session)
	return sess
}

// AuthRequired rejects requests without a session with a login redirect.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentSession(c) == nil {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RoleRequired admits only sessions holding one of roles.
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := CurrentSession(c)
		if sess == nil {
			utils.UnauthorizedResponse(c, "")
			c.Abort()
			return
		}

		for _, role := range roles {
			if sess.Role == role {
				c.Next()
				return
			}
		}

		utils.ForbiddenResponse(c)
		c.Abort()
	}
}

func AdminRequired() gin.HandlerFunc {
	return RoleRequired(models.RoleAdmin)
}
