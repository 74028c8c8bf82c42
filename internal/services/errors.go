package services

import (
	"context"
	"errors"

	"megacitycab/internal/backend"
	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/utils"
	"megacitycab/pkg/logger"
)

var (
	// ErrSessionExpired means the backend refused the stored token. The
	// session has already been cleared when this is returned.
	ErrSessionExpired = errors.New("session expired")
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrForbidden      = errors.New("forbidden")
	ErrUnknownRole    = errors.New("Unknown role received")
	ErrNoRoute        = errors.New("Unable to find a route between the pickup and drop-off locations.")
)

// UserError carries a message meant to be shown as-is.
type UserError struct {
	Message string
	Err     error
}

func (e *UserError) Error() string {
	return e.Message
}

func (e *UserError) Unwrap() error {
	return e.Err
}

func userError(message string, err error) error {
	return &UserError{Message: message, Err: err}
}

// backendMessage prefers the backend's own explanation when it sent one.
func backendMessage(err error, fallback string) string {
	var apiErr *backend.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return fallback + ": " + apiErr.Message
	}
	return fallback
}

// sessionGuard turns backend 401s into a cleared session.
type sessionGuard struct {
	store  session.Store
	logger *logger.Logger
}

func (g *sessionGuard) check(ctx context.Context, sess *models.Session, err error) error {
	if err == nil || !errors.Is(err, backend.ErrUnauthorized) {
		return err
	}
	if sess != nil && sess.ID != "" {
		if clearErr := g.store.Clear(ctx, sess.ID); clearErr != nil {
			g.logger.WithError(clearErr).Error("Failed to clear expired session")
		}
		g.logger.LogSecurityEvent(utils.EventSessionExpired, "low", map[string]interface{}{
			"user_id": sess.UserID,
			"role":    sess.Role,
		})
	}
	return ErrSessionExpired
}

func requireSession(sess *models.Session) error {
	if sess == nil || sess.Token == "" {
		return ErrNotLoggedIn
	}
	return nil
}

func requireAdmin(sess *models.Session) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if !sess.IsAdmin() {
		return ErrForbidden
	}
	return nil
}

// wrapBackendError leaves session expiry alone and turns anything else into a
// message for the page.
func wrapBackendError(err error, fallback string) error {
	if errors.Is(err, ErrSessionExpired) {
		return err
	}
	return userError(backendMessage(err, fallback), err)
}
