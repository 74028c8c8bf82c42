package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"megacitycab/internal/backend"
	"megacitycab/internal/models"
	"megacitycab/internal/session"
	"megacitycab/internal/utils"
	"megacitycab/internal/validators"
	"megacitycab/pkg/logger"
)

type AuthService interface {
	Login(ctx context.Context, form *models.LoginForm) (*models.LoginResult, error)
	Logout(ctx context.Context, sessionID string) error
	// Session loads the credentials behind a session ID, or ErrNotLoggedIn.
	Session(ctx context.Context, sessionID string) (*models.Session, error)
}

type AuthBackend interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
}

type authService struct {
	backend    AuthBackend
	store      session.Store
	sessionTTL time.Duration
	now        func() time.Time
	logger     *logger.Logger
}

func NewAuthService(b AuthBackend, store session.Store, sessionTTL time.Duration, log *logger.Logger) AuthService {
	if sessionTTL <= 0 {
		sessionTTL = utils.DefaultSessionTTL
	}
	return &authService{
		backend:    b,
		store:      store,
		sessionTTL: sessionTTL,
		now:        time.Now,
		logger:     log,
	}
}

func (s *authService) Login(ctx context.Context, form *models.LoginForm) (*models.LoginResult, error) {
	if errs := validators.ValidateLogin(form); len(errs) > 0 {
		return nil, errs
	}

	resp, err := s.backend.Login(ctx, &models.LoginRequest{
		UserName: form.Username,
		Password: form.Password,
	})
	if err != nil {
		s.logger.WithField("username", form.Username).Warn("Login attempt rejected")
		switch {
		case errors.Is(err, backend.ErrUnauthorized):
			return nil, userError(utils.ErrInvalidCredentials, err)
		case errors.Is(err, backend.ErrTransport):
			return nil, err
		}
		var apiErr *backend.APIError
		if errors.As(err, &apiErr) && apiErr.Message != "" {
			return nil, userError(apiErr.Message, err)
		}
		return nil, userError("Login failed", err)
	}

	redirect, ok := resp.Role.LandingPage()
	if !ok {
		s.logger.WithField("role", resp.Role).Warn("Login returned an unknown role")
		return nil, ErrUnknownRole
	}

	expiresAt, err := s.tokenExpiry(resp.Token)
	if err != nil {
		return nil, err
	}

	creds := &models.Credentials{
		Token:     resp.Token,
		UserID:    resp.UserID.String(),
		Role:      resp.Role,
		Username:  form.Username,
		ExpiresAt: expiresAt,
	}

	id := session.NewID()
	if err := s.store.Save(ctx, id, creds, expiresAt.Sub(s.now())); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}

	s.logger.WithUserID(creds.UserID).WithField("role", creds.Role).Info("User logged in")

	return &models.LoginResult{
		SessionID: id,
		User:      creds,
		Redirect:  redirect,
	}, nil
}

// tokenExpiry reads exp from the token without checking the signature; the
// backend holds the key and verifies every call. The result never exceeds
// the configured session TTL.
func (s *authService) tokenExpiry(token string) (time.Time, error) {
	now := s.now()
	limit := now.Add(s.sessionTTL)

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return limit, nil
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return limit, nil
	}
	if !exp.After(now) {
		return time.Time{}, userError("Login failed", ErrSessionExpired)
	}
	if exp.Before(limit) {
		return exp.Time, nil
	}
	return limit, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	s.logger.Info("User logged out")
	return nil
}

func (s *authService) Session(ctx context.Context, sessionID string) (*models.Session, error) {
	if sessionID == "" || !session.ValidID(sessionID) {
		return nil, ErrNotLoggedIn
	}

	creds, err := s.store.Load(ctx, sessionID)
	if errors.Is(err, session.ErrNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, err
	}
	if creds.Expired(s.now()) {
		_ = s.store.Clear(ctx, sessionID)
		return nil, ErrNotLoggedIn
	}

	return &models.Session{ID: sessionID, Credentials: *creds}, nil
}
