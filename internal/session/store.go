// Package session keeps the signed-in user's backend credentials on the
// portal side, keyed by an opaque session ID.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"megacitycab/internal/models"
)

var ErrNotFound = errors.New("session not found")

type Store interface {
	Save(ctx context.Context, id string, creds *models.Credentials, ttl time.Duration) error
	// Load returns ErrNotFound for unknown or expired sessions.
	Load(ctx context.Context, id string) (*models.Credentials, error)
	Clear(ctx context.Context, id string) error
}

func NewID() string {
	return uuid.NewString()
}

// ValidID rejects anything that is not a UUID before it reaches the store.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
