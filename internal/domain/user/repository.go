package user

import (
	"context"
	"time"
)

type Repository interface {
	// List every user, newest first.
	List(ctx context.Context) ([]User, error)

	// GetByID returns ErrNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*User, error)

	// SetActive writes is_active and updated_at for a single user.
	SetActive(ctx context.Context, id string, active bool, at time.Time) error
}
