package address

import "context"

type Repository interface {
	// DefaultByUserID returns the user's default address or ErrNotFound.
	DefaultByUserID(ctx context.Context, userID string) (*Address, error)
}
