package profile

import "context"

type Repository interface {
	// Both lookups return ErrNotFound when the user has no profile row.
	MerchantByUserID(ctx context.Context, userID string) (*MerchantProfile, error)
	NBFCByUserID(ctx context.Context, userID string) (*NBFCProfile, error)
}
