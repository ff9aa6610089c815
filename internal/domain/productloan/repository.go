package productloan

import "context"

type Repository interface {
	// ListByMerchantIDs returns product loans of the given merchants, newest first.
	ListByMerchantIDs(ctx context.Context, merchantIDs []string) ([]ProductLoan, error)

	// LatestByUserID returns the most recent product loan of a user or ErrNotFound.
	LatestByUserID(ctx context.Context, userID string) (*ProductLoan, error)
}
