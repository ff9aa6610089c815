package loan

import "context"

type Repository interface {
	// List every general loan, newest first.
	List(ctx context.Context) ([]Loan, error)

	// LatestByUserID returns the most recent loan of a user or ErrNotFound.
	LatestByUserID(ctx context.Context, userID string) (*Loan, error)
}
