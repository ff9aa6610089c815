package productloanmock

import (
	"context"

	domain "loanadmin-backend/internal/domain/productloan"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	ListByMerchantIDsFn func(ctx context.Context, merchantIDs []string) ([]domain.ProductLoan, error)
	LatestByUserIDFn    func(ctx context.Context, userID string) (*domain.ProductLoan, error)
}

func (m *Repo) ListByMerchantIDs(ctx context.Context, merchantIDs []string) ([]domain.ProductLoan, error) {
	if m.ListByMerchantIDsFn != nil {
		return m.ListByMerchantIDsFn(ctx, merchantIDs)
	}
	return nil, context.Canceled
}

func (m *Repo) LatestByUserID(ctx context.Context, userID string) (*domain.ProductLoan, error) {
	if m.LatestByUserIDFn != nil {
		return m.LatestByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
