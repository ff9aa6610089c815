package profilemock

import (
	"context"

	domain "loanadmin-backend/internal/domain/profile"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	MerchantByUserIDFn func(ctx context.Context, userID string) (*domain.MerchantProfile, error)
	NBFCByUserIDFn     func(ctx context.Context, userID string) (*domain.NBFCProfile, error)
}

func (m *Repo) MerchantByUserID(ctx context.Context, userID string) (*domain.MerchantProfile, error) {
	if m.MerchantByUserIDFn != nil {
		return m.MerchantByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}

func (m *Repo) NBFCByUserID(ctx context.Context, userID string) (*domain.NBFCProfile, error) {
	if m.NBFCByUserIDFn != nil {
		return m.NBFCByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
