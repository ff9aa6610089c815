package tieupmock

import (
	"context"

	domain "loanadmin-backend/internal/domain/tieup"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	MerchantIDsFn func(ctx context.Context) ([]string, error)
}

func (m *Repo) MerchantIDs(ctx context.Context) ([]string, error) {
	if m.MerchantIDsFn != nil {
		return m.MerchantIDsFn(ctx)
	}
	return nil, context.Canceled
}
