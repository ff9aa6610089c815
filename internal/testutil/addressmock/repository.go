package addressmock

import (
	"context"

	domain "loanadmin-backend/internal/domain/address"
)

var _ domain.Repository = (*Repo)(nil)

type Repo struct {
	DefaultByUserIDFn func(ctx context.Context, userID string) (*domain.Address, error)
}

func (m *Repo) DefaultByUserID(ctx context.Context, userID string) (*domain.Address, error) {
	if m.DefaultByUserIDFn != nil {
		return m.DefaultByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
