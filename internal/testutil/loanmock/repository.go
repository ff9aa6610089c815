package loanmock

import (
	"context"

	domain "loanadmin-backend/internal/domain/loan"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset functions return context.Canceled.
type Repo struct {
	ListFn           func(ctx context.Context) ([]domain.Loan, error)
	LatestByUserIDFn func(ctx context.Context, userID string) (*domain.Loan, error)
}

func (m *Repo) List(ctx context.Context) ([]domain.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) LatestByUserID(ctx context.Context, userID string) (*domain.Loan, error) {
	if m.LatestByUserIDFn != nil {
		return m.LatestByUserIDFn(ctx, userID)
	}
	return nil, context.Canceled
}
