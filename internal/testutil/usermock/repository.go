package usermock

import (
	"context"
	"time"

	domain "loanadmin-backend/internal/domain/user"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Getters default to context.Canceled, SetActive to a no-op. SetActiveCalls
// counts writes whether or not SetActiveFn is set.
type Repo struct {
	ListFn      func(ctx context.Context) ([]domain.User, error)
	GetByIDFn   func(ctx context.Context, id string) (*domain.User, error)
	SetActiveFn func(ctx context.Context, id string, active bool, at time.Time) error

	SetActiveCalls int
}

func (m *Repo) List(ctx context.Context) ([]domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	m.SetActiveCalls++
	if m.SetActiveFn != nil {
		return m.SetActiveFn(ctx, id, active, at)
	}
	return nil
}
