package loanmock

import (
	"context"
	"testing"

	domain "loanadmin-backend/internal/domain/loan"
)

func TestRepo_List(t *testing.T) {
	ctx := context.Background()
	want := []domain.Loan{{ID: "LN-1"}}

	called := false
	m := &Repo{
		ListFn: func(gotCtx context.Context) ([]domain.Loan, error) {
			called = true
			if gotCtx != ctx {
				t.Fatalf("List ctx mismatch")
			}
			return want, nil
		},
	}
	got, err := m.List(ctx)
	if err != nil || len(got) != 1 || got[0].ID != "LN-1" {
		t.Fatalf("List: got %+v err=%v", got, err)
	}
	if !called {
		t.Fatalf("ListFn not called")
	}

	// Default (nil func) → context.Canceled
	m = &Repo{}
	if _, err := m.List(ctx); err != context.Canceled {
		t.Fatalf("List default: want context.Canceled, got %v", err)
	}
}

func TestRepo_LatestByUserID(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{ID: "LN-2"}

	m := &Repo{
		LatestByUserIDFn: func(_ context.Context, userID string) (*domain.Loan, error) {
			if userID != "U-1" {
				t.Fatalf("LatestByUserID userID mismatch: got %s", userID)
			}
			return want, nil
		},
	}
	got, err := m.LatestByUserID(ctx, "U-1")
	if err != nil || got != want {
		t.Fatalf("LatestByUserID: got %+v err=%v", got, err)
	}

	m = &Repo{}
	got, err = m.LatestByUserID(ctx, "U-1")
	if err != context.Canceled || got != nil {
		t.Fatalf("LatestByUserID default: got %+v err=%v", got, err)
	}
}
