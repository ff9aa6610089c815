package mysql

import (
	"context"

	loanDomain "loanadmin-backend/internal/domain/loan"

	"gorm.io/gorm"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) List(ctx context.Context) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) LatestByUserID(ctx context.Context, userID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Take(&out)
	if res.Error != nil {
		return nil, mapNotFound(res.Error, loanDomain.ErrNotFound)
	}
	return &out, nil
}
