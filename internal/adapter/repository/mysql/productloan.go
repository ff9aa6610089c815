package mysql

import (
	"context"

	plDomain "loanadmin-backend/internal/domain/productloan"

	"gorm.io/gorm"
)

type ProductLoanRepository struct{ db *gorm.DB }

func NewProductLoanRepository(db *gorm.DB) *ProductLoanRepository {
	return &ProductLoanRepository{db: db}
}

func (r *ProductLoanRepository) ListByMerchantIDs(ctx context.Context, merchantIDs []string) ([]plDomain.ProductLoan, error) {
	out := []plDomain.ProductLoan{}
	if len(merchantIDs) == 0 {
		return out, nil
	}
	res := r.db.WithContext(ctx).
		Where("merchant_id IN ?", merchantIDs).
		Order("created_at DESC").
		Find(&out)
	return out, res.Error
}

func (r *ProductLoanRepository) LatestByUserID(ctx context.Context, userID string) (*plDomain.ProductLoan, error) {
	var out plDomain.ProductLoan
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Take(&out)
	if res.Error != nil {
		return nil, mapNotFound(res.Error, plDomain.ErrNotFound)
	}
	return &out, nil
}
