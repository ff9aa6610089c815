package mysql

import (
	"context"

	tieupDomain "loanadmin-backend/internal/domain/tieup"

	"gorm.io/gorm"
)

type TieUpRepository struct{ db *gorm.DB }

func NewTieUpRepository(db *gorm.DB) *TieUpRepository { return &TieUpRepository{db: db} }

func (r *TieUpRepository) MerchantIDs(ctx context.Context) ([]string, error) {
	var ids []string
	res := r.db.WithContext(ctx).
		Model(&tieupDomain.TieUp{}).
		Distinct("merchant_id").
		Pluck("merchant_id", &ids)
	return ids, res.Error
}
