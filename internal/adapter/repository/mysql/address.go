package mysql

import (
	"context"

	addressDomain "loanadmin-backend/internal/domain/address"

	"gorm.io/gorm"
)

type AddressRepository struct{ db *gorm.DB }

func NewAddressRepository(db *gorm.DB) *AddressRepository { return &AddressRepository{db: db} }

func (r *AddressRepository) DefaultByUserID(ctx context.Context, userID string) (*addressDomain.Address, error) {
	var out addressDomain.Address
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND is_default = ?", userID, true).
		Order("created_at DESC").
		Limit(1).
		Take(&out)
	if res.Error != nil {
		return nil, mapNotFound(res.Error, addressDomain.ErrNotFound)
	}
	return &out, nil
}
