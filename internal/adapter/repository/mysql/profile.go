package mysql

import (
	"context"

	profileDomain "loanadmin-backend/internal/domain/profile"

	"gorm.io/gorm"
)

type ProfileRepository struct{ db *gorm.DB }

func NewProfileRepository(db *gorm.DB) *ProfileRepository { return &ProfileRepository{db: db} }

func (r *ProfileRepository) MerchantByUserID(ctx context.Context, userID string) (*profileDomain.MerchantProfile, error) {
	var out profileDomain.MerchantProfile
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&out)
	if res.Error != nil {
		return nil, mapNotFound(res.Error, profileDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *ProfileRepository) NBFCByUserID(ctx context.Context, userID string) (*profileDomain.NBFCProfile, error) {
	var out profileDomain.NBFCProfile
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Take(&out)
	if res.Error != nil {
		return nil, mapNotFound(res.Error, profileDomain.ErrNotFound)
	}
	return &out, nil
}
