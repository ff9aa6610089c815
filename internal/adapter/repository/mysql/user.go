package mysql

import (
	"context"
	"time"

	userDomain "loanadmin-backend/internal/domain/user"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) List(ctx context.Context) ([]userDomain.User, error) {
	var out []userDomain.User
	res := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*userDomain.User, error) {
	var out userDomain.User
	res := r.db.WithContext(ctx).Where("id = ?", id).Take(&out)
	if res.Error != nil {
		return nil, mapNotFound(res.Error, userDomain.ErrNotFound)
	}
	return &out, nil
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&userDomain.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return userDomain.ErrNotFound
	}
	return nil
}
