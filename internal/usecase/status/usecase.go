package status

import (
	"context"
	"fmt"
	"time"

	"loanadmin-backend/internal/domain/user"

	"go.uber.org/zap"
)

// Cache is the in-memory user list patched after confirmed writes.
type Cache interface {
	User(id string) (user.User, bool)
	PatchUser(id string, p user.Patch)
}

type Usecase struct {
	users user.Repository
	cache Cache
	log   *zap.Logger
	now   func() time.Time
}

func NewUsecase(users user.Repository, cache Cache, log *zap.Logger) *Usecase {
	return &Usecase{users: users, cache: cache, log: log, now: func() time.Time { return time.Now().UTC() }}
}

// ToggleActive flips the activation flag from current. Customers are refused
// without touching the gateway.
func (u *Usecase) ToggleActive(ctx context.Context, userID string, current bool) (*ResultDTO, error) {
	target, err := u.resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if target.Role.IsCustomer() {
		u.log.Info("toggle refused for customer account",
			zap.String("user_id", userID), zap.String("role", string(target.Role)))
		return &ResultDTO{UserID: userID, IsActive: target.IsActive, Applied: false, Reason: ReasonCustomerAlwaysActive}, nil
	}
	return u.write(ctx, userID, !current)
}

// SetActive writes value unconditionally. Used by approve/reject on the
// notification list.
func (u *Usecase) SetActive(ctx context.Context, userID string, value bool) (*ResultDTO, error) {
	return u.write(ctx, userID, value)
}

func (u *Usecase) resolve(ctx context.Context, userID string) (user.User, error) {
	if cached, ok := u.cache.User(userID); ok {
		return cached, nil
	}
	got, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	return *got, nil
}

// write goes to the gateway first; the cache is patched only once it succeeded.
func (u *Usecase) write(ctx context.Context, userID string, value bool) (*ResultDTO, error) {
	at := u.now()
	if err := u.users.SetActive(ctx, userID, value, at); err != nil {
		u.log.Error("activation write failed",
			zap.String("user_id", userID), zap.Bool("is_active", value), zap.Error(err))
		return nil, fmt.Errorf("set is_active=%t for user %s: %w", value, userID, err)
	}
	u.cache.PatchUser(userID, user.Patch{IsActive: &value, UpdatedAt: &at})
	return &ResultDTO{UserID: userID, IsActive: value, Applied: true}, nil
}
