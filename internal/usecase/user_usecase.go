package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// UserUseCase реализует регистрацию профилей и админское управление ролями.
type UserUseCase struct {
	userRepo UserRepository
	store    *cfg.StoreCfg
	logger   logger.Logger
}

func NewUserUC(userRepo UserRepository, store *cfg.StoreCfg, logger logger.Logger) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		store:    store,
		logger:   logger,
	}
}

// EnsureUser создаёт или обновляет профиль пользователя при входе.
// Повторный вызов с тем же id перезаписывает email и имя.
func (u *UserUseCase) EnsureUser(ctx context.Context, id, email, displayName string) (*domain.User, error) {
	const op = "UserUseCase.EnsureUser"

	if strings.TrimSpace(id) == "" || strings.TrimSpace(email) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	ctx, cancel := context.WithTimeout(ctx, u.store.CallTimeout)
	defer cancel()

	user, err := u.userRepo.Upsert(ctx, domain.NewUser(id, email, displayName))
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return user, nil
}

// GetByID возвращает профиль пользователя.
func (u *UserUseCase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const op = "UserUseCase.GetByID"

	ctx, cancel := context.WithTimeout(ctx, u.store.CallTimeout)
	defer cancel()

	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return nil, e.Wrap(op, err)
		}
		return nil, e.Wrap(op, storeErr(err))
	}

	return user, nil
}

// List возвращает всех пользователей (админ).
func (u *UserUseCase) List(ctx context.Context) ([]domain.User, error) {
	const op = "UserUseCase.List"

	ctx, cancel := context.WithTimeout(ctx, u.store.CallTimeout)
	defer cancel()

	users, err := u.userRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return users, nil
}

// SetAdmin включает или снимает роль администратора (админ).
func (u *UserUseCase) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	const op = "UserUseCase.SetAdmin"

	ctx, cancel := context.WithTimeout(ctx, u.store.CallTimeout)
	defer cancel()

	if err := u.userRepo.SetAdmin(ctx, id, isAdmin); err != nil {
		if errors.Is(err, e.ErrUserNotFound) {
			return e.Wrap(op, err)
		}
		return e.Wrap(op, storeErr(err))
	}

	u.logger.Infof("user %s admin role set to %t", id, isAdmin)

	return nil
}
