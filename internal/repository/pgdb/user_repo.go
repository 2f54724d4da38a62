package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo реализует репозиторий профилей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

const userColumns = "id, email, display_name, is_admin, created_at, updated_at"

func scanUser(row pgx.Row) (*converter.UserModel, error) {
	var model converter.UserModel
	err := row.Scan(
		&model.ID, &model.Email, &model.DisplayName,
		&model.IsAdmin, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Upsert идемпотентно создаёт или обновляет профиль по идентификатору.
// Флаг администратора при повторном входе не трогается.
func (u *UserRepo) Upsert(ctx context.Context, user *domain.User) (*domain.User, error) {
	model := u.conv.ToModel(user)

	query := `
		INSERT INTO users (id, email, display_name)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			updated_at = NOW()
		RETURNING ` + userColumns

	saved, err := scanUser(u.pool.QueryRow(ctx, query, model.ID, model.Email, model.DisplayName))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(saved), nil
}

// GetByID возвращает профиль пользователя.
func (u *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	model, err := scanUser(u.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}

// List возвращает всех пользователей, новые первыми.
func (u *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := u.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.UserModel
	for rows.Next() {
		model, err := scanUser(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToArrEntity(models), nil
}

// SetAdmin включает или снимает флаг администратора.
func (u *UserRepo) SetAdmin(ctx context.Context, id string, isAdmin bool) error {
	query := `UPDATE users SET is_admin = $2, updated_at = NOW() WHERE id = $1`

	result, err := u.pool.Exec(ctx, query, id, isAdmin)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrUserNotFound)
	}

	return nil
}
