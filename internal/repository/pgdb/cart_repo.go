package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo хранит корзины в PostgreSQL: одна строка на покупателя,
// позиции — единым JSONB-документом. Мутации выполняются только через
// GetForUpdate/Save внутри транзакции, блокирующей строку корзины.
type CartRepo struct {
	pool *pgxpool.Pool
	conv converter.CartConverter
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartConverter) *CartRepo {
	return &CartRepo{
		pool: pool,
		conv: conv,
	}
}

const cartColumns = "user_id, items, total, updated_at"

func scanCart(row pgx.Row) (*converter.CartModel, error) {
	var model converter.CartModel
	err := row.Scan(&model.UserID, &model.Items, &model.Total, &model.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// GetOrCreate возвращает корзину покупателя, лениво создавая пустую.
// Признак created различает создание и чтение существующей корзины.
func (c *CartRepo) GetOrCreate(ctx context.Context, userID string) (*domain.Cart, bool, error) {
	// xmax = 0 верен только для свежевставленной строки
	query := `
		INSERT INTO carts (user_id, items, total)
		VALUES ($1, '[]'::jsonb, 0)
		ON CONFLICT (user_id) DO UPDATE
		SET user_id = EXCLUDED.user_id
		RETURNING ` + cartColumns + `, (xmax = 0) AS created
	`

	var model converter.CartModel
	var created bool
	err := c.pool.QueryRow(ctx, query, userID).
		Scan(&model.UserID, &model.Items, &model.Total, &model.UpdatedAt, &created)
	if err != nil {
		return nil, false, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), created, nil
}

// GetForUpdate читает корзину под блокировкой строки. Вызывается только
// внутри транзакции; отсутствующая корзина материализуется пустой,
// чтобы строка для блокировки существовала всегда.
func (c *CartRepo) GetForUpdate(ctx context.Context, userID string) (*domain.Cart, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT ` + cartColumns + ` FROM carts WHERE user_id = $1 FOR UPDATE`

	model, err := scanCart(tx.QueryRow(ctx, query, userID))
	if err == nil {
		return c.conv.ToEntity(model), nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	insert := `
		INSERT INTO carts (user_id, items, total)
		VALUES ($1, '[]'::jsonb, 0)
		ON CONFLICT (user_id) DO UPDATE
		SET user_id = EXCLUDED.user_id
		RETURNING ` + cartColumns

	model, err = scanCart(tx.QueryRow(ctx, insert, userID))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(model), nil
}

// Save перезаписывает документ корзины целиком. Вызывается только внутри
// транзакции, в которой корзина была прочитана через GetForUpdate.
func (c *CartRepo) Save(ctx context.Context, cart *domain.Cart) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	model := c.conv.ToModel(cart)

	query := `
		UPDATE carts
		SET items = $2, total = $3, updated_at = NOW()
		WHERE user_id = $1
	`

	result, err := tx.Exec(ctx, query, model.UserID, model.Items, model.Total)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), pgx.ErrNoRows)
	}

	return nil
}

// Clear опустошает корзину вне транзакции мутаций. Используется лучшим
// усилием после создания заказа; отсутствие корзины — не ошибка.
func (c *CartRepo) Clear(ctx context.Context, userID string) error {
	query := `
		UPDATE carts
		SET items = '[]'::jsonb, total = 0, updated_at = NOW()
		WHERE user_id = $1
	`

	if _, err := c.pool.Exec(ctx, query, userID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
