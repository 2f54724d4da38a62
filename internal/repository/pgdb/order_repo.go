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

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
// Позиции и адреса хранятся JSONB-документами: после создания они
// неизменяемы, обновляется только статус.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{
		pool: pool,
		conv: conv,
	}
}

const orderColumns = `
	id, user_id, items, total, status, payment_status, payment_id,
	shipping_address, billing_address, created_at, updated_at
`

func scanOrder(row pgx.Row) (*converter.OrderModel, error) {
	var model converter.OrderModel
	err := row.Scan(
		&model.ID, &model.UserID, &model.Items, &model.Total,
		&model.Status, &model.PaymentStatus, &model.PaymentID,
		&model.ShippingAddress, &model.BillingAddress,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// Create вставляет заказ. Вызывается только внутри транзакции: заказ и его
// outbox-событие должны зафиксироваться атомарно.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := o.conv.ToModel(order)

	query := `
		INSERT INTO orders (
			id, user_id, items, total, status, payment_status,
			payment_id, shipping_address, billing_address
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + orderColumns

	created, err := scanOrder(tx.QueryRow(ctx, query,
		model.ID, model.UserID, model.Items, model.Total,
		model.Status, model.PaymentStatus, model.PaymentID,
		model.ShippingAddress, model.BillingAddress,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(created), nil
}

// GetByID возвращает заказ по идентификатору.
func (o *OrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`

	model, err := scanOrder(o.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// GetForUpdate читает заказ под блокировкой строки для проверки перехода
// статуса. Вызывается только внутри транзакции.
func (o *OrderRepo) GetForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1 FOR UPDATE`

	model, err := scanOrder(tx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(model), nil
}

// SetStatus записывает новый статус заказа. Допустимость перехода
// проверяет бизнес-логика под блокировкой GetForUpdate.
func (o *OrderRepo) SetStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `UPDATE orders SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := tx.Exec(ctx, query, id, string(status))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrOrderNotFound)
	}

	return nil
}

// ListForUser возвращает заказы покупателя, новые первыми.
func (o *OrderRepo) ListForUser(ctx context.Context, userID string) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := o.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectOrders(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}

// ListRecent возвращает последние заказы магазина.
func (o *OrderRepo) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
		LIMIT $1`

	rows, err := o.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectOrders(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToArrEntity(models), nil
}

func collectOrders(rows pgx.Rows) ([]*converter.OrderModel, error) {
	var models []*converter.OrderModel
	for rows.Next() {
		model, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}

	return models, rows.Err()
}
