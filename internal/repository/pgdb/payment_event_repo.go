package pgdb

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// PaymentEventRepo — журнал обработанных платёжных событий в PostgreSQL.
type PaymentEventRepo struct {
	pool *pgxpool.Pool
}

func NewPaymentEventRepo(pool *pgxpool.Pool) *PaymentEventRepo {
	return &PaymentEventRepo{pool: pool}
}

// Insert записывает событие в журнал. Вызывается только внутри транзакции:
// запись журнала и порождённый заказ фиксируются атомарно. Возвращает false
// для уже записанного event_id, это сигнал повторной доставки.
func (p *PaymentEventRepo) Insert(ctx context.Context, event *domain.PaymentEvent) (bool, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO payment_events (event_id, event_type, payment_id, user_id, amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (event_id) DO NOTHING
	`

	result, err := tx.Exec(ctx, query,
		event.EventID, string(event.Type), event.PaymentID, event.UserID, event.AmountCents,
	)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return result.RowsAffected() == 1, nil
}
