package tr

import (
	"context"

	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jackc/pgx/v5"
)

// Key — ключ контекста, под которым мутирующие use case кладут активную транзакцию.
type Key struct{}

// TxFromCtx извлекает объект транзакции (pgx.Tx) из контекста
func TxFromCtx(ctx context.Context) (pgx.Tx, error) {
	tx, ok := ctx.Value(Key{}).(pgx.Tx)
	if !ok {
		return nil, e.ErrTransactionNotFound
	}
	return tx, nil
}

// CtxWithTx возвращает контекст с привязанной транзакцией.
// Значение принимается как any, потому что менеджер транзакций отдаёт
// pgx.Tx через нетипизированный Transaction().
func CtxWithTx(ctx context.Context, tx any) context.Context {
	return context.WithValue(ctx, Key{}, tx)
}
