package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PaymentUseCase сводит асинхронные уведомления платёжного провайдера к
// созданию заказов. Идемпотентен: запись журнала событий вставляется в той же
// транзакции, что и заказ, поэтому повторная доставка события не создаёт
// дубликата.
type PaymentUseCase struct {
	paymentRepo PaymentEventRepository
	cartRepo    CartRepository
	orderRepo   OrderRepository
	outboxRepo  OutboxRepository
	dbPool      transaction.Transactional
	store       *cfg.StoreCfg
	logger      logger.Logger
}

func NewPaymentUC(
	paymentRepo PaymentEventRepository,
	cartRepo CartRepository,
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	store *cfg.StoreCfg,
	logger logger.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		paymentRepo: paymentRepo,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		outboxRepo:  outboxRepo,
		dbPool:      dbPool,
		store:       store,
		logger:      logger,
	}
}

// HandleEvent применяет верифицированное платёжное событие.
// Повтор события и пустая корзина — штатные no-op, не ошибки.
func (p *PaymentUseCase) HandleEvent(ctx context.Context, event *domain.PaymentEvent) error {
	const op = "PaymentUseCase.HandleEvent"

	switch event.Type {
	case domain.PaymentEventCompleted:
		return p.handleCompleted(ctx, op, event)
	case domain.PaymentEventFailed:
		return p.handleFailed(ctx, op, event)
	default:
		p.logger.Debugf("%s: ignoring payment event type %q (event %s)", op, event.Type, event.EventID)
		return nil
	}
}

func (p *PaymentUseCase) handleCompleted(ctx context.Context, op string, event *domain.PaymentEvent) error {
	if event.UserID == "" {
		p.logger.Warnf("%s: completed event %s without userId metadata, skipping", op, event.EventID)
		return nil
	}

	order, err := p.reduceCompletedTx(ctx, event)
	if err != nil {
		return e.Wrap(op, storeErr(err))
	}

	if order == nil {
		// повтор события либо уже очищенная корзина
		return nil
	}

	p.logger.Infof("%s: order %s created from payment event %s", op, order.ID, event.EventID)

	p.clearCartBestEffort(ctx, event.UserID, order.ID)

	return nil
}

func (p *PaymentUseCase) reduceCompletedTx(ctx context.Context, event *domain.PaymentEvent) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, p.store.CallTimeout)
	defer cancel()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return nil, err
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	inserted, err := p.paymentRepo.Insert(ctx, event)
	if err != nil {
		return nil, err
	}
	if !inserted {
		p.logger.Debugf("duplicate payment event %s, no-op", event.EventID)
		return nil, tx.Commit(ctx)
	}

	cart, err := p.cartRepo.GetForUpdate(ctx, event.UserID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		// корзина уже очищена предыдущей доставкой или оформлением —
		// фиксируем только запись журнала событий
		return nil, tx.Commit(ctx)
	}

	paymentID := event.PaymentID
	order := domain.NewOrderFromCart(uuid.NewString(), cart, domain.Address{}, domain.Address{}, &paymentID)
	// подтверждённая оплата сразу переводит заказ в обработку
	order.Status = domain.StatusProcessing

	order, err = p.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := p.enqueueCreatedEvent(ctx, order); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// handleFailed фиксирует неуспешную оплату только для наблюдаемости;
// заказ не создаётся, состояние корзины не меняется.
func (p *PaymentUseCase) handleFailed(ctx context.Context, op string, event *domain.PaymentEvent) error {
	ctx, cancel := context.WithTimeout(ctx, p.store.CallTimeout)
	defer cancel()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, p.dbPool)
	if err != nil {
		return e.Wrap(op, storeErr(err))
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	if _, err := p.paymentRepo.Insert(ctx, event); err != nil {
		return e.Wrap(op, storeErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return e.Wrap(op, storeErr(err))
	}

	p.logger.Warnf("%s: payment %s failed for user %s (event %s)", op, event.PaymentID, event.UserID, event.EventID)
	return nil
}

func (p *PaymentUseCase) clearCartBestEffort(ctx context.Context, identity, orderID string) {
	clearCtx, cancel := context.WithTimeout(ctx, p.store.CallTimeout)
	defer cancel()

	if err := p.cartRepo.Clear(clearCtx, identity); err != nil {
		p.logger.Warnf("order %s created but cart clear failed for %s: %v", orderID, identity, err)
	}
}

func (p *PaymentUseCase) enqueueCreatedEvent(ctx context.Context, order *domain.Order) error {
	eventID := uuid.NewString()

	payload, err := json.Marshal(OrderEventPayload{
		EventID:    eventID,
		EventType:  OrderCreated,
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalCents: order.TotalCents,
		NewStatus:  order.Status,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = p.outboxRepo.Create(ctx, NewOutboxEvent(eventID, OrderCreated, order.ID, payload))
	return err
}
