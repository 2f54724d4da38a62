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

// keepOrderOnClearFailure фиксирует выбранную сторону компромисса саги
// «создать заказ, затем очистить корзину»: при сбое очистки заказ остаётся
// валидным, корзина остаётся устаревшей. Предпочитаем «заказ есть, корзина
// несвежая» варианту «заказ потерян».
const keepOrderOnClearFailure = true

// OrderUseCase реализует бизнес-логику заказов: материализация корзины
// в неизменяемый заказ и движение статуса строго вперёд.
type OrderUseCase struct {
	orderRepo  OrderRepository
	cartRepo   CartRepository
	outboxRepo OutboxRepository
	dbPool     transaction.Transactional
	store      *cfg.StoreCfg
	logger     logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	cartRepo CartRepository,
	outboxRepo OutboxRepository,
	dbPool transaction.Transactional,
	store *cfg.StoreCfg,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:  orderRepo,
		cartRepo:   cartRepo,
		outboxRepo: outboxRepo,
		dbPool:     dbPool,
		store:      store,
		logger:     logger,
	}
}

// CreateFromCart оформляет заказ из текущей корзины. Позиции и сумма
// копируются дословно, без повторной сверки с каталогом. Заказ и outbox-событие
// пишутся в одной транзакции; очистка корзины — отдельный последующий шаг
// (сага из двух шагов, см. keepOrderOnClearFailure).
func (o *OrderUseCase) CreateFromCart(ctx context.Context, req *CheckoutReq) (*domain.Order, error) {
	const op = "OrderUseCase.CreateFromCart"

	if req.Identity == "" {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}
	if err := req.ShippingAddress.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}
	if err := req.BillingAddress.Validate(); err != nil {
		return nil, e.Wrap(op, err)
	}

	order, err := o.createOrderTx(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	o.clearCartBestEffort(ctx, req.Identity, order.ID)

	return order, nil
}

func (o *OrderUseCase) createOrderTx(ctx context.Context, req *CheckoutReq) (*domain.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, o.store.CallTimeout)
	defer cancel()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, err
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	cart, err := o.cartRepo.GetForUpdate(ctx, req.Identity)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, e.ErrEmptyCart
	}

	order := domain.NewOrderFromCart(uuid.NewString(), cart, req.ShippingAddress, req.BillingAddress, req.PaymentID)

	order, err = o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, err
	}

	if err := o.enqueueOrderEvent(ctx, OrderCreated, order, ""); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// clearCartBestEffort очищает корзину после успешного создания заказа.
// Сбой очистки логируется, но не откатывает и не компрометирует заказ.
func (o *OrderUseCase) clearCartBestEffort(ctx context.Context, identity, orderID string) {
	clearCtx, cancel := context.WithTimeout(ctx, o.store.CallTimeout)
	defer cancel()

	if err := o.cartRepo.Clear(clearCtx, identity); err != nil && keepOrderOnClearFailure {
		o.logger.Warnf("order %s created but cart clear failed for %s: %v", orderID, identity, err)
	}
}

// GetByID возвращает заказ владельцу или администратору. Чужие заказы
// неотличимы от несуществующих.
func (o *OrderUseCase) GetByID(ctx context.Context, requester Requester, orderID string) (*domain.Order, error) {
	const op = "OrderUseCase.GetByID"

	if requester.UserID == "" && !requester.IsAdmin {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	ctx, cancel := context.WithTimeout(ctx, o.store.CallTimeout)
	defer cancel()

	order, err := o.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	if order.UserID != requester.UserID && !requester.IsAdmin {
		return nil, e.Wrap(op, e.ErrOrderNotFound)
	}

	return order, nil
}

// ListForUser возвращает заказы покупателя, новые первыми.
func (o *OrderUseCase) ListForUser(ctx context.Context, identity string) ([]domain.Order, error) {
	const op = "OrderUseCase.ListForUser"

	if identity == "" {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	ctx, cancel := context.WithTimeout(ctx, o.store.CallTimeout)
	defer cancel()

	orders, err := o.orderRepo.ListForUser(ctx, identity)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return orders, nil
}

// ListRecent возвращает последние заказы магазина (админ).
func (o *OrderUseCase) ListRecent(ctx context.Context, limit int) ([]domain.Order, error) {
	const (
		op           = "OrderUseCase.ListRecent"
		defaultLimit = 10
		maxLimit     = 100
	)

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	ctx, cancel := context.WithTimeout(ctx, o.store.CallTimeout)
	defer cancel()

	orders, err := o.orderRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return orders, nil
}

// UpdateStatus переводит заказ в следующий статус. Допустимы только переходы
// вперёд; проверка и запись выполняются под блокировкой строки заказа.
func (o *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateStatus"

	if !next.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidTransition)
	}

	ctx, cancel := context.WithTimeout(ctx, o.store.CallTimeout)
	defer cancel()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	order, err := o.orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, e.Wrap(op, e.ErrInvalidTransition)
	}

	prev := order.Status
	if err := o.orderRepo.SetStatus(ctx, orderID, next); err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}
	order.Status = next

	if err := o.enqueueOrderEvent(ctx, OrderStatusChanged, order, prev); err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return order, nil
}

func (o *OrderUseCase) enqueueOrderEvent(ctx context.Context, eventType OutboxEventType, order *domain.Order, prev domain.OrderStatus) error {
	eventID := uuid.NewString()

	payload, err := json.Marshal(OrderEventPayload{
		EventID:    eventID,
		EventType:  eventType,
		OrderID:    order.ID,
		UserID:     order.UserID,
		TotalCents: order.TotalCents,
		OldStatus:  prev,
		NewStatus:  order.Status,
		OccurredAt: time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	_, err = o.outboxRepo.Create(ctx, NewOutboxEvent(eventID, eventType, order.ID, payload))
	return err
}
