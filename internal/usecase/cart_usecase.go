package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/jitter"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/DRSN-tech/storefront/pkg/tr"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const maxRetryBackoff = 2 * time.Second

// CartUseCase реализует бизнес-логику корзины: единственная точка записи
// в документ корзины. Все мутации выполняются как атомарный
// read-modify-write под блокировкой строки, с ограниченным числом
// повторов при временных сбоях хранилища.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	dbPool      transaction.Transactional
	store       *cfg.StoreCfg
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	dbPool transaction.Transactional,
	store *cfg.StoreCfg,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		dbPool:      dbPool,
		store:       store,
		logger:      logger,
	}
}

// Get возвращает корзину покупателя, лениво создавая пустую при первом обращении.
func (c *CartUseCase) Get(ctx context.Context, identity string) (*domain.Cart, error) {
	const op = "CartUseCase.Get"

	if identity == "" {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	ctx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	cart, created, err := c.cartRepo.GetOrCreate(ctx, identity)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	if created {
		c.logger.Debugf("created empty cart for %s", identity)
	}

	return cart, nil
}

// AddItem добавляет товар в корзину. Товар перечитывается из каталога на
// каждом добавлении: в позицию попадает актуальная действующая цена,
// в том числе для уже существующей строки (последнее добавление выигрывает).
func (c *CartUseCase) AddItem(ctx context.Context, identity, productID string, quantity int) (*domain.Cart, error) {
	const op = "CartUseCase.AddItem"

	if identity == "" {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	product, err := c.fetchProduct(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	snapshot := domain.CartItem{
		ProductID:  product.ID,
		Name:       product.Name,
		Image:      product.MainImage(),
		PriceCents: product.EffectivePriceCents(),
	}

	return c.mutate(ctx, op, identity, func(cart *domain.Cart) error {
		cart.AddItem(snapshot, quantity)
		return nil
	})
}

// UpdateQuantity устанавливает количество позиции точно; количество <= 0
// эквивалентно удалению.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, identity, productID string, quantity int) (*domain.Cart, error) {
	const op = "CartUseCase.UpdateQuantity"

	if identity == "" {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	return c.mutate(ctx, op, identity, func(cart *domain.Cart) error {
		return cart.UpdateQuantity(productID, quantity)
	})
}

// RemoveItem удаляет позицию; отсутствие позиции — не ошибка.
func (c *CartUseCase) RemoveItem(ctx context.Context, identity, productID string) (*domain.Cart, error) {
	const op = "CartUseCase.RemoveItem"

	if identity == "" {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	return c.mutate(ctx, op, identity, func(cart *domain.Cart) error {
		cart.RemoveItem(productID)
		return nil
	})
}

// Clear опустошает корзину.
func (c *CartUseCase) Clear(ctx context.Context, identity string) (*domain.Cart, error) {
	const op = "CartUseCase.Clear"

	if identity == "" {
		return nil, e.Wrap(op, e.ErrNotAuthenticated)
	}

	return c.mutate(ctx, op, identity, func(cart *domain.Cart) error {
		cart.Clear()
		return nil
	})
}

func (c *CartUseCase) fetchProduct(ctx context.Context, productID string) (*domain.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return nil, err
		}
		return nil, storeErr(err)
	}

	if product.IsArchived {
		return nil, e.ErrProductNotFound
	}

	return product, nil
}

// mutate выполняет мутацию корзины как транзакционный read-modify-write.
// Временные сбои (конфликт сериализации, deadlock, таймаут) повторяются
// ограниченное число раз с джиттером; ошибки валидации не повторяются.
func (c *CartUseCase) mutate(ctx context.Context, op, identity string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	var lastErr error

	for attempt := 0; attempt <= c.store.MaxRetries; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(c.store.RetryBackoff, maxRetryBackoff, attempt-1, jitter.DefaultJitter)
			c.logger.Debugf("%s: retrying cart mutation for %s after %v (attempt %d)", op, identity, backoff, attempt)

			select {
			case <-ctx.Done():
				return nil, e.Wrap(op, e.ErrStoreUnavailable)
			case <-time.After(backoff):
			}
		}

		cart, err := c.tryMutate(ctx, identity, fn)
		if err == nil {
			return cart, nil
		}
		if !isTransientStoreErr(err) {
			return nil, e.Wrap(op, err)
		}
		lastErr = err
	}

	c.logger.Warnf("%s: cart mutation for %s exhausted retries: %v", op, identity, lastErr)
	return nil, e.Wrap(op, e.ErrStoreUnavailable)
}

func (c *CartUseCase) tryMutate(ctx context.Context, identity string, fn func(cart *domain.Cart) error) (*domain.Cart, error) {
	ctx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, c.dbPool)
	if err != nil {
		return nil, err
	}
	defer func() {
		if tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = tr.CtxWithTx(ctx, tx.Transaction())

	cart, err := c.cartRepo.GetForUpdate(ctx, identity)
	if err != nil {
		return nil, err
	}

	if err := fn(cart); err != nil {
		return nil, err
	}

	if err := c.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return cart, nil
}

// storeErr приводит ошибку хранилища к ErrStoreUnavailable, сохраняя
// доменные сентинелы как есть.
func storeErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, e.ErrProductNotFound),
		errors.Is(err, e.ErrItemNotFound),
		errors.Is(err, e.ErrEmptyCart),
		errors.Is(err, e.ErrOrderNotFound),
		errors.Is(err, e.ErrUserNotFound),
		errors.Is(err, e.ErrInvalidTransition):
		return err
	default:
		return e.Wrap(err.Error(), e.ErrStoreUnavailable)
	}
}

// isTransientStoreErr распознаёт сбои, при которых повтор имеет смысл:
// конфликт сериализации, deadlock, истёкший таймаут обращения.
func isTransientStoreErr(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "40001", "40P01": // serialization_failure, deadlock_detected
			return true
		}
	}

	return errors.Is(err, context.DeadlineExceeded)
}
