package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStoreCfg() *cfg.StoreCfg {
	return &cfg.StoreCfg{
		CallTimeout:  time.Second,
		MaxRetries:   3,
		RetryBackoff: time.Millisecond,
	}
}

func testProduct(id string, priceCents int64) domain.Product {
	p := domain.NewProduct(id, "Ceramic Mug", "Hand-made ceramic mug", priceCents, "mugs")
	p.Stock = 10
	return *p
}

func newCartUC(cartRepo *mockCartRepository, productRepo *mockProductRepository) (*CartUseCase, *fakePool) {
	pool := &fakePool{}
	return NewCartUC(cartRepo, productRepo, pool, testStoreCfg(), logger.Discard{}), pool
}

func TestCartGetCreatesEmptyCartOnFirstRead(t *testing.T) {
	uc, _ := newCartUC(newMockCartRepository(), newMockProductRepository())

	cart, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", cart.UserID)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalCents)

	// повторное чтение отдаёт ту же корзину, а не создаёт новую
	again, err := uc.Get(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, cart.UserID, again.UserID)
}

func TestCartGetRequiresIdentity(t *testing.T) {
	uc, _ := newCartUC(newMockCartRepository(), newMockProductRepository())

	_, err := uc.Get(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrNotAuthenticated)
}

func TestCartAddItemSnapshotsEffectivePrice(t *testing.T) {
	product := testProduct("p1", 1000)
	product.OnSale = true
	sale := int64(800)
	product.SalePriceCents = &sale

	cartRepo := newMockCartRepository()
	uc, _ := newCartUC(cartRepo, newMockProductRepository(product))

	cart, err := uc.AddItem(context.Background(), "user-1", "p1", 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(800), cart.Items[0].PriceCents)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, int64(1600), cart.TotalCents)

	stored := cartRepo.stored("user-1")
	assert.Equal(t, int64(1600), stored.TotalCents)
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	uc, pool := newCartUC(newMockCartRepository(), newMockProductRepository())

	_, err := uc.AddItem(context.Background(), "user-1", "ghost", 1)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Zero(t, pool.beginCount(), "mutation must not start for unknown product")
}

func TestCartAddItemArchivedProduct(t *testing.T) {
	product := testProduct("p1", 1000)
	product.IsArchived = true

	uc, _ := newCartUC(newMockCartRepository(), newMockProductRepository(product))

	_, err := uc.AddItem(context.Background(), "user-1", "p1", 1)
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCartMutationRetriesTransientFailure(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.saveErrs = []error{
		&pgconn.PgError{Code: "40001"},
		&pgconn.PgError{Code: "40P01"},
	}

	uc, pool := newCartUC(cartRepo, newMockProductRepository(testProduct("p1", 500)))

	cart, err := uc.AddItem(context.Background(), "user-1", "p1", 1)
	require.NoError(t, err)

	assert.Equal(t, int64(500), cart.TotalCents)
	assert.Equal(t, 3, pool.beginCount(), "two failed attempts plus the successful one")
}

func TestCartMutationExhaustsRetries(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.saveErrs = []error{
		&pgconn.PgError{Code: "40001"},
		&pgconn.PgError{Code: "40001"},
		&pgconn.PgError{Code: "40001"},
		&pgconn.PgError{Code: "40001"},
	}

	uc, pool := newCartUC(cartRepo, newMockProductRepository(testProduct("p1", 500)))

	_, err := uc.AddItem(context.Background(), "user-1", "p1", 1)
	assert.ErrorIs(t, err, e.ErrStoreUnavailable)
	assert.Equal(t, 4, pool.beginCount())

	stored := cartRepo.stored("user-1")
	assert.Empty(t, stored.Items, "failed mutation must not leave partial state")
}

func TestCartUpdateQuantitySetsExactValue(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(&domain.Cart{
		UserID: "user-1",
		Items: []domain.CartItem{
			{ProductID: "p1", Name: "Ceramic Mug", PriceCents: 500, Quantity: 2},
		},
		TotalCents: 1000,
	})

	uc, _ := newCartUC(cartRepo, newMockProductRepository())

	cart, err := uc.UpdateQuantity(context.Background(), "user-1", "p1", 7)
	require.NoError(t, err)

	assert.Equal(t, 7, cart.Items[0].Quantity)
	assert.Equal(t, int64(3500), cart.TotalCents)
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(&domain.Cart{
		UserID: "user-1",
		Items: []domain.CartItem{
			{ProductID: "p1", Name: "Ceramic Mug", PriceCents: 500, Quantity: 2},
		},
		TotalCents: 1000,
	})

	uc, _ := newCartUC(cartRepo, newMockProductRepository())

	cart, err := uc.UpdateQuantity(context.Background(), "user-1", "p1", 0)
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalCents)
}

func TestCartUpdateQuantityMissingLineNotRetried(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(&domain.Cart{UserID: "user-1", Items: []domain.CartItem{}})

	uc, pool := newCartUC(cartRepo, newMockProductRepository())

	_, err := uc.UpdateQuantity(context.Background(), "user-1", "ghost", 3)
	assert.ErrorIs(t, err, e.ErrItemNotFound)
	assert.Equal(t, 1, pool.beginCount(), "validation errors must not be retried")
}

func TestCartRemoveAbsentItemIsNoop(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(&domain.Cart{
		UserID: "user-1",
		Items: []domain.CartItem{
			{ProductID: "p1", Name: "Ceramic Mug", PriceCents: 500, Quantity: 1},
		},
		TotalCents: 500,
	})

	uc, _ := newCartUC(cartRepo, newMockProductRepository())

	cart, err := uc.RemoveItem(context.Background(), "user-1", "ghost")
	require.NoError(t, err)

	assert.Len(t, cart.Items, 1)
	assert.Equal(t, int64(500), cart.TotalCents)
}

func TestCartClear(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(&domain.Cart{
		UserID: "user-1",
		Items: []domain.CartItem{
			{ProductID: "p1", Name: "Ceramic Mug", PriceCents: 500, Quantity: 3},
		},
		TotalCents: 1500,
	})

	uc, _ := newCartUC(cartRepo, newMockProductRepository())

	cart, err := uc.Clear(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalCents)
}

// Конкурентные добавления одного товара не должны терять обновления:
// каждая мутация выполняется под блокировкой строки корзины.
func TestCartConcurrentAddsDoNotLoseUpdates(t *testing.T) {
	const workers = 10

	cartRepo := newMockCartRepository()
	cartRepo.locking = true
	uc, _ := newCartUC(cartRepo, newMockProductRepository(testProduct("p1", 500)))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.AddItem(context.Background(), "user-1", "p1", 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored := cartRepo.stored("user-1")
	require.Len(t, stored.Items, 1)
	assert.Equal(t, workers, stored.Items[0].Quantity)
	assert.Equal(t, int64(workers*500), stored.TotalCents)
}
