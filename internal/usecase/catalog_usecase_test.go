package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogUC(productRepo *mockProductRepository, cacheRepo *mockCacheRepository) *CatalogUseCase {
	return NewCatalogUC(productRepo, cacheRepo, testStoreCfg(), logger.Discard{})
}

func TestGetProductCacheMissWarmsCache(t *testing.T) {
	productRepo := newMockProductRepository(testProduct("p1", 1000))
	cacheRepo := newMockCacheRepository()

	uc := newCatalogUC(productRepo, cacheRepo)

	product, err := uc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)

	// прогрев кэша фоновый
	assert.Eventually(t, func() bool {
		cacheRepo.mu.Lock()
		defer cacheRepo.mu.Unlock()
		_, ok := cacheRepo.products["p1"]
		return ok
	}, time.Second, 10*time.Millisecond)
}

func TestGetProductCacheHitSkipsStore(t *testing.T) {
	productRepo := newMockProductRepository()
	cacheRepo := newMockCacheRepository()
	require.NoError(t, cacheRepo.SetProducts(context.Background(), []domain.Product{testProduct("p1", 1000)}))

	uc := newCatalogUC(productRepo, cacheRepo)

	product, err := uc.GetProduct(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", product.ID)
	assert.Zero(t, productRepo.getCalls)
}

func TestGetProductNotFound(t *testing.T) {
	uc := newCatalogUC(newMockProductRepository(), newMockCacheRepository())

	_, err := uc.GetProduct(context.Background(), "ghost")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestListProductsClampsLimit(t *testing.T) {
	productRepo := newMockProductRepository(testProduct("p1", 100), testProduct("p2", 200))
	uc := newCatalogUC(productRepo, newMockCacheRepository())

	products, err := uc.ListProducts(context.Background(), ProductFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestSearchEmptyTermShortCircuits(t *testing.T) {
	productRepo := newMockProductRepository()
	uc := newCatalogUC(productRepo, newMockCacheRepository())

	products, err := uc.SearchProducts(context.Background(), "   ", 5)
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Zero(t, productRepo.getCalls, "blank search must not hit the store")
}

func TestCreateProductValidation(t *testing.T) {
	uc := newCatalogUC(newMockProductRepository(), newMockCacheRepository())

	salePriceTooHigh := int64(2000)
	zeroSale := int64(0)

	cases := []struct {
		name string
		req  *SaveProductReq
		want error
	}{
		{
			name: "blank name",
			req:  &SaveProductReq{Name: "  ", PriceCents: 1000},
			want: e.ErrProductNameRequired,
		},
		{
			name: "zero price",
			req:  &SaveProductReq{Name: "Mug", PriceCents: 0},
			want: e.ErrInvalidPrice,
		},
		{
			name: "negative price",
			req:  &SaveProductReq{Name: "Mug", PriceCents: -100},
			want: e.ErrInvalidPrice,
		},
		{
			name: "sale price above regular",
			req:  &SaveProductReq{Name: "Mug", PriceCents: 1000, OnSale: true, SalePriceCents: &salePriceTooHigh},
			want: e.ErrInvalidSalePrice,
		},
		{
			name: "zero sale price",
			req:  &SaveProductReq{Name: "Mug", PriceCents: 1000, OnSale: true, SalePriceCents: &zeroSale},
			want: e.ErrInvalidPrice,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreateProductAssignsID(t *testing.T) {
	productRepo := newMockProductRepository()
	uc := newCatalogUC(productRepo, newMockCacheRepository())

	sale := int64(800)
	product, err := uc.CreateProduct(context.Background(), &SaveProductReq{
		Name:           "Ceramic Mug",
		Description:    "Hand-made",
		PriceCents:     1000,
		OnSale:         true,
		SalePriceCents: &sale,
		Category:       "mugs",
		Stock:          5,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, product.ID)
	assert.Equal(t, int64(800), product.EffectivePriceCents())
}

func TestUpdateProductInvalidatesCache(t *testing.T) {
	productRepo := newMockProductRepository(testProduct("p1", 1000))
	cacheRepo := newMockCacheRepository()
	require.NoError(t, cacheRepo.SetProducts(context.Background(), []domain.Product{testProduct("p1", 1000)}))

	uc := newCatalogUC(productRepo, cacheRepo)

	_, err := uc.UpdateProduct(context.Background(), "p1", &SaveProductReq{
		Name:       "Ceramic Mug v2",
		PriceCents: 1200,
		Category:   "mugs",
	})
	require.NoError(t, err)

	cached, err := cacheRepo.GetProducts(context.Background(), []string{"p1"})
	require.NoError(t, err)
	assert.NotContains(t, cached, "p1")
}

func TestUpdateProductNotFound(t *testing.T) {
	uc := newCatalogUC(newMockProductRepository(), newMockCacheRepository())

	_, err := uc.UpdateProduct(context.Background(), "ghost", &SaveProductReq{Name: "Mug", PriceCents: 100})
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestArchiveProductInvalidatesCache(t *testing.T) {
	productRepo := newMockProductRepository(testProduct("p1", 1000))
	cacheRepo := newMockCacheRepository()
	require.NoError(t, cacheRepo.SetProducts(context.Background(), []domain.Product{testProduct("p1", 1000)}))

	uc := newCatalogUC(productRepo, cacheRepo)

	require.NoError(t, uc.ArchiveProduct(context.Background(), "p1"))

	cached, err := cacheRepo.GetProducts(context.Background(), []string{"p1"})
	require.NoError(t, err)
	assert.NotContains(t, cached, "p1")
}

func TestArchiveProductNotFound(t *testing.T) {
	uc := newCatalogUC(newMockProductRepository(), newMockCacheRepository())

	err := uc.ArchiveProduct(context.Background(), "ghost")
	assert.ErrorIs(t, err, e.ErrProductNotFound)
}
