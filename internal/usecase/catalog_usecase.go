package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// CatalogUseCase реализует чтение каталога (кэш-first) и админские
// операции над товарами.
type CatalogUseCase struct {
	productRepo ProductRepository
	cacheRepo   CacheRepository
	store       *cfg.StoreCfg
	logger      logger.Logger
	sfg         singleflight.Group // защита от шторма промахов кэша по одному ключу
}

func NewCatalogUC(
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	store *cfg.StoreCfg,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		store:       store,
		logger:      logger,
	}
}

// GetProduct возвращает товар по идентификатору: сначала кэш, при промахе —
// база с фоновым прогревом кэша.
func (c *CatalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	v, err, _ := c.sfg.Do(id, func() (interface{}, error) {
		cached, err := c.cacheRepo.GetProducts(ctx, []string{id})
		if err == nil {
			if product, ok := cached[id]; ok {
				return &product, nil
			}
		}

		dbCtx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
		defer cancel()

		product, err := c.productRepo.GetByID(dbCtx, id)
		if err != nil {
			return nil, err
		}

		// Фоновый прогрев кэша, промах не блокирует ответ
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProducts(bgCtx, []domain.Product{*product}); err != nil {
				c.logger.Warnf("failed to cache product in background: %v", e.Wrap(op, err))
			}
		}()

		return product, nil
	})
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return nil, e.Wrap(op, err)
		}
		return nil, e.Wrap(op, storeErr(err))
	}

	return v.(*domain.Product), nil
}

// ListProducts возвращает страницу каталога по фильтру.
func (c *CatalogUseCase) ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	const (
		op           = "CatalogUseCase.ListProducts"
		defaultLimit = 12
		maxLimit     = 100
	)

	if filter.Limit <= 0 {
		filter.Limit = defaultLimit
	}
	if filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	ctx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	products, err := c.productRepo.List(ctx, filter)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return products, nil
}

// Categories возвращает список категорий каталога.
func (c *CatalogUseCase) Categories(ctx context.Context) ([]string, error) {
	const op = "CatalogUseCase.Categories"

	ctx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	categories, err := c.productRepo.Categories(ctx)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return categories, nil
}

// SearchProducts ищет товары по префиксу названия.
func (c *CatalogUseCase) SearchProducts(ctx context.Context, term string, limit int) ([]domain.Product, error) {
	const (
		op           = "CatalogUseCase.SearchProducts"
		defaultLimit = 5
		maxLimit     = 50
	)

	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Product{}, nil
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	ctx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	products, err := c.productRepo.Search(ctx, term, limit)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return products, nil
}

// CreateProduct добавляет товар в каталог (админ).
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(uuid.NewString(), req.Name, req.Description, req.PriceCents, req.Category)
	product.OnSale = req.OnSale
	product.SalePriceCents = req.SalePriceCents
	product.Images = req.Images
	product.Stock = req.Stock

	ctx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	product, err := c.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, storeErr(err))
	}

	return product, nil
}

// UpdateProduct обновляет товар и инвалидирует его запись в кэше.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := c.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(id, req.Name, req.Description, req.PriceCents, req.Category)
	product.OnSale = req.OnSale
	product.SalePriceCents = req.SalePriceCents
	product.Images = req.Images
	product.Stock = req.Stock

	dbCtx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	product, err := c.productRepo.Update(dbCtx, product)
	if err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return nil, e.Wrap(op, err)
		}
		return nil, e.Wrap(op, storeErr(err))
	}

	c.invalidate(ctx, op, id)

	return product, nil
}

// ArchiveProduct мягко удаляет товар из каталога.
func (c *CatalogUseCase) ArchiveProduct(ctx context.Context, id string) error {
	const op = "CatalogUseCase.ArchiveProduct"

	dbCtx, cancel := context.WithTimeout(ctx, c.store.CallTimeout)
	defer cancel()

	if err := c.productRepo.Archive(dbCtx, id); err != nil {
		if errors.Is(err, e.ErrProductNotFound) {
			return e.Wrap(op, err)
		}
		return e.Wrap(op, storeErr(err))
	}

	c.invalidate(ctx, op, id)

	return nil
}

// invalidate удаляет устаревшую запись товара из кэша после успешной мутации.
func (c *CatalogUseCase) invalidate(ctx context.Context, op, id string) {
	if err := c.cacheRepo.DeleteProducts(ctx, []string{id}); err != nil {
		c.logger.Warnf("failed to invalidate product cache: %v", e.Wrap(op, err))
	}
}

// validateProduct проверяет корректность входных данных товара.
func (c *CatalogUseCase) validateProduct(req *SaveProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if req.PriceCents <= 0 {
		return e.ErrInvalidPrice
	}

	if req.SalePriceCents != nil {
		if *req.SalePriceCents <= 0 {
			return e.ErrInvalidPrice
		}
		if *req.SalePriceCents > req.PriceCents {
			return e.ErrInvalidSalePrice
		}
	}

	if req.Stock < 0 {
		return e.ErrStatusBadRequest
	}

	return nil
}
