package http

import (
	"net/http"
	"strings"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewProductHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, logger: logger}
}

// listProducts
//
//	@Summary		Листинг каталога
//	@Description	Возвращает товары с фильтрацией, сортировкой и пагинацией
//	@Tags			products
//	@Produce		json
//	@Param			category	query		[]string	false	"Категории"
//	@Param			min_price	query		string		false	"Минимальная цена, например 9.99"
//	@Param			max_price	query		string		false	"Максимальная цена"
//	@Param			on_sale		query		bool		false	"Только со скидкой"
//	@Param			in_stock	query		bool		false	"Только в наличии"
//	@Param			sort		query		string		false	"price-asc | price-desc | newest"
//	@Param			limit		query		int			false	"Размер страницы"
//	@Param			offset		query		int			false	"Смещение"
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		p.logger.Warnf("%d list products: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	products, err := p.catalogUC.ListProducts(r.Context(), filter)
	if err != nil {
		p.logger.Warnf("list products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(products))
}

// getProduct
//
//	@Summary	Карточка товара
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"ID товара"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/products/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := p.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("get product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// listCategories
//
//	@Summary	Список категорий каталога
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}	string
//	@Router		/products/categories [get]
func (p *ProductHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := p.catalogUC.Categories(r.Context())
	if err != nil {
		p.logger.Warnf("list categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, categories)
}

// searchProducts
//
//	@Summary	Поиск товаров по началу названия
//	@Tags		products
//	@Produce	json
//	@Param		q		query	string	true	"Поисковый запрос"
//	@Param		limit	query	int		false	"Максимум результатов"
//	@Success	200		{array}	ProductResponse
//	@Router		/products/search [get]
func (p *ProductHandler) searchProducts(w http.ResponseWriter, r *http.Request) {
	limit, err := parseIntQuery(r, "limit", 0)
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := p.catalogUC.SearchProducts(r.Context(), r.URL.Query().Get("q"), limit)
	if err != nil {
		p.logger.Warnf("search products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(products))
}

func parseProductFilter(r *http.Request) (usecase.ProductFilter, error) {
	var filter usecase.ProductFilter

	q := r.URL.Query()

	for _, c := range q["category"] {
		if c = strings.TrimSpace(c); c != "" {
			filter.Categories = append(filter.Categories, c)
		}
	}

	if v := q.Get("min_price"); v != "" {
		cents, err := parsePriceToCents(v)
		if err != nil {
			return filter, e.Wrap("min_price", err)
		}
		filter.MinPriceCents = &cents
	}

	if v := q.Get("max_price"); v != "" {
		cents, err := parsePriceToCents(v)
		if err != nil {
			return filter, e.Wrap("max_price", err)
		}
		filter.MaxPriceCents = &cents
	}

	onSale, err := parseBoolQuery(r, "on_sale")
	if err != nil {
		return filter, err
	}
	filter.OnSale = onSale

	inStock, err := parseBoolQuery(r, "in_stock")
	if err != nil {
		return filter, err
	}
	if inStock != nil {
		filter.InStockOnly = *inStock
	}

	filter.SortBy = q.Get("sort")

	if filter.Limit, err = parseIntQuery(r, "limit", 0); err != nil {
		return filter, err
	}
	if filter.Offset, err = parseIntQuery(r, "offset", 0); err != nil {
		return filter, err
	}

	return filter, nil
}
