package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// effectivePriceExpr — действующая цена в SQL: цена распродажи, если она
// задана и товар на распродаже, иначе обычная цена.
const effectivePriceExpr = "COALESCE(CASE WHEN on_sale THEN sale_price END, price)"

// ProductRepo реализует репозиторий каталога поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `
	id, name, description, price, on_sale, sale_price, images,
	category, stock, created_at, updated_at, is_archived
`

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Description, &model.Price,
		&model.OnSale, &model.SalePrice, &model.Images,
		&model.Category, &model.Stock, &model.CreatedAt,
		&model.UpdatedAt, &model.IsArchived,
	)
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// GetByID возвращает товар по идентификатору, включая архивные:
// проверка архивности остаётся на стороне бизнес-логики.
func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	model, err := scanProduct(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// List возвращает страницу каталога по фильтру. Архивные товары исключены.
func (p *ProductRepo) List(ctx context.Context, filter usecase.ProductFilter) ([]domain.Product, error) {
	var (
		conds = []string{"NOT is_archived"}
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Categories) > 0 {
		conds = append(conds, "category = ANY("+arg(filter.Categories)+")")
	}
	if filter.MinPriceCents != nil {
		conds = append(conds, effectivePriceExpr+" >= "+arg(*filter.MinPriceCents))
	}
	if filter.MaxPriceCents != nil {
		conds = append(conds, effectivePriceExpr+" <= "+arg(*filter.MaxPriceCents))
	}
	if filter.OnSale != nil {
		conds = append(conds, "on_sale = "+arg(*filter.OnSale))
	}
	if filter.InStockOnly {
		conds = append(conds, "stock > 0")
	}

	orderBy := "created_at DESC"
	switch filter.SortBy {
	case usecase.SortPriceAsc:
		orderBy = effectivePriceExpr + " ASC"
	case usecase.SortPriceDesc:
		orderBy = effectivePriceExpr + " DESC"
	case usecase.SortNewest:
		orderBy = "created_at DESC"
	}

	query := `SELECT ` + productColumns + `
		FROM products
		WHERE ` + strings.Join(conds, " AND ") + `
		ORDER BY ` + orderBy + `
		LIMIT ` + arg(filter.Limit) + ` OFFSET ` + arg(filter.Offset)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectProducts(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// Categories возвращает отсортированный список категорий живых товаров.
func (p *ProductRepo) Categories(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT category
		FROM products
		WHERE NOT is_archived AND category <> ''
		ORDER BY category
	`

	rows, err := p.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return categories, nil
}

// Search ищет живые товары по префиксу названия без учёта регистра.
func (p *ProductRepo) Search(ctx context.Context, term string, limit int) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + `
		FROM products
		WHERE NOT is_archived AND name ILIKE $1 || '%'
		ORDER BY name
		LIMIT $2`

	rows, err := p.pool.Query(ctx, query, term, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models, err := collectProducts(rows)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToArrEntity(models), nil
}

// Create добавляет товар в каталог.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	query := `
		INSERT INTO products (
			id, name, description, price, on_sale, sale_price,
			images, category, stock
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + productColumns

	created, err := scanProduct(p.pool.QueryRow(ctx, query,
		model.ID, model.Name, model.Description, model.Price,
		model.OnSale, model.SalePrice, model.Images,
		model.Category, model.Stock,
	))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(created), nil
}

// Update перезаписывает все редактируемые поля товара.
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := p.conv.ToModel(product)

	query := `
		UPDATE products SET
			name = $2,
			description = $3,
			price = $4,
			on_sale = $5,
			sale_price = $6,
			images = $7,
			category = $8,
			stock = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns

	updated, err := scanProduct(p.pool.QueryRow(ctx, query,
		model.ID, model.Name, model.Description, model.Price,
		model.OnSale, model.SalePrice, model.Images,
		model.Category, model.Stock,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(updated), nil
}

// Archive мягко удаляет товар: запись остаётся для истории заказов.
func (p *ProductRepo) Archive(ctx context.Context, id string) error {
	query := `
		UPDATE products
		SET is_archived = TRUE, updated_at = NOW()
		WHERE id = $1 AND NOT is_archived
	`

	result, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
	}

	return nil
}

func collectProducts(rows pgx.Rows) ([]*converter.ProductModel, error) {
	var models []*converter.ProductModel
	for rows.Next() {
		model, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, model)
	}

	return models, rows.Err()
}
