//go:generate goverter gen github.com/DRSN-tech/storefront/internal/repository/redis/converter

package converter

import (
	"github.com/DRSN-tech/storefront/internal/domain"
)

// goverter:converter
type ProductConverter interface {
	// goverter:map PriceCents Price
	// goverter:map SalePriceCents SalePrice
	ToRedisModel(entity *domain.Product) *ProductRedisModel
	// goverter:map Price PriceCents
	// goverter:map SalePrice SalePriceCents
	// goverter:ignore CreatedAt UpdatedAt
	ToEntity(model *ProductRedisModel) *domain.Product
	ToArrRedisModel(entities []domain.Product) []ProductRedisModel
}
