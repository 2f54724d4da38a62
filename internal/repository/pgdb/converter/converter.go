//go:generate goverter gen github.com/DRSN-tech/storefront/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/usecase"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	// goverter:map Price PriceCents
	// goverter:map SalePrice SalePriceCents
	ToEntity(model *ProductModel) *domain.Product
	// goverter:map PriceCents Price
	// goverter:map SalePriceCents SalePrice
	ToModel(entity *domain.Product) *ProductModel
	ToArrEntity(models []*ProductModel) []domain.Product
}

// CartConverter преобразует сущности Cart между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type CartConverter interface {
	// goverter:map Total TotalCents
	ToEntity(model *CartModel) *domain.Cart
	// goverter:map TotalCents Total
	ToModel(entity *domain.Cart) *CartModel
}

// OrderConverter преобразует сущности Order между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOrderStatus
// goverter:extend ConvertPaymentStatus
type OrderConverter interface {
	// goverter:map Total TotalCents
	ToEntity(model *OrderModel) *domain.Order
	// goverter:map TotalCents Total
	ToModel(entity *domain.Order) *OrderModel
	ToArrEntity(models []*OrderModel) []domain.Order
}

// UserConverter преобразует сущности User между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type UserConverter interface {
	ToEntity(model *UserModel) *domain.User
	ToModel(entity *domain.User) *UserModel
	ToArrEntity(models []*UserModel) []domain.User
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

func ConvertOrderStatus(s string) domain.OrderStatus {
	return domain.OrderStatus(s)
}

func ConvertPaymentStatus(s string) domain.PaymentStatus {
	return domain.PaymentStatus(s)
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) usecase.OutboxStatus {
	return s
}

func ConvertOutboxEventType(t usecase.OutboxEventType) usecase.OutboxEventType {
	return t
}
