package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type CatalogUC interface {
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	SearchProducts(ctx context.Context, term string, limit int) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req *SaveProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id string, req *SaveProductReq) (*domain.Product, error)
	ArchiveProduct(ctx context.Context, id string) error
}

type CartUC interface {
	Get(ctx context.Context, identity string) (*domain.Cart, error)
	AddItem(ctx context.Context, identity, productID string, quantity int) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, identity, productID string, quantity int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, identity, productID string) (*domain.Cart, error)
	Clear(ctx context.Context, identity string) (*domain.Cart, error)
}

type OrderUC interface {
	CreateFromCart(ctx context.Context, req *CheckoutReq) (*domain.Order, error)
	GetByID(ctx context.Context, requester Requester, orderID string) (*domain.Order, error)
	ListForUser(ctx context.Context, identity string) ([]domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, orderID string, next domain.OrderStatus) (*domain.Order, error)
}

// PaymentUC — редьюсер платёжных событий. Вызывается с уже верифицированным
// уведомлением; идемпотентен по EventID.
type PaymentUC interface {
	HandleEvent(ctx context.Context, event *domain.PaymentEvent) error
}

type UserUC interface {
	EnsureUser(ctx context.Context, id, email, displayName string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}
