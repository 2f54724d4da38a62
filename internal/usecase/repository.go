package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront/internal/domain"
)

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, term string, limit int) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Archive(ctx context.Context, id string) error
}

// CartRepository — порт хранилища корзин. Ленивое создание пустой корзины
// выражено явной операцией GetOrCreate, чтобы тесты могли различать
// создание и чтение. GetForUpdate и Save требуют транзакции в контексте:
// мутация корзины выполняется строго как атомарный read-modify-write
// под блокировкой строки.
type CartRepository interface {
	GetOrCreate(ctx context.Context, userID string) (cart *domain.Cart, created bool, err error)
	GetForUpdate(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context, userID string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	GetForUpdate(ctx context.Context, id string) (*domain.Order, error)
	SetStatus(ctx context.Context, id string, status domain.OrderStatus) error
	ListForUser(ctx context.Context, userID string) ([]domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
}

// PaymentEventRepository — журнал обработанных платёжных событий.
// Insert возвращает false, если событие с таким EventID уже записано:
// так редьюсер распознаёт повторную доставку до каких-либо эффектов.
type PaymentEventRepository interface {
	Insert(ctx context.Context, event *domain.PaymentEvent) (inserted bool, err error)
}

type UserRepository interface {
	Upsert(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	SetAdmin(ctx context.Context, id string, isAdmin bool) error
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []string) (map[string]domain.Product, error)
	SetProducts(ctx context.Context, products []domain.Product) error
	DeleteProducts(ctx context.Context, ids []string) error
}
