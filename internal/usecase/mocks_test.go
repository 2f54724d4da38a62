package usecase

import (
	"context"
	"sync"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/tr"
	"github.com/jackc/pgx/v5"
)

// fakeTx — минимальная транзакция для тестов. Встроенный pgx.Tx остаётся
// nil: фейковые репозитории не обращаются к соединению.
type fakeTx struct {
	pgx.Tx

	mu         sync.Mutex
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rolledBack = true
	return nil
}

// fakePool реализует transaction.Transactional поверх fakeTx.
type fakePool struct {
	mu     sync.Mutex
	begun  int
	lastTx *fakeTx
}

func (p *fakePool) BeginTx(_ context.Context, _ pgx.TxOptions) (pgx.Tx, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.begun++
	p.lastTx = &fakeTx{}
	return p.lastTx, nil
}

func (p *fakePool) beginCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.begun
}

// requireTx проверяет, что репозиторий вызван внутри транзакции.
func requireTx(ctx context.Context) error {
	_, err := tr.TxFromCtx(ctx)
	return err
}

type mockProductRepository struct {
	mu       sync.Mutex
	products map[string]domain.Product
	getErr   error
	getCalls int
}

func newMockProductRepository(products ...domain.Product) *mockProductRepository {
	m := &mockProductRepository{products: make(map[string]domain.Product)}
	for _, p := range products {
		m.products[p.ID] = p
	}
	return m
}

func (m *mockProductRepository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	if m.getErr != nil {
		return nil, m.getErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}
	return &p, nil
}

func (m *mockProductRepository) List(_ context.Context, filter ProductFilter) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (m *mockProductRepository) Categories(_ context.Context) ([]string, error) {
	return []string{"mugs", "shirts"}, nil
}

func (m *mockProductRepository) Search(_ context.Context, term string, limit int) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	return nil, nil
}

func (m *mockProductRepository) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.products[product.ID] = *product
	return product, nil
}

func (m *mockProductRepository) Update(_ context.Context, product *domain.Product) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[product.ID]; !ok {
		return nil, e.ErrProductNotFound
	}
	m.products[product.ID] = *product
	return product, nil
}

func (m *mockProductRepository) Archive(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return e.ErrProductNotFound
	}
	p.IsArchived = true
	m.products[id] = p
	return nil
}

// mockCartRepository хранит корзины в памяти. При locking=true блокировка
// строки моделируется мьютексом на пользователя: GetForUpdate захватывает,
// Save отпускает. Включается только в тестах конкурентных мутаций, где
// между чтением и записью не должно вклиниться другое чтение.
type mockCartRepository struct {
	mu       sync.Mutex
	carts    map[string]*domain.Cart
	rowLocks map[string]*sync.Mutex
	locking  bool

	saveErrs []error // очередь ошибок, отдаваемых Save до успешных записей
	clearErr error
}

func newMockCartRepository() *mockCartRepository {
	return &mockCartRepository{
		carts:    make(map[string]*domain.Cart),
		rowLocks: make(map[string]*sync.Mutex),
	}
}

func (m *mockCartRepository) rowLock(userID string) *sync.Mutex {
	if _, ok := m.rowLocks[userID]; !ok {
		m.rowLocks[userID] = &sync.Mutex{}
	}
	return m.rowLocks[userID]
}

func (m *mockCartRepository) snapshot(userID string) *domain.Cart {
	if cart, ok := m.carts[userID]; ok {
		cp := *cart
		cp.Items = append([]domain.CartItem(nil), cart.Items...)
		return &cp
	}
	return &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
}

func (m *mockCartRepository) GetOrCreate(_ context.Context, userID string) (*domain.Cart, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.carts[userID]; ok {
		return m.snapshot(userID), false, nil
	}
	m.carts[userID] = &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	return m.snapshot(userID), true, nil
}

func (m *mockCartRepository) GetForUpdate(ctx context.Context, userID string) (*domain.Cart, error) {
	if err := requireTx(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	locking := m.locking
	lock := m.rowLock(userID)
	m.mu.Unlock()

	if locking {
		lock.Lock()
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(userID), nil
}

func (m *mockCartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	locking := m.locking
	lock := m.rowLock(cart.UserID)

	if len(m.saveErrs) > 0 {
		err := m.saveErrs[0]
		m.saveErrs = m.saveErrs[1:]
		m.mu.Unlock()
		if locking {
			lock.Unlock()
		}
		return err
	}

	cp := *cart
	cp.Items = append([]domain.CartItem(nil), cart.Items...)
	m.carts[cart.UserID] = &cp
	m.mu.Unlock()
	if locking {
		lock.Unlock()
	}
	return nil
}

func (m *mockCartRepository) Clear(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.clearErr != nil {
		return m.clearErr
	}
	m.carts[userID] = &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	return nil
}

// seed кладёт корзину в хранилище в обход блокировок.
func (m *mockCartRepository) seed(cart *domain.Cart) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.carts[cart.UserID] = cart
}

func (m *mockCartRepository) stored(userID string) *domain.Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot(userID)
}

type mockOrderRepository struct {
	mu      sync.Mutex
	orders  map[string]*domain.Order
	created []string
}

func newMockOrderRepository() *mockOrderRepository {
	return &mockOrderRepository{orders: make(map[string]*domain.Order)}
}

func (m *mockOrderRepository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if err := requireTx(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *order
	m.orders[order.ID] = &cp
	m.created = append(m.created, order.ID)
	return order, nil
}

func (m *mockOrderRepository) GetByID(_ context.Context, id string) (*domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return nil, e.ErrOrderNotFound
	}
	cp := *order
	return &cp, nil
}

func (m *mockOrderRepository) GetForUpdate(ctx context.Context, id string) (*domain.Order, error) {
	if err := requireTx(ctx); err != nil {
		return nil, err
	}
	return m.GetByID(ctx, id)
}

func (m *mockOrderRepository) SetStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	if err := requireTx(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	order, ok := m.orders[id]
	if !ok {
		return e.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func (m *mockOrderRepository) ListForUser(_ context.Context, userID string) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			out = append(out, *order)
		}
	}
	return out, nil
}

func (m *mockOrderRepository) ListRecent(_ context.Context, limit int) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Order
	for _, order := range m.orders {
		out = append(out, *order)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *mockOrderRepository) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type mockPaymentEventRepository struct {
	mu   sync.Mutex
	seen map[string]*domain.PaymentEvent
}

func newMockPaymentEventRepository() *mockPaymentEventRepository {
	return &mockPaymentEventRepository{seen: make(map[string]*domain.PaymentEvent)}
}

func (m *mockPaymentEventRepository) Insert(ctx context.Context, event *domain.PaymentEvent) (bool, error) {
	if err := requireTx(ctx); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.seen[event.EventID]; ok {
		return false, nil
	}
	m.seen[event.EventID] = event
	return true, nil
}

type mockOutboxRepository struct {
	mu     sync.Mutex
	events []*OutboxEvent
}

func (m *mockOutboxRepository) Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error) {
	if err := requireTx(ctx); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	event.ID = int64(len(m.events) + 1)
	m.events = append(m.events, event)
	return event, nil
}

func (m *mockOutboxRepository) GetAndMarkAsProcessing(_ context.Context, limit int) ([]*OutboxEvent, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*OutboxEvent
	for _, ev := range m.events {
		if ev.Status == Pending {
			ev.Status = Processing
			out = append(out, ev)
			if len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (m *mockOutboxRepository) MarkAsProcessed(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ev := range m.events {
		if ev.ID == id {
			ev.Status = Processed
			return nil
		}
	}
	return nil
}

func (m *mockOutboxRepository) all() []*OutboxEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*OutboxEvent(nil), m.events...)
}

type mockUserRepository struct {
	mu    sync.Mutex
	users map[string]*domain.User
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*domain.User)}
}

func (m *mockUserRepository) Upsert(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.users[user.ID]; ok {
		existing.Email = user.Email
		existing.DisplayName = user.DisplayName
		cp := *existing
		return &cp, nil
	}
	cp := *user
	m.users[user.ID] = &cp
	return user, nil
}

func (m *mockUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return nil, e.ErrUserNotFound
	}
	cp := *user
	return &cp, nil
}

func (m *mockUserRepository) List(_ context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.User
	for _, user := range m.users {
		out = append(out, *user)
	}
	return out, nil
}

func (m *mockUserRepository) SetAdmin(_ context.Context, id string, isAdmin bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.users[id]
	if !ok {
		return e.ErrUserNotFound
	}
	user.IsAdmin = isAdmin
	return nil
}

type mockCacheRepository struct {
	mu       sync.Mutex
	products map[string]domain.Product
	getCalls int
	setCalls int
	delCalls int
}

func newMockCacheRepository() *mockCacheRepository {
	return &mockCacheRepository{products: make(map[string]domain.Product)}
}

func (m *mockCacheRepository) GetProducts(_ context.Context, ids []string) (map[string]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getCalls++
	out := make(map[string]domain.Product)
	for _, id := range ids {
		if p, ok := m.products[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

func (m *mockCacheRepository) SetProducts(_ context.Context, products []domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setCalls++
	for _, p := range products {
		m.products[p.ID] = p
	}
	return nil
}

func (m *mockCacheRepository) DeleteProducts(_ context.Context, ids []string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delCalls++
	for _, id := range ids {
		delete(m.products, id)
	}
	return nil
}
