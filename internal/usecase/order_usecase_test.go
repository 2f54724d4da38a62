package usecase

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAddress() domain.Address {
	return domain.Address{
		Street:     "12 Pottery Lane",
		City:       "Portland",
		PostalCode: "97201",
		Country:    "US",
	}
}

func seededCart(userID string) *domain.Cart {
	return &domain.Cart{
		UserID: userID,
		Items: []domain.CartItem{
			{ProductID: "p1", Name: "Ceramic Mug", PriceCents: 1000, Quantity: 2},
			{ProductID: "p2", Name: "Espresso Cup", PriceCents: 500, Quantity: 1},
		},
		TotalCents: 2500,
	}
}

func newOrderUC(
	orderRepo *mockOrderRepository,
	cartRepo *mockCartRepository,
	outboxRepo *mockOutboxRepository,
) *OrderUseCase {
	return NewOrderUC(orderRepo, cartRepo, outboxRepo, &fakePool{}, testStoreCfg(), logger.Discard{})
}

func TestCheckoutMaterializesCartVerbatim(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(seededCart("user-1"))
	orderRepo := newMockOrderRepository()
	outboxRepo := &mockOutboxRepository{}

	uc := newOrderUC(orderRepo, cartRepo, outboxRepo)

	order, err := uc.CreateFromCart(context.Background(), &CheckoutReq{
		Identity:        "user-1",
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	require.NoError(t, err)

	assert.Equal(t, "user-1", order.UserID)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, domain.PaymentPending, order.PaymentStatus)
	assert.Equal(t, int64(2500), order.TotalCents)
	require.Len(t, order.Items, 2)
	assert.Equal(t, "p1", order.Items[0].ProductID)
	assert.Equal(t, 2, order.Items[0].Quantity)

	// корзина очищена после успешного оформления
	assert.True(t, cartRepo.stored("user-1").IsEmpty())

	// событие записано в outbox в той же транзакции
	events := outboxRepo.all()
	require.Len(t, events, 1)
	assert.Equal(t, OrderCreated, events[0].EventType)
	assert.Equal(t, order.ID, events[0].OrderID)

	var payload OrderEventPayload
	require.NoError(t, json.Unmarshal(events[0].Payload, &payload))
	assert.Equal(t, int64(2500), payload.TotalCents)
	assert.Equal(t, domain.StatusPending, payload.NewStatus)
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(&domain.Cart{UserID: "user-1", Items: []domain.CartItem{}})
	orderRepo := newMockOrderRepository()
	outboxRepo := &mockOutboxRepository{}

	uc := newOrderUC(orderRepo, cartRepo, outboxRepo)

	_, err := uc.CreateFromCart(context.Background(), &CheckoutReq{
		Identity:        "user-1",
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	assert.ErrorIs(t, err, e.ErrEmptyCart)
	assert.Zero(t, orderRepo.count())
	assert.Empty(t, outboxRepo.all())
}

func TestCheckoutIncompleteAddressRejected(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(seededCart("user-1"))

	uc := newOrderUC(newMockOrderRepository(), cartRepo, &mockOutboxRepository{})

	addr := testAddress()
	addr.City = ""

	_, err := uc.CreateFromCart(context.Background(), &CheckoutReq{
		Identity:        "user-1",
		ShippingAddress: addr,
		BillingAddress:  testAddress(),
	})
	assert.ErrorIs(t, err, e.ErrAddressIncomplete)

	// корзина не тронута
	assert.False(t, cartRepo.stored("user-1").IsEmpty())
}

func TestCheckoutRequiresIdentity(t *testing.T) {
	uc := newOrderUC(newMockOrderRepository(), newMockCartRepository(), &mockOutboxRepository{})

	_, err := uc.CreateFromCart(context.Background(), &CheckoutReq{
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	assert.ErrorIs(t, err, e.ErrNotAuthenticated)
}

// Сбой очистки корзины не компрометирует созданный заказ.
func TestCheckoutSurvivesCartClearFailure(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(seededCart("user-1"))
	cartRepo.clearErr = context.DeadlineExceeded
	orderRepo := newMockOrderRepository()

	uc := newOrderUC(orderRepo, cartRepo, &mockOutboxRepository{})

	order, err := uc.CreateFromCart(context.Background(), &CheckoutReq{
		Identity:        "user-1",
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 1, orderRepo.count())

	// корзина осталась несвежей, это допустимое состояние саги
	assert.False(t, cartRepo.stored("user-1").IsEmpty())
}

func TestGetOrderHidesForeignOrders(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(seededCart("owner"))
	orderRepo := newMockOrderRepository()

	uc := newOrderUC(orderRepo, cartRepo, &mockOutboxRepository{})

	order, err := uc.CreateFromCart(context.Background(), &CheckoutReq{
		Identity:        "owner",
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	require.NoError(t, err)

	// владелец видит заказ
	got, err := uc.GetByID(context.Background(), Requester{UserID: "owner"}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)

	// чужой заказ неотличим от несуществующего
	_, err = uc.GetByID(context.Background(), Requester{UserID: "stranger"}, order.ID)
	assert.ErrorIs(t, err, e.ErrOrderNotFound)

	// администратор видит любой заказ
	got, err = uc.GetByID(context.Background(), Requester{UserID: "stranger", IsAdmin: true}, order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
}

func TestUpdateStatusForwardTransition(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(seededCart("user-1"))
	orderRepo := newMockOrderRepository()
	outboxRepo := &mockOutboxRepository{}

	uc := newOrderUC(orderRepo, cartRepo, outboxRepo)

	order, err := uc.CreateFromCart(context.Background(), &CheckoutReq{
		Identity:        "user-1",
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	require.NoError(t, err)

	updated, err := uc.UpdateStatus(context.Background(), order.ID, domain.StatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusProcessing, updated.Status)

	events := outboxRepo.all()
	require.Len(t, events, 2)
	assert.Equal(t, OrderStatusChanged, events[1].EventType)

	var payload OrderEventPayload
	require.NoError(t, json.Unmarshal(events[1].Payload, &payload))
	assert.Equal(t, domain.StatusPending, payload.OldStatus)
	assert.Equal(t, domain.StatusProcessing, payload.NewStatus)
}

func TestUpdateStatusRejectsBackwardTransition(t *testing.T) {
	cartRepo := newMockCartRepository()
	cartRepo.seed(seededCart("user-1"))
	orderRepo := newMockOrderRepository()

	uc := newOrderUC(orderRepo, cartRepo, &mockOutboxRepository{})

	order, err := uc.CreateFromCart(context.Background(), &CheckoutReq{
		Identity:        "user-1",
		ShippingAddress: testAddress(),
		BillingAddress:  testAddress(),
	})
	require.NoError(t, err)

	// pending -> cancelled допустим
	_, err = uc.UpdateStatus(context.Background(), order.ID, domain.StatusCancelled)
	require.NoError(t, err)

	// cancelled -> delivered запрещён
	_, err = uc.UpdateStatus(context.Background(), order.ID, domain.StatusDelivered)
	assert.ErrorIs(t, err, e.ErrInvalidTransition)

	got, err := orderRepo.GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, got.Status, "rejected transition must not change stored status")
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	uc := newOrderUC(newMockOrderRepository(), newMockCartRepository(), &mockOutboxRepository{})

	_, err := uc.UpdateStatus(context.Background(), "order-1", domain.OrderStatus("teleported"))
	assert.ErrorIs(t, err, e.ErrInvalidTransition)
}

func TestUpdateStatusUnknownOrder(t *testing.T) {
	uc := newOrderUC(newMockOrderRepository(), newMockCartRepository(), &mockOutboxRepository{})

	_, err := uc.UpdateStatus(context.Background(), "ghost", domain.StatusProcessing)
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestListRecentClampsLimit(t *testing.T) {
	cartRepo := newMockCartRepository()
	orderRepo := newMockOrderRepository()
	uc := newOrderUC(orderRepo, cartRepo, &mockOutboxRepository{})

	orders, err := uc.ListRecent(context.Background(), -5)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
