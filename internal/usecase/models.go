package usecase

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// CART / ORDER USECASE

// Requester — контекст запрашивающего для операций с владением.
type Requester struct {
	UserID  string
	IsAdmin bool
}

// CheckoutReq — запрос на оформление заказа из корзины.
type CheckoutReq struct {
	Identity        string
	ShippingAddress domain.Address
	BillingAddress  domain.Address
	PaymentID       *string
}

// CATALOG USECASE

// Сортировки каталога.
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNewest    = "newest"
)

// ProductFilter — фильтр листинга каталога.
type ProductFilter struct {
	Categories    []string
	MinPriceCents *int64
	MaxPriceCents *int64
	OnSale        *bool
	InStockOnly   bool
	SortBy        string
	Limit         int
	Offset        int
}

// SaveProductReq — запрос на создание/обновление товара (админ).
type SaveProductReq struct {
	Name           string
	Description    string
	PriceCents     int64
	OnSale         bool
	SalePriceCents *int64
	Images         []string
	Category       string
	Stock          int
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderCreated       OutboxEventType = "order.created"
	OrderStatusChanged OutboxEventType = "order.status_changed"
)

// OutboxEvent — запись outbox: доменное событие, записанное в той же
// транзакции, что и породившее его изменение, и позже отправленное в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     string
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// OrderEventPayload — JSON-тело событий заказа в Kafka.
type OrderEventPayload struct {
	EventID    string             `json:"event_id"`
	EventType  OutboxEventType    `json:"event_type"`
	OrderID    string             `json:"order_id"`
	UserID     string             `json:"user_id"`
	TotalCents int64              `json:"total_cents"`
	OldStatus  domain.OrderStatus `json:"old_status,omitempty"`
	NewStatus  domain.OrderStatus `json:"new_status"`
	OccurredAt time.Time          `json:"occurred_at"`
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID string
	Payload []byte
}

// MAPPERS

func NewOutboxEvent(eventID string, eventType OutboxEventType, orderID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   orderID,
		Payload:   payload,
		Status:    Pending,
	}
}

func NewWriteRawMessageReq(orderID string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}

func NewCheckoutReq(identity string, shipping, billing domain.Address, paymentID *string) *CheckoutReq {
	return &CheckoutReq{
		Identity:        identity,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		PaymentID:       paymentID,
	}
}
