package domain

import (
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// OrderStatus — статус жизненного цикла заказа.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// allowedTransitions — единственные допустимые переходы статуса.
// Статус движется только вперёд; отмена возможна до отгрузки.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

// Valid сообщает, известен ли статус.
func (s OrderStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo проверяет допустимость перехода статуса.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus — статус оплаты заказа.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

// Address — почтовый адрес доставки или выставления счёта.
type Address struct {
	Street     string
	City       string
	State      string
	PostalCode string
	Country    string
}

// Validate проверяет заполненность обязательных полей адреса.
func (a Address) Validate() error {
	if a.Street == "" || a.City == "" || a.PostalCode == "" || a.Country == "" {
		return e.ErrAddressIncomplete
	}
	return nil
}

// OrderItem — позиция заказа, копия позиции корзины на момент оформления.
type OrderItem struct {
	ProductID  string
	Name       string
	Image      string
	PriceCents int64
	Quantity   int
}

// Order — заказ. Список позиций и сумма неизменяемы после создания,
// меняться могут только Status и PaymentStatus.
type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	TotalCents      int64
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	PaymentID       *string
	ShippingAddress Address
	BillingAddress  Address
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewOrderFromCart материализует заказ из снапшота корзины.
// Позиции и сумма копируются дословно, без повторной сверки с каталогом:
// цена зафиксирована на момент подсчёта корзины.
func NewOrderFromCart(id string, cart *Cart, shipping, billing Address, paymentID *string) *Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, OrderItem{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Image:      it.Image,
			PriceCents: it.PriceCents,
			Quantity:   it.Quantity,
		})
	}

	paymentStatus := PaymentPending
	if paymentID != nil {
		paymentStatus = PaymentPaid
	}

	return &Order{
		ID:              id,
		UserID:          cart.UserID,
		Items:           items,
		TotalCents:      cart.TotalCents,
		Status:          StatusPending,
		PaymentStatus:   paymentStatus,
		PaymentID:       paymentID,
		ShippingAddress: shipping,
		BillingAddress:  billing,
	}
}
