package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusProcessing, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusShipped, false},
		{StatusPending, StatusDelivered, false},
		{StatusProcessing, StatusShipped, true},
		{StatusProcessing, StatusCancelled, true},
		{StatusProcessing, StatusPending, false},
		{StatusShipped, StatusDelivered, true},
		{StatusShipped, StatusCancelled, false},
		{StatusDelivered, StatusShipped, false},
		{StatusCancelled, StatusDelivered, false},
		{StatusCancelled, StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestNewOrderFromCart_CopiesItemsAndTotal(t *testing.T) {
	cart := NewCart("user-1")
	cart.AddItem(CartItem{ProductID: "x", Name: "X", PriceCents: 999}, 3)

	ship := Address{Street: "s", City: "c", PostalCode: "p", Country: "RU"}
	bill := Address{Street: "b", City: "c", PostalCode: "p", Country: "RU"}

	order := NewOrderFromCart("order-1", cart, ship, bill, nil)

	require.Len(t, order.Items, 1)
	assert.Equal(t, "x", order.Items[0].ProductID)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, int64(999), order.Items[0].PriceCents)
	assert.Equal(t, int64(2997), order.TotalCents)
	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, PaymentPending, order.PaymentStatus)
	assert.Equal(t, ship, order.ShippingAddress)
	assert.Equal(t, bill, order.BillingAddress)

	// заказ хранит копию, последующие изменения корзины его не трогают
	cart.Clear()
	assert.Len(t, order.Items, 1)
	assert.Equal(t, int64(2997), order.TotalCents)
}

func TestNewOrderFromCart_WithPaymentID(t *testing.T) {
	cart := NewCart("user-1")
	cart.AddItem(CartItem{ProductID: "x", PriceCents: 1000}, 1)

	paymentID := "pi_123"
	order := NewOrderFromCart("order-1", cart, Address{}, Address{}, &paymentID)

	assert.Equal(t, PaymentPaid, order.PaymentStatus)
	require.NotNil(t, order.PaymentID)
	assert.Equal(t, "pi_123", *order.PaymentID)
}

func TestAddressValidate(t *testing.T) {
	valid := Address{Street: "s", City: "c", PostalCode: "p", Country: "RU"}
	assert.NoError(t, valid.Validate())

	assert.Error(t, Address{City: "c", PostalCode: "p", Country: "RU"}.Validate())
	assert.Error(t, Address{}.Validate())
}

func TestProductEffectivePrice(t *testing.T) {
	sale := int64(800)

	p := Product{PriceCents: 1000}
	assert.Equal(t, int64(1000), p.EffectivePriceCents())

	p.SalePriceCents = &sale
	assert.Equal(t, int64(1000), p.EffectivePriceCents(), "sale price ignored without the flag")

	p.OnSale = true
	assert.Equal(t, int64(800), p.EffectivePriceCents())

	p.SalePriceCents = nil
	assert.Equal(t, int64(1000), p.EffectivePriceCents(), "flag without sale price falls back")
}
