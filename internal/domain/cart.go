package domain

import (
	"time"

	"github.com/DRSN-tech/storefront/pkg/e"
)

// CartItem — одна позиция корзины: товар, количество и снапшот цены/названия
// на момент добавления. Живой ссылки на товар позиция не хранит.
type CartItem struct {
	ProductID  string
	Name       string
	Image      string
	PriceCents int64
	Quantity   int
}

// Cart — корзина покупателя, ровно одна на идентичность.
// Инвариант: не более одной позиции на товар; TotalCents всегда
// пересчитывается из позиций и никогда не накапливается инкрементально.
type Cart struct {
	UserID     string
	Items      []CartItem
	TotalCents int64
	UpdatedAt  time.Time
}

func NewCart(userID string) *Cart {
	return &Cart{UserID: userID}
}

// AddItem добавляет позицию либо увеличивает количество существующей.
// Цена позиции при повторном добавлении перезаписывается текущей действующей
// ценой товара — «последнее добавление выигрывает». Это сознательное
// поведение, а не побочный эффект.
func (c *Cart) AddItem(snapshot CartItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	for i := range c.Items {
		if c.Items[i].ProductID == snapshot.ProductID {
			c.Items[i].Quantity += quantity
			c.Items[i].PriceCents = snapshot.PriceCents
			c.Items[i].Name = snapshot.Name
			c.Items[i].Image = snapshot.Image
			c.recomputeTotal()
			return
		}
	}

	snapshot.Quantity = quantity
	c.Items = append(c.Items, snapshot)
	c.recomputeTotal()
}

// UpdateQuantity устанавливает количество позиции точно (не аддитивно).
// Количество <= 0 эквивалентно удалению позиции.
func (c *Cart) UpdateQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.recomputeTotal()
			return nil
		}
	}

	return e.ErrItemNotFound
}

// RemoveItem удаляет позицию; отсутствие позиции — не ошибка.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.recomputeTotal()
			return
		}
	}
}

// Clear опустошает корзину.
func (c *Cart) Clear() {
	c.Items = nil
	c.TotalCents = 0
}

// IsEmpty сообщает, пуста ли корзина.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) recomputeTotal() {
	var total int64
	for _, item := range c.Items {
		total += item.PriceCents * int64(item.Quantity)
	}
	c.TotalCents = total
}
