package http

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// ProductResponse — товар в ответах API. Цены отдаются и в центах,
// и отформатированной строкой для витрины.
type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Price       string   `json:"price"`
	OnSale      bool     `json:"on_sale"`
	SalePrice   *string  `json:"sale_price,omitempty"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	InStock     bool     `json:"in_stock"`
	CreatedAt   string   `json:"created_at"`
}

type CartItemResponse struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
	Total      string             `json:"total"`
	UpdatedAt  string             `json:"updated_at"`
}

type AddressBody struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type OrderItemResponse struct {
	ProductID  string `json:"product_id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
}

type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          string              `json:"user_id"`
	Items           []OrderItemResponse `json:"items"`
	TotalCents      int64               `json:"total_cents"`
	Total           string              `json:"total"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	PaymentID       *string             `json:"payment_id,omitempty"`
	ShippingAddress AddressBody         `json:"shipping_address"`
	BillingAddress  AddressBody         `json:"billing_address"`
	CreatedAt       string              `json:"created_at"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
	CreatedAt   string `json:"created_at"`
}

func toProductResponse(p *domain.Product) *ProductResponse {
	resp := &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Price:       centsToPrice(p.PriceCents),
		OnSale:      p.OnSale,
		Images:      p.Images,
		Category:    p.Category,
		Stock:       p.Stock,
		InStock:     p.InStock(),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}

	if p.OnSale && p.SalePriceCents != nil {
		sale := centsToPrice(*p.SalePriceCents)
		resp.SalePrice = &sale
	}

	return resp
}

func toProductListResponse(products []domain.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for i := range products {
		resp = append(resp, *toProductResponse(&products[i]))
	}

	return resp
}

func toCartResponse(c *domain.Cart) *CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, CartItemResponse{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Image:      it.Image,
			PriceCents: it.PriceCents,
			Price:      centsToPrice(it.PriceCents),
			Quantity:   it.Quantity,
		})
	}

	return &CartResponse{
		Items:      items,
		TotalCents: c.TotalCents,
		Total:      centsToPrice(c.TotalCents),
		UpdatedAt:  c.UpdatedAt.Format(time.RFC3339),
	}
}

func toOrderResponse(o *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Image:      it.Image,
			PriceCents: it.PriceCents,
			Price:      centsToPrice(it.PriceCents),
			Quantity:   it.Quantity,
		})
	}

	return &OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		TotalCents:      o.TotalCents,
		Total:           centsToPrice(o.TotalCents),
		Status:          string(o.Status),
		PaymentStatus:   string(o.PaymentStatus),
		PaymentID:       o.PaymentID,
		ShippingAddress: toAddressBody(o.ShippingAddress),
		BillingAddress:  toAddressBody(o.BillingAddress),
		CreatedAt:       o.CreatedAt.Format(time.RFC3339),
	}
}

func toOrderListResponse(orders []domain.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, *toOrderResponse(&orders[i]))
	}

	return resp
}

func toAddressBody(a domain.Address) AddressBody {
	return AddressBody{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

func (b AddressBody) toDomain() domain.Address {
	return domain.Address{
		Street:     b.Street,
		City:       b.City,
		State:      b.State,
		PostalCode: b.PostalCode,
		Country:    b.Country,
	}
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		IsAdmin:     u.IsAdmin,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}
