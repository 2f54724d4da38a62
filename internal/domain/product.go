package domain

import "time"

// Product описывает товар каталога
type Product struct {
	ID             string
	Name           string
	Description    string
	PriceCents     int64 // Цена хранится в центах
	OnSale         bool
	SalePriceCents *int64
	Images         []string
	Category       string
	Stock          int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	IsArchived     bool
}

func NewProduct(id, name, description string, priceCents int64, category string) *Product {
	return &Product{
		ID:          id,
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		Category:    category,
	}
}

// EffectivePriceCents возвращает действующую цену: цену распродажи,
// если товар на распродаже и она задана, иначе обычную цену.
func (p *Product) EffectivePriceCents() int64 {
	if p.OnSale && p.SalePriceCents != nil {
		return *p.SalePriceCents
	}
	return p.PriceCents
}

// InStock сообщает, есть ли товар в наличии.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// MainImage возвращает первое изображение товара либо пустую строку.
func (p *Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}
