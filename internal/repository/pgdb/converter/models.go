package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	OnSale      bool       `db:"on_sale"`
	SalePrice   *int64     `db:"sale_price"`
	Images      []string   `db:"images"`
	Category    string     `db:"category"`
	Stock       int        `db:"stock"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
	IsArchived  bool       `db:"is_archived"`
}

// CartItemModel — позиция корзины внутри JSONB-колонки items.
type CartItemModel struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartModel представляет запись таблицы carts в PostgreSQL.
// Позиции хранятся одним JSONB-документом: корзина читается и
// перезаписывается целиком.
type CartModel struct {
	UserID    string          `db:"user_id"`
	Items     []CartItemModel `db:"items"`
	Total     int64           `db:"total"`
	UpdatedAt time.Time       `db:"updated_at"`
}

// AddressModel — адрес внутри JSONB-колонок заказа.
type AddressModel struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderItemModel — позиция заказа внутри JSONB-колонки items.
type OrderItemModel struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID              string           `db:"id"`
	UserID          string           `db:"user_id"`
	Items           []OrderItemModel `db:"items"`
	Total           int64            `db:"total"`
	Status          string           `db:"status"`
	PaymentStatus   string           `db:"payment_status"`
	PaymentID       *string          `db:"payment_id"`
	ShippingAddress AddressModel     `db:"shipping_address"`
	BillingAddress  AddressModel     `db:"billing_address"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID          string     `db:"id"`
	Email       string     `db:"email"`
	DisplayName string     `db:"display_name"`
	IsAdmin     bool       `db:"is_admin"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	OrderID     string     `db:"order_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
