package converter

type ProductRedisModel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	OnSale      bool     `json:"on_sale"`
	SalePrice   *int64   `json:"sale_price,omitempty"`
	Images      []string `json:"images,omitempty"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	IsArchived  bool     `json:"is_archived"`
}
