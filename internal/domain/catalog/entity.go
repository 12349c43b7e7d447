// internal/domain/catalog/entity.go
package catalog

import "time"

// Product is the read-only product snapshot served by the remote store.
// Prices are integer amounts in the smallest currency unit. A wholesale
// price, when present, always comes with a minimum quantity threshold.
type Product struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Price           int64     `json:"price"`
	WholesalePrice  *int64    `json:"wholesale_price,omitempty"`
	WholesaleMinQty int       `json:"wholesale_min_qty,omitempty"`
	Stock           int       `json:"stock"`
	CategoryID      string    `json:"category_id,omitempty"`
	ImageURL        string    `json:"image_url,omitempty"`
	IsFeatured      bool      `json:"is_featured,omitempty"`
	IsTrending      bool      `json:"is_trending,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// Category represents a product category
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Promotion represents a time-bound storefront banner
type Promotion struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	ImageURL  string    `json:"image_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}
