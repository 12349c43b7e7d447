// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/storefront-api/internal/domain/catalog"
)

// Line is one product with its requested quantity. The product is a
// snapshot taken when the line was created; quantity is always >= 1.
type Line struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is the serialized form persisted to durable local storage: the
// ordered set of lines, at most one per product id.
type Cart struct {
	Items     []Line    `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}
