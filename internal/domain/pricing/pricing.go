// internal/domain/pricing/pricing.go
package pricing

import "github.com/your-org/storefront-api/internal/domain/catalog"

// Tier classifies a customer for pricing purposes
type Tier string

const (
	TierRetail    Tier = "retail"
	TierWholesale Tier = "wholesale"
)

// ResolveUnitPrice returns the unit price that applies to the given
// quantity and customer tier. The wholesale price applies only when the
// customer is wholesale-eligible, the product carries a wholesale price,
// and the quantity meets the minimum threshold (inclusive). It must be
// re-evaluated whenever quantity or tier changes; crossing the threshold
// changes the applicable price.
func ResolveUnitPrice(product *catalog.Product, quantity int, tier Tier) int64 {
	if tier == TierWholesale && product.WholesalePrice != nil && quantity >= product.WholesaleMinQty {
		return *product.WholesalePrice
	}
	return product.Price
}
