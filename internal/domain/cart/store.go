// internal/domain/cart/store.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/domain/pricing"
	"github.com/your-org/storefront-api/internal/infrastructure/storage"
)

const keyPrefix = "cart:customer:"

// Store is the single source of truth for one customer's pending
// purchase intent. It holds the cart in memory, rehydrates from durable
// local storage on load, and rewrites the full serialized cart after
// every mutation. Storage write failures are logged and swallowed so the
// in-memory cart stays usable for the session.
type Store struct {
	kv         storage.KV
	logger     *logrus.Logger
	customerID string
	cart       Cart
}

// Load builds a store for the given customer, rehydrating any previously
// saved cart. A missing or corrupt blob yields an empty cart, never an
// error.
func Load(ctx context.Context, kv storage.KV, logger *logrus.Logger, customerID string) *Store {
	store := &Store{
		kv:         kv,
		logger:     logger,
		customerID: customerID,
		cart:       Cart{Items: []Line{}},
	}

	data, err := kv.Get(ctx, store.key())
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.WithError(err).WithField("customer_id", customerID).
				Warn("Failed to load saved cart, starting empty")
		}
		return store
	}

	var saved Cart
	if err := json.Unmarshal([]byte(data), &saved); err != nil {
		logger.WithError(err).WithField("customer_id", customerID).
			Warn("Saved cart is corrupt, starting empty")
		return store
	}
	if saved.Items == nil {
		saved.Items = []Line{}
	}
	store.cart = saved

	return store
}

// AddItem adds quantity of a product to the cart. If a line for the
// product already exists its quantity is incremented; otherwise a new
// line is appended. Available stock is not checked here.
func (s *Store) AddItem(ctx context.Context, product catalog.Product, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("quantity must be at least 1")
	}

	merged := false
	for i := range s.cart.Items {
		if s.cart.Items[i].Product.ID == product.ID {
			s.cart.Items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.cart.Items = append(s.cart.Items, Line{Product: product, Quantity: quantity})
	}

	s.persist(ctx)
	return nil
}

// UpdateQuantity sets the quantity of an existing line. A quantity of
// zero or less removes the line. Unknown product ids are a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.RemoveItem(ctx, productID)
		return
	}

	for i := range s.cart.Items {
		if s.cart.Items[i].Product.ID == productID {
			s.cart.Items[i].Quantity = quantity
			s.persist(ctx)
			return
		}
	}
}

// RemoveItem deletes the line for the product if present
func (s *Store) RemoveItem(ctx context.Context, productID string) {
	for i := range s.cart.Items {
		if s.cart.Items[i].Product.ID == productID {
			s.cart.Items = append(s.cart.Items[:i], s.cart.Items[i+1:]...)
			s.persist(ctx)
			return
		}
	}
}

// Clear empties the cart, after a successful checkout or an explicit
// clear action
func (s *Store) Clear(ctx context.Context) {
	s.cart.Items = []Line{}
	s.persist(ctx)
}

// Items returns a copy of the cart lines
func (s *Store) Items() []Line {
	items := make([]Line, len(s.cart.Items))
	copy(items, s.cart.Items)
	return items
}

// TotalItems returns the sum of all line quantities
func (s *Store) TotalItems() int {
	total := 0
	for _, line := range s.cart.Items {
		total += line.Quantity
	}
	return total
}

// TotalAmount returns the cart total for the given customer tier. Unit
// prices are resolved on every call, never cached, since tier or
// quantities may have changed since the last read.
func (s *Store) TotalAmount(tier pricing.Tier) int64 {
	var total int64
	for _, line := range s.cart.Items {
		total += pricing.ResolveUnitPrice(&line.Product, line.Quantity, tier) * int64(line.Quantity)
	}
	return total
}

func (s *Store) key() string {
	return keyPrefix + s.customerID
}

// persist rewrites the whole cart after a mutation. Failures never block
// the in-memory operation.
func (s *Store) persist(ctx context.Context) {
	s.cart.UpdatedAt = time.Now().UTC()

	data, err := json.Marshal(s.cart)
	if err != nil {
		s.logger.WithError(err).WithField("customer_id", s.customerID).
			Error("Failed to serialize cart")
		return
	}

	if err := s.kv.Set(ctx, s.key(), string(data)); err != nil {
		s.logger.WithError(err).WithField("customer_id", s.customerID).
			Warn("Failed to persist cart, keeping in-memory state")
	}
}
