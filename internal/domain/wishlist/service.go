// internal/domain/wishlist/service.go
package wishlist

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/remotestore"
)

const wishlistTable = "wishlist"

// Item is one saved product on a customer's wishlist
type Item struct {
	ID        string           `json:"id"`
	ProductID string           `json:"product_id"`
	Product   *catalog.Product `json:"product,omitempty"`
	CreatedAt time.Time        `json:"created_at,omitempty"`
}

// Service handles wishlist reads and writes against the remote store
type Service struct {
	gateway remotestore.Gateway
	catalog *catalog.Service
}

// NewService creates a new wishlist service
func NewService(gateway remotestore.Gateway, catalogService *catalog.Service) *Service {
	return &Service{
		gateway: gateway,
		catalog: catalogService,
	}
}

// Add saves a product to the customer's wishlist
func (s *Service) Add(ctx context.Context, customerID, productID string) (*Item, error) {
	// Adding twice should not duplicate the entry
	existing, err := s.gateway.Query(ctx, wishlistTable, remotestore.Filter{
		"user_id":    customerID,
		"product_id": productID,
	}, remotestore.Page{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to check wishlist: %w", err)
	}
	if len(existing) > 0 {
		item, err := remotestore.Decode[Item](existing[0])
		if err != nil {
			return nil, err
		}
		return &item, nil
	}

	created, err := s.gateway.Create(ctx, wishlistTable, remotestore.Record{
		"user_id":    customerID,
		"product_id": productID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to add to wishlist: %w", err)
	}

	item, err := remotestore.Decode[Item](created)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Remove deletes a product from the customer's wishlist
func (s *Service) Remove(ctx context.Context, customerID, productID string) error {
	err := s.gateway.Delete(ctx, wishlistTable, remotestore.Filter{
		"user_id":    customerID,
		"product_id": productID,
	})
	if err != nil {
		return fmt.Errorf("failed to remove from wishlist: %w", err)
	}
	return nil
}

// List retrieves the customer's wishlist with product details attached.
// Products that no longer resolve are returned without details rather
// than dropped.
func (s *Service) List(ctx context.Context, customerID string) ([]Item, error) {
	records, err := s.gateway.Query(ctx, wishlistTable, remotestore.Filter{"user_id": customerID}, remotestore.Page{
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve wishlist: %w", err)
	}

	items, err := remotestore.DecodeAll[Item](records)
	if err != nil {
		return nil, err
	}

	for i := range items {
		product, err := s.catalog.GetProduct(ctx, items[i].ProductID)
		if err != nil {
			continue
		}
		items[i].Product = product
	}

	return items, nil
}
