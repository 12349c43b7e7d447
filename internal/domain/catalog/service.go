// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/your-org/storefront-api/internal/remotestore"
)

const (
	productsTable   = "products"
	categoriesTable = "categories"
	promotionsTable = "promotions"
)

// Service handles catalog reads. All querying, filtering and pagination
// is delegated to the remote store; this service only shapes results.
type Service struct {
	gateway remotestore.Gateway
}

// NewService creates a new catalog service
func NewService(gateway remotestore.Gateway) *Service {
	return &Service{gateway: gateway}
}

// ListProducts retrieves products, newest first, optionally scoped to a category
func (s *Service) ListProducts(ctx context.Context, limit, offset int, categoryID string) ([]Product, error) {
	if limit <= 0 {
		limit = 20
	}

	filter := remotestore.Filter{}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}

	records, err := s.gateway.Query(ctx, productsTable, filter, remotestore.Page{
		Limit:      limit,
		Offset:     offset,
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return remotestore.DecodeAll[Product](records)
}

// GetProduct retrieves a single product by id
func (s *Service) GetProduct(ctx context.Context, id string) (*Product, error) {
	records, err := s.gateway.Query(ctx, productsTable, remotestore.Filter{"id": id}, remotestore.Page{Limit: 1})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("product %s not found", id)
	}

	product, err := remotestore.Decode[Product](records[0])
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FeaturedProducts retrieves products flagged for the storefront banner
func (s *Service) FeaturedProducts(ctx context.Context, limit int) ([]Product, error) {
	return s.flaggedProducts(ctx, "is_featured", limit)
}

// TrendingProducts retrieves products flagged as trending
func (s *Service) TrendingProducts(ctx context.Context, limit int) ([]Product, error) {
	return s.flaggedProducts(ctx, "is_trending", limit)
}

// Categories retrieves all categories ordered by name
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	records, err := s.gateway.Query(ctx, categoriesTable, nil, remotestore.Page{OrderBy: "name"})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return remotestore.DecodeAll[Category](records)
}

// ActivePromotions retrieves promotions currently in their display window.
// The gateway only filters on equality, so the date window is applied here.
func (s *Service) ActivePromotions(ctx context.Context) ([]Promotion, error) {
	records, err := s.gateway.Query(ctx, promotionsTable, remotestore.Filter{"is_active": true}, remotestore.Page{
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve promotions: %w", err)
	}

	promotions, err := remotestore.DecodeAll[Promotion](records)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	active := make([]Promotion, 0, len(promotions))
	for _, promotion := range promotions {
		if promotion.StartDate.After(now) || promotion.EndDate.Before(now) {
			continue
		}
		active = append(active, promotion)
	}
	return active, nil
}

func (s *Service) flaggedProducts(ctx context.Context, flag string, limit int) ([]Product, error) {
	if limit <= 0 {
		limit = 10
	}

	records, err := s.gateway.Query(ctx, productsTable, remotestore.Filter{flag: true}, remotestore.Page{
		Limit:      limit,
		OrderBy:    "created_at",
		Descending: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return remotestore.DecodeAll[Product](records)
}
