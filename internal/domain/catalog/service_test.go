// internal/domain/catalog/service_test.go
package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-api/internal/remotestore"
)

// fakeGateway serves canned query results per table and records the last
// filter and page it was asked for.
type fakeGateway struct {
	results    map[string][]remotestore.Record
	queryErr   error
	lastTable  string
	lastFilter remotestore.Filter
	lastPage   remotestore.Page
}

func (f *fakeGateway) Create(_ context.Context, _ string, record remotestore.Record) (remotestore.Record, error) {
	return record, nil
}

func (f *fakeGateway) CreateBatch(_ context.Context, _ string, records []remotestore.Record) ([]remotestore.Record, error) {
	return records, nil
}

func (f *fakeGateway) Query(_ context.Context, table string, filter remotestore.Filter, page remotestore.Page) ([]remotestore.Record, error) {
	f.lastTable = table
	f.lastFilter = filter
	f.lastPage = page
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	return f.results[table], nil
}

func (f *fakeGateway) Update(_ context.Context, _ string, _ remotestore.Filter, _ remotestore.Record) error {
	return nil
}

func (f *fakeGateway) Delete(_ context.Context, _ string, _ remotestore.Filter) error {
	return nil
}

func TestListProducts(t *testing.T) {
	gateway := &fakeGateway{
		results: map[string][]remotestore.Record{
			"products": {
				{"id": "p1", "title": "Cooking Oil 5L", "price": float64(120000), "stock": float64(40)},
				{"id": "p2", "title": "Sugar 1kg", "price": float64(4500), "stock": float64(200)},
			},
		},
	}
	service := NewService(gateway)

	products, err := service.ListProducts(context.Background(), 20, 0, "")

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, int64(120000), products[0].Price)
	assert.Equal(t, 200, products[1].Stock)

	// Newest first, paging pushed down to the store.
	assert.Equal(t, "created_at", gateway.lastPage.OrderBy)
	assert.True(t, gateway.lastPage.Descending)
	assert.Equal(t, 20, gateway.lastPage.Limit)
}

func TestListProducts_CategoryScope(t *testing.T) {
	gateway := &fakeGateway{results: map[string][]remotestore.Record{}}
	service := NewService(gateway)

	_, err := service.ListProducts(context.Background(), 0, 0, "cat-7")

	require.NoError(t, err)
	assert.Equal(t, remotestore.Filter{"category_id": "cat-7"}, gateway.lastFilter)
	// A non-positive limit falls back to the default page size.
	assert.Equal(t, 20, gateway.lastPage.Limit)
}

func TestGetProduct(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		gateway := &fakeGateway{
			results: map[string][]remotestore.Record{
				"products": {
					{"id": "p1", "title": "Cooking Oil 5L", "price": float64(120000), "wholesale_price": float64(95000), "wholesale_min_qty": float64(10)},
				},
			},
		}
		service := NewService(gateway)

		product, err := service.GetProduct(context.Background(), "p1")

		require.NoError(t, err)
		require.NotNil(t, product.WholesalePrice)
		assert.Equal(t, int64(95000), *product.WholesalePrice)
		assert.Equal(t, 10, product.WholesaleMinQty)
	})

	t.Run("not found", func(t *testing.T) {
		gateway := &fakeGateway{results: map[string][]remotestore.Record{}}
		service := NewService(gateway)

		product, err := service.GetProduct(context.Background(), "missing")

		require.Error(t, err)
		assert.Nil(t, product)
	})

	t.Run("store failure", func(t *testing.T) {
		gateway := &fakeGateway{queryErr: errors.New("store unavailable")}
		service := NewService(gateway)

		_, err := service.GetProduct(context.Background(), "p1")

		require.Error(t, err)
	})
}

func TestFeaturedAndTrendingProducts(t *testing.T) {
	gateway := &fakeGateway{results: map[string][]remotestore.Record{}}
	service := NewService(gateway)

	_, err := service.FeaturedProducts(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, remotestore.Filter{"is_featured": true}, gateway.lastFilter)
	assert.Equal(t, 10, gateway.lastPage.Limit)

	_, err = service.TrendingProducts(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, remotestore.Filter{"is_trending": true}, gateway.lastFilter)
	assert.Equal(t, 5, gateway.lastPage.Limit)
}

func TestActivePromotions(t *testing.T) {
	now := time.Now().UTC()
	gateway := &fakeGateway{
		results: map[string][]remotestore.Record{
			"promotions": {
				{
					"id":         "promo-live",
					"title":      "Back to School",
					"is_active":  true,
					"start_date": now.Add(-24 * time.Hour).Format(time.RFC3339),
					"end_date":   now.Add(24 * time.Hour).Format(time.RFC3339),
				},
				{
					"id":         "promo-expired",
					"title":      "Easter Sale",
					"is_active":  true,
					"start_date": now.Add(-96 * time.Hour).Format(time.RFC3339),
					"end_date":   now.Add(-48 * time.Hour).Format(time.RFC3339),
				},
				{
					"id":         "promo-upcoming",
					"title":      "Christmas Sale",
					"is_active":  true,
					"start_date": now.Add(48 * time.Hour).Format(time.RFC3339),
					"end_date":   now.Add(96 * time.Hour).Format(time.RFC3339),
				},
			},
		},
	}
	service := NewService(gateway)

	promotions, err := service.ActivePromotions(context.Background())

	require.NoError(t, err)
	// The store filters on the active flag; the date window is applied
	// client-side.
	assert.Equal(t, remotestore.Filter{"is_active": true}, gateway.lastFilter)
	require.Len(t, promotions, 1)
	assert.Equal(t, "promo-live", promotions[0].ID)
}
