// internal/domain/wishlist/service_test.go
package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/remotestore"
)

// fakeGateway serves canned query results per table and records writes.
type fakeGateway struct {
	results     map[string][]remotestore.Record
	created     []remotestore.Record
	lastDeleted remotestore.Filter
}

func (f *fakeGateway) Create(_ context.Context, _ string, record remotestore.Record) (remotestore.Record, error) {
	created := remotestore.Record{"id": "w1"}
	for k, v := range record {
		created[k] = v
	}
	f.created = append(f.created, created)
	return created, nil
}

func (f *fakeGateway) CreateBatch(_ context.Context, _ string, records []remotestore.Record) ([]remotestore.Record, error) {
	return records, nil
}

func (f *fakeGateway) Query(_ context.Context, table string, filter remotestore.Filter, _ remotestore.Page) ([]remotestore.Record, error) {
	if id, ok := filter["id"]; ok {
		var matched []remotestore.Record
		for _, record := range f.results[table] {
			if record["id"] == id {
				matched = append(matched, record)
			}
		}
		return matched, nil
	}
	return f.results[table], nil
}

func (f *fakeGateway) Update(_ context.Context, _ string, _ remotestore.Filter, _ remotestore.Record) error {
	return nil
}

func (f *fakeGateway) Delete(_ context.Context, _ string, filter remotestore.Filter) error {
	f.lastDeleted = filter
	return nil
}

func TestAdd(t *testing.T) {
	t.Run("creates a new entry", func(t *testing.T) {
		gateway := &fakeGateway{results: map[string][]remotestore.Record{}}
		service := NewService(gateway, catalog.NewService(gateway))

		item, err := service.Add(context.Background(), "cust-1", "p1")

		require.NoError(t, err)
		assert.Equal(t, "p1", item.ProductID)
		require.Len(t, gateway.created, 1)
	})

	t.Run("adding twice does not duplicate", func(t *testing.T) {
		gateway := &fakeGateway{
			results: map[string][]remotestore.Record{
				"wishlist": {{"id": "w1", "user_id": "cust-1", "product_id": "p1"}},
			},
		}
		service := NewService(gateway, catalog.NewService(gateway))

		item, err := service.Add(context.Background(), "cust-1", "p1")

		require.NoError(t, err)
		assert.Equal(t, "w1", item.ID)
		assert.Empty(t, gateway.created)
	})
}

func TestRemove(t *testing.T) {
	gateway := &fakeGateway{results: map[string][]remotestore.Record{}}
	service := NewService(gateway, catalog.NewService(gateway))

	err := service.Remove(context.Background(), "cust-1", "p1")

	require.NoError(t, err)
	assert.Equal(t, remotestore.Filter{"user_id": "cust-1", "product_id": "p1"}, gateway.lastDeleted)
}

func TestList(t *testing.T) {
	gateway := &fakeGateway{
		results: map[string][]remotestore.Record{
			"wishlist": {
				{"id": "w1", "product_id": "p1"},
				{"id": "w2", "product_id": "p-deleted"},
			},
			"products": {
				{"id": "p1", "title": "Cooking Oil 5L", "price": float64(120000)},
			},
		},
	}
	service := NewService(gateway, catalog.NewService(gateway))

	items, err := service.List(context.Background(), "cust-1")

	require.NoError(t, err)
	require.Len(t, items, 2)
	require.NotNil(t, items[0].Product)
	assert.Equal(t, "Cooking Oil 5L", items[0].Product.Title)
	// An entry whose product no longer resolves stays on the list
	// without details.
	assert.Nil(t, items[1].Product)
}
