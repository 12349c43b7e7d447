// internal/domain/review/service_test.go
package review

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-api/internal/domain/account"
	"github.com/your-org/storefront-api/internal/remotestore"
)

// fakeGateway serves canned query results per table and records creates.
type fakeGateway struct {
	results   map[string][]remotestore.Record
	created   []remotestore.Record
	createErr error
}

func (f *fakeGateway) Create(_ context.Context, _ string, record remotestore.Record) (remotestore.Record, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := remotestore.Record{"id": "r1"}
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

func (f *fakeGateway) Delete(_ context.Context, _ string, _ remotestore.Filter) error {
	return nil
}

func newService(gateway *fakeGateway) *Service {
	return NewService(gateway, account.NewService(gateway))
}

func TestAdd(t *testing.T) {
	t.Run("stores the review with the reviewer name attached", func(t *testing.T) {
		gateway := &fakeGateway{
			results: map[string][]remotestore.Record{
				"profiles": {{"id": "cust-1", "full_name": "Aisha Namutebi"}},
			},
		}
		service := newService(gateway)

		created, err := service.Add(context.Background(), "cust-1", "p1", 4, "Good value")

		require.NoError(t, err)
		assert.Equal(t, "p1", created.ProductID)
		assert.Equal(t, 4, created.Rating)
		assert.Equal(t, "Aisha Namutebi", created.ReviewerName)
		require.Len(t, gateway.created, 1)
	})

	t.Run("rejects out-of-range ratings without touching the store", func(t *testing.T) {
		gateway := &fakeGateway{}
		service := newService(gateway)

		for _, rating := range []int{0, -1, 6} {
			_, err := service.Add(context.Background(), "cust-1", "p1", rating, "")
			require.Error(t, err)
		}
		assert.Empty(t, gateway.created)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		gateway := &fakeGateway{createErr: errors.New("store unavailable")}
		service := newService(gateway)

		_, err := service.Add(context.Background(), "cust-1", "p1", 5, "")

		require.Error(t, err)
	})
}

func TestListForProduct(t *testing.T) {
	gateway := &fakeGateway{
		results: map[string][]remotestore.Record{
			"reviews": {
				{"id": "r1", "product_id": "p1", "user_id": "cust-1", "rating": float64(5), "comment": "Excellent"},
				{"id": "r2", "product_id": "p1", "user_id": "cust-gone", "rating": float64(3)},
			},
			"profiles": {
				{"id": "cust-1", "full_name": "Aisha Namutebi"},
			},
		},
	}
	service := newService(gateway)

	reviews, err := service.ListForProduct(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Aisha Namutebi", reviews[0].ReviewerName)
	// A review whose profile no longer resolves keeps its rating but
	// carries no name.
	assert.Equal(t, 3, reviews[1].Rating)
	assert.Empty(t, reviews[1].ReviewerName)
}
