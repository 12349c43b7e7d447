// internal/remotestore/gateway.go
package remotestore

import "context"

// Record is a single row exchanged with the remote store.
type Record = map[string]any

// Filter holds equality conditions applied to a query, keyed by column name.
type Filter map[string]any

// Page controls query pagination and ordering.
type Page struct {
	Limit      int
	Offset     int
	OrderBy    string
	Descending bool
}

// Gateway is the key-based interface the remote data store exposes to the
// client. The store owns ids; Create returns the record with its generated
// id filled in. There is no multi-statement transaction across calls, so
// callers that write dependent records must handle partial failure
// themselves.
type Gateway interface {
	Create(ctx context.Context, table string, record Record) (Record, error)
	CreateBatch(ctx context.Context, table string, records []Record) ([]Record, error)
	Query(ctx context.Context, table string, filter Filter, page Page) ([]Record, error)
	Update(ctx context.Context, table string, filter Filter, changes Record) error
	Delete(ctx context.Context, table string, filter Filter) error
}
