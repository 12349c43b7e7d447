// internal/remotestore/postgres/store.go
package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/your-org/storefront-api/internal/remotestore"
	"gorm.io/gorm"
)

// Store implements the remote store gateway against a local Postgres
// database. It is used in development so the storefront can run without
// the hosted backend; ids are generated client-side since gorm map
// inserts have no returning clause to rely on.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Postgres-backed gateway
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a single record and returns it with its generated id
func (s *Store) Create(ctx context.Context, table string, record remotestore.Record) (remotestore.Record, error) {
	row := withGeneratedFields(record)
	if err := s.db.WithContext(ctx).Table(table).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return row, nil
}

// CreateBatch inserts multiple records in a single call
func (s *Store) CreateBatch(ctx context.Context, table string, records []remotestore.Record) ([]remotestore.Record, error) {
	if len(records) == 0 {
		return []remotestore.Record{}, nil
	}

	rows := make([]map[string]any, len(records))
	for i, record := range records {
		rows[i] = withGeneratedFields(record)
	}

	if err := s.db.WithContext(ctx).Table(table).Create(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to insert batch into %s: %w", table, err)
	}

	created := make([]remotestore.Record, len(rows))
	for i, row := range rows {
		created[i] = row
	}
	return created, nil
}

// Query retrieves records matching the filter
func (s *Store) Query(ctx context.Context, table string, filter remotestore.Filter, page remotestore.Page) ([]remotestore.Record, error) {
	query := s.db.WithContext(ctx).Table(table)

	for column, value := range filter {
		query = query.Where(fmt.Sprintf("%s = ?", column), value)
	}

	if page.OrderBy != "" {
		direction := "asc"
		if page.Descending {
			direction = "desc"
		}
		query = query.Order(fmt.Sprintf("%s %s", page.OrderBy, direction))
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}
	if page.Offset > 0 {
		query = query.Offset(page.Offset)
	}

	var rows []map[string]any
	if err := query.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}

	records := make([]remotestore.Record, len(rows))
	for i, row := range rows {
		records[i] = row
	}
	return records, nil
}

// Update applies changes to all records matching the filter
func (s *Store) Update(ctx context.Context, table string, filter remotestore.Filter, changes remotestore.Record) error {
	query := s.db.WithContext(ctx).Table(table)
	for column, value := range filter {
		query = query.Where(fmt.Sprintf("%s = ?", column), value)
	}
	if err := query.Updates(map[string]any(changes)).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}

// Delete removes all records matching the filter
func (s *Store) Delete(ctx context.Context, table string, filter remotestore.Filter) error {
	conditions := make([]string, 0, len(filter))
	args := make([]any, 0, len(filter))
	for column, value := range filter {
		conditions = append(conditions, fmt.Sprintf("%s = ?", column))
		args = append(args, value)
	}

	sql := "DELETE FROM " + table
	if len(conditions) > 0 {
		sql += " WHERE " + strings.Join(conditions, " AND ")
	}

	if err := s.db.WithContext(ctx).Exec(sql, args...).Error; err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

// Health verifies the database connection
func (s *Store) Health(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("database connection error: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

func withGeneratedFields(record remotestore.Record) map[string]any {
	row := make(map[string]any, len(record)+2)
	for key, value := range record {
		row[key] = value
	}
	if _, ok := row["id"]; !ok {
		row["id"] = uuid.NewString()
	}
	if _, ok := row["created_at"]; !ok {
		row["created_at"] = time.Now().UTC()
	}
	return row
}
