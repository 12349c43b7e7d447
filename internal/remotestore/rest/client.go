// internal/remotestore/rest/client.go
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/your-org/storefront-api/internal/config"
	"github.com/your-org/storefront-api/internal/remotestore"
)

// Client talks to the hosted PostgREST-style remote store
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a remote store client from configuration
func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.RemoteStore.BaseURL, "/"),
		apiKey:  cfg.RemoteStore.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.RemoteStore.Timeout,
		},
	}
}

// Create inserts a single record and returns it with the generated id
func (c *Client) Create(ctx context.Context, table string, record remotestore.Record) (remotestore.Record, error) {
	created, err := c.insert(ctx, table, record)
	if err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("remote store returned no representation for insert into %s", table)
	}
	return created[0], nil
}

// CreateBatch inserts multiple records in a single call
func (c *Client) CreateBatch(ctx context.Context, table string, records []remotestore.Record) ([]remotestore.Record, error) {
	return c.insert(ctx, table, records)
}

// Query retrieves records matching the filter
func (c *Client) Query(ctx context.Context, table string, filter remotestore.Filter, page remotestore.Page) ([]remotestore.Record, error) {
	params := filterParams(filter)
	params.Set("select", "*")
	if page.OrderBy != "" {
		direction := "asc"
		if page.Descending {
			direction = "desc"
		}
		params.Set("order", page.OrderBy+"."+direction)
	}
	if page.Limit > 0 {
		params.Set("limit", strconv.Itoa(page.Limit))
	}
	if page.Offset > 0 {
		params.Set("offset", strconv.Itoa(page.Offset))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.tableURL(table)+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build query request: %w", err)
	}
	c.setHeaders(req)

	var records []remotestore.Record
	if err := c.do(req, &records); err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", table, err)
	}
	return records, nil
}

// Update applies changes to all records matching the filter
func (c *Client) Update(ctx context.Context, table string, filter remotestore.Filter, changes remotestore.Record) error {
	body, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("failed to encode update payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.tableURL(table)+"?"+filterParams(filter).Encode(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build update request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("failed to update %s: %w", table, err)
	}
	return nil
}

// Delete removes all records matching the filter
func (c *Client) Delete(ctx context.Context, table string, filter remotestore.Filter) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.tableURL(table)+"?"+filterParams(filter).Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}
	c.setHeaders(req)

	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

// Health verifies the remote store is reachable
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.baseURL+"/rest/v1/", nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("remote store unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("remote store unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) insert(ctx context.Context, table string, payload any) ([]remotestore.Record, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode insert payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tableURL(table), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build insert request: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	// Ask the store to echo the inserted rows so generated ids come back
	req.Header.Set("Prefer", "return=representation")

	var created []remotestore.Record
	if err := c.do(req, &created); err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	return created, nil
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("remote store returned status %d: %s", resp.StatusCode, truncate(string(respBody), 256))
	}

	if dest != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, dest); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) tableURL(table string) string {
	return c.baseURL + "/rest/v1/" + table
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
}

func filterParams(filter remotestore.Filter) url.Values {
	params := url.Values{}
	for column, value := range filter {
		params.Set(column, "eq."+fmt.Sprint(value))
	}
	return params
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
