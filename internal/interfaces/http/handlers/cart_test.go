// internal/interfaces/http/handlers/cart_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-api/internal/domain/account"
	"github.com/your-org/storefront-api/internal/domain/catalog"
	"github.com/your-org/storefront-api/internal/infrastructure/storage"
	"github.com/your-org/storefront-api/internal/remotestore"
)

func cartRouter(gateway *fakeGateway, kv storage.KV) *gin.Engine {
	gin.SetMode(gin.TestMode)

	catalogService := catalog.NewService(gateway)
	accountService := account.NewService(gateway)
	handler := NewCartHandler(kv, catalogService, accountService, testLogger())

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("customer_id", "cust-1")
	})
	router.GET("/cart", handler.GetCart)
	router.POST("/cart/items", handler.AddToCart)
	router.PUT("/cart/items/:id", handler.UpdateCartItem)
	router.DELETE("/cart/items/:id", handler.RemoveFromCart)
	router.DELETE("/cart", handler.ClearCart)
	return router
}

type cartResponse struct {
	Data struct {
		Items       []json.RawMessage `json:"items"`
		TotalItems  int               `json:"total_items"`
		TotalAmount int64             `json:"total_amount"`
		Tier        string            `json:"tier"`
	} `json:"data"`
}

func decodeCart(t *testing.T, body []byte) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.Unmarshal(body, &resp))
	return resp
}

func TestGetCart_Empty(t *testing.T) {
	router := cartRouter(&fakeGateway{}, newMemoryKV())

	recorder := performRequest(router, http.MethodGet, "/cart", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder.Body.Bytes())
	assert.Empty(t, resp.Data.Items)
	assert.Zero(t, resp.Data.TotalItems)
	assert.Equal(t, "retail", resp.Data.Tier)
}

func TestAddToCart(t *testing.T) {
	gateway := &fakeGateway{
		results: map[string][]remotestore.Record{
			"products": {
				{"id": "p1", "title": "Sugar 1kg", "price": float64(4500), "stock": float64(100)},
			},
		},
	}

	t.Run("adds and totals", func(t *testing.T) {
		router := cartRouter(gateway, newMemoryKV())

		recorder := performRequest(router, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":2}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		resp := decodeCart(t, recorder.Body.Bytes())
		assert.Equal(t, 2, resp.Data.TotalItems)
		assert.Equal(t, int64(9000), resp.Data.TotalAmount)
	})

	t.Run("unknown product", func(t *testing.T) {
		router := cartRouter(&fakeGateway{}, newMemoryKV())

		recorder := performRequest(router, http.MethodPost, "/cart/items", `{"product_id":"missing","quantity":1}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})

	t.Run("zero quantity fails binding", func(t *testing.T) {
		router := cartRouter(gateway, newMemoryKV())

		recorder := performRequest(router, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":0}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestUpdateAndRemoveCartItem(t *testing.T) {
	gateway := &fakeGateway{
		results: map[string][]remotestore.Record{
			"products": {
				{"id": "p1", "title": "Sugar 1kg", "price": float64(4500), "stock": float64(100)},
			},
		},
	}
	kv := newMemoryKV()
	router := cartRouter(gateway, kv)

	performRequest(router, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":2}`)

	// Setting quantity to zero removes the line.
	recorder := performRequest(router, http.MethodPut, "/cart/items/p1", `{"quantity":0}`)
	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder.Body.Bytes())
	assert.Empty(t, resp.Data.Items)

	performRequest(router, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":3}`)

	recorder = performRequest(router, http.MethodDelete, "/cart/items/p1", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	resp = decodeCart(t, recorder.Body.Bytes())
	assert.Empty(t, resp.Data.Items)
}

func TestClearCart(t *testing.T) {
	gateway := &fakeGateway{
		results: map[string][]remotestore.Record{
			"products": {
				{"id": "p1", "title": "Sugar 1kg", "price": float64(4500), "stock": float64(100)},
			},
		},
	}
	kv := newMemoryKV()
	router := cartRouter(gateway, kv)

	performRequest(router, http.MethodPost, "/cart/items", `{"product_id":"p1","quantity":2}`)

	recorder := performRequest(router, http.MethodDelete, "/cart", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	resp := decodeCart(t, recorder.Body.Bytes())
	assert.Empty(t, resp.Data.Items)
	assert.Zero(t, resp.Data.TotalItems)
}
