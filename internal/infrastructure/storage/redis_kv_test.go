// internal/infrastructure/storage/redis_kv_test.go
package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisKV_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored value", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("cart:customer:cust-1").SetVal(`{"items":[]}`)
		kv := NewRedisKV(client)

		value, err := kv.Get(ctx, "cart:customer:cust-1")

		require.NoError(t, err)
		assert.Equal(t, `{"items":[]}`, value)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps a missing key to ErrNotFound", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("cart:customer:cust-1").RedisNil()
		kv := NewRedisKV(client)

		_, err := kv.Get(ctx, "cart:customer:cust-1")

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("passes other errors through", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mock.ExpectGet("cart:customer:cust-1").SetErr(errors.New("connection refused"))
		kv := NewRedisKV(client)

		_, err := kv.Get(ctx, "cart:customer:cust-1")

		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestRedisKV_Set(t *testing.T) {
	client, mock := redismock.NewClientMock()
	// No expiration: a saved cart lives until removed.
	mock.ExpectSet("cart:customer:cust-1", `{"items":[]}`, 0).SetVal("OK")
	kv := NewRedisKV(client)

	err := kv.Set(context.Background(), "cart:customer:cust-1", `{"items":[]}`)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisKV_Remove(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectDel("cart:customer:cust-1").SetVal(1)
	kv := NewRedisKV(client)

	err := kv.Remove(context.Background(), "cart:customer:cust-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
