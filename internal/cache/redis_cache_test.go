package cache_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/oakline/storefront/internal/cache"
	"github.com/oakline/storefront/internal/config"
	"github.com/oakline/storefront/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (cache.Cache, redismock.ClientMock) {
	t.Helper()

	client, mock := redismock.NewClientMock()
	cfg := &config.SessionCache{DefaultTTL: 24 * time.Hour}

	return cache.NewRedisCache(client, cfg), mock
}

func sampleOrder() models.Order {
	return models.Order{
		ID:       "f47ac10b-58cc-4372-a567-0e02b2c3d479",
		Number:   "F47AC10B",
		Email:    "jane@example.com",
		Subtotal: 4500,
		Shipping: 650,
		Total:    5150,
	}
}

func TestGet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.OrderKeyPrefix, "f47ac10b-58cc-4372-a567-0e02b2c3d479")
	order := sampleOrder()
	jsonData, err := json.Marshal(order)
	require.NoError(t, err)

	t.Run("Success - Key Found", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		var result models.Order

		mock.ExpectGet(key).SetVal(string(jsonData))

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, order, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Key Not Found (Cache Miss)", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		var result models.Order

		mock.ExpectGet(key).SetErr(redis.Nil)

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.NoError(t, err, "a miss is not an error")
		assert.False(t, found)
		assert.Empty(t, result)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		var result models.Order

		mock.ExpectGet(key).SetErr(errors.New("connection refused"))

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Corrupt Payload", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		var result models.Order

		mock.ExpectGet(key).SetVal("{not json")

		// Act
		found, err := redisCache.Get(ctx, key, &result)

		// Assert
		require.Error(t, err)
		assert.False(t, found)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSet(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.OrderKeyPrefix, "f47ac10b-58cc-4372-a567-0e02b2c3d479")
	order := sampleOrder()
	jsonData, err := json.Marshal(order)
	require.NoError(t, err)

	t.Run("Success - Explicit TTL", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		mock.ExpectSet(key, jsonData, time.Hour).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, order, time.Hour)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Zero TTL Falls Back To Default", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		mock.ExpectSet(key, jsonData, 24*time.Hour).SetVal("OK")

		// Act
		err := redisCache.Set(ctx, key, order, 0)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		mock.ExpectSet(key, jsonData, time.Hour).SetErr(errors.New("connection refused"))

		// Act
		err := redisCache.Set(ctx, key, order, time.Hour)

		// Assert
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Unmarshalable Value", func(t *testing.T) {
		// Arrange
		redisCache, _ := setup(t)

		// Act
		err := redisCache.Set(ctx, key, make(chan int), time.Hour)

		// Assert
		require.Error(t, err)
	})
}

func TestDelete(t *testing.T) {
	ctx := t.Context()
	key := cache.Key(cache.OrderKeyPrefix, "f47ac10b-58cc-4372-a567-0e02b2c3d479")

	t.Run("Success", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		mock.ExpectDel(key).SetVal(1)

		// Act
		err := redisCache.Delete(ctx, key)

		// Assert
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Redis Error", func(t *testing.T) {
		// Arrange
		redisCache, mock := setup(t)

		mock.ExpectDel(key).SetErr(errors.New("connection refused"))

		// Act
		err := redisCache.Delete(ctx, key)

		// Assert
		require.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "order_abc123", cache.Key(cache.OrderKeyPrefix, "abc123"))
}
