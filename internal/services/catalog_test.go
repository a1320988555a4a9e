package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/oakline/storefront/internal/config"
	appErrors "github.com/oakline/storefront/internal/errors"
	service "github.com/oakline/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Returns Full Catalog", func(t *testing.T) {
		catalogService := service.NewCatalogService(service.Deterministic{})

		products, err := catalogService.ListProducts(ctx)

		require.NoError(t, err)
		assert.Len(t, products, 12)
		assert.Equal(t, "modern-oak-bench", products[0].Slug)
	})

	t.Run("Failure - Transient Error", func(t *testing.T) {
		catalogService := service.NewCatalogService(service.AlwaysFail{})

		products, err := catalogService.ListProducts(ctx)

		require.Error(t, err)
		assert.Nil(t, products)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnavailable, appErr.Code)
		assert.Equal(t, "Temporary error - please try again", appErr.Message)
	})

	t.Run("Failure - Context Cancelled", func(t *testing.T) {
		catalogService := service.NewCatalogService(service.Deterministic{})

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := catalogService.ListProducts(cancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestGetProductBySlug(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Known Slug", func(t *testing.T) {
		catalogService := service.NewCatalogService(service.Deterministic{})

		product, err := catalogService.GetProductBySlug(ctx, "marble-coasters")

		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "prod_007", product.ID)
	})

	t.Run("Miss - Unknown Slug Is Not Found, Not Transient", func(t *testing.T) {
		catalogService := service.NewCatalogService(service.Deterministic{})

		product, err := catalogService.GetProductBySlug(ctx, "no-such-product")

		require.Error(t, err)
		assert.Nil(t, product)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Failure - Transient Error", func(t *testing.T) {
		catalogService := service.NewCatalogService(service.AlwaysFail{})

		_, err := catalogService.GetProductBySlug(ctx, "marble-coasters")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnavailable, appErr.Code)
	})
}

func simCfg(rate float64) *config.Simulation {
	return &config.Simulation{FailureRate: rate}
}

func TestSimulationPolicyWait(t *testing.T) {
	t.Run("Success - Honours Cancellation Mid-Delay", func(t *testing.T) {
		policy := service.NewSimulationPolicy(simCfg(0.0))

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := policy.Wait(ctx, 5*time.Second, 10*time.Second)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.Less(t, time.Since(start), time.Second)
	})

	t.Run("Success - Zero Failure Rate Never Fails", func(t *testing.T) {
		policy := service.NewSimulationPolicy(simCfg(0.0))

		for range 100 {
			assert.False(t, policy.ShouldFail())
		}
	})

	t.Run("Success - Full Failure Rate Always Fails", func(t *testing.T) {
		policy := service.NewSimulationPolicy(simCfg(1.0))

		for range 100 {
			assert.True(t, policy.ShouldFail())
		}
	})
}
