package service_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/google/go-cmp/cmp"
	"github.com/oakline/storefront/internal/cache"
	"github.com/oakline/storefront/internal/config"
	"github.com/oakline/storefront/internal/currency"
	appErrors "github.com/oakline/storefront/internal/errors"
	"github.com/oakline/storefront/internal/models"
	service "github.com/oakline/storefront/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func shippingCfg() *config.Shipping {
	return &config.Shipping{FreeThreshold: 5000, FlatRate: 650}
}

func checkoutRequest() *models.CheckoutRequest {
	return &models.CheckoutRequest{
		Email: "jane@example.com",
		ShippingAddress: models.Address{
			FirstName:  "Jane",
			LastName:   "Doe",
			Address1:   "1 Main St",
			City:       "Portland",
			Region:     "OR",
			PostalCode: "97201",
			Country:    "US",
		},
	}
}

func cartLines() []models.CartLine {
	return []models.CartLine{
		{
			ID:              "l1",
			ProductID:       "prod_007",
			Name:            "Marble Coasters",
			Price:           4500,
			Quantity:        1,
			Image:           "/products/coasters.svg",
			SelectedOptions: map[string]string{"color": "sage"},
		},
	}
}

func newOrderService(mirror cache.Cache) (service.OrderService, *service.OrderStore) {
	store := service.NewOrderStore(mirror, time.Hour)

	return service.NewOrderService(store, service.Deterministic{}, shippingCfg()), store
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Flat Shipping Below Threshold", func(t *testing.T) {
		orderService, _ := newOrderService(nil)

		order, err := orderService.CreateOrder(ctx, checkoutRequest(), cartLines(), 4500)

		require.NoError(t, err)
		assert.Equal(t, currency.Money(4500), order.Subtotal)
		assert.Equal(t, currency.Money(650), order.Shipping)
		assert.Equal(t, currency.Money(5150), order.Total)
	})

	t.Run("Success - Free Shipping At Threshold", func(t *testing.T) {
		orderService, _ := newOrderService(nil)

		lines := cartLines()
		lines[0].Price = 6000

		order, err := orderService.CreateOrder(ctx, checkoutRequest(), lines, 6000)

		require.NoError(t, err)
		assert.Equal(t, currency.Money(0), order.Shipping)
		assert.Equal(t, currency.Money(6000), order.Total)
	})

	t.Run("Success - Order Number Derived From ID", func(t *testing.T) {
		orderService, _ := newOrderService(nil)

		order, err := orderService.CreateOrder(ctx, checkoutRequest(), cartLines(), 4500)

		require.NoError(t, err)
		assert.NotEmpty(t, order.ID)
		assert.Len(t, order.Number, 8)
		assert.Equal(t, strings.ToUpper(order.ID[:8]), order.Number)
		assert.WithinDuration(t, time.Now(), order.CreatedAt, time.Second)
	})

	t.Run("Success - Lines Are A Value Snapshot", func(t *testing.T) {
		orderService, _ := newOrderService(nil)

		lines := cartLines()

		order, err := orderService.CreateOrder(ctx, checkoutRequest(), lines, 4500)
		require.NoError(t, err)

		// Mutating the live cart afterwards must not touch the order.
		lines[0].Quantity = 99
		lines[0].SelectedOptions["color"] = "rust"

		assert.Equal(t, 1, order.Lines[0].Quantity)
		assert.Equal(t, "sage", order.Lines[0].SelectedOptions["color"])
	})

	t.Run("Success - Strips Markup From Address", func(t *testing.T) {
		orderService, _ := newOrderService(nil)

		req := checkoutRequest()
		req.ShippingAddress.FirstName = "<b>Jane</b>"
		req.ShippingAddress.City = "Port<i>land</i>"

		order, err := orderService.CreateOrder(ctx, req, cartLines(), 4500)

		require.NoError(t, err)
		assert.Equal(t, "Jane", order.ShippingAddress.FirstName)
		assert.Equal(t, "Portland", order.ShippingAddress.City)
	})

	t.Run("Failure - Empty Cart", func(t *testing.T) {
		orderService, _ := newOrderService(nil)

		_, err := orderService.CreateOrder(ctx, checkoutRequest(), nil, 0)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
	})

	t.Run("Failure - Transient Error", func(t *testing.T) {
		store := service.NewOrderStore(nil, time.Hour)
		orderService := service.NewOrderService(store, service.AlwaysFail{}, shippingCfg())

		_, err := orderService.CreateOrder(ctx, checkoutRequest(), cartLines(), 4500)

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeUnavailable, appErr.Code)
	})
}

func TestGetOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Round Trip Returns Deep-Equal Order", func(t *testing.T) {
		orderService, _ := newOrderService(nil)

		created, err := orderService.CreateOrder(ctx, checkoutRequest(), cartLines(), 4500)
		require.NoError(t, err)

		fetched, err := orderService.GetOrder(ctx, created.ID)

		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(created, fetched))
	})

	t.Run("Miss - Unknown ID", func(t *testing.T) {
		orderService, _ := newOrderService(nil)

		_, err := orderService.GetOrder(ctx, "unknown-id")

		appErr, ok := appErrors.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
	})

	t.Run("Success - Falls Back To Session Mirror", func(t *testing.T) {
		// A fresh process has an empty in-memory map; the mirror still
		// resolves orders created before the restart.
		client, mock := redismock.NewClientMock()
		mirror := cache.NewRedisCache(client, &config.SessionCache{DefaultTTL: time.Hour})

		orderService, _ := newOrderService(mirror)

		mirrored := models.Order{
			ID:       "abc123",
			Number:   "ABC123",
			Email:    "jane@example.com",
			Lines:    cartLines(),
			Subtotal: 4500,
			Shipping: 650,
			Total:    5150,
		}

		data, err := json.Marshal(mirrored)
		require.NoError(t, err)

		mock.ExpectGet("order_abc123").SetVal(string(data))

		fetched, err := orderService.GetOrder(ctx, "abc123")

		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(&mirrored, fetched))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestOrderStoreMirror(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - Save Writes Through Under order_ Key", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mirror := cache.NewRedisCache(client, &config.SessionCache{DefaultTTL: time.Hour})
		store := service.NewOrderStore(mirror, time.Hour)

		order := &models.Order{ID: "xyz789", Number: "XYZ789"}

		data, err := json.Marshal(order)
		require.NoError(t, err)

		mock.ExpectSet("order_xyz789", data, time.Hour).SetVal("OK")

		require.NoError(t, store.Save(ctx, order))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Mirror Failure Does Not Fail Save", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		mirror := cache.NewRedisCache(client, &config.SessionCache{DefaultTTL: time.Hour})
		store := service.NewOrderStore(mirror, time.Hour)

		order := &models.Order{ID: "xyz789"}

		data, err := json.Marshal(order)
		require.NoError(t, err)

		mock.ExpectSet("order_xyz789", data, time.Hour).SetErr(assert.AnError)

		require.NoError(t, store.Save(ctx, order))

		// The in-memory copy still serves lookups.
		got, found, err := store.Get(ctx, "xyz789")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "xyz789", got.ID)
	})
}
