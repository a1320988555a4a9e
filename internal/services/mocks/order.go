package mocks

import (
	"context"

	"github.com/oakline/storefront/internal/currency"
	"github.com/oakline/storefront/internal/models"
	"github.com/stretchr/testify/mock"
)

type OrderService struct {
	mock.Mock
}

func (m *OrderService) CreateOrder(ctx context.Context, req *models.CheckoutRequest, lines []models.CartLine, subtotal currency.Money) (*models.Order, error) {
	args := m.Called(ctx, req, lines, subtotal)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}

func (m *OrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)

	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*models.Order), args.Error(1)
}
