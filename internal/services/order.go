package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/oakline/storefront/internal/config"
	"github.com/oakline/storefront/internal/currency"
	"github.com/oakline/storefront/internal/errors"
	"github.com/oakline/storefront/internal/models"
)

type OrderService interface {
	CreateOrder(ctx context.Context, req *models.CheckoutRequest, lines []models.CartLine, subtotal currency.Money) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
}

type orderService struct {
	store         *OrderStore
	sim           SimulationPolicy
	freeThreshold currency.Money
	flatRate      currency.Money
	sanitizer     *bluemonday.Policy
}

func NewOrderService(store *OrderStore, sim SimulationPolicy, cfg *config.Shipping) OrderService {
	return &orderService{
		store:         store,
		sim:           sim,
		freeThreshold: currency.Money(cfg.FreeThreshold),
		flatRate:      currency.Money(cfg.FlatRate),
		sanitizer:     bluemonday.StrictPolicy(),
	}
}

// ShippingFor is the checkout shipping rule: free at or above the threshold,
// flat rate below it.
func (s *orderService) ShippingFor(subtotal currency.Money) currency.Money {

	if subtotal >= s.freeThreshold {
		return 0
	}

	return s.flatRate
}

func (s *orderService) CreateOrder(ctx context.Context, req *models.CheckoutRequest, lines []models.CartLine, subtotal currency.Money) (*models.Order, error) {

	if err := s.sim.Wait(ctx, createDelayMin, createDelayMax); err != nil {
		return nil, err
	}

	if s.sim.ShouldFail() {
		return nil, errors.UnavailableError(transientFailureMessage)
	}

	if len(lines) == 0 {
		return nil, errors.BadRequestError("Cannot create order with empty cart")
	}

	shipping := s.ShippingFor(subtotal)

	id := uuid.NewString()

	order := &models.Order{
		ID:              id,
		Number:          strings.ToUpper(id[:8]),
		Email:           req.Email,
		ShippingAddress: s.sanitizeAddress(req.ShippingAddress),
		Lines:           snapshotLines(lines),
		Subtotal:        subtotal,
		Shipping:        shipping,
		Total:           subtotal + shipping,
		CreatedAt:       time.Now().UTC(),
	}

	if err := s.store.Save(ctx, order); err != nil {
		return nil, errors.StorageError("Failed to store order").WithError(err)
	}

	return order, nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {

	// Lookup never injects failures; an unknown id is the only miss case.
	if err := s.sim.Wait(ctx, lookupDelayMin, lookupDelayMax); err != nil {
		return nil, err
	}

	order, found, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, errors.StorageError("Failed to read order").WithError(err)
	}

	if !found {
		return nil, errors.NotFoundError("Order not found")
	}

	return order, nil
}

// sanitizeAddress strips any markup from free-text form fields.
func (s *orderService) sanitizeAddress(addr models.Address) models.Address {
	addr.FirstName = s.sanitizer.Sanitize(addr.FirstName)
	addr.LastName = s.sanitizer.Sanitize(addr.LastName)
	addr.Address1 = s.sanitizer.Sanitize(addr.Address1)
	addr.Address2 = s.sanitizer.Sanitize(addr.Address2)
	addr.City = s.sanitizer.Sanitize(addr.City)
	addr.Region = s.sanitizer.Sanitize(addr.Region)

	return addr
}

// snapshotLines copies the cart lines by value, including the options maps,
// so the stored order never aliases the live cart.
func snapshotLines(lines []models.CartLine) []models.CartLine {

	out := make([]models.CartLine, len(lines))

	for i, line := range lines {
		out[i] = line

		if line.SelectedOptions != nil {
			opts := make(map[string]string, len(line.SelectedOptions))
			for k, v := range line.SelectedOptions {
				opts[k] = v
			}

			out[i].SelectedOptions = opts
		}
	}

	return out
}
