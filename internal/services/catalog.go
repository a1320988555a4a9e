package service

import (
	"context"

	"github.com/oakline/storefront/internal/catalog"
	"github.com/oakline/storefront/internal/errors"
	"github.com/oakline/storefront/internal/models"
)

// transientFailureMessage matches what the storefront UI shows next to its
// retry button.
const transientFailureMessage = "Temporary error - please try again"

type CatalogService interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*models.Product, error)
}

type catalogService struct {
	sim SimulationPolicy
}

func NewCatalogService(sim SimulationPolicy) CatalogService {
	return &catalogService{sim: sim}
}

func (s *catalogService) ListProducts(ctx context.Context) ([]models.Product, error) {

	if err := s.sim.Wait(ctx, listDelayMin, listDelayMax); err != nil {
		return nil, err
	}

	if s.sim.ShouldFail() {
		return nil, errors.UnavailableError(transientFailureMessage)
	}

	return catalog.All(), nil
}

func (s *catalogService) GetProductBySlug(ctx context.Context, slug string) (*models.Product, error) {

	if err := s.sim.Wait(ctx, detailDelayMin, detailDelayMax); err != nil {
		return nil, err
	}

	if s.sim.ShouldFail() {
		return nil, errors.UnavailableError(transientFailureMessage)
	}

	product, ok := catalog.BySlug(slug)
	if !ok {
		return nil, errors.NotFoundError("Product not found")
	}

	return &product, nil
}
