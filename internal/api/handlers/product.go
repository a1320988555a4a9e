package handlers

import (
	"log/slog"
	"net/http"

	"github.com/oakline/storefront/internal/api/middleware"
	"github.com/oakline/storefront/internal/errors"
	service "github.com/oakline/storefront/internal/services"
	"github.com/oakline/storefront/internal/utils/response"
)

type ProductHandler struct {
	catalogService service.CatalogService
}

func NewProductHandler(catalogService service.CatalogService) *ProductHandler {
	return &ProductHandler{catalogService: catalogService}
}

func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		products, err := h.catalogService.ListProducts(r.Context())
		if err != nil {
			logger.Warn("Failed to fetch products", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, products)

	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		slug := r.PathValue("slug")
		if slug == "" {
			response.Error(w, errors.BadRequestError("Product slug is required"))

			return
		}

		product, err := h.catalogService.GetProductBySlug(r.Context(), slug)
		if err != nil {
			logger.Warn("Failed to fetch product", slog.String("slug", slug), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, product)

	}
}
