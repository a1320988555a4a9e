package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/oakline/storefront/internal/api/middleware"
	"github.com/oakline/storefront/internal/cart"
	"github.com/oakline/storefront/internal/currency"
	"github.com/oakline/storefront/internal/errors"
	"github.com/oakline/storefront/internal/models"
	service "github.com/oakline/storefront/internal/services"
	"github.com/oakline/storefront/internal/utils"
	"github.com/oakline/storefront/internal/utils/response"
)

type OrderHandler struct {
	orderService service.OrderService
	cartStore    *cart.Store
	validator    *validator.Validate
}

func NewOrderHandler(orderService service.OrderService, cartStore *cart.Store) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartStore:    cartStore,
		validator:    validator.New(),
	}
}

// Checkout snapshots the server-owned cart, creates the order and clears the
// active lines only once creation succeeded. Saved-for-later lines survive.
func (h *OrderHandler) Checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CheckoutRequest
		if !utils.ParseAndValidate(w, r, &req, h.validator) {
			return
		}

		state := h.cartStore.State()

		if len(state.Lines) == 0 {
			response.Error(w, errors.BadRequestError("Cannot checkout with an empty cart"))

			return
		}

		order, err := h.orderService.CreateOrder(r.Context(), &req, state.Lines, state.Subtotal)
		if err != nil {
			logger.Warn("Checkout failed", slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		h.cartStore.Clear()

		logger.Info("Order created",
			slog.String("order_id", order.ID),
			slog.String("order_number", order.Number),
			slog.String("order_total", currency.Format(order.Total)),
		)

		response.Success(w, http.StatusCreated, order)

	}
}

func (h *OrderHandler) GetOrder() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		orderID := r.PathValue("id")
		if orderID == "" {
			response.Error(w, errors.BadRequestError("Order id is required"))

			return
		}

		order, err := h.orderService.GetOrder(r.Context(), orderID)
		if err != nil {
			logger.Warn("Failed to fetch order", slog.String("order_id", orderID), slog.String("error", err.Error()))
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, order)

	}
}
