package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/oakline/storefront/internal/cart"
	"github.com/oakline/storefront/internal/errors"
	"github.com/oakline/storefront/internal/models"
	"github.com/oakline/storefront/internal/utils"
	"github.com/oakline/storefront/internal/utils/response"
)

type CartHandler struct {
	cartStore *cart.Store
	validator *validator.Validate
}

func NewCartHandler(cartStore *cart.Store) *CartHandler {
	return &CartHandler{
		cartStore: cartStore,
		validator: validator.New(),
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		response.Success(w, http.StatusOK, h.cartStore.State())

	}
}

func (h *CartHandler) AddItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		var req models.AddItemRequest
		if !utils.ParseAndValidate(w, r, &req, h.validator) {
			return
		}

		state := h.cartStore.Add(&req)

		response.Success(w, http.StatusOK, state)

	}
}

func (h *CartHandler) UpdateQuantity() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Cart line id is required"))

			return
		}

		// Quantity zero or below removes the line, so no minimum here.
		var req models.UpdateQuantityRequest
		if err := utils.DecodeJSONBody(r, &req); err != nil {
			response.Error(w, errors.BadRequestError(err.Error()).WithError(err))

			return
		}

		state := h.cartStore.UpdateQuantity(lineID, req.Quantity)

		response.Success(w, http.StatusOK, state)

	}
}

func (h *CartHandler) RemoveItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Cart line id is required"))

			return
		}

		state := h.cartStore.Remove(lineID)

		response.Success(w, http.StatusOK, state)

	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		state := h.cartStore.Clear()

		response.Success(w, http.StatusOK, state)

	}
}

func (h *CartHandler) SaveForLater() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Cart line id is required"))

			return
		}

		state := h.cartStore.SaveForLater(lineID)

		response.Success(w, http.StatusOK, state)

	}
}

func (h *CartHandler) MoveToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Cart line id is required"))

			return
		}

		state := h.cartStore.MoveToCart(lineID)

		response.Success(w, http.StatusOK, state)

	}
}

func (h *CartHandler) RemoveSaved() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		lineID := r.PathValue("id")
		if lineID == "" {
			response.Error(w, errors.BadRequestError("Cart line id is required"))

			return
		}

		state := h.cartStore.RemoveSaved(lineID)

		response.Success(w, http.StatusOK, state)

	}
}
