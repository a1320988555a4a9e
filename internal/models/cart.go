package models

import "github.com/oakline/storefront/internal/currency"

// CartLine is one entry in the cart. Price is a snapshot copied from the
// product at add time, not a live link back to the catalog.
type CartLine struct {
	ID              string            `json:"id"`
	ProductID       string            `json:"productId"`
	Name            string            `json:"name"`
	Price           currency.Money    `json:"price"`
	Quantity        int               `json:"quantity"`
	Image           string            `json:"image"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

type AddItemRequest struct {
	ProductID       string            `json:"productId" validate:"required"`
	Name            string            `json:"name" validate:"required"`
	Price           currency.Money    `json:"price" validate:"gte=0"`
	Quantity        int               `json:"quantity" validate:"required,min=1"`
	Image           string            `json:"image"`
	SelectedOptions map[string]string `json:"selectedOptions,omitempty"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}
