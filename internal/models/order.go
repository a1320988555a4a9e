package models

import (
	"time"

	"github.com/oakline/storefront/internal/currency"
)

// Address is the structured postal address collected by the checkout form.
type Address struct {
	FirstName  string `json:"firstName" validate:"required"`
	LastName   string `json:"lastName" validate:"required"`
	Address1   string `json:"address1" validate:"required"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city" validate:"required"`
	Region     string `json:"region" validate:"required"`
	PostalCode string `json:"postalCode" validate:"required,min=3"`
	Country    string `json:"country" validate:"required,min=2"`
}

// Order is immutable once created. Lines are a value copy of the cart
// snapshot taken at checkout, not linked back to the live cart.
type Order struct {
	ID              string         `json:"id"`
	Number          string         `json:"number"`
	Email           string         `json:"email"`
	ShippingAddress Address        `json:"shippingAddress"`
	Lines           []CartLine     `json:"lines"`
	Subtotal        currency.Money `json:"subtotal"`
	Shipping        currency.Money `json:"shipping"`
	Total           currency.Money `json:"total"`
	CreatedAt       time.Time      `json:"createdAt"`
}

// CheckoutRequest is the shipping/contact form collected at checkout. The
// lines and totals come from the server-owned cart, never from the client.
type CheckoutRequest struct {
	Email           string  `json:"email" validate:"required,email"`
	ShippingAddress Address `json:"shippingAddress" validate:"required"`
}
