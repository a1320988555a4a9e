package models

import "github.com/oakline/storefront/internal/currency"

// OptionValue is one selectable choice on a variant axis.
type OptionValue struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// ProductOption is a named variant axis, e.g. "Legs" or "Color".
type ProductOption struct {
	ID     string        `json:"id"`
	Name   string        `json:"name"`
	Values []OptionValue `json:"values"`
}

// Product is a catalog record. Products are created once from the seed at
// startup and never mutated afterwards.
type Product struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Price       currency.Money  `json:"price"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Options     []ProductOption `json:"options,omitempty"`
	SKU         string          `json:"sku,omitempty"`
}
