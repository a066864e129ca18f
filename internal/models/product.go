package models

import "github.com/shopspring/decimal"

// Product represents one catalog entry.
type Product struct {
	// ID is the unique identifier for the product (short 8-char string).
	ID string `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// Category is a free-form grouping label (e.g., "Drinks", "Stationery").
	Category string `json:"category"`

	// BuyingPrice is what the shop pays per unit.
	BuyingPrice decimal.Decimal `json:"buying_price"`

	// SellingPrice is what a customer pays per unit.
	SellingPrice decimal.Decimal `json:"selling_price"`

	// Quantity is the number of units on hand. It is only ever changed
	// through an explicit update or a stock reservation and must not go
	// negative.
	Quantity int `json:"quantity"`
}
