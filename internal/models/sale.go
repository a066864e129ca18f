package models

import "github.com/shopspring/decimal"

// Sale represents one committed sales order.
//
// A Sale starts out in memory only (an "open" sale the caller adds items to)
// and becomes durable when the sales workflow finalizes it. Its totals are
// maintained incrementally: TotalQuantity is the sum of item quantities and
// TotalAmount the sum of item line totals.
type Sale struct {
	// ID is a sequential human-readable label ("SALE-1", "SALE-2", ...).
	ID string `json:"id"`

	// CustomerID references the customer roster; nil for a walk-in sale.
	CustomerID *string `json:"customer_id"`

	// CustomerName is a snapshot of the customer's name, or "Walk-in".
	CustomerName string `json:"customer_name"`

	// Items are the line items in the order they were added.
	Items []LineItem `json:"items"`

	// TotalQuantity is the total number of units across all items.
	TotalQuantity int `json:"total_quantity"`

	// TotalAmount is the total amount owed across all items.
	TotalAmount decimal.Decimal `json:"total_amount"`

	// Timestamp is the local creation time, truncated to seconds.
	Timestamp Timestamp `json:"timestamp"`
}

// LineItem is one product/quantity/price tuple within a sale. Line items are
// owned by exactly one sale and are never persisted on their own.
type LineItem struct {
	// ProductID references the catalog entry the item was sold from.
	ProductID string `json:"product_id"`

	// ProductName is the product name at the time of sale.
	ProductName string `json:"product_name"`

	// Quantity is the number of units sold (positive).
	Quantity int `json:"quantity"`

	// UnitPrice is the selling price at the time of sale.
	UnitPrice decimal.Decimal `json:"unit_price"`

	// LineTotal is Quantity times UnitPrice.
	LineTotal decimal.Decimal `json:"line_total"`
}
