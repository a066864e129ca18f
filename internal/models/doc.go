// Package models defines the core domain records for tillkeep.
//
// # Records
//
//   - Product: a catalog entry with prices and on-hand quantity
//   - Customer: a roster entry with optional contact details
//   - Sale: a committed sales order with its line items
//   - LineItem: one product/quantity/price tuple inside a Sale (never
//     persisted on its own)
//
// # Design principles
//
//  1. **Flat records**: every record serializes to a flat JSON object so the
//     data files stay hand-readable and diffable.
//  2. **ID strings instead of pointers**: relationships are expressed by ID
//     strings; a Sale additionally snapshots the product name and unit price
//     it was sold at, so later catalog edits do not rewrite history.
//  3. **Exact money**: all money fields are decimal.Decimal, encoded as bare
//     JSON numbers for compatibility with existing data files.
package models

import "github.com/shopspring/decimal"

func init() {
	// Money fields are written as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
