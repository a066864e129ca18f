// Package service implements the business rules of tillkeep: the product
// catalog, the customer directory, and the sale-transaction workflow that
// ties them together. Each service owns its in-memory collection exclusively
// and is the sole writer of its backing store.
package service

import "github.com/google/uuid"

// Status reports the outcome of a domain operation that can fail validation
// (unknown id, bad quantity, insufficient stock, empty sale). Validation
// failures are values, not errors: callers check OK and show Message.
// Persistence failures travel separately as errors.
type Status struct {
	OK      bool
	Message string
}

// newID returns a short unique record identifier.
func newID() string {
	return uuid.NewString()[:8]
}
