// Package storage provides abstractions for persistent data storage.
package storage

// Store defines the interface for persisting one ordered collection of
// records. Each entity kind (products, customers, sales) gets its own Store.
// This abstraction allows swapping storage backends without changing the
// service layer; today the only backend is the JSON flat-file store.
type Store[T any] interface {
	// Load reads the full collection, preserving record order. A missing or
	// damaged backing resource yields an empty collection, not an error; the
	// error return is reserved for backends with genuinely fallible reads.
	Load() ([]T, error)

	// Save overwrites the backing resource with the given collection in full.
	Save(records []T) error
}
