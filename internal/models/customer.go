package models

// Customer represents one entry in the customer roster.
//
// There is no uniqueness constraint on name or phone; the directory's
// find-or-create reconciliation treats a case-insensitive name plus an exact
// phone match as "the same customer".
type Customer struct {
	// ID is the unique identifier for the customer (short 8-char string).
	ID string `json:"id"`

	// Name is the customer's display name.
	Name string `json:"name"`

	// Phone is optional; empty string when not provided.
	Phone string `json:"phone"`

	// Email is optional; empty string when not provided.
	Email string `json:"email"`
}
