package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/tillkeep/tillkeep/internal/models"
	"github.com/tillkeep/tillkeep/internal/storage"
)

// Directory manages the customer roster: add, find, and reconcile.
type Directory struct {
	store     storage.Store[models.Customer]
	customers []models.Customer
}

// NewDirectory loads the customer collection from the given store.
func NewDirectory(store storage.Store[models.Customer]) (*Directory, error) {
	customers, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}
	return &Directory{store: store, customers: customers}, nil
}

// Add appends a new customer with a fresh identity and persists the roster.
// Phone and email may be empty.
func (d *Directory) Add(name, phone, email string) (models.Customer, error) {
	customer := models.Customer{
		ID:    newID(),
		Name:  name,
		Phone: phone,
		Email: email,
	}
	d.customers = append(d.customers, customer)
	if err := d.store.Save(d.customers); err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

// ByID returns the customer with the given id.
func (d *Directory) ByID(id string) (models.Customer, bool) {
	for _, c := range d.customers {
		if c.ID == id {
			return c, true
		}
	}
	return models.Customer{}, false
}

// FindOrCreate returns the first existing customer whose name matches
// case-insensitively and whose phone matches exactly (an empty phone matches
// any), or creates a new customer. Insertion order decides which record wins
// when several could match.
func (d *Directory) FindOrCreate(name, phone, email string) (models.Customer, error) {
	for _, c := range d.customers {
		if strings.EqualFold(c.Name, name) && (phone == "" || c.Phone == phone) {
			return c, nil
		}
	}
	return d.Add(name, phone, email)
}

// All returns the customers in insertion order.
func (d *Directory) All() []models.Customer {
	return slices.Clone(d.customers)
}
