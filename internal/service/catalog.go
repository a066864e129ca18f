package service

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tillkeep/tillkeep/internal/models"
	"github.com/tillkeep/tillkeep/internal/storage"
)

// Catalog manages the product collection: add, update, delete, search, and
// the stock-reservation invariant. The on-hand quantity of a product never
// goes negative and is only changed through Update, ReduceStock, or Restock.
type Catalog struct {
	store    storage.Store[models.Product]
	products []models.Product
}

// NewCatalog loads the product collection from the given store.
func NewCatalog(store storage.Store[models.Product]) (*Catalog, error) {
	products, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	return &Catalog{store: store, products: products}, nil
}

func (c *Catalog) save() error {
	return c.store.Save(c.products)
}

// Add appends a new product with a fresh identity and persists the catalog.
// Prices and quantity are stored as given; range checks are left to callers.
func (c *Catalog) Add(name, category string, buyingPrice, sellingPrice decimal.Decimal, quantity int) (models.Product, error) {
	product := models.Product{
		ID:           newID(),
		Name:         name,
		Category:     category,
		BuyingPrice:  buyingPrice,
		SellingPrice: sellingPrice,
		Quantity:     quantity,
	}
	c.products = append(c.products, product)
	if err := c.save(); err != nil {
		return models.Product{}, err
	}
	slog.Debug("Product added", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// All returns the products in insertion order.
func (c *Catalog) All() []models.Product {
	return slices.Clone(c.products)
}

// ByID returns a copy of the product with the given id.
func (c *Catalog) ByID(id string) (models.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ProductUpdate carries the fields to change in an Update call. Nil fields
// keep their current value.
type ProductUpdate struct {
	Name         *string
	Category     *string
	BuyingPrice  *decimal.Decimal
	SellingPrice *decimal.Decimal
	Quantity     *int
}

// Update applies the supplied fields to the product with the given id and
// persists the catalog. It returns false if the id is unknown.
func (c *Catalog) Update(id string, upd ProductUpdate) (bool, error) {
	for i := range c.products {
		if c.products[i].ID != id {
			continue
		}
		p := &c.products[i]
		if upd.Name != nil {
			p.Name = *upd.Name
		}
		if upd.Category != nil {
			p.Category = *upd.Category
		}
		if upd.BuyingPrice != nil {
			p.BuyingPrice = *upd.BuyingPrice
		}
		if upd.SellingPrice != nil {
			p.SellingPrice = *upd.SellingPrice
		}
		if upd.Quantity != nil {
			p.Quantity = *upd.Quantity
		}
		return true, c.save()
	}
	return false, nil
}

// Delete removes the product with the given id and persists the catalog.
// It returns false if the id is unknown.
func (c *Catalog) Delete(id string) (bool, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products = append(c.products[:i], c.products[i+1:]...)
			return true, c.save()
		}
	}
	return false, nil
}

// Search returns products whose name contains the keyword (case-insensitive)
// or whose id matches it exactly (case-insensitive), in insertion order.
func (c *Catalog) Search(keyword string) []models.Product {
	needle := strings.ToLower(keyword)
	var results []models.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), needle) || strings.EqualFold(p.ID, keyword) {
			results = append(results, p)
		}
	}
	return results
}

// ReduceStock debits quantity units from the product's on-hand stock and
// persists the catalog immediately. Once it succeeds the decrement is final,
// independent of whatever happens to the sale being built around it.
//
// Validation failures (unknown product, non-positive quantity, not enough
// stock) come back as a Status with a user-facing message; the error return
// carries only persistence failures.
func (c *Catalog) ReduceStock(id string, quantity int) (Status, error) {
	idx := -1
	for i := range c.products {
		if c.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Status{Message: "Product not found."}, nil
	}
	if quantity <= 0 {
		return Status{Message: "Quantity must be positive."}, nil
	}
	if c.products[idx].Quantity < quantity {
		return Status{Message: "Not enough stock for this sale."}, nil
	}

	c.products[idx].Quantity -= quantity
	if err := c.save(); err != nil {
		return Status{}, err
	}
	slog.Debug("Stock reserved",
		"product_id", id,
		"quantity", quantity,
		"remaining", c.products[idx].Quantity,
	)
	return Status{OK: true, Message: "Stock updated."}, nil
}

// Restock returns previously reserved units to the product's on-hand stock.
// Unknown ids are ignored (the product may have been deleted meanwhile).
func (c *Catalog) Restock(id string, quantity int) error {
	for i := range c.products {
		if c.products[i].ID == id {
			c.products[i].Quantity += quantity
			return c.save()
		}
	}
	return nil
}
