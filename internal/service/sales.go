package service

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tillkeep/tillkeep/internal/models"
	"github.com/tillkeep/tillkeep/internal/storage"
)

// Sales orchestrates the catalog and directory to record multi-item sales.
//
// A sale moves through three states: Open (returned by Open, held only by the
// caller), Finalized (persisted, terminal), or Abandoned (the caller hands it
// to Abandon instead of finalizing). Stock is reserved eagerly: every
// successful AddItem has already debited the catalog durably, so an abandoned
// sale leaves its reservations in place unless restock-on-abandon is enabled.
type Sales struct {
	catalog   *Catalog
	directory *Directory
	store     storage.Store[models.Sale]
	sales     []models.Sale

	// nextID is a monotonic counter for sale labels, seeded from the highest
	// existing label so deleting data files cannot cause label reuse within
	// one dataset. It advances at Open, so abandoned sales burn a label.
	nextID int

	// restockAbandoned switches Abandon from the compatible no-op to
	// returning reserved stock to the catalog.
	restockAbandoned bool
}

// NewSales loads the sales collection from the given store and wires the
// workflow to the catalog and directory it transacts against.
func NewSales(catalog *Catalog, directory *Directory, store storage.Store[models.Sale], restockAbandoned bool) (*Sales, error) {
	sales, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load sales: %w", err)
	}
	next := 1
	for _, s := range sales {
		if n, ok := saleNumber(s.ID); ok && n >= next {
			next = n + 1
		}
	}
	return &Sales{
		catalog:          catalog,
		directory:        directory,
		store:            store,
		sales:            sales,
		nextID:           next,
		restockAbandoned: restockAbandoned,
	}, nil
}

// saleNumber extracts n from a "SALE-n" label.
func saleNumber(id string) (int, bool) {
	rest, ok := strings.CutPrefix(id, "SALE-")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Open starts a new sale. An empty customerName makes it a walk-in sale with
// no customer reference; otherwise the customer is resolved through the
// directory's find-or-create, which can durably create a customer record even
// if this sale is never finalized.
//
// The returned sale lives only in the caller's memory until Finalize.
func (s *Sales) Open(customerName, phone, email string) (*models.Sale, error) {
	var customerID *string
	name := "Walk-in"
	if customerName != "" {
		customer, err := s.directory.FindOrCreate(customerName, phone, email)
		if err != nil {
			return nil, err
		}
		id := customer.ID
		customerID = &id
		name = customer.Name
	}

	sale := &models.Sale{
		ID:           fmt.Sprintf("SALE-%d", s.nextID),
		CustomerID:   customerID,
		CustomerName: name,
		TotalAmount:  decimal.Zero,
		Timestamp:    models.Now(),
	}
	s.nextID++
	return sale, nil
}

// AddItem adds one line item to an open sale. The stock debit happens first,
// through the catalog, and is durable the moment it succeeds; only then is
// the line item appended and the sale's running totals bumped. On a
// validation failure the sale is unchanged and no stock was touched.
func (s *Sales) AddItem(sale *models.Sale, productID string, quantity int) (Status, error) {
	status, err := s.catalog.ReduceStock(productID, quantity)
	if err != nil {
		return Status{}, err
	}
	if !status.OK {
		return status, nil
	}

	product, ok := s.catalog.ByID(productID)
	if !ok {
		// Cannot happen: ReduceStock just found it and nothing else mutates
		// the catalog between the two calls.
		return Status{Message: "Product not found."}, nil
	}

	lineTotal := product.SellingPrice.Mul(decimal.NewFromInt(int64(quantity)))
	sale.Items = append(sale.Items, models.LineItem{
		ProductID:   productID,
		ProductName: product.Name,
		Quantity:    quantity,
		UnitPrice:   product.SellingPrice,
		LineTotal:   lineTotal,
	})
	sale.TotalQuantity += quantity
	sale.TotalAmount = sale.TotalAmount.Add(lineTotal)

	return Status{
		OK:      true,
		Message: fmt.Sprintf("Added %d x %s (line total %s)", quantity, product.Name, lineTotal.StringFixed(2)),
	}, nil
}

// Finalize commits an open sale to the sales collection and persists it.
// A sale with no items is rejected and never persisted; the caller should
// hand it to Abandon.
func (s *Sales) Finalize(sale *models.Sale) (Status, error) {
	if len(sale.Items) == 0 {
		return Status{Message: "Cannot finalize a sale with no items."}, nil
	}

	s.sales = append(s.sales, *sale)
	if err := s.store.Save(s.sales); err != nil {
		return Status{}, err
	}
	slog.Info("Sale recorded",
		"sale_id", sale.ID,
		"customer", sale.CustomerName,
		"items", len(sale.Items),
		"total", sale.TotalAmount.StringFixed(2),
	)
	return Status{
		OK:      true,
		Message: fmt.Sprintf("Sale %s recorded. Total: %s", sale.ID, sale.TotalAmount.StringFixed(2)),
	}, nil
}

// Abandon releases an open sale that will not be finalized. By default the
// stock already reserved for it stays debited, matching the historical
// behavior where reservations are real even if checkout is abandoned. With
// restock-on-abandon enabled, each line item's quantity is returned to the
// catalog.
func (s *Sales) Abandon(sale *models.Sale) error {
	if !s.restockAbandoned || len(sale.Items) == 0 {
		return nil
	}
	for _, item := range sale.Items {
		if err := s.catalog.Restock(item.ProductID, item.Quantity); err != nil {
			return err
		}
	}
	slog.Info("Abandoned sale restocked", "sale_id", sale.ID, "items", len(sale.Items))
	return nil
}

// All returns the finalized sales in insertion order.
func (s *Sales) All() []models.Sale {
	return slices.Clone(s.sales)
}
