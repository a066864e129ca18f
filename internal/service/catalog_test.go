package service

import (
	"slices"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tillkeep/tillkeep/internal/models"
)

// memStore is an in-memory storage.Store used by the service tests.
type memStore[T any] struct {
	records []T
	saves   int
}

func (m *memStore[T]) Load() ([]T, error) {
	return slices.Clone(m.records), nil
}

func (m *memStore[T]) Save(records []T) error {
	m.records = slices.Clone(records)
	m.saves++
	return nil
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testProducts() []models.Product {
	return []models.Product{
		{ID: "P001", Name: "Widget", Category: "Tools", BuyingPrice: dec("2.50"), SellingPrice: dec("5.0"), Quantity: 10},
		{ID: "P002", Name: "Gadget", Category: "Tools", BuyingPrice: dec("1.00"), SellingPrice: dec("1.75"), Quantity: 4},
	}
}

func newTestCatalog(t *testing.T, products []models.Product) (*Catalog, *memStore[models.Product]) {
	t.Helper()
	store := &memStore[models.Product]{records: products}
	catalog, err := NewCatalog(store)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return catalog, store
}

func TestReduceStock(t *testing.T) {
	tests := []struct {
		name        string
		productID   string
		quantity    int
		wantOK      bool
		wantMessage string
		wantQty     int // P001 quantity after the call
	}{
		{
			name:        "unknown product",
			productID:   "P999",
			quantity:    1,
			wantMessage: "Product not found.",
			wantQty:     10,
		},
		{
			name:        "zero quantity",
			productID:   "P001",
			quantity:    0,
			wantMessage: "Quantity must be positive.",
			wantQty:     10,
		},
		{
			name:        "negative quantity",
			productID:   "P001",
			quantity:    -3,
			wantMessage: "Quantity must be positive.",
			wantQty:     10,
		},
		{
			name:        "more than on hand",
			productID:   "P001",
			quantity:    11,
			wantMessage: "Not enough stock for this sale.",
			wantQty:     10,
		},
		{
			name:        "partial reservation",
			productID:   "P001",
			quantity:    3,
			wantOK:      true,
			wantMessage: "Stock updated.",
			wantQty:     7,
		},
		{
			name:        "exact on-hand quantity",
			productID:   "P001",
			quantity:    10,
			wantOK:      true,
			wantMessage: "Stock updated.",
			wantQty:     0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog, store := newTestCatalog(t, testProducts())

			status, err := catalog.ReduceStock(tt.productID, tt.quantity)
			if err != nil {
				t.Fatalf("ReduceStock returned error: %v", err)
			}
			if status.OK != tt.wantOK {
				t.Errorf("OK = %v, want %v", status.OK, tt.wantOK)
			}
			if status.Message != tt.wantMessage {
				t.Errorf("Message = %q, want %q", status.Message, tt.wantMessage)
			}

			p, _ := catalog.ByID("P001")
			if p.Quantity != tt.wantQty {
				t.Errorf("P001 quantity = %d, want %d", p.Quantity, tt.wantQty)
			}
			// No other product's quantity changes.
			other, _ := catalog.ByID("P002")
			if other.Quantity != 4 {
				t.Errorf("P002 quantity = %d, want 4", other.Quantity)
			}

			if tt.wantOK {
				if store.saves != 1 {
					t.Errorf("Expected 1 save after successful reservation, got %d", store.saves)
				}
				for _, rec := range store.records {
					if rec.ID == tt.productID && rec.Quantity != tt.wantQty {
						t.Errorf("Persisted quantity = %d, want %d", rec.Quantity, tt.wantQty)
					}
				}
			} else if store.saves != 0 {
				t.Errorf("Expected no save after failed reservation, got %d", store.saves)
			}
		})
	}
}

func TestCatalogAdd(t *testing.T) {
	catalog, store := newTestCatalog(t, nil)

	product, err := catalog.Add("Tea", "Drinks", dec("0.40"), dec("0.90"), 42)
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if len(product.ID) != 8 {
		t.Errorf("Expected 8-char id, got %q", product.ID)
	}
	if got := catalog.All(); len(got) != 1 || got[0].ID != product.ID {
		t.Errorf("Catalog contents = %+v, want the added product", got)
	}
	if store.saves != 1 {
		t.Errorf("Expected 1 save, got %d", store.saves)
	}
}

func TestCatalogUpdate(t *testing.T) {
	t.Run("partial update keeps unset fields", func(t *testing.T) {
		catalog, _ := newTestCatalog(t, testProducts())

		newPrice := dec("6.25")
		ok, err := catalog.Update("P001", ProductUpdate{SellingPrice: &newPrice})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if !ok {
			t.Fatal("Update returned false for existing product")
		}

		p, _ := catalog.ByID("P001")
		if !p.SellingPrice.Equal(newPrice) {
			t.Errorf("SellingPrice = %s, want %s", p.SellingPrice, newPrice)
		}
		if p.Name != "Widget" || p.Category != "Tools" || p.Quantity != 10 || !p.BuyingPrice.Equal(dec("2.50")) {
			t.Errorf("Unset fields changed: %+v", p)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		catalog, store := newTestCatalog(t, testProducts())

		name := "Nothing"
		ok, err := catalog.Update("P999", ProductUpdate{Name: &name})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if ok {
			t.Error("Update returned true for unknown product")
		}
		if store.saves != 0 {
			t.Errorf("Expected no save, got %d", store.saves)
		}
	})
}

func TestCatalogDelete(t *testing.T) {
	catalog, store := newTestCatalog(t, testProducts())

	ok, err := catalog.Delete("P001")
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if !ok {
		t.Fatal("Delete returned false for existing product")
	}
	if _, found := catalog.ByID("P001"); found {
		t.Error("Deleted product still present")
	}
	if len(store.records) != 1 {
		t.Errorf("Persisted %d records, want 1", len(store.records))
	}

	ok, err = catalog.Delete("P001")
	if err != nil {
		t.Fatalf("Second delete failed: %v", err)
	}
	if ok {
		t.Error("Delete returned true for already-deleted product")
	}
}

func TestCatalogSearch(t *testing.T) {
	catalog, _ := newTestCatalog(t, testProducts())

	tests := []struct {
		name    string
		keyword string
		wantIDs []string
	}{
		{name: "substring of name", keyword: "idg", wantIDs: []string{"P001"}},
		{name: "case-insensitive name", keyword: "WIDGET", wantIDs: []string{"P001"}},
		{name: "exact id lowercase", keyword: "p002", wantIDs: []string{"P002"}},
		{name: "shared substring", keyword: "g", wantIDs: []string{"P001", "P002"}},
		{name: "no match", keyword: "zz", wantIDs: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotIDs []string
			for _, p := range catalog.Search(tt.keyword) {
				gotIDs = append(gotIDs, p.ID)
			}
			if !slices.Equal(gotIDs, tt.wantIDs) {
				t.Errorf("Search(%q) = %v, want %v", tt.keyword, gotIDs, tt.wantIDs)
			}
		})
	}
}

func TestCatalogRestock(t *testing.T) {
	catalog, _ := newTestCatalog(t, testProducts())

	if err := catalog.Restock("P002", 6); err != nil {
		t.Fatalf("Restock failed: %v", err)
	}
	p, _ := catalog.ByID("P002")
	if p.Quantity != 10 {
		t.Errorf("P002 quantity = %d, want 10", p.Quantity)
	}

	// Unknown ids are ignored.
	if err := catalog.Restock("P999", 3); err != nil {
		t.Fatalf("Restock of unknown id failed: %v", err)
	}
}
