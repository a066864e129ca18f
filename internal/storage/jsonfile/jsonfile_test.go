package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tillkeep/tillkeep/internal/models"
)

func TestStore(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "tillkeep-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	products := []models.Product{
		{ID: "P001", Name: "Widget", Category: "Tools", BuyingPrice: dec("2.50"), SellingPrice: dec("5.00"), Quantity: 10},
		{ID: "P002", Name: "Gadget", Category: "Tools", BuyingPrice: dec("1.00"), SellingPrice: dec("1.75"), Quantity: 3},
		{ID: "P003", Name: "Tea", Category: "Drinks", BuyingPrice: dec("0.40"), SellingPrice: dec("0.90"), Quantity: 42},
	}

	t.Run("Load returns empty for missing file", func(t *testing.T) {
		store, err := New[models.Product](filepath.Join(tempDir, "missing.json"))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		records, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("Expected empty load, got %d records", len(records))
		}
	})

	t.Run("Save then Load round-trips in order", func(t *testing.T) {
		store, err := New[models.Product](filepath.Join(tempDir, "products.json"))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := store.Save(products); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		loaded, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded) != len(products) {
			t.Fatalf("Record count mismatch: got %d, want %d", len(loaded), len(products))
		}
		for i, p := range loaded {
			want := products[i]
			if p.ID != want.ID || p.Name != want.Name || p.Category != want.Category || p.Quantity != want.Quantity {
				t.Errorf("Record %d mismatch: got %+v, want %+v", i, p, want)
			}
			if !p.BuyingPrice.Equal(want.BuyingPrice) || !p.SellingPrice.Equal(want.SellingPrice) {
				t.Errorf("Record %d price mismatch: got %s/%s, want %s/%s",
					i, p.BuyingPrice, p.SellingPrice, want.BuyingPrice, want.SellingPrice)
			}
		}
	})

	t.Run("Save overwrites the file in full", func(t *testing.T) {
		store, err := New[models.Product](filepath.Join(tempDir, "overwrite.json"))
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := store.Save(products); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if err := store.Save(products[:1]); err != nil {
			t.Fatalf("Second save failed: %v", err)
		}

		loaded, err := store.Load()
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(loaded) != 1 {
			t.Errorf("Expected 1 record after overwrite, got %d", len(loaded))
		}
	})

	t.Run("Load recovers from garbage payload", func(t *testing.T) {
		path := filepath.Join(tempDir, "garbage.json")
		if err := os.WriteFile(path, []byte("{not json at all"), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		store, err := New[models.Product](path)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		records, err := store.Load()
		if err != nil {
			t.Fatalf("Load returned error for damaged file: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("Expected empty load from garbage, got %d records", len(records))
		}
	})

	t.Run("Load recovers from non-list payload", func(t *testing.T) {
		path := filepath.Join(tempDir, "object.json")
		if err := os.WriteFile(path, []byte(`{"id": "P001"}`), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
		store, err := New[models.Product](path)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}

		records, err := store.Load()
		if err != nil {
			t.Fatalf("Load returned error for non-list payload: %v", err)
		}
		if len(records) != 0 {
			t.Errorf("Expected empty load from non-list payload, got %d records", len(records))
		}
	})

	t.Run("Save nil writes an empty list", func(t *testing.T) {
		path := filepath.Join(tempDir, "empty.json")
		store, err := New[models.Product](path)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := store.Save(nil); err != nil {
			t.Fatalf("Save failed: %v", err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("ReadFile failed: %v", err)
		}
		if string(data) != "[]" {
			t.Errorf("Expected empty JSON list, got %q", string(data))
		}
	})

	t.Run("New creates parent directories", func(t *testing.T) {
		path := filepath.Join(tempDir, "nested", "deep", "sales.json")
		store, err := New[models.Sale](path)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if err := store.Save([]models.Sale{}); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected file to exist: %v", err)
		}
	})
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}
