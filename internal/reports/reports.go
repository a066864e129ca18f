// Package reports computes read-side aggregates over catalog and sales
// snapshots. All functions are pure; rendering is left to the caller.
package reports

import (
	"slices"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillkeep/tillkeep/internal/models"
)

// Period selects which sales a report covers.
type Period string

const (
	PeriodAll   Period = "all"
	PeriodToday Period = "today"
)

// FilterByPeriod returns the sales within the period relative to now.
// PeriodAll returns the input as-is.
func FilterByPeriod(sales []models.Sale, period Period, now time.Time) []models.Sale {
	if period != PeriodToday {
		return sales
	}
	var filtered []models.Sale
	for _, s := range sales {
		if s.Timestamp.SameDay(now) {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

// StockLine is the valuation of one product's on-hand stock.
type StockLine struct {
	Product   models.Product
	BuyValue  decimal.Decimal // Quantity x BuyingPrice
	SellValue decimal.Decimal // Quantity x SellingPrice
}

// StockValuation is the per-product and total value of all stock on hand.
type StockValuation struct {
	Lines          []StockLine
	TotalBuyValue  decimal.Decimal
	TotalSellValue decimal.Decimal
}

// ValueStock computes the stock valuation for the given products, preserving
// catalog order.
func ValueStock(products []models.Product) StockValuation {
	v := StockValuation{
		TotalBuyValue:  decimal.Zero,
		TotalSellValue: decimal.Zero,
	}
	for _, p := range products {
		qty := decimal.NewFromInt(int64(p.Quantity))
		line := StockLine{
			Product:   p,
			BuyValue:  p.BuyingPrice.Mul(qty),
			SellValue: p.SellingPrice.Mul(qty),
		}
		v.Lines = append(v.Lines, line)
		v.TotalBuyValue = v.TotalBuyValue.Add(line.BuyValue)
		v.TotalSellValue = v.TotalSellValue.Add(line.SellValue)
	}
	return v
}

// LowStock returns the products with on-hand quantity at or below threshold,
// preserving catalog order.
func LowStock(products []models.Product, threshold int) []models.Product {
	var low []models.Product
	for _, p := range products {
		if p.Quantity <= threshold {
			low = append(low, p)
		}
	}
	return low
}

// Summary aggregates a set of sales.
type Summary struct {
	Orders  int
	Items   int
	Revenue decimal.Decimal

	// Recent holds up to the five most recent sales, oldest first.
	Recent []models.Sale
}

// Summarize computes order, item, and revenue totals over the given sales.
func Summarize(sales []models.Sale) Summary {
	s := Summary{Revenue: decimal.Zero}
	for _, sale := range sales {
		s.Orders++
		s.Items += sale.TotalQuantity
		s.Revenue = s.Revenue.Add(sale.TotalAmount)
	}
	recent := sales
	if len(recent) > 5 {
		recent = recent[len(recent)-5:]
	}
	s.Recent = slices.Clone(recent)
	return s
}

// ProductSales is one product's sold quantity and revenue within a period.
type ProductSales struct {
	ProductID string
	Name      string
	Quantity  int
	Revenue   decimal.Decimal
}

// TopProducts ranks products by quantity sold, descending. Ties keep
// first-seen order across the sales' line items. A positive limit truncates
// the ranking; limit <= 0 returns everything.
func TopProducts(sales []models.Sale, limit int) []ProductSales {
	index := make(map[string]int)
	var ranked []ProductSales
	for _, sale := range sales {
		for _, item := range sale.Items {
			key := item.ProductID + "\x00" + item.ProductName
			i, ok := index[key]
			if !ok {
				i = len(ranked)
				index[key] = i
				ranked = append(ranked, ProductSales{
					ProductID: item.ProductID,
					Name:      item.ProductName,
					Revenue:   decimal.Zero,
				})
			}
			ranked[i].Quantity += item.Quantity
			ranked[i].Revenue = ranked[i].Revenue.Add(item.LineTotal)
		}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Quantity > ranked[b].Quantity
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// CustomerSales is one customer's order, item, and revenue totals within a
// period. Customers are keyed by name snapshot, so walk-in sales aggregate
// under "Walk-in".
type CustomerSales struct {
	Name    string
	Orders  int
	Items   int
	Revenue decimal.Decimal
}

// ByCustomer aggregates sales per customer name, in first-seen order.
func ByCustomer(sales []models.Sale) []CustomerSales {
	index := make(map[string]int)
	var totals []CustomerSales
	for _, sale := range sales {
		i, ok := index[sale.CustomerName]
		if !ok {
			i = len(totals)
			index[sale.CustomerName] = i
			totals = append(totals, CustomerSales{
				Name:    sale.CustomerName,
				Revenue: decimal.Zero,
			})
		}
		totals[i].Orders++
		totals[i].Items += sale.TotalQuantity
		totals[i].Revenue = totals[i].Revenue.Add(sale.TotalAmount)
	}
	return totals
}
