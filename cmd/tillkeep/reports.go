package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/tillkeep/tillkeep/internal/models"
	"github.com/tillkeep/tillkeep/internal/reports"
)

func (c *cli) reportsMenu() bool {
	for {
		fmt.Println("\n--- Reports ---")
		fmt.Println("1. Current Inventory")
		fmt.Println("2. Low Stock Report")
		fmt.Println("3. Sales Summary")
		fmt.Println("4. Top Selling Products")
		fmt.Println("5. Sales by Customer")
		fmt.Println("6. Back to Main Menu")

		choice, ok := c.prompt("Enter your choice: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			c.printCurrentInventory()
		case "2":
			if !c.printLowStock() {
				return false
			}
		case "3":
			period, ok := c.promptPeriod("Sales summary options:")
			if !ok {
				return false
			}
			c.printSalesSummary(period)
		case "4":
			period, ok := c.promptPeriod("Top selling products options:")
			if !ok {
				return false
			}
			c.printTopProducts(period)
		case "5":
			period, ok := c.promptPeriod("Sales by customer options:")
			if !ok {
				return false
			}
			c.printSalesByCustomer(period)
		case "6":
			return true
		default:
			fmt.Println("Invalid choice. Please select from the menu.")
		}
	}
}

// promptPeriod asks for an all-time/today choice; anything else falls back to
// all-time.
func (c *cli) promptPeriod(title string) (reports.Period, bool) {
	fmt.Println(title)
	fmt.Println("1. All time")
	fmt.Println("2. Today only")
	choice, ok := c.prompt("Enter your choice: ")
	if !ok {
		return "", false
	}
	switch choice {
	case "1":
		return reports.PeriodAll, true
	case "2":
		return reports.PeriodToday, true
	default:
		fmt.Println("Invalid choice. Showing all-time data.")
		return reports.PeriodAll, true
	}
}

func (c *cli) printCurrentInventory() {
	products := c.catalog.All()
	if len(products) == 0 {
		fmt.Println("No products in inventory.")
		return
	}

	valuation := reports.ValueStock(products)

	fmt.Println("\n=== Current Inventory ===")
	fmt.Println("ID | Name | Category | Qty | Buy | Sell | Stock Value (Buy) | Stock Value (Sell)")
	fmt.Println(strings.Repeat("-", 90))
	for _, line := range valuation.Lines {
		p := line.Product
		fmt.Printf("%s | %s | %s | %d | %s | %s | %s | %s\n",
			p.ID, p.Name, p.Category, p.Quantity,
			p.BuyingPrice, p.SellingPrice,
			line.BuyValue.StringFixed(2), line.SellValue.StringFixed(2))
	}
	fmt.Println(strings.Repeat("-", 90))
	fmt.Printf("Total stock value (buying): %s\n", valuation.TotalBuyValue.StringFixed(2))
	fmt.Printf("Total stock value (selling): %s\n", valuation.TotalSellValue.StringFixed(2))
}

func (c *cli) printLowStock() bool {
	threshold, ok := c.promptInt(fmt.Sprintf("Enter low stock threshold [%d]: ", c.lowStockDefault), true)
	if !ok {
		return false
	}
	limit := c.lowStockDefault
	if threshold != nil {
		limit = *threshold
	}

	low := reports.LowStock(c.catalog.All(), limit)
	fmt.Printf("\n=== Low Stock (<= %d) ===\n", limit)
	if len(low) == 0 {
		fmt.Println("No low-stock items.")
		return true
	}
	fmt.Println("ID | Name | Category | Qty")
	fmt.Println(strings.Repeat("-", 40))
	for _, p := range low {
		fmt.Printf("%s | %s | %s | %d\n", p.ID, p.Name, p.Category, p.Quantity)
	}
	return true
}

func (c *cli) printSalesSummary(period reports.Period) {
	sales := reports.FilterByPeriod(c.sales.All(), period, time.Now())
	if len(sales) == 0 {
		fmt.Println("\nNo sales for the selected period.")
		return
	}

	summary := reports.Summarize(sales)
	fmt.Printf("\n=== Sales Summary (%s) ===\n", period)
	fmt.Printf("Total sales (orders): %d\n", summary.Orders)
	fmt.Printf("Total items sold: %d\n", summary.Items)
	fmt.Printf("Total revenue: %s\n", summary.Revenue.StringFixed(2))

	fmt.Println("\nRecent sales (up to 5):")
	fmt.Println("ID | Time | Customer | Items | Amount")
	fmt.Println(strings.Repeat("-", 70))
	for _, s := range summary.Recent {
		fmt.Printf("%s | %s | %s | %d | %s\n",
			s.ID, s.Timestamp.Format(models.TimestampLayout), s.CustomerName,
			s.TotalQuantity, s.TotalAmount.StringFixed(2))
	}
}

func (c *cli) printTopProducts(period reports.Period) {
	sales := reports.FilterByPeriod(c.sales.All(), period, time.Now())
	fmt.Printf("\n=== Top Selling Products (%s) ===\n", period)
	if len(sales) == 0 {
		fmt.Println("No sales for the selected period.")
		return
	}

	fmt.Println("Product ID | Name | Qty Sold | Revenue")
	fmt.Println(strings.Repeat("-", 60))
	for _, p := range reports.TopProducts(sales, 5) {
		fmt.Printf("%s | %s | %d | %s\n", p.ProductID, p.Name, p.Quantity, p.Revenue.StringFixed(2))
	}
}

func (c *cli) printSalesByCustomer(period reports.Period) {
	sales := reports.FilterByPeriod(c.sales.All(), period, time.Now())
	fmt.Printf("\n=== Sales by Customer (%s) ===\n", period)
	if len(sales) == 0 {
		fmt.Println("No sales for the selected period.")
		return
	}

	fmt.Println("Customer | Orders | Items | Revenue")
	fmt.Println(strings.Repeat("-", 60))
	for _, row := range reports.ByCustomer(sales) {
		fmt.Printf("%s | %d | %d | %s\n", row.Name, row.Orders, row.Items, row.Revenue.StringFixed(2))
	}
}
