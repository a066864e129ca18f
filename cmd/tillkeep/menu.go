package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tillkeep/tillkeep/internal/models"
	"github.com/tillkeep/tillkeep/internal/service"
)

// cli drives the interactive menu loop. All prompt helpers return ok=false
// when stdin is exhausted, which unwinds every loop and ends the process
// cleanly.
type cli struct {
	scanner         *bufio.Scanner
	catalog         *service.Catalog
	directory       *service.Directory
	sales           *service.Sales
	lowStockDefault int
}

func (c *cli) run() {
	for {
		fmt.Println("\n=== Inventory Management System ===")
		fmt.Println("1. Manage Products")
		fmt.Println("2. Record Sale")
		fmt.Println("3. Reports")
		fmt.Println("4. Manage Customers")
		fmt.Println("5. Exit")

		choice, ok := c.prompt("Enter your choice: ")
		if !ok {
			return
		}
		switch choice {
		case "1":
			if !c.productsMenu() {
				return
			}
		case "2":
			if !c.recordSale() {
				return
			}
		case "3":
			if !c.reportsMenu() {
				return
			}
		case "4":
			if !c.customersMenu() {
				return
			}
		case "5":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice. Please select from the menu.")
		}
	}
}

// prompt reads one trimmed line of input.
func (c *cli) prompt(label string) (string, bool) {
	fmt.Print(label)
	if !c.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.scanner.Text()), true
}

// promptInt re-asks until a valid integer is entered. With allowBlank set, a
// blank answer returns nil.
func (c *cli) promptInt(label string, allowBlank bool) (*int, bool) {
	for {
		value, ok := c.prompt(label)
		if !ok {
			return nil, false
		}
		if allowBlank && value == "" {
			return nil, true
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			fmt.Println("Please enter a valid integer.")
			continue
		}
		return &n, true
	}
}

// promptDecimal re-asks until a valid number is entered. With allowBlank set,
// a blank answer returns nil.
func (c *cli) promptDecimal(label string, allowBlank bool) (*decimal.Decimal, bool) {
	for {
		value, ok := c.prompt(label)
		if !ok {
			return nil, false
		}
		if allowBlank && value == "" {
			return nil, true
		}
		d, err := decimal.NewFromString(value)
		if err != nil {
			fmt.Println("Please enter a valid number.")
			continue
		}
		return &d, true
	}
}

// reportError surfaces a persistence failure without aborting the session.
func (c *cli) reportError(msg string, err error) {
	slog.Error(msg, "error", err)
	fmt.Println("A storage error occurred; the last change may not have been saved.")
}

func (c *cli) productsMenu() bool {
	for {
		fmt.Println("\n--- Product Management ---")
		fmt.Println("1. Add Product")
		fmt.Println("2. Update Product")
		fmt.Println("3. Delete Product")
		fmt.Println("4. View All Products")
		fmt.Println("5. Search Product")
		fmt.Println("6. Back to Main Menu")

		choice, ok := c.prompt("Enter your choice: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			if !c.addProduct() {
				return false
			}
		case "2":
			if !c.updateProduct() {
				return false
			}
		case "3":
			id, ok := c.prompt("Enter product ID to delete: ")
			if !ok {
				return false
			}
			deleted, err := c.catalog.Delete(id)
			if err != nil {
				c.reportError("Failed to save product data", err)
			} else if deleted {
				fmt.Println("Product deleted.")
			} else {
				fmt.Println("Product not found.")
			}
		case "4":
			products := c.catalog.All()
			if len(products) == 0 {
				fmt.Println("No products in inventory.")
			} else {
				printProducts(products)
			}
		case "5":
			keyword, ok := c.prompt("Enter product name or ID to search: ")
			if !ok {
				return false
			}
			results := c.catalog.Search(keyword)
			if len(results) == 0 {
				fmt.Println("No matching products found.")
			} else {
				printProducts(results)
			}
		case "6":
			return true
		default:
			fmt.Println("Invalid choice. Please select from the menu.")
		}
	}
}

func (c *cli) addProduct() bool {
	name, ok := c.prompt("Product name: ")
	if !ok {
		return false
	}
	category, ok := c.prompt("Category: ")
	if !ok {
		return false
	}
	buyingPrice, ok := c.promptDecimal("Buying price: ", false)
	if !ok {
		return false
	}
	sellingPrice, ok := c.promptDecimal("Selling price: ", false)
	if !ok {
		return false
	}
	quantity, ok := c.promptInt("Initial quantity: ", false)
	if !ok {
		return false
	}

	if _, err := c.catalog.Add(name, category, *buyingPrice, *sellingPrice, *quantity); err != nil {
		c.reportError("Failed to save product data", err)
	} else {
		fmt.Println("Product added successfully.")
	}
	return true
}

func (c *cli) updateProduct() bool {
	id, ok := c.prompt("Enter product ID to update: ")
	if !ok {
		return false
	}
	product, found := c.catalog.ByID(id)
	if !found {
		fmt.Println("Product not found.")
		return true
	}

	fmt.Println("Leave a field blank to keep current value.")
	name, ok := c.prompt(fmt.Sprintf("Name [%s]: ", product.Name))
	if !ok {
		return false
	}
	category, ok := c.prompt(fmt.Sprintf("Category [%s]: ", product.Category))
	if !ok {
		return false
	}
	buyingPrice, ok := c.promptDecimal(fmt.Sprintf("Buying price [%s]: ", product.BuyingPrice), true)
	if !ok {
		return false
	}
	sellingPrice, ok := c.promptDecimal(fmt.Sprintf("Selling price [%s]: ", product.SellingPrice), true)
	if !ok {
		return false
	}
	quantity, ok := c.promptInt(fmt.Sprintf("Quantity [%d]: ", product.Quantity), true)
	if !ok {
		return false
	}

	upd := service.ProductUpdate{
		BuyingPrice:  buyingPrice,
		SellingPrice: sellingPrice,
		Quantity:     quantity,
	}
	if name != "" {
		upd.Name = &name
	}
	if category != "" {
		upd.Category = &category
	}

	if _, err := c.catalog.Update(id, upd); err != nil {
		c.reportError("Failed to save product data", err)
	} else {
		fmt.Println("Product updated successfully.")
	}
	return true
}

func (c *cli) customersMenu() bool {
	for {
		fmt.Println("\n--- Customer Management ---")
		fmt.Println("1. Add Customer")
		fmt.Println("2. View All Customers")
		fmt.Println("3. Back to Main Menu")

		choice, ok := c.prompt("Enter your choice: ")
		if !ok {
			return false
		}
		switch choice {
		case "1":
			name, ok := c.prompt("Customer name: ")
			if !ok {
				return false
			}
			phone, ok := c.prompt("Phone (optional): ")
			if !ok {
				return false
			}
			email, ok := c.prompt("Email (optional): ")
			if !ok {
				return false
			}
			customer, err := c.directory.Add(name, phone, email)
			if err != nil {
				c.reportError("Failed to save customer data", err)
			} else {
				fmt.Printf("Customer added with ID: %s\n", customer.ID)
			}
		case "2":
			customers := c.directory.All()
			if len(customers) == 0 {
				fmt.Println("No customers yet.")
			} else {
				printCustomers(customers)
			}
		case "3":
			return true
		default:
			fmt.Println("Invalid choice. Please select from the menu.")
		}
	}
}

func printProducts(products []models.Product) {
	fmt.Println("\nID | Name | Category | Buy | Sell | Qty")
	fmt.Println(strings.Repeat("-", 60))
	for _, p := range products {
		fmt.Printf("%s | %s | %s | %s | %s | %d\n",
			p.ID, p.Name, p.Category, p.BuyingPrice, p.SellingPrice, p.Quantity)
	}
}

func printCustomers(customers []models.Customer) {
	fmt.Println("ID | Name | Phone | Email")
	fmt.Println(strings.Repeat("-", 50))
	for _, cust := range customers {
		fmt.Printf("%s | %s | %s | %s\n", cust.ID, cust.Name, cust.Phone, cust.Email)
	}
}
