package main

import (
	"fmt"
	"strings"
)

// recordSale runs the interactive sale flow: resolve an optional customer,
// add items until "done", then finalize. Every accepted item has already
// debited stock durably, so a sale abandoned here is handed to Abandon,
// which restores stock only when restock-on-abandon is configured.
func (c *cli) recordSale() bool {
	fmt.Println("\n--- Record Sale ---")

	var customerName, phone, email string
	known, ok := c.prompt("Is this a known customer? (y/n): ")
	if !ok {
		return false
	}
	if strings.EqualFold(known, "y") {
		view, ok := c.prompt("Do you want to view all customers? (y/n): ")
		if !ok {
			return false
		}
		if strings.EqualFold(view, "y") {
			customers := c.directory.All()
			if len(customers) == 0 {
				fmt.Println("No customers yet.")
			} else {
				printCustomers(customers)
			}
		}
		customerName, ok = c.prompt("Enter customer name (existing or new): ")
		if !ok {
			return false
		}
		phone, ok = c.prompt("Phone (optional): ")
		if !ok {
			return false
		}
		email, ok = c.prompt("Email (optional): ")
		if !ok {
			return false
		}
	}

	sale, err := c.sales.Open(customerName, phone, email)
	if err != nil {
		c.reportError("Failed to start sale", err)
		return true
	}

	for {
		productID, ok := c.prompt("Enter product ID to add (or 'done' to finish): ")
		if !ok {
			if abandonErr := c.sales.Abandon(sale); abandonErr != nil {
				c.reportError("Failed to restock abandoned sale", abandonErr)
			}
			return false
		}
		if strings.EqualFold(productID, "done") {
			break
		}
		quantity, ok := c.promptInt("Quantity to sell: ", false)
		if !ok {
			if abandonErr := c.sales.Abandon(sale); abandonErr != nil {
				c.reportError("Failed to restock abandoned sale", abandonErr)
			}
			return false
		}

		status, err := c.sales.AddItem(sale, productID, *quantity)
		if err != nil {
			c.reportError("Failed to save stock reservation", err)
			continue
		}
		fmt.Println(status.Message)
	}

	status, err := c.sales.Finalize(sale)
	if err != nil {
		c.reportError("Failed to save sale", err)
		return true
	}
	fmt.Println(status.Message)
	if !status.OK {
		if err := c.sales.Abandon(sale); err != nil {
			c.reportError("Failed to restock abandoned sale", err)
		}
	}
	return true
}
