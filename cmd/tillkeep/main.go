package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tillkeep/tillkeep/internal/app"
	"github.com/tillkeep/tillkeep/internal/models"
	"github.com/tillkeep/tillkeep/internal/service"
	"github.com/tillkeep/tillkeep/internal/storage/jsonfile"
	"github.com/tillkeep/tillkeep/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	productStore, err := jsonfile.New[models.Product](filepath.Join(cfg.DataDir, "products.json"))
	if err != nil {
		slog.Error("Failed to initialize product storage", "error", err)
		os.Exit(1)
	}
	customerStore, err := jsonfile.New[models.Customer](filepath.Join(cfg.DataDir, "customers.json"))
	if err != nil {
		slog.Error("Failed to initialize customer storage", "error", err)
		os.Exit(1)
	}
	saleStore, err := jsonfile.New[models.Sale](filepath.Join(cfg.DataDir, "sales.json"))
	if err != nil {
		slog.Error("Failed to initialize sales storage", "error", err)
		os.Exit(1)
	}

	catalog, err := service.NewCatalog(productStore)
	if err != nil {
		slog.Error("Failed to load product catalog", "error", err)
		os.Exit(1)
	}
	directory, err := service.NewDirectory(customerStore)
	if err != nil {
		slog.Error("Failed to load customer directory", "error", err)
		os.Exit(1)
	}
	sales, err := service.NewSales(catalog, directory, saleStore, cfg.RestockAbandoned)
	if err != nil {
		slog.Error("Failed to load sales", "error", err)
		os.Exit(1)
	}

	slog.Info("Data loaded",
		"dir", cfg.DataDir,
		"products", len(catalog.All()),
		"customers", len(directory.All()),
		"sales", len(sales.All()),
	)

	fmt.Println("Welcome to the Inventory Management System!")
	c := &cli{
		scanner:         bufio.NewScanner(os.Stdin),
		catalog:         catalog,
		directory:       directory,
		sales:           sales,
		lowStockDefault: cfg.LowStockThreshold,
	}
	c.run()
}
