// Package app holds runtime configuration for tillkeep.
package app

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	// DataDir is where the products/customers/sales JSON files live.
	DataDir string `envconfig:"DATA_DIR" default:"./data"`

	// RestockAbandoned returns reserved stock to the catalog when a sale is
	// abandoned before finalizing. Off by default: historically a stock
	// reservation is real even if checkout is abandoned.
	RestockAbandoned bool `envconfig:"RESTOCK_ABANDONED" default:"false"`

	// LowStockThreshold is the default threshold for the low-stock report
	// when the prompt is left blank.
	LowStockThreshold int `envconfig:"LOW_STOCK_THRESHOLD" default:"5"`
}

// LoadConfig reads configuration from the environment, after loading an
// optional .env file from the working directory.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
