package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/luyandaaaa/Farm2city/internal/domain"
	"github.com/luyandaaaa/Farm2city/internal/ussd"
)

// Config holds the seed data a session starts from. Load reads it from a
// YAML file; Default returns the built-in demo data.
type Config struct {
	Balance        float64                `yaml:"balance"`
	Products       []domain.Product       `yaml:"products"`
	PaymentMethods []domain.PaymentMethod `yaml:"payment_methods"`
	Orders         []domain.Order         `yaml:"orders"`
	Transactions   []domain.Transaction   `yaml:"transactions"`
}

func Default() *Config {
	return &Config{
		Balance: 1845.97,
		Products: []domain.Product{
			{ID: 1, Name: "Tomatoes", Price: 18.99, Stock: 50, Category: domain.CategoryVegetables, Farmer: "Green Valley Farm"},
			{ID: 2, Name: "Spinach", Price: 24.50, Stock: 30, Category: domain.CategoryVegetables, Farmer: "Green Valley Farm"},
			{ID: 3, Name: "Carrots", Price: 21.99, Stock: 40, Category: domain.CategoryVegetables, Farmer: "Sunny Acres"},
			{ID: 4, Name: "Strawberries", Price: 35.50, Stock: 20, Category: domain.CategoryFruits, Farmer: "Berry Good Farms"},
			{ID: 5, Name: "Apples", Price: 12.99, Stock: 35, Category: domain.CategoryFruits, Farmer: "Orchard Fresh"},
			{ID: 6, Name: "Free Range Eggs", Price: 45.00, Stock: 15, Category: domain.CategoryEggs, Farmer: "Happy Hens"},
		},
		PaymentMethods: []domain.PaymentMethod{
			{ID: 1, Name: "Mobile Money", Number: "0821234567"},
			{ID: 2, Name: "Bank Transfer", Number: "1234567890", Bank: "Standard Bank"},
		},
		Orders: []domain.Order{
			{ID: 1, Items: []string{"Tomatoes (2kg)", "Carrots (1kg)"}, Total: 59.97, Date: "2023-05-15", Status: domain.OrderStatusDelivered},
			{ID: 2, Items: []string{"Strawberries (1 box)", "Apples (3kg)"}, Total: 84.47, Date: "2023-06-02", Status: domain.OrderStatusDelivered},
		},
		Transactions: []domain.Transaction{
			{Date: "2023-06-28", Amount: 45.00, Type: domain.TransactionSale, Order: 2},
			{Date: "2023-06-15", Amount: 59.97, Type: domain.TransactionSale, Order: 1},
			{Date: "2023-05-30", Amount: -200.00, Type: domain.TransactionPayout, Reference: "PAY12345"},
		},
	}
}

// Load parses the YAML file at path. Fields absent from the file keep their
// Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Seed converts the config into session seed data.
func (c *Config) Seed() ussd.Seed {
	return ussd.Seed{
		Products:       c.Products,
		PaymentMethods: c.PaymentMethods,
		Orders:         c.Orders,
		Transactions:   c.Transactions,
		Balance:        c.Balance,
	}
}
