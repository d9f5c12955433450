package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luyandaaaa/Farm2city/internal/domain"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.InDelta(t, 1845.97, cfg.Balance, 0.001)
	require.Len(t, cfg.Products, 6)
	assert.Equal(t, "Tomatoes", cfg.Products[0].Name)
	assert.Equal(t, domain.CategoryEggs, cfg.Products[5].Category)
	require.Len(t, cfg.PaymentMethods, 2)
	assert.Equal(t, "Standard Bank", cfg.PaymentMethods[1].Bank)
	require.Len(t, cfg.Orders, 2)
	assert.Len(t, cfg.Transactions, 3)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm2city.yaml")
	data := `
balance: 500.50
products:
  - id: 1
    name: Mielies
    price: 9.99
    stock: 100
    category: other
    farmer: Test Farm
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 500.50, cfg.Balance, 0.001)
	require.Len(t, cfg.Products, 1)
	assert.Equal(t, "Mielies", cfg.Products[0].Name)
	assert.Equal(t, domain.CategoryOther, cfg.Products[0].Category)

	// untouched sections keep their defaults
	require.Len(t, cfg.PaymentMethods, 2)
	assert.Equal(t, "Mobile Money", cfg.PaymentMethods[0].Name)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("balance: [not a number"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSeed(t *testing.T) {
	cfg := Default()
	seed := cfg.Seed()

	assert.Equal(t, cfg.Balance, seed.Balance)
	assert.Len(t, seed.Products, len(cfg.Products))
	assert.Len(t, seed.PaymentMethods, len(cfg.PaymentMethods))
	assert.Len(t, seed.Orders, len(cfg.Orders))
	assert.Len(t, seed.Transactions, len(cfg.Transactions))
}
