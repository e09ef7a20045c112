// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/pizzeria-api/internal/database"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory SQLite database private to the test
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(database.OpenSQLite(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection would otherwise get its own empty in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.Migrate(db))
	return db
}

// Price parses a decimal literal, failing the test on malformed input
func Price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

// Menu is a fixed set of pizzas covering availability, vegan and price ties
func Menu(t *testing.T) []models.Pizza {
	t.Helper()
	return []models.Pizza{
		{Name: "Margherita", Description: "Tomato sauce, Mozzarella, Basil", Price: Price(t, "10.99"), Available: true},
		{Name: "Pepperoni", Description: "Tomato sauce, mozzarella, PEPPERONI", Price: Price(t, "12.99"), Available: true},
		{Name: "Vegetarian", Description: "Tomato sauce, mozzarella, bell peppers, olives", Price: Price(t, "11.99"), Available: true},
		{Name: "Vegan Garden", Description: "Tomato sauce, vegan cheese, mushrooms, olives", Price: Price(t, "10.99"), Available: true, Vegan: true},
		{Name: "Marinara", Description: "Tomato sauce, garlic, oregano", Price: Price(t, "8.75"), Available: true, Vegan: true},
		{Name: "Truffle Bianca", Description: "Cream, mozzarella, mushrooms, truffle oil", Price: Price(t, "18.00"), Available: false},
		{Name: "Calzone", Description: "Ricotta, ham, mozzarella", Price: Price(t, "9.50"), Available: false},
	}
}

// SeedMenu stores Menu and returns the stored records with their assigned IDs
func SeedMenu(t *testing.T, db *gorm.DB) []models.Pizza {
	t.Helper()
	pizzas := Menu(t)
	for i := range pizzas {
		require.NoError(t, db.WithContext(context.Background()).Create(&pizzas[i]).Error)
	}
	return pizzas
}
