package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Pizza represents a pizza on the menu
type Pizza struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"not null;size:50" json:"name"`
	Description string          `gorm:"not null;size:500" json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Available   bool            `gorm:"not null" json:"available"`
	Vegan       bool            `gorm:"not null" json:"vegan"`
}

// TableName returns the table name for Pizza
func (Pizza) TableName() string {
	return "pizzas"
}

// Validate checks the invariants every stored pizza must satisfy
func (p Pizza) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("name must not be empty")
	}
	return CheckPrice(p.Price)
}

// PriceScale is the number of decimal places the price column stores
const PriceScale = 2

// CheckPrice rejects negative prices and prices the column would round
func CheckPrice(price decimal.Decimal) error {
	if price.IsNegative() {
		return errors.New("price must be non-negative")
	}
	if !price.Equal(price.Round(PriceScale)) {
		return fmt.Errorf("price %s has more than %d decimal places", price, PriceScale)
	}
	return nil
}

// PriceUpdateRequest is the payload of the dedicated price-update path
type PriceUpdateRequest struct {
	PizzaID  uint            `json:"pizza_id"`
	NewPrice decimal.Decimal `json:"new_price"`
}
