package database

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed seed/default.yaml
var defaultSeed []byte

// SeedData is the content of a seed file
type SeedData struct {
	Pizzas    []SeedPizza    `yaml:"pizzas"`
	Customers []SeedCustomer `yaml:"customers"`
}

type SeedPizza struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Available   *bool  `yaml:"available"`
	Vegan       bool   `yaml:"vegan"`
}

type SeedCustomer struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Address     string `yaml:"address"`
	Email       string `yaml:"email"`
	PhoneNumber string `yaml:"phone_number"`
}

// LoadSeed reads a YAML seed file. An empty path loads the embedded default menu.
func LoadSeed(path string) (SeedData, error) {
	data := defaultSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return SeedData{}, fmt.Errorf("reading seed file: %w", err)
		}
		data = raw
	}
	return ParseSeed(data)
}

// ParseSeed decodes and validates seed content
func ParseSeed(data []byte) (SeedData, error) {
	var seed SeedData
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return SeedData{}, fmt.Errorf("parsing seed: %w", err)
	}
	for i, p := range seed.Pizzas {
		if _, err := p.toModel(); err != nil {
			return SeedData{}, fmt.Errorf("pizza #%d (%s): %w", i+1, p.Name, err)
		}
	}
	return seed, nil
}

func (p SeedPizza) toModel() (models.Pizza, error) {
	price, err := decimal.NewFromString(p.Price)
	if err != nil {
		return models.Pizza{}, fmt.Errorf("invalid price %q: %w", p.Price, err)
	}
	available := true
	if p.Available != nil {
		available = *p.Available
	}
	pizza := models.Pizza{
		Name:        p.Name,
		Description: p.Description,
		Price:       price,
		Available:   available,
		Vegan:       p.Vegan,
	}
	if err := pizza.Validate(); err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

// Seed inserts the seed content unless the pizza table already has rows.
// With force the rows are inserted regardless.
// It reports whether anything was written.
func Seed(db *gorm.DB, seed SeedData, force bool) (bool, error) {
	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 && !force {
		log.WithField("pizzas", count).Info("Database already seeded with initial data")
		return false, nil
	}

	log.WithFields(logrus.Fields{
		"pizzas":    len(seed.Pizzas),
		"customers": len(seed.Customers),
	}).Info("Seeding database with initial data")

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, p := range seed.Pizzas {
			pizza, err := p.toModel()
			if err != nil {
				return err
			}
			if err := tx.Create(&pizza).Error; err != nil {
				return err
			}
		}
		for _, c := range seed.Customers {
			customer := models.Customer(c)
			if err := tx.Save(&customer).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("seeding database: %w", err)
	}

	log.Info("Database seeded successfully")
	return true, nil
}
