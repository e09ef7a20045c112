package database

import (
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema of every table the service owns
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	return db.AutoMigrate(
		&models.Pizza{},
		&models.Customer{},
		&models.User{},
		&models.OAuthClient{},
		&models.OAuthToken{},
	)
}
