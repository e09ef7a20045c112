package repository

import (
	"context"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"gorm.io/gorm"
)

// CustomerRepository retrieves customer records
type CustomerRepository interface {
	FindByPhone(ctx context.Context, phone string) (models.Customer, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) FindByPhone(ctx context.Context, phone string) (models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("phone_number = ?", phone).First(&customer).Error; err != nil {
		return models.Customer{}, translate(err)
	}
	return customer, nil
}
