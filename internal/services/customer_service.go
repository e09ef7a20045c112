package services

import (
	"context"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
)

// CustomerService looks up registered customers
type CustomerService interface {
	// FindByPhone retrieves the customer registered with the phone number
	FindByPhone(ctx context.Context, phone string) (models.Customer, error)
}

type customerService struct {
	repo repository.CustomerRepository
}

func NewCustomerService(repo repository.CustomerRepository) CustomerService {
	return &customerService{repo: repo}
}

func (s *customerService) FindByPhone(ctx context.Context, phone string) (models.Customer, error) {
	customer, err := s.repo.FindByPhone(ctx, phone)
	if err != nil {
		return models.Customer{}, notFound(err, ErrCustomerNotFound, "phone %q", phone)
	}
	return customer, nil
}
