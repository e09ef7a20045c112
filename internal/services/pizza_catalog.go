package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
	"github.com/shopspring/decimal"
)

// CheapestLimit caps the number of pizzas returned by FindCheapest
const CheapestLimit = 3

// PizzaCatalog answers menu queries and applies plain mutations
type PizzaCatalog interface {
	// ListAll retrieves every pizza without pagination
	ListAll(ctx context.Context) ([]models.Pizza, error)
	// ListPaginated retrieves one page of pizzas in natural order
	ListPaginated(ctx context.Context, page, size int) (models.Page[models.Pizza], error)
	// ListAvailablePaginated retrieves one page of available pizzas in the requested order
	ListAvailablePaginated(ctx context.Context, page, size int, sortField, sortDirection string) (models.Page[models.Pizza], error)
	// ListByAvailability retrieves the pizzas with the given flag, cheapest first
	ListByAvailability(ctx context.Context, available bool) ([]models.Pizza, error)
	// FindByName retrieves the first available pizza with the name, ignoring case
	FindByName(ctx context.Context, name string) (models.Pizza, error)
	// Search retrieves pizzas whose name or description contains the keyword
	Search(ctx context.Context, keyword string) ([]models.Pizza, error)
	// FindContainingIngredient retrieves available pizzas whose description mentions term
	FindContainingIngredient(ctx context.Context, term string) ([]models.Pizza, error)
	// FindExcludingIngredient retrieves available pizzas whose description does not mention term
	FindExcludingIngredient(ctx context.Context, term string) ([]models.Pizza, error)
	// FindCheapest retrieves up to three available pizzas priced at or below the ceiling
	FindCheapest(ctx context.Context, ceiling decimal.Decimal) ([]models.Pizza, error)
	// Get retrieves a pizza by its ID
	Get(ctx context.Context, id uint) (models.Pizza, error)
	// Exists reports whether a pizza with the ID is stored
	Exists(ctx context.Context, id uint) (bool, error)
	// Save inserts a new pizza or fully replaces an existing one
	Save(ctx context.Context, pizza models.Pizza) (models.Pizza, error)
	// Delete removes a pizza by its ID
	Delete(ctx context.Context, id uint) error
}

type pizzaCatalog struct {
	repo repository.PizzaRepository
}

// NewPizzaCatalog creates a new instance of PizzaCatalog
func NewPizzaCatalog(repo repository.PizzaRepository) PizzaCatalog {
	return &pizzaCatalog{repo: repo}
}

func (s *pizzaCatalog) ListAll(ctx context.Context) ([]models.Pizza, error) {
	return s.repo.FindAll(ctx)
}

func (s *pizzaCatalog) ListPaginated(ctx context.Context, page, size int) (models.Page[models.Pizza], error) {
	pizzas, total, err := s.repo.FindPage(ctx, models.PageRequest{Page: page, Size: size})
	if err != nil {
		return models.Page[models.Pizza]{}, err
	}
	return models.NewPage(pizzas, page, size, total), nil
}

func (s *pizzaCatalog) ListAvailablePaginated(ctx context.Context, page, size int, sortField, sortDirection string) (models.Page[models.Pizza], error) {
	sort, err := models.ParseSort(sortField, sortDirection)
	if err != nil {
		return models.Page[models.Pizza]{}, fmt.Errorf("%w: %v", ErrInvalidSort, err)
	}

	pizzas, total, err := s.repo.FindAvailablePage(ctx, models.PageRequest{Page: page, Size: size, Sort: &sort})
	if err != nil {
		return models.Page[models.Pizza]{}, err
	}
	return models.NewPage(pizzas, page, size, total), nil
}

func (s *pizzaCatalog) ListByAvailability(ctx context.Context, available bool) ([]models.Pizza, error) {
	return s.repo.FindByAvailability(ctx, available)
}

func (s *pizzaCatalog) FindByName(ctx context.Context, name string) (models.Pizza, error) {
	pizza, err := s.repo.FindFirstAvailableByName(ctx, name)
	if err != nil {
		return models.Pizza{}, notFound(err, ErrPizzaNotFound, "name %q", name)
	}
	return pizza, nil
}

func (s *pizzaCatalog) Search(ctx context.Context, keyword string) ([]models.Pizza, error) {
	return s.repo.FindByNameOrDescriptionContaining(ctx, keyword)
}

func (s *pizzaCatalog) FindContainingIngredient(ctx context.Context, term string) ([]models.Pizza, error) {
	return s.repo.FindAvailableWithDescription(ctx, term, true)
}

func (s *pizzaCatalog) FindExcludingIngredient(ctx context.Context, term string) ([]models.Pizza, error) {
	return s.repo.FindAvailableWithDescription(ctx, term, false)
}

func (s *pizzaCatalog) FindCheapest(ctx context.Context, ceiling decimal.Decimal) ([]models.Pizza, error) {
	return s.repo.FindCheapestAvailable(ctx, ceiling, CheapestLimit)
}

func (s *pizzaCatalog) Get(ctx context.Context, id uint) (models.Pizza, error) {
	if id == 0 {
		return models.Pizza{}, ErrInvalidID
	}
	pizza, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return models.Pizza{}, notFound(err, ErrPizzaNotFound, "id %d", id)
	}
	return pizza, nil
}

func (s *pizzaCatalog) Exists(ctx context.Context, id uint) (bool, error) {
	if id == 0 {
		return false, nil
	}
	return s.repo.ExistsByID(ctx, id)
}

func (s *pizzaCatalog) Save(ctx context.Context, pizza models.Pizza) (models.Pizza, error) {
	if err := pizza.Validate(); err != nil {
		return models.Pizza{}, fmt.Errorf("%w: %v", ErrInvalidPizza, err)
	}
	if err := s.repo.Save(ctx, &pizza); err != nil {
		return models.Pizza{}, err
	}
	return pizza, nil
}

func (s *pizzaCatalog) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}

// notFound replaces a repository miss with the domain sentinel and passes any other error through
func notFound(err, sentinel error, format string, args ...any) error {
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
	}
	return err
}
