package services

import (
	"context"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/notification"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type mockPizzaRepository struct {
	mock.Mock
}

func (m *mockPizzaRepository) FindAll(ctx context.Context) ([]models.Pizza, error) {
	args := m.Called(ctx)
	return pizzasArg(args, 0), args.Error(1)
}

func (m *mockPizzaRepository) FindPage(ctx context.Context, req models.PageRequest) ([]models.Pizza, int64, error) {
	args := m.Called(ctx, req)
	return pizzasArg(args, 0), args.Get(1).(int64), args.Error(2)
}

func (m *mockPizzaRepository) FindAvailablePage(ctx context.Context, req models.PageRequest) ([]models.Pizza, int64, error) {
	args := m.Called(ctx, req)
	return pizzasArg(args, 0), args.Get(1).(int64), args.Error(2)
}

func (m *mockPizzaRepository) FindByAvailability(ctx context.Context, available bool) ([]models.Pizza, error) {
	args := m.Called(ctx, available)
	return pizzasArg(args, 0), args.Error(1)
}

func (m *mockPizzaRepository) FindFirstAvailableByName(ctx context.Context, name string) (models.Pizza, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockPizzaRepository) FindByNameOrDescriptionContaining(ctx context.Context, keyword string) ([]models.Pizza, error) {
	args := m.Called(ctx, keyword)
	return pizzasArg(args, 0), args.Error(1)
}

func (m *mockPizzaRepository) FindAvailableWithDescription(ctx context.Context, term string, contains bool) ([]models.Pizza, error) {
	args := m.Called(ctx, term, contains)
	return pizzasArg(args, 0), args.Error(1)
}

func (m *mockPizzaRepository) FindCheapestAvailable(ctx context.Context, ceiling decimal.Decimal, limit int) ([]models.Pizza, error) {
	args := m.Called(ctx, ceiling, limit)
	return pizzasArg(args, 0), args.Error(1)
}

func (m *mockPizzaRepository) FindByID(ctx context.Context, id uint) (models.Pizza, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Pizza), args.Error(1)
}

func (m *mockPizzaRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockPizzaRepository) Save(ctx context.Context, pizza *models.Pizza) error {
	args := m.Called(ctx, pizza)
	return args.Error(0)
}

func (m *mockPizzaRepository) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error {
	args := m.Called(ctx, id, price)
	return args.Error(0)
}

func (m *mockPizzaRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func pizzasArg(args mock.Arguments, index int) []models.Pizza {
	if v := args.Get(index); v != nil {
		return v.([]models.Pizza)
	}
	return nil
}

type mockGateway struct {
	mock.Mock
}

func (m *mockGateway) Notify(ctx context.Context, event notification.PriceChangeEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
