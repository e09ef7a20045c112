package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrNotFound is returned when no record matches the requested identity or predicate
var ErrNotFound = errors.New("record not found")

// naturalOrder is the default ordering of every pizza listing
const naturalOrder = "id ASC"

// PizzaRepository persists and retrieves pizza records
type PizzaRepository interface {
	// FindAll returns every pizza in natural order
	FindAll(ctx context.Context) ([]models.Pizza, error)
	// FindPage returns one page of all pizzas and the total element count
	FindPage(ctx context.Context, req models.PageRequest) ([]models.Pizza, int64, error)
	// FindAvailablePage returns one page of available pizzas and their total count
	FindAvailablePage(ctx context.Context, req models.PageRequest) ([]models.Pizza, int64, error)
	// FindByAvailability returns the pizzas with the given flag ordered by price ascending
	FindByAvailability(ctx context.Context, available bool) ([]models.Pizza, error)
	// FindFirstAvailableByName matches the name case-insensitively
	FindFirstAvailableByName(ctx context.Context, name string) (models.Pizza, error)
	// FindByNameOrDescriptionContaining matches either field case-insensitively
	FindByNameOrDescriptionContaining(ctx context.Context, keyword string) ([]models.Pizza, error)
	// FindAvailableWithDescription returns available pizzas whose description does
	// (contains=true) or does not (contains=false) contain term
	FindAvailableWithDescription(ctx context.Context, term string, contains bool) ([]models.Pizza, error)
	// FindCheapestAvailable returns at most limit available pizzas priced at or below ceiling
	FindCheapestAvailable(ctx context.Context, ceiling decimal.Decimal, limit int) ([]models.Pizza, error)
	// FindByID retrieves a pizza by its ID
	FindByID(ctx context.Context, id uint) (models.Pizza, error)
	// ExistsByID reports whether a pizza with the ID is stored
	ExistsByID(ctx context.Context, id uint) (bool, error)
	// Save inserts the pizza when its ID is zero and fully replaces it otherwise
	Save(ctx context.Context, pizza *models.Pizza) error
	// UpdatePrice changes the price inside a single transaction
	UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error
	// DeleteByID removes a pizza
	DeleteByID(ctx context.Context, id uint) error
}

type pizzaRepository struct {
	db *gorm.DB
}

// NewPizzaRepository creates a gorm backed PizzaRepository
func NewPizzaRepository(db *gorm.DB) PizzaRepository {
	return &pizzaRepository{db: db}
}

func (r *pizzaRepository) FindAll(ctx context.Context) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	if err := r.db.WithContext(ctx).Order(naturalOrder).Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *pizzaRepository) FindPage(ctx context.Context, req models.PageRequest) ([]models.Pizza, int64, error) {
	return r.findPage(r.db.WithContext(ctx).Model(&models.Pizza{}), req)
}

func (r *pizzaRepository) FindAvailablePage(ctx context.Context, req models.PageRequest) ([]models.Pizza, int64, error) {
	return r.findPage(r.db.WithContext(ctx).Model(&models.Pizza{}).Where("available = ?", true), req)
}

func (r *pizzaRepository) findPage(query *gorm.DB, req models.PageRequest) ([]models.Pizza, int64, error) {
	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset, ok := req.Offset()
	if !ok {
		// no page that far out can hold rows
		return []models.Pizza{}, total, nil
	}

	if req.Sort != nil {
		query = query.Order(req.Sort.OrderClause())
	}
	// natural order breaks ties and keeps pages stable
	query = query.Order(naturalOrder)

	var pizzas []models.Pizza
	if err := query.Offset(offset).Limit(req.Size).Find(&pizzas).Error; err != nil {
		return nil, 0, err
	}
	return pizzas, total, nil
}

func (r *pizzaRepository) FindByAvailability(ctx context.Context, available bool) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := r.db.WithContext(ctx).
		Where("available = ?", available).
		Order("price ASC").Order(naturalOrder).
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *pizzaRepository) FindFirstAvailableByName(ctx context.Context, name string) (models.Pizza, error) {
	var pizza models.Pizza
	err := r.db.WithContext(ctx).
		Where("available = ? AND LOWER(name) = ?", true, strings.ToLower(name)).
		Order(naturalOrder).
		First(&pizza).Error
	if err != nil {
		return models.Pizza{}, translate(err)
	}
	return pizza, nil
}

func (r *pizzaRepository) FindByNameOrDescriptionContaining(ctx context.Context, keyword string) ([]models.Pizza, error) {
	pattern := containsPattern(keyword)
	var pizzas []models.Pizza
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\' OR LOWER(description) LIKE ? ESCAPE '\\'", pattern, pattern).
		Order(naturalOrder).
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *pizzaRepository) FindAvailableWithDescription(ctx context.Context, term string, contains bool) ([]models.Pizza, error) {
	predicate := "LOWER(description) LIKE ? ESCAPE '\\'"
	if !contains {
		predicate = "LOWER(description) NOT LIKE ? ESCAPE '\\'"
	}

	var pizzas []models.Pizza
	err := r.db.WithContext(ctx).
		Where("available = ?", true).
		Where(predicate, containsPattern(term)).
		Order(naturalOrder).
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *pizzaRepository) FindCheapestAvailable(ctx context.Context, ceiling decimal.Decimal, limit int) ([]models.Pizza, error) {
	var pizzas []models.Pizza
	err := r.db.WithContext(ctx).
		Where("available = ? AND price <= ?", true, ceiling).
		Order("price ASC").Order(naturalOrder).
		Limit(limit).
		Find(&pizzas).Error
	if err != nil {
		return nil, err
	}
	return pizzas, nil
}

func (r *pizzaRepository) FindByID(ctx context.Context, id uint) (models.Pizza, error) {
	var pizza models.Pizza
	if err := r.db.WithContext(ctx).First(&pizza, id).Error; err != nil {
		return models.Pizza{}, translate(err)
	}
	return pizza, nil
}

func (r *pizzaRepository) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Pizza{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *pizzaRepository) Save(ctx context.Context, pizza *models.Pizza) error {
	if pizza.ID == 0 {
		return r.db.WithContext(ctx).Create(pizza).Error
	}
	return r.db.WithContext(ctx).Save(pizza).Error
}

func (r *pizzaRepository) UpdatePrice(ctx context.Context, id uint, price decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Pizza{}).Where("id = ?", id).Update("price", price)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("pizza %d: %w", id, ErrNotFound)
		}
		return nil
	})
}

func (r *pizzaRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Pizza{}, id).Error
}

// containsPattern builds a lower-cased LIKE pattern matching term anywhere,
// with the wildcard characters of term escaped
func containsPattern(term string) string {
	escaper := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + escaper.Replace(strings.ToLower(term)) + "%"
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
