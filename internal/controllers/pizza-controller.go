package controllers

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// Listing defaults
const (
	DefaultPage          = 0
	DefaultElements      = 8
	DefaultSortBy        = "price"
	DefaultSortDirection = "ASC"
)

// PizzaController handles HTTP requests related to pizzas
type PizzaController interface {
	// GetAllPizzas retrieves every pizza without pagination
	GetAllPizzas(c *gin.Context)
	// GetPizzaPage retrieves one page of all pizzas
	GetPizzaPage(c *gin.Context)
	// GetAvailablePizzaPage retrieves one sorted page of available pizzas
	GetAvailablePizzaPage(c *gin.Context)
	// GetPizzasByAvailability retrieves pizzas by their availability flag
	GetPizzasByAvailability(c *gin.Context)
	// GetPizzaByName retrieves an available pizza by name
	GetPizzaByName(c *gin.Context)
	// SearchPizzas retrieves pizzas whose name or description contains a keyword
	SearchPizzas(c *gin.Context)
	// GetPizzasWith retrieves available pizzas mentioning an ingredient
	GetPizzasWith(c *gin.Context)
	// GetPizzasWithout retrieves available pizzas not mentioning an ingredient
	GetPizzasWithout(c *gin.Context)
	// GetCheapestPizzas retrieves up to three available pizzas under a price
	GetCheapestPizzas(c *gin.Context)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(c *gin.Context)
	// CreatePizza creates a new pizza
	CreatePizza(c *gin.Context)
	// UpdatePizza replaces an existing pizza
	UpdatePizza(c *gin.Context)
	// UpdatePrice changes a price and notifies downstream integrations
	UpdatePrice(c *gin.Context)
	// DeletePizza deletes a pizza by its ID
	DeletePizza(c *gin.Context)
}

type controller struct {
	catalog services.PizzaCatalog
	prices  services.PriceUpdater
}

// NewPizzaController creates a new instance of PizzaController
func NewPizzaController(catalog services.PizzaCatalog, prices services.PriceUpdater) PizzaController {
	return &controller{catalog: catalog, prices: prices}
}

// PriceUpdateResponse reports a committed price change and the outcome of its notification
type PriceUpdateResponse struct {
	PizzaID        uint            `json:"pizza_id"`
	NewPrice       decimal.Decimal `json:"new_price"`
	PricePersisted bool            `json:"price_persisted"`
	Notification   string          `json:"notification"`
	Code           string          `json:"code,omitempty"`
	Error          string          `json:"error,omitempty"`
}

// GetAllPizzas godoc
// @Summary Get all pizzas
// @Description Get every pizza on the menu in natural order, without pagination
// @Tags pizzas
// @Produce json
// @Success 200 {array} models.Pizza
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/all [get]
func (c *controller) GetAllPizzas(ctx *gin.Context) {
	pizzas, err := c.catalog.ListAll(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaPage godoc
// @Summary Get a page of pizzas
// @Description Get one page of all pizzas in natural order
// @Tags pizzas
// @Produce json
// @Param page query int false "Zero-based page number" default(0)
// @Param elements query int false "Page size" default(8)
// @Success 200 {object} models.Page[models.Pizza]
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas [get]
func (c *controller) GetPizzaPage(ctx *gin.Context) {
	page, elements, ok := pageParams(ctx)
	if !ok {
		return
	}

	result, err := c.catalog.ListPaginated(ctx.Request.Context(), page, elements)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetAvailablePizzaPage godoc
// @Summary Get a sorted page of available pizzas
// @Description Get one page of available pizzas ordered by id, name or price
// @Tags pizzas
// @Produce json
// @Param page query int false "Zero-based page number" default(0)
// @Param elements query int false "Page size" default(8)
// @Param sortBy query string false "Sort field: id, name or price" default(price)
// @Param sortDirection query string false "ASC or DESC" default(ASC)
// @Success 200 {object} models.Page[models.Pizza]
// @Failure 400 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/available-page [get]
func (c *controller) GetAvailablePizzaPage(ctx *gin.Context) {
	page, elements, ok := pageParams(ctx)
	if !ok {
		return
	}
	sortBy := ctx.DefaultQuery("sortBy", DefaultSortBy)
	sortDirection := ctx.DefaultQuery("sortDirection", DefaultSortDirection)

	result, err := c.catalog.ListAvailablePaginated(ctx.Request.Context(), page, elements, sortBy, sortDirection)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// GetPizzasByAvailability godoc
// @Summary Get pizzas by availability
// @Description Get the pizzas with the given availability flag, cheapest first
// @Tags pizzas
// @Produce json
// @Param available path bool true "Availability flag"
// @Success 200 {array} models.Pizza
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/available/{available} [get]
func (c *controller) GetPizzasByAvailability(ctx *gin.Context) {
	available, err := strconv.ParseBool(ctx.Param("available"))
	if err != nil {
		badRequest(ctx, models.ErrBadRequest, "available must be true or false")
		return
	}

	pizzas, err := c.catalog.ListByAvailability(ctx.Request.Context(), available)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByName godoc
// @Summary Get an available pizza by name
// @Description Get the first available pizza whose name matches, ignoring case
// @Tags pizzas
// @Produce json
// @Param name path string true "Pizza name"
// @Success 200 {object} models.Pizza
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/name/{name} [get]
func (c *controller) GetPizzaByName(ctx *gin.Context) {
	pizza, err := c.catalog.FindByName(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// SearchPizzas godoc
// @Summary Search pizzas
// @Description Get pizzas whose name or description contains the keyword, ignoring case
// @Tags pizzas
// @Produce json
// @Param keyword query string false "Keyword"
// @Success 200 {array} models.Pizza
// @Security BearerAuth
// @Router /api/pizzas/search [get]
func (c *controller) SearchPizzas(ctx *gin.Context) {
	pizzas, err := c.catalog.Search(ctx.Request.Context(), ctx.Query("keyword"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzasWith godoc
// @Summary Get available pizzas with an ingredient
// @Tags pizzas
// @Produce json
// @Param ingredient path string true "Ingredient"
// @Success 200 {array} models.Pizza
// @Security BearerAuth
// @Router /api/pizzas/with/{ingredient} [get]
func (c *controller) GetPizzasWith(ctx *gin.Context) {
	pizzas, err := c.catalog.FindContainingIngredient(ctx.Request.Context(), ctx.Param("ingredient"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzasWithout godoc
// @Summary Get available pizzas without an ingredient
// @Tags pizzas
// @Produce json
// @Param ingredient path string true "Ingredient"
// @Success 200 {array} models.Pizza
// @Security BearerAuth
// @Router /api/pizzas/without/{ingredient} [get]
func (c *controller) GetPizzasWithout(ctx *gin.Context) {
	pizzas, err := c.catalog.FindExcludingIngredient(ctx.Request.Context(), ctx.Param("ingredient"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetCheapestPizzas godoc
// @Summary Get the cheapest available pizzas
// @Description Get up to three available pizzas priced at or below the ceiling, cheapest first
// @Tags pizzas
// @Produce json
// @Param price path string true "Price ceiling"
// @Success 200 {array} models.Pizza
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/cheapest/{price} [get]
func (c *controller) GetCheapestPizzas(ctx *gin.Context) {
	ceiling, err := decimal.NewFromString(ctx.Param("price"))
	if err != nil {
		badRequest(ctx, models.ErrBadRequest, "price must be a decimal number")
		return
	}

	pizzas, err := c.catalog.FindCheapest(ctx.Request.Context(), ceiling)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizzas)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza by its ID
// @Tags pizzas
// @Produce json
// @Param id path int true "Pizza ID"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/{id} [get]
func (c *controller) GetPizzaByID(ctx *gin.Context) {
	id, ok := pizzaID(ctx)
	if !ok {
		return
	}

	pizza, err := c.catalog.Get(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, pizza)
}

// CreatePizza godoc
// @Summary Create a new pizza
// @Description Create a pizza. An id that is already taken is rejected.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.Pizza true "Pizza object"
// @Success 201 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas [post]
func (c *controller) CreatePizza(ctx *gin.Context) {
	var pizza models.Pizza
	if err := ctx.ShouldBindJSON(&pizza); err != nil {
		badRequest(ctx, models.ErrBadRequest, "Invalid request body")
		return
	}

	if pizza.ID != 0 {
		exists, err := c.catalog.Exists(ctx.Request.Context(), pizza.ID)
		if err != nil {
			respondError(ctx, err)
			return
		}
		if exists {
			badRequest(ctx, models.ErrPizzaAlreadyExist, fmt.Sprintf("pizza %d already exists", pizza.ID))
			return
		}
	}

	created, err := c.catalog.Save(ctx.Request.Context(), pizza)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, created)
}

// UpdatePizza godoc
// @Summary Replace a pizza
// @Description Fully replace an existing pizza; the body must carry its id
// @Tags pizzas
// @Accept json
// @Produce json
// @Param pizza body models.Pizza true "Pizza object"
// @Success 200 {object} models.Pizza
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas [put]
func (c *controller) UpdatePizza(ctx *gin.Context) {
	var pizza models.Pizza
	if err := ctx.ShouldBindJSON(&pizza); err != nil {
		badRequest(ctx, models.ErrBadRequest, "Invalid request body")
		return
	}
	if pizza.ID == 0 {
		badRequest(ctx, models.ErrValidationFailed, "id is required")
		return
	}

	exists, err := c.catalog.Exists(ctx.Request.Context(), pizza.ID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !exists {
		badRequest(ctx, models.ErrPizzaNotFound, fmt.Sprintf("pizza %d does not exist", pizza.ID))
		return
	}

	updated, err := c.catalog.Save(ctx.Request.Context(), pizza)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// UpdatePrice godoc
// @Summary Change a pizza price
// @Description Store a new price, then notify downstream integrations.
// @Description A failed notification keeps the new price and is reported with code NOTIFICATION_FAILED.
// @Tags pizzas
// @Accept json
// @Produce json
// @Param request body models.PriceUpdateRequest true "Price update"
// @Success 200 {object} PriceUpdateResponse
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/price [put]
func (c *controller) UpdatePrice(ctx *gin.Context) {
	var body priceUpdateBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		badRequest(ctx, models.ErrBadRequest, "Invalid request body")
		return
	}
	if !body.NewPrice.Valid {
		respondError(ctx, fmt.Errorf("%w: new_price is required", services.ErrInvalidPrice))
		return
	}

	req := models.PriceUpdateRequest{PizzaID: body.PizzaID, NewPrice: body.NewPrice.Decimal}
	result, err := c.prices.UpdatePrice(ctx.Request.Context(), req)
	if errors.Is(err, services.ErrPizzaNotFound) {
		badRequest(ctx, models.ErrPizzaNotFound, err.Error())
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	response := PriceUpdateResponse{
		PizzaID:        result.PizzaID,
		NewPrice:       result.NewPrice,
		PricePersisted: result.Persisted,
		Notification:   string(result.Notification),
	}
	if result.NotificationFailed() {
		response.Code = models.ErrNotificationFailed
		if result.NotificationErr != nil {
			response.Error = result.NotificationErr.Error()
		}
	}
	ctx.JSON(http.StatusOK, response)
}

// DeletePizza godoc
// @Summary Delete a pizza
// @Description Delete a pizza by its ID
// @Tags pizzas
// @Param id path int true "Pizza ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/pizzas/{id} [delete]
func (c *controller) DeletePizza(ctx *gin.Context) {
	id, ok := pizzaID(ctx)
	if !ok {
		return
	}

	exists, err := c.catalog.Exists(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	if !exists {
		badRequest(ctx, models.ErrPizzaNotFound, fmt.Sprintf("pizza %d does not exist", id))
		return
	}

	if err := c.catalog.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// priceUpdateBody is models.PriceUpdateRequest with an absent new_price left invalid
type priceUpdateBody struct {
	PizzaID  uint                `json:"pizza_id"`
	NewPrice decimal.NullDecimal `json:"new_price"`
}

// pizzaID parses the id path parameter, answering 400 when it is not a positive integer
func pizzaID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		badRequest(ctx, models.ErrBadRequest, "Invalid pizza ID format")
		return 0, false
	}
	return uint(id), true
}

// pageParams reads page and elements, answering 400 when either is out of range
func pageParams(ctx *gin.Context) (int, int, bool) {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	if err != nil || page < 0 {
		badRequest(ctx, models.ErrValidationFailed, "page must be a non-negative integer")
		return 0, 0, false
	}
	elements, err := strconv.Atoi(ctx.DefaultQuery("elements", strconv.Itoa(DefaultElements)))
	if err != nil || elements < 1 {
		badRequest(ctx, models.ErrValidationFailed, "elements must be a positive integer")
		return 0, 0, false
	}
	if page > math.MaxInt/elements {
		badRequest(ctx, models.ErrValidationFailed, "page is out of range")
		return 0, 0, false
	}
	return page, elements, true
}
