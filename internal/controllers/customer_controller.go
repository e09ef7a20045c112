package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/pizzeria-api/internal/services"
	"github.com/gin-gonic/gin"
)

// CustomerController defines the HTTP handlers for customers
type CustomerController interface {
	// GetCustomerByPhone retrieves a customer by phone number
	GetCustomerByPhone(c *gin.Context)
}

type customerController struct {
	customers services.CustomerService
}

// NewCustomerController creates a new instance of CustomerController
func NewCustomerController(customers services.CustomerService) CustomerController {
	return &customerController{customers: customers}
}

// GetCustomerByPhone godoc
// @Summary Get customer by phone number
// @Tags customers
// @Produce json
// @Param phone path string true "Phone number"
// @Success 200 {object} models.Customer
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/customers/phone/{phone} [get]
func (cc *customerController) GetCustomerByPhone(ctx *gin.Context) {
	customer, err := cc.customers.FindByPhone(ctx.Request.Context(), ctx.Param("phone"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, customer)
}
