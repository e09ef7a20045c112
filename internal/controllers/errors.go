package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondError translates a service error into an APIError response
func respondError(ctx *gin.Context, err error) {
	status, code := http.StatusInternalServerError, models.ErrInternalServer
	message := "Internal server error"

	switch {
	case errors.Is(err, services.ErrInvalidSort):
		status, code, message = http.StatusBadRequest, models.ErrInvalidSort, err.Error()
	case errors.Is(err, services.ErrValidation):
		status, code, message = http.StatusBadRequest, models.ErrValidationFailed, err.Error()
	case errors.Is(err, services.ErrPizzaNotFound):
		status, code, message = http.StatusNotFound, models.ErrPizzaNotFound, err.Error()
	case errors.Is(err, services.ErrCustomerNotFound):
		status, code, message = http.StatusNotFound, models.ErrCustomerNotFound, err.Error()
	case errors.Is(err, services.ErrNotFound):
		status, code, message = http.StatusNotFound, models.ErrNotFound, err.Error()
	default:
		log.WithError(err).WithField("path", ctx.FullPath()).Error("Request failed")
	}

	_ = ctx.Error(err)
	ctx.JSON(status, models.NewAPIError(code, message))
}

func badRequest(ctx *gin.Context, code, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(code, message))
}
