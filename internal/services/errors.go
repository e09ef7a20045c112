package services

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is the parent of every input validation failure
	ErrValidation = errors.New("validation failed")
	// ErrNotFound is the parent of every missing-record failure
	ErrNotFound = errors.New("not found")

	ErrInvalidSort  = fmt.Errorf("%w: invalid sort", ErrValidation)
	ErrInvalidPrice = fmt.Errorf("%w: invalid price", ErrValidation)
	ErrInvalidPizza = fmt.Errorf("%w: invalid pizza", ErrValidation)
	ErrInvalidID    = fmt.Errorf("%w: invalid identity", ErrValidation)

	ErrPizzaNotFound    = fmt.Errorf("pizza %w", ErrNotFound)
	ErrCustomerNotFound = fmt.Errorf("customer %w", ErrNotFound)
)
