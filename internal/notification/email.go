package notification

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

// ErrEmailUnavailable is returned by every EmailGateway delivery
var ErrEmailUnavailable = errors.New("email api unavailable")

// EmailGateway stands in for the customer email integration, which is not wired to a
// provider: every notice is rejected with ErrEmailUnavailable.
type EmailGateway struct {
	logger *log.Entry
}

func NewEmailGateway() *EmailGateway {
	return &EmailGateway{logger: log.WithField("component", "email-gateway")}
}

func (g *EmailGateway) Notify(ctx context.Context, event PriceChangeEvent) error {
	g.logger.WithFields(log.Fields{
		"pizza_id":  event.PizzaID,
		"new_price": event.NewPrice.String(),
	}).Warn("price change email not sent")
	return ErrEmailUnavailable
}
