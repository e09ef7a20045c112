package notification

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// LogGateway writes notices to the structured log and never fails
type LogGateway struct {
	logger *log.Entry
}

func NewLogGateway() *LogGateway {
	return &LogGateway{logger: log.WithField("component", "log-gateway")}
}

func (g *LogGateway) Notify(ctx context.Context, event PriceChangeEvent) error {
	g.logger.WithFields(log.Fields{
		"pizza_id":   event.PizzaID,
		"new_price":  event.NewPrice.String(),
		"changed_at": event.ChangedAt,
	}).Info("pizza price changed")
	return nil
}
