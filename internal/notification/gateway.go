// Package notification delivers price-change notices to downstream integrations.
package notification

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// PriceChangeEvent is published after a new price has been committed
type PriceChangeEvent struct {
	PizzaID   uint            `json:"pizza_id"`
	NewPrice  decimal.Decimal `json:"new_price"`
	ChangedAt time.Time       `json:"changed_at"`
}

// Gateway sends price-change notices. Notify may fail; callers decide what a failure means.
type Gateway interface {
	Notify(ctx context.Context, event PriceChangeEvent) error
}

// Drivers accepted by New
const (
	DriverEmail = "email"
	DriverKafka = "kafka"
	DriverLog   = "log"
)

// Config selects and configures a Gateway
type Config struct {
	Driver       string
	KafkaBrokers []string
	KafkaTopic   string
}

// New builds the Gateway named by cfg.Driver. An empty driver selects the email gateway.
func New(cfg Config) (Gateway, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	log.WithField("notifier_driver", driver).Info("Initializing notification gateway")

	switch driver {
	case DriverEmail, "":
		return NewEmailGateway(), nil
	case DriverLog:
		return NewLogGateway(), nil
	case DriverKafka:
		return NewKafkaGateway(cfg.KafkaBrokers, cfg.KafkaTopic)
	default:
		return nil, fmt.Errorf("unsupported notifier driver: %s (supported: email, kafka, log)", cfg.Driver)
	}
}
