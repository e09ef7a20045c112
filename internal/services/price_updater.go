package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/franciscosanchezn/pizzeria-api/internal/metrics"
	"github.com/franciscosanchezn/pizzeria-api/internal/models"
	"github.com/franciscosanchezn/pizzeria-api/internal/notification"
	"github.com/franciscosanchezn/pizzeria-api/internal/repository"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// NotificationStatus is the terminal state of a committed price update
type NotificationStatus string

const (
	NotificationSent   NotificationStatus = "sent"
	NotificationFailed NotificationStatus = "failed"
)

// PriceUpdateResult describes a committed price change.
// It is only returned once the new price is stored; a failed notification does not undo it.
type PriceUpdateResult struct {
	PizzaID         uint
	NewPrice        decimal.Decimal
	Persisted       bool
	Notification    NotificationStatus
	NotificationErr error
}

// NotificationFailed reports whether the notice could not be delivered
func (r PriceUpdateResult) NotificationFailed() bool {
	return r.Notification == NotificationFailed
}

// PriceUpdater changes a pizza price and then notifies downstream integrations
type PriceUpdater interface {
	// UpdatePrice stores the new price in one transaction, then sends the notice.
	// An error means nothing was changed.
	UpdatePrice(ctx context.Context, req models.PriceUpdateRequest) (PriceUpdateResult, error)
}

type priceUpdater struct {
	repo     repository.PizzaRepository
	notifier notification.Gateway
	metrics  *metrics.Metrics
	now      func() time.Time
}

// NewPriceUpdater creates a PriceUpdater. m may be nil.
func NewPriceUpdater(repo repository.PizzaRepository, notifier notification.Gateway, m *metrics.Metrics) PriceUpdater {
	return &priceUpdater{
		repo:     repo,
		notifier: notifier,
		metrics:  m,
		now:      time.Now,
	}
}

func (u *priceUpdater) UpdatePrice(ctx context.Context, req models.PriceUpdateRequest) (PriceUpdateResult, error) {
	ctx, span := otel.Tracer("github.com/franciscosanchezn/pizzeria-api/internal/services").Start(ctx, "PriceUpdater.UpdatePrice")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("pizza.id", int64(req.PizzaID)),
		attribute.String("pizza.new_price", req.NewPrice.String()),
	)

	if err := validatePriceUpdate(req); err != nil {
		u.metrics.RecordPriceUpdate(metrics.OutcomeRejected)
		span.SetStatus(codes.Error, err.Error())
		return PriceUpdateResult{}, err
	}

	if err := u.repo.UpdatePrice(ctx, req.PizzaID, req.NewPrice); err != nil {
		u.metrics.RecordPriceUpdate(metrics.OutcomeStorageFailed)
		span.RecordError(err)
		span.SetStatus(codes.Error, "price not persisted")
		if errors.Is(err, repository.ErrNotFound) {
			return PriceUpdateResult{}, fmt.Errorf("%w: id %d", ErrPizzaNotFound, req.PizzaID)
		}
		return PriceUpdateResult{}, fmt.Errorf("updating price of pizza %d: %w", req.PizzaID, err)
	}
	span.AddEvent("price persisted")

	result := PriceUpdateResult{
		PizzaID:      req.PizzaID,
		NewPrice:     req.NewPrice,
		Persisted:    true,
		Notification: NotificationSent,
	}

	event := notification.PriceChangeEvent{
		PizzaID:   req.PizzaID,
		NewPrice:  req.NewPrice,
		ChangedAt: u.now().UTC(),
	}
	if err := u.notifier.Notify(ctx, event); err != nil {
		result.Notification = NotificationFailed
		result.NotificationErr = err
		u.metrics.RecordPriceUpdate(metrics.OutcomeNotificationFailed)
		span.RecordError(err)
		span.AddEvent("notification failed")
		log.WithError(err).WithField("pizza_id", req.PizzaID).Warn("price stored but notification failed")
		return result, nil
	}

	u.metrics.RecordPriceUpdate(metrics.OutcomeNotificationSent)
	span.AddEvent("notification sent")
	return result, nil
}

func validatePriceUpdate(req models.PriceUpdateRequest) error {
	if req.PizzaID == 0 {
		return fmt.Errorf("%w: pizza_id must be positive", ErrInvalidID)
	}
	if err := models.CheckPrice(req.NewPrice); err != nil {
		return fmt.Errorf("%w: new_price: %v", ErrInvalidPrice, err)
	}
	return nil
}
