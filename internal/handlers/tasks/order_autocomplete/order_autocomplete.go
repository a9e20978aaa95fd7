package order_autocomplete

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	CompleteStaleDelivered(ctx context.Context, olderThan time.Duration) (int64, error)
}

// OrderAutocomplete закрывает доставленные заказы, по которым покупатель
// так и не подтвердил получение за отведенный срок.
type OrderAutocomplete struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	after    time.Duration
}

func NewOrderAutocomplete(log logger.Logger, service Service, interval, after time.Duration) *OrderAutocomplete {
	return &OrderAutocomplete{
		log:      log,
		service:  service,
		interval: interval,
		after:    after,
	}
}

func (d *OrderAutocomplete) TTL() time.Duration {
	return d.interval
}

func (d *OrderAutocomplete) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.CompleteStaleDelivered(ctxWithTimeout, d.after)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("completed_orders", rowsAffected),
		).Info("order autocomplete")
	}

	return err
}

func (d *OrderAutocomplete) Info() string {
	return "order autocomplete"
}
