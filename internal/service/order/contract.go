//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error)
	GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	CompleteDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type ReturnRepository interface {
	Create(ctx context.Context, request entities.ReturnRequest) (*entities.ReturnRequest, error)
	GetByID(ctx context.Context, id string) (*entities.ReturnRequest, error)
	GetOpenByOrderID(ctx context.Context, orderID string) (*entities.ReturnRequest, error)
	Decide(ctx context.Context, id string, status entities.ReturnStatusType, decidedAt time.Time) (*entities.ReturnRequest, error)
}

// Notifier публикует событие о смене статуса во внешний sink (Kafka).
// Доставка best-effort: транзакция к этому моменту уже зафиксирована.
type Notifier interface {
	OrderStatusChanged(ctx context.Context, order *entities.Order, previous entities.OrderStatusType) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
