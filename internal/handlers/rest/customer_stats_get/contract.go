package customer_stats_get

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customer_stats_get_test

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	OrderStats(ctx context.Context, customerID string) (*entities.CustomerOrderStats, error)
}
