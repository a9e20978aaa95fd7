//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_confirm_receipt_post_test
package order_confirm_receipt_post

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
	ConfirmReceipt(ctx context.Context, orderID string) (*entities.Order, error)
}
