//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seller_application_approve_post_test
package seller_application_approve_post

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
	Approve(ctx context.Context, userID, reviewerID string) (*entities.User, error)
}
