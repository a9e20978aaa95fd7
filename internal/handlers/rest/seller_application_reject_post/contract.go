package seller_application_reject_post

//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seller_application_reject_post_test

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
	Reject(ctx context.Context, userID, reviewerID, reason string) (*entities.User, error)
}
