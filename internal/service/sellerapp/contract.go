//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sellerapp_test
package sellerapp

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	GetByIDForUpdate(ctx context.Context, id string) (*entities.User, error)
	GetPendingSellers(ctx context.Context) ([]entities.User, error)
	Approve(ctx context.Context, id, reviewerID string, approvedAt time.Time) (*entities.User, error)
	Reject(ctx context.Context, id, reviewerID, reason string, rejectedAt time.Time) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
