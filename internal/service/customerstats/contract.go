//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=customerstats_test
package customerstats

import (
	"context"

	"marketplace/internal/entities"
)

type OrderRepository interface {
	GetByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error)
}
