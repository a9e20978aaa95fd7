package customerstats

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
)

var ErrMissingCustomerID = errors.New("customer id is required")

// Aggregator считает сводку по заказам покупателя на лету,
// ничего не мутируя. Для неизвестного покупателя - пустая сводка, не ошибка.
type Aggregator struct {
	orders OrderRepository
}

func New(orders OrderRepository) *Aggregator {
	return &Aggregator{
		orders: orders,
	}
}

func (s *Aggregator) OrderStats(ctx context.Context, customerID string) (*entities.CustomerOrderStats, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, ErrMissingCustomerID
	}

	orders, err := s.orders.GetByCustomerID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("get customer orders: %w", err)
	}

	stats := Aggregate(customerID, orders)
	return &stats, nil
}

// Aggregate - чистая свертка коллекции заказов. Отмененные заказы в сводку
// не входят. "Последний заказ" сравнивается по календарной дате, время суток
// игнорируется; при равных датах берется любой из заказов.
func Aggregate(customerID string, orders []entities.Order) entities.CustomerOrderStats {
	stats := entities.CustomerOrderStats{
		CustomerID: customerID,
	}

	for _, orderEntity := range orders {
		if orderEntity.CustomerID != customerID {
			continue
		}
		if orderEntity.Status == entities.OrderCancelled {
			continue
		}

		stats.TotalOrders++
		stats.TotalSpent += orderEntity.Total

		orderDate := toDate(orderEntity.CreatedAt)
		if stats.LastOrderDate == nil || orderDate.After(*stats.LastOrderDate) {
			stats.LastOrderDate = &orderDate
		}
	}

	return stats
}

// toDate обрезает время суток, оставляя календарную дату в UTC.
func toDate(ts time.Time) time.Time {
	year, month, day := ts.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
