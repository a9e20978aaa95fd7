package entities

import "time"

// CustomerOrderStats - производная сводка по заказам покупателя,
// не хранится, считается по коллекции заказов.
type CustomerOrderStats struct {
	CustomerID    string
	TotalOrders   int64
	TotalSpent    int64
	LastOrderDate *time.Time
}
