package returnrequest

import "time"

type ReturnRequestDB struct {
	ID         string
	OrderID    string
	CustomerID string
	Reason     string
	Status     string
	CreatedAt  time.Time
	DecidedAt  *time.Time
}
