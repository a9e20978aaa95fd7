package entities

import "time"

type ReturnRequest struct {
	ID         string
	OrderID    string
	CustomerID string
	Reason     string
	Status     ReturnStatusType
	CreatedAt  time.Time
	DecidedAt  *time.Time
}

type ReturnStatusType string

const (
	ReturnRequested ReturnStatusType = "requested"
	ReturnApproved  ReturnStatusType = "approved"
	ReturnRejected  ReturnStatusType = "rejected"
)

func (s ReturnStatusType) String() string {
	return string(s)
}
