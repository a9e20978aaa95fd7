package notification

import (
	"time"

	"marketplace/internal/entities"
)

// orderStatusChangedEvent - контракт события order.status.changed.
type orderStatusChangedEvent struct {
	OrderID        string  `json:"order_id"`
	OrderNumber    string  `json:"order_number"`
	CustomerID     string  `json:"customer_id"`
	PreviousStatus string  `json:"previous_status"`
	Status         string  `json:"status"`
	StatusLabel    string  `json:"status_label"`
	TrackingNumber *string `json:"tracking_number,omitempty"`
	OccurredAt     string  `json:"occurred_at"`
}

func fromDomain(orderEntity *entities.Order, previous entities.OrderStatusType) orderStatusChangedEvent {
	return orderStatusChangedEvent{
		OrderID:        orderEntity.ID,
		OrderNumber:    orderEntity.OrderNumber,
		CustomerID:     orderEntity.CustomerID,
		PreviousStatus: previous.String(),
		Status:         orderEntity.Status.String(),
		StatusLabel:    orderEntity.Status.Label(),
		TrackingNumber: orderEntity.TrackingNumber,
		OccurredAt:     time.Now().UTC().Format(time.RFC3339),
	}
}
