package entities

import (
	"time"
)

// Денежные суммы храним в минорных единицах (копейки/центы).
type Order struct {
	ID             string
	OrderNumber    string
	CustomerID     string
	Status         OrderStatusType
	Items          []OrderItem
	Subtotal       int64
	Discount       int64
	ShippingFee    int64
	Tax            int64
	Total          int64
	TrackingNumber *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
}

type OrderItem struct {
	ProductID string
	SellerID  string
	Name      string
	UnitPrice int64
	Quantity  int32
}

type OrderStatusType string

const (
	OrderPending    OrderStatusType = "pending"
	OrderConfirmed  OrderStatusType = "confirmed"
	OrderProcessing OrderStatusType = "processing"
	OrderShipping   OrderStatusType = "shipping"
	OrderDelivered  OrderStatusType = "delivered"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
	OrderRefunded   OrderStatusType = "refunded"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsKnown проверяет что статус входит в перечисление.
func (s OrderStatusType) IsKnown() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipping,
		OrderDelivered, OrderCompleted, OrderCancelled, OrderRefunded:
		return true
	default:
		return false
	}
}

// IsTerminal - из терминального статуса переходов нет.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderCompleted, OrderCancelled, OrderRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo проверяет допустимость перехода из текущего статуса
// в запрошенный. Переход refunded сюда не входит: он выполняется только
// через подтверждение возврата, а не через публичную смену статуса.
func (s OrderStatusType) CanTransitionTo(target OrderStatusType) bool {
	switch s {
	case OrderPending:
		return target == OrderConfirmed || target == OrderCancelled
	case OrderConfirmed:
		return target == OrderProcessing
	case OrderProcessing:
		return target == OrderShipping
	case OrderShipping:
		return target == OrderDelivered
	case OrderDelivered:
		return target == OrderCompleted
	default:
		return false
	}
}

// Label - человекочитаемое имя статуса для витрины и уведомлений.
// Каждый статус обязан иметь ровно одну метку.
func (s OrderStatusType) Label() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderConfirmed:
		return "Confirmed"
	case OrderProcessing:
		return "Processing"
	case OrderShipping:
		return "Shipping"
	case OrderDelivered:
		return "Delivered"
	case OrderCompleted:
		return "Completed"
	case OrderCancelled:
		return "Cancelled"
	case OrderRefunded:
		return "Refunded"
	default:
		return "Unknown"
	}
}

// OrderModify - частичное изменение заказа, nil-поля не трогаем.
type OrderModify struct {
	ID             *string
	Status         *OrderStatusType
	TrackingNumber *string
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
}

// OrderCreate - данные оформления нового заказа (checkout).
type OrderCreate struct {
	OrderNumber string
	CustomerID  string
	Items       []OrderItem
	Subtotal    int64
	Discount    int64
	ShippingFee int64
	Tax         int64
	Total       int64
}

// OrderFilter - фильтр листинга заказов.
type OrderFilter struct {
	CustomerID *string
	SellerID   *string
	Status     *OrderStatusType
}
