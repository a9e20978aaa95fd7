package order

import "time"

type OrderDB struct {
	ID             string
	OrderNumber    string
	CustomerID     string
	Status         string
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

type OrderItemDB struct {
	OrderID   string
	ProductID string
	SellerID  string
	Name      string
	UnitPrice int64
	Quantity  int32
}

type OrderModifyDB struct {
	ID             *string
	Status         *string
	TrackingNumber *string
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
}
