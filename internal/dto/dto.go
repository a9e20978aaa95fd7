// Package dto содержит тела запросов и ответов HTTP API.
package dto

import "time"

type OrderItem struct {
	ProductID string `json:"product_id"`
	SellerID  string `json:"seller_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Quantity  int32  `json:"quantity"`
}

type OrderCreate struct {
	OrderNumber string      `json:"order_number"`
	CustomerID  string      `json:"customer_id"`
	Items       []OrderItem `json:"items"`
	Subtotal    int64       `json:"subtotal"`
	Discount    int64       `json:"discount"`
	ShippingFee int64       `json:"shipping_fee"`
	Tax         int64       `json:"tax"`
	Total       int64       `json:"total"`
}

type Order struct {
	ID             string      `json:"id"`
	OrderNumber    string      `json:"order_number"`
	CustomerID     string      `json:"customer_id"`
	Status         string      `json:"status"`
	StatusLabel    string      `json:"status_label"`
	Items          []OrderItem `json:"items"`
	Subtotal       int64       `json:"subtotal"`
	Discount       int64       `json:"discount"`
	ShippingFee    int64       `json:"shipping_fee"`
	Tax            int64       `json:"tax"`
	Total          int64       `json:"total"`
	TrackingNumber *string     `json:"tracking_number,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
	DeliveredAt    *time.Time  `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time  `json:"cancelled_at,omitempty"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}

type OrderStatusChange struct {
	Status         string  `json:"status"`
	TrackingNumber *string `json:"tracking_number,omitempty"`
}

type ReturnRequestCreate struct {
	CustomerID string `json:"customer_id"`
	Reason     string `json:"reason"`
}

type ReturnRequest struct {
	ID         string     `json:"id"`
	OrderID    string     `json:"order_id"`
	CustomerID string     `json:"customer_id"`
	Reason     string     `json:"reason"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

type SellerDecision struct {
	ReviewerID string `json:"reviewer_id"`
	Reason     string `json:"reason,omitempty"`
}

type SellerApplication struct {
	ID                  string     `json:"id"`
	Email               string     `json:"email"`
	Name                string     `json:"name"`
	Status              string     `json:"status"`
	BusinessName        string     `json:"business_name,omitempty"`
	BusinessAddress     string     `json:"business_address,omitempty"`
	BusinessDescription string     `json:"business_description,omitempty"`
	ApprovedAt          *time.Time `json:"approved_at,omitempty"`
	ApprovedBy          *string    `json:"approved_by,omitempty"`
	RejectedAt          *time.Time `json:"rejected_at,omitempty"`
	RejectedBy          *string    `json:"rejected_by,omitempty"`
	RejectionReason     *string    `json:"rejection_reason,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

type SellerApplicationList struct {
	Applications []SellerApplication `json:"applications"`
}

type CustomerOrderStats struct {
	CustomerID    string  `json:"customer_id"`
	TotalOrders   int64   `json:"total_orders"`
	TotalSpent    int64   `json:"total_spent"`
	LastOrderDate *string `json:"last_order_date,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
