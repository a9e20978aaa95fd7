package dto

import (
	"time"

	"marketplace/internal/entities"
)

func FromOrder(orderEntity *entities.Order) Order {
	items := make([]OrderItem, 0, len(orderEntity.Items))
	for _, item := range orderEntity.Items {
		items = append(items, OrderItem{
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return Order{
		ID:             orderEntity.ID,
		OrderNumber:    orderEntity.OrderNumber,
		CustomerID:     orderEntity.CustomerID,
		Status:         orderEntity.Status.String(),
		StatusLabel:    orderEntity.Status.Label(),
		Items:          items,
		Subtotal:       orderEntity.Subtotal,
		Discount:       orderEntity.Discount,
		ShippingFee:    orderEntity.ShippingFee,
		Tax:            orderEntity.Tax,
		Total:          orderEntity.Total,
		TrackingNumber: orderEntity.TrackingNumber,
		CreatedAt:      orderEntity.CreatedAt,
		UpdatedAt:      orderEntity.UpdatedAt,
		DeliveredAt:    orderEntity.DeliveredAt,
		CancelledAt:    orderEntity.CancelledAt,
	}
}

func FromReturnRequest(request *entities.ReturnRequest) ReturnRequest {
	return ReturnRequest{
		ID:         request.ID,
		OrderID:    request.OrderID,
		CustomerID: request.CustomerID,
		Reason:     request.Reason,
		Status:     request.Status.String(),
		CreatedAt:  request.CreatedAt,
		DecidedAt:  request.DecidedAt,
	}
}

func FromSellerApplication(userEntity *entities.User) SellerApplication {
	application := SellerApplication{
		ID:        userEntity.ID,
		Email:     userEntity.Email,
		Name:      userEntity.Name,
		Status:    userEntity.Status.String(),
		CreatedAt: userEntity.CreatedAt,
	}

	if userEntity.Business != nil {
		application.BusinessName = userEntity.Business.Name
		application.BusinessAddress = userEntity.Business.Address
		application.BusinessDescription = userEntity.Business.Description
	}
	if userEntity.Decision != nil {
		application.ApprovedAt = userEntity.Decision.ApprovedAt
		application.ApprovedBy = userEntity.Decision.ApprovedBy
		application.RejectedAt = userEntity.Decision.RejectedAt
		application.RejectedBy = userEntity.Decision.RejectedBy
		application.RejectionReason = userEntity.Decision.RejectionReason
	}

	return application
}

func FromCustomerOrderStats(stats *entities.CustomerOrderStats) CustomerOrderStats {
	statsDTO := CustomerOrderStats{
		CustomerID:  stats.CustomerID,
		TotalOrders: stats.TotalOrders,
		TotalSpent:  stats.TotalSpent,
	}

	if stats.LastOrderDate != nil {
		lastOrderDate := stats.LastOrderDate.Format(time.DateOnly)
		statsDTO.LastOrderDate = &lastOrderDate
	}

	return statsDTO
}
