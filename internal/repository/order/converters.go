package order

import (
	"marketplace/internal/entities"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}

	orderItems := make([]entities.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, entities.OrderItem{
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	return &entities.Order{
		ID:             o.ID,
		OrderNumber:    o.OrderNumber,
		CustomerID:     o.CustomerID,
		Status:         entities.OrderStatusType(o.Status),
		Items:          orderItems,
		Subtotal:       o.Subtotal,
		Discount:       o.Discount,
		ShippingFee:    o.ShippingFee,
		Tax:            o.Tax,
		Total:          o.Total,
		TrackingNumber: o.TrackingNumber,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
		DeliveredAt:    o.DeliveredAt,
		CancelledAt:    o.CancelledAt,
	}
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}

	orderModifyDB := &OrderModifyDB{
		ID:             o.ID,
		TrackingNumber: o.TrackingNumber,
		DeliveredAt:    o.DeliveredAt,
		CancelledAt:    o.CancelledAt,
	}

	if o.Status != nil {
		status := o.Status.String()
		orderModifyDB.Status = &status
	}

	return orderModifyDB
}

func itemsFromDomain(orderID string, items []entities.OrderItem) []OrderItemDB {
	itemsDB := make([]OrderItemDB, 0, len(items))
	for _, item := range items {
		itemsDB = append(itemsDB, OrderItemDB{
			OrderID:   orderID,
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return itemsDB
}
