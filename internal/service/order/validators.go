package order

import (
	"strings"

	"marketplace/internal/entities"
)

func isValidOrderID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidReason(reason string) bool {
	return strings.TrimSpace(reason) != ""
}

func validateOrderCreate(orderCreate entities.OrderCreate) error {
	if strings.TrimSpace(orderCreate.OrderNumber) == "" ||
		strings.TrimSpace(orderCreate.CustomerID) == "" {
		return ErrMissingRequiredFields
	}

	if len(orderCreate.Items) == 0 {
		return ErrEmptyItems
	}
	for _, item := range orderCreate.Items {
		if strings.TrimSpace(item.ProductID) == "" ||
			strings.TrimSpace(item.SellerID) == "" {
			return ErrInvalidItem
		}
		if item.Quantity < 1 || item.UnitPrice < 0 {
			return ErrInvalidItem
		}
	}

	if orderCreate.Subtotal < 0 ||
		orderCreate.Discount < 0 ||
		orderCreate.ShippingFee < 0 ||
		orderCreate.Tax < 0 ||
		orderCreate.Total < 0 {
		return ErrInvalidAmount
	}

	// total = subtotal - discount + shipping + tax, ручных переопределений нет
	if orderCreate.Total != orderCreate.Subtotal-orderCreate.Discount+orderCreate.ShippingFee+orderCreate.Tax {
		return ErrTotalMismatch
	}

	return nil
}
