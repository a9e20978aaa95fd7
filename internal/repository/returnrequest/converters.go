package returnrequest

import (
	"marketplace/internal/entities"
)

func ToDomain(rr *ReturnRequestDB) *entities.ReturnRequest {
	if rr == nil {
		return nil
	}
	return &entities.ReturnRequest{
		ID:         rr.ID,
		OrderID:    rr.OrderID,
		CustomerID: rr.CustomerID,
		Reason:     rr.Reason,
		Status:     entities.ReturnStatusType(rr.Status),
		CreatedAt:  rr.CreatedAt,
		DecidedAt:  rr.DecidedAt,
	}
}
