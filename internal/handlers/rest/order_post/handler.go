package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var orderCreateDTO dto.OrderCreate
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItem, 0, len(orderCreateDTO.Items))
	for _, item := range orderCreateDTO.Items {
		items = append(items, entities.OrderItem{
			ProductID: item.ProductID,
			SellerID:  item.SellerID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}

	orderCreateEntity := entities.OrderCreate{
		OrderNumber: orderCreateDTO.OrderNumber,
		CustomerID:  orderCreateDTO.CustomerID,
		Items:       items,
		Subtotal:    orderCreateDTO.Subtotal,
		Discount:    orderCreateDTO.Discount,
		ShippingFee: orderCreateDTO.ShippingFee,
		Tax:         orderCreateDTO.Tax,
		Total:       orderCreateDTO.Total,
	}

	created, err := h.service.CreateOrder(r.Context(), orderCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields),
			errors.Is(err, order.ErrEmptyItems),
			errors.Is(err, order.ErrInvalidItem),
			errors.Is(err, order.ErrInvalidAmount),
			errors.Is(err, order.ErrTotalMismatch):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, order.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromOrder(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
