package orders_get

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
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter := entities.OrderFilter{}

	query := r.URL.Query()
	if customerID := query.Get("customer_id"); customerID != "" {
		filter.CustomerID = &customerID
	}
	if sellerID := query.Get("seller_id"); sellerID != "" {
		filter.SellerID = &sellerID
	}
	if status := query.Get("status"); status != "" {
		statusType := entities.OrderStatusType(status)
		filter.Status = &statusType
	}

	orders, err := h.service.GetOrders(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.OrderList{
		Orders: make([]dto.Order, 0, len(orders)),
	}
	for i := range orders {
		response.Orders = append(response.Orders, dto.FromOrder(&orders[i]))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
