package seller_applications_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/dto"
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
	applications, err := h.service.GetPendingApplications(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.SellerApplicationList{
		Applications: make([]dto.SellerApplication, 0, len(applications)),
	}
	for i := range applications {
		response.Applications = append(response.Applications, dto.FromSellerApplication(&applications[i]))
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
