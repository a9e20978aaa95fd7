package seller_application_approve_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/dto"
	"marketplace/internal/service/sellerapp"
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
	id := mux.Vars(r)["id"]

	var decisionDTO dto.SellerDecision
	err := json.NewDecoder(r.Body).Decode(&decisionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	approved, err := h.service.Approve(r.Context(), id, decisionDTO.ReviewerID)
	if err != nil {
		switch {
		case errors.Is(err, sellerapp.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, sellerapp.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, sellerapp.ErrNotSeller),
			errors.Is(err, sellerapp.ErrAlreadyDecided):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromSellerApplication(approved)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
