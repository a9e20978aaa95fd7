package return_request_approved

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	orderservice "marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

// approvedEvent — решение внешнего процесса рассмотрения возврата.
type approvedEvent struct {
	ReturnRequestID string `json:"return_request_id"`
	OrderID         string `json:"order_id"`
}

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт — выходим
				h.log.Info("return.request.approved: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group) — выходим
			h.log.Info("return.request.approved: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim (при отмене контекста).
// Возвращает false для продолжения обработки следующих сообщений.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event approvedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("return.request.approved handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("return_request", event.ReturnRequestID),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("return.request.approved processing")

	order, err := h.orderService.ApproveReturn(ctx, event.OrderID, event.ReturnRequestID)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("return.request.approved handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, orderservice.ErrOrderNotFound),
			errors.Is(err, orderservice.ErrReturnNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("return.request.approved handler unknown order or return request")

		case errors.Is(err, orderservice.ErrInvalidState):
			// Повторная доставка события или гонка со сменой статуса:
			// возврат уже применен либо заказ ушел из delivered.
			msgLog.With(
				logger.NewField("error", err),
			).Warn("return.request.approved handler order is not refundable")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Warn("return.request.approved handler failed to process return")
		}
		sess.MarkMessage(message, "")
		return false
	}

	// новая дочка с актуальными полями
	msgLog = h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("return_request", event.ReturnRequestID),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	)
	msgLog.Info("return.request.approved: processed")

	sess.MarkMessage(message, "")
	return false
}
