package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
)

// Gateway публикует события жизненного цикла заказа в Kafka.
// Ключ сообщения - id заказа, чтобы события одного заказа
// попадали в одну партицию и сохраняли порядок.
type Gateway struct {
	producer producer
	topic    string
}

func New(producer producer, topic string) *Gateway {
	return &Gateway{
		producer: producer,
		topic:    topic,
	}
}

func (g *Gateway) OrderStatusChanged(ctx context.Context, orderEntity *entities.Order, previous entities.OrderStatusType) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("gateway notification, context: %w", err)
	}

	event := fromDomain(orderEntity, previous)
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("gateway notification, marshal event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: g.topic,
		Key:   sarama.StringEncoder(orderEntity.ID),
		Value: sarama.ByteEncoder(payload),
	}

	_, _, err = g.producer.SendMessage(msg)
	if err != nil {
		NotificationsFailedTotal.WithLabelValues(event.Status).Inc()
		return fmt.Errorf("gateway notification, send order %s: %w", orderEntity.ID, err)
	}

	NotificationsPublishedTotal.WithLabelValues(event.Status).Inc()
	return nil
}
