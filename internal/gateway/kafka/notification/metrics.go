package notification

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	NotificationsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_notifications_published_total",
			Help: "Total number of order status notifications published to Kafka",
		},
		[]string{"status"},
	)

	NotificationsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_notifications_failed_total",
			Help: "Total number of order status notifications that failed to publish",
		},
		[]string{"status"},
	)
)
