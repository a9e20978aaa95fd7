//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	notificationGateway "marketplace/internal/gateway/kafka/notification"
	customer_stats_get "marketplace/internal/handlers/rest/customer_stats_get"
	order_confirm_receipt_post "marketplace/internal/handlers/rest/order_confirm_receipt_post"
	order_get "marketplace/internal/handlers/rest/order_get"
	order_post "marketplace/internal/handlers/rest/order_post"
	order_return_post "marketplace/internal/handlers/rest/order_return_post"
	order_status_post "marketplace/internal/handlers/rest/order_status_post"
	orders_get "marketplace/internal/handlers/rest/orders_get"
	seller_application_approve_post "marketplace/internal/handlers/rest/seller_application_approve_post"
	seller_application_reject_post "marketplace/internal/handlers/rest/seller_application_reject_post"
	seller_applications_get "marketplace/internal/handlers/rest/seller_applications_get"
	"marketplace/internal/handlers/tasks/order_autocomplete"
	"marketplace/internal/pkg/config"

	orderRepo "marketplace/internal/repository/order"
	returnRepo "marketplace/internal/repository/returnrequest"
	userRepo "marketplace/internal/repository/user"
	customerstatsService "marketplace/internal/service/customerstats"
	orderService "marketplace/internal/service/order"
	sellerappService "marketplace/internal/service/sellerapp"

	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	AutocompleteInterval time.Duration
	AutocompleteAfter    time.Duration
)

type Application struct {
	ServiceOrder         ServiceOrder
	ServiceSellerApp     ServiceSellerApp
	ServiceCustomerStats ServiceCustomerStats
	BackgroundWorkers    *background.Worker
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	order_status_post.Service
	order_confirm_receipt_post.Service
	order_return_post.Service
}

type ServiceSellerApp interface {
	seller_application_approve_post.Service
	seller_application_reject_post.Service
	seller_applications_get.Service
}

type ServiceCustomerStats interface {
	customer_stats_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAutocompleteInterval,
		provideAutocompleteAfter,

		provideOrderRepository,
		provideUserRepository,
		provideReturnRepository,
		provideNotificationGateway,

		provideServiceOrder,
		provideServiceSellerApp,
		provideServiceCustomerStats,

		provideOrderAutocompleteTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServiceSellerApp), new(*sellerappService.Reviewer)),
		wire.Bind(new(ServiceCustomerStats), new(*customerstatsService.Aggregator)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ReturnRepository), new(*returnRepo.Repository)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.Gateway)),
		wire.Bind(new(sellerappService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(customerstatsService.OrderRepository), new(*orderRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
		wire.Bind(new(sellerappService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_autocomplete.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-return-approved)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideReturnRepository,
		provideNotificationGateway,

		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.ReturnRepository), new(*returnRepo.Repository)),
		wire.Bind(new(orderService.Notifier), new(*notificationGateway.Gateway)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideReturnRepository(querier *querier.Querier) *returnRepo.Repository {
	return returnRepo.New(querier)
}

func provideNotificationGateway(producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.Gateway {
	return notificationGateway.New(producer, cfg.Kafka.NotificationsTopic)
}

func provideServiceOrder(
	log logger.Logger,
	repository orderService.Repository,
	returns orderService.ReturnRepository,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(log, repository, returns, notifier, txManager)
}

func provideServiceSellerApp(
	repository sellerappService.Repository,
	txManager sellerappService.TxManager,
) *sellerappService.Reviewer {
	return sellerappService.New(repository, txManager)
}

func provideServiceCustomerStats(orders customerstatsService.OrderRepository) *customerstatsService.Aggregator {
	return customerstatsService.New(orders)
}

func provideAutocompleteInterval(cfg *config.Config) AutocompleteInterval {
	return AutocompleteInterval(cfg.Tasks.OrderAutocompleteInterval)
}

func provideAutocompleteAfter(cfg *config.Config) AutocompleteAfter {
	return AutocompleteAfter(cfg.Tasks.OrderAutocompleteAfter)
}

func provideOrderAutocompleteTask(
	log logger.Logger,
	orderSvc order_autocomplete.Service,
	interval AutocompleteInterval,
	after AutocompleteAfter,
) *order_autocomplete.OrderAutocomplete {
	return order_autocomplete.NewOrderAutocomplete(log, orderSvc, time.Duration(interval), time.Duration(after))
}

func provideTaskList(
	orderAutocompleteTask *order_autocomplete.OrderAutocomplete,
) []background.Task {
	return []background.Task{
		orderAutocompleteTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
