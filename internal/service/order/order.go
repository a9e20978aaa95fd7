package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type Order struct {
	log        handlerLogger
	repository Repository
	returns    ReturnRepository
	notifier   Notifier
	txManager  TxManager
}

func New(
	log handlerLogger,
	repository Repository,
	returns ReturnRepository,
	notifier Notifier,
	txManager TxManager,
) *Order {
	serviceLog := log.With()

	return &Order{
		log:        serviceLog,
		repository: repository,
		returns:    returns,
		notifier:   notifier,
		txManager:  txManager,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderCreate entities.OrderCreate) (*entities.Order, error) {
	if err := validateOrderCreate(orderCreate); err != nil {
		return nil, err
	}

	newOrder := entities.Order{
		ID:          uuid.NewString(),
		OrderNumber: orderCreate.OrderNumber,
		CustomerID:  orderCreate.CustomerID,
		Status:      entities.OrderPending,
		Items:       orderCreate.Items,
		Subtotal:    orderCreate.Subtotal,
		Discount:    orderCreate.Discount,
		ShippingFee: orderCreate.ShippingFee,
		Tax:         orderCreate.Tax,
		Total:       orderCreate.Total,
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, newOrder)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidOrderID(id) {
		return nil, ErrMissingRequiredFields
	}

	orderEntity, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func (s *Order) GetOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	if filter.Status != nil && !filter.Status.IsKnown() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.GetAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	return orders, nil
}

// AdvanceStatus переводит заказ в запрошенный статус, если тот является
// допустимым преемником текущего. Чтение и запись выполняются в одной
// транзакции под блокировкой строки: гонка двух запросов разрешается
// по последнему зафиксированному статусу, а не по устаревшему снимку.
func (s *Order) AdvanceStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidOrderID(*orderModify.ID) {
		return nil, ErrMissingRequiredFields
	}

	target := *orderModify.Status
	if !target.IsKnown() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, target)
	}
	if target == entities.OrderRefunded {
		// refunded достижим только через подтверждение возврата
		return nil, fmt.Errorf("%w: refunded is not reachable directly", ErrInvalidTransition)
	}

	var previous entities.OrderStatusType
	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, *orderModify.ID)
		if err != nil {
			return fmt.Errorf("get order for status change: %w", err)
		}

		if !current.Status.CanTransitionTo(target) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, target)
		}
		previous = current.Status

		modify := entities.OrderModify{
			ID:     orderModify.ID,
			Status: &target,
		}
		switch target {
		case entities.OrderShipping:
			modify.TrackingNumber = orderModify.TrackingNumber
		case entities.OrderDelivered:
			deliveredAt := time.Now().UTC()
			modify.DeliveredAt = &deliveredAt
		case entities.OrderCancelled:
			cancelledAt := time.Now().UTC()
			modify.CancelledAt = &cancelledAt
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, previous)
	return updated, nil
}

// ConfirmReceipt - подтверждение получения покупателем, delivered -> completed.
func (s *Order) ConfirmReceipt(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for receipt confirmation: %w", err)
		}

		if current.Status != entities.OrderDelivered {
			return fmt.Errorf("%w: order is %s, receipt confirmation requires delivered", ErrInvalidState, current.Status)
		}

		completed := entities.OrderCompleted
		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &completed,
		})
		if err != nil {
			return fmt.Errorf("complete order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, entities.OrderDelivered)
	return updated, nil
}

// RequestReturn создает заявку на возврат, статус заказа не меняется:
// в refunded заказ уйдет только после подтверждения возврата.
func (s *Order) RequestReturn(ctx context.Context, orderID, customerID, reason string) (*entities.ReturnRequest, error) {
	if !isValidOrderID(orderID) || !isValidOrderID(customerID) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidReason(reason) {
		return nil, ErrEmptyReason
	}

	var created *entities.ReturnRequest
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderEntity, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for return request: %w", err)
		}
		if orderEntity.CustomerID != customerID {
			return ErrOrderNotFound
		}
		if orderEntity.Status != entities.OrderDelivered {
			return fmt.Errorf("%w: order is %s, return requires delivered", ErrInvalidState, orderEntity.Status)
		}

		open, err := s.returns.GetOpenByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("check open return request: %w", err)
		}
		if open != nil {
			return ErrReturnAlreadyRequested
		}

		created, err = s.returns.Create(ctx, entities.ReturnRequest{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			CustomerID: customerID,
			Reason:     reason,
			Status:     entities.ReturnRequested,
		})
		if err != nil {
			return fmt.Errorf("create return request: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ApproveReturn применяет внешнее решение по возврату: delivered -> refunded.
// Вызывается только из kafka-воркера, публичного endpoint у перехода нет.
func (s *Order) ApproveReturn(ctx context.Context, orderID, returnRequestID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) || !isValidOrderID(returnRequestID) {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for return approval: %w", err)
		}
		if current.Status != entities.OrderDelivered {
			return fmt.Errorf("%w: order is %s, refund requires delivered", ErrInvalidState, current.Status)
		}

		request, err := s.returns.GetByID(ctx, returnRequestID)
		if err != nil {
			return fmt.Errorf("get return request: %w", err)
		}
		if request.OrderID != orderID {
			return ErrReturnNotFound
		}
		if request.Status != entities.ReturnRequested {
			return fmt.Errorf("%w: return request already %s", ErrInvalidState, request.Status)
		}

		decidedAt := time.Now().UTC()
		if _, err := s.returns.Decide(ctx, returnRequestID, entities.ReturnApproved, decidedAt); err != nil {
			return fmt.Errorf("approve return request: %w", err)
		}

		refunded := entities.OrderRefunded
		updated, err = s.repository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &refunded,
		})
		if err != nil {
			return fmt.Errorf("refund order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyStatusChanged(ctx, updated, entities.OrderDelivered)
	return updated, nil
}

// CompleteStaleDelivered закрывает доставленные заказы, которые покупатель
// не подтвердил в отведенный срок.
func (s *Order) CompleteStaleDelivered(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	rowsAffected, err := s.repository.CompleteDeliveredBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("complete stale delivered orders: %w", err)
	}

	return rowsAffected, nil
}

func (s *Order) notifyStatusChanged(ctx context.Context, orderEntity *entities.Order, previous entities.OrderStatusType) {
	err := s.notifier.OrderStatusChanged(ctx, orderEntity, previous)
	if err != nil {
		// уведомление best-effort, переход уже зафиксирован
		s.log.With(
			logger.NewField("order", orderEntity.ID),
			logger.NewField("status", orderEntity.Status.String()),
			logger.NewField("error", err),
		).Warn("failed to publish order status notification")
	}
}
