package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_number, customer_id, status,
		subtotal, discount, shipping_fee, tax, total,
		tracking_number, created_at, updated_at, delivered_at, cancelled_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	query := `INSERT INTO orders (id, order_number, customer_id, status,
			subtotal, discount, shipping_fee, tax, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.ID,
		orderEntity.OrderNumber,
		orderEntity.CustomerID,
		orderEntity.Status.String(),
		orderEntity.Subtotal,
		orderEntity.Discount,
		orderEntity.ShippingFee,
		orderEntity.Tax,
		orderEntity.Total,
	).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	itemsDB := itemsFromDomain(orderDB.ID, orderEntity.Items)
	for _, item := range itemsDB {
		_, err = r.querier.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, seller_id, name, unit_price, quantity)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			item.OrderID, item.ProductID, item.SellerID, item.Name, item.UnitPrice, item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository create items error: %w", err)
		}
	}

	return ToDomain(&orderDB, itemsDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate читает заказ под блокировкой строки: вызывать только
// внутри транзакции txManager.Do.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.Order, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

func (r *Repository) GetAll(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	builder := qb.
		Select("o.id", "o.order_number", "o.customer_id", "o.status",
			"o.subtotal", "o.discount", "o.shipping_fee", "o.tax", "o.total",
			"o.tracking_number", "o.created_at", "o.updated_at", "o.delivered_at", "o.cancelled_at").
		From("orders o").
		OrderBy("o.created_at DESC", "o.id ASC")

	if filter.CustomerID != nil {
		builder = builder.Where(sq.Eq{"o.customer_id": *filter.CustomerID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"o.status": filter.Status.String()})
	}
	if filter.SellerID != nil {
		builder = builder.Where(
			sq.Expr("EXISTS (SELECT 1 FROM order_items i WHERE i.order_id = o.id AND i.seller_id = ?)",
				*filter.SellerID),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var ordersDB []OrderDB
	for rows.Next() {
		var orderDB OrderDB
		if err := rows.Scan(scanTargets(&orderDB)...); err != nil {
			return nil, fmt.Errorf("unexpected order repository list scan error: %w", err)
		}
		ordersDB = append(ordersDB, orderDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list rows error: %w", err)
	}

	return r.withItems(ctx, ordersDB)
}

func (r *Repository) GetByCustomerID(ctx context.Context, customerID string) ([]entities.Order, error) {
	return r.GetAll(ctx, entities.OrderFilter{CustomerID: &customerID})
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyDB := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyDB.Status != nil {
		builder = builder.Set("status", orderModifyDB.Status)
	}
	if orderModifyDB.TrackingNumber != nil {
		builder = builder.Set("tracking_number", orderModifyDB.TrackingNumber)
	}
	if orderModifyDB.DeliveredAt != nil {
		builder = builder.Set("delivered_at", orderModifyDB.DeliveredAt)
	}
	if orderModifyDB.CancelledAt != nil {
		builder = builder.Set("cancelled_at", orderModifyDB.CancelledAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyDB.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderDB OrderDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(scanTargets(&orderDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	items, err := r.getItems(ctx, []string{orderDB.ID})
	if err != nil {
		return nil, err
	}

	return ToDomain(&orderDB, items[orderDB.ID]), nil
}

// CompleteDeliveredBefore массово закрывает заказы, доставленные до cutoff
// и не подтвержденные покупателем.
func (r *Repository) CompleteDeliveredBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `UPDATE orders
		SET status = 'completed', updated_at = NOW()
		WHERE status = 'delivered' AND delivered_at < $1`

	result, err := r.querier.Exec(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("unexpected order repository autocomplete error: %w", err)
	}

	return result.RowsAffected(), nil
}

func (r *Repository) withItems(ctx context.Context, ordersDB []OrderDB) ([]entities.Order, error) {
	ids := make([]string, 0, len(ordersDB))
	for _, orderDB := range ordersDB {
		ids = append(ids, orderDB.ID)
	}

	items, err := r.getItems(ctx, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]entities.Order, 0, len(ordersDB))
	for i := range ordersDB {
		orders = append(orders, *ToDomain(&ordersDB[i], items[ordersDB[i].ID]))
	}
	return orders, nil
}

func (r *Repository) getItems(ctx context.Context, orderIDs []string) (map[string][]OrderItemDB, error) {
	if len(orderIDs) == 0 {
		return map[string][]OrderItemDB{}, nil
	}

	query := `SELECT order_id, product_id, seller_id, name, unit_price, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, product_id`

	rows, err := r.querier.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository items error: %w", err)
	}
	defer rows.Close()

	items := make(map[string][]OrderItemDB)
	for rows.Next() {
		var item OrderItemDB
		err := rows.Scan(
			&item.OrderID,
			&item.ProductID,
			&item.SellerID,
			&item.Name,
			&item.UnitPrice,
			&item.Quantity,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository items scan error: %w", err)
		}
		items[item.OrderID] = append(items[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository items rows error: %w", err)
	}

	return items, nil
}

func scanTargets(o *OrderDB) []interface{} {
	return []interface{}{
		&o.ID,
		&o.OrderNumber,
		&o.CustomerID,
		&o.Status,
		&o.Subtotal,
		&o.Discount,
		&o.ShippingFee,
		&o.Tax,
		&o.Total,
		&o.TrackingNumber,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.DeliveredAt,
		&o.CancelledAt,
	}
}
