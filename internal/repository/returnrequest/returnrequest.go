package returnrequest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

const returnColumns = `id, order_id, customer_id, reason, status, created_at, decided_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, request entities.ReturnRequest) (*entities.ReturnRequest, error) {
	query := `INSERT INTO return_requests (id, order_id, customer_id, reason, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + returnColumns

	var requestDB ReturnRequestDB
	err := r.querier.QueryRow(
		ctx,
		query,
		request.ID,
		request.OrderID,
		request.CustomerID,
		request.Reason,
		request.Status.String(),
	).Scan(scanTargets(&requestDB)...)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrReturnAlreadyRequested
		}
		return nil, fmt.Errorf("unexpected return request repository create error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests WHERE id = $1`

	var requestDB ReturnRequestDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&requestDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrReturnNotFound
		}
		return nil, fmt.Errorf("unexpected return request repository get error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

// GetOpenByOrderID возвращает нерассмотренную заявку по заказу,
// nil без ошибки - если такой нет.
func (r *Repository) GetOpenByOrderID(ctx context.Context, orderID string) (*entities.ReturnRequest, error) {
	query := `SELECT ` + returnColumns + ` FROM return_requests
		WHERE order_id = $1 AND status = 'requested'`

	var requestDB ReturnRequestDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(scanTargets(&requestDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("unexpected return request repository get open error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

func (r *Repository) Decide(ctx context.Context, id string, status entities.ReturnStatusType, decidedAt time.Time) (*entities.ReturnRequest, error) {
	query := `UPDATE return_requests
		SET status = $2, decided_at = $3
		WHERE id = $1
		RETURNING ` + returnColumns

	var requestDB ReturnRequestDB
	err := r.querier.QueryRow(ctx, query, id, status.String(), decidedAt).Scan(scanTargets(&requestDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrReturnNotFound
		}
		return nil, fmt.Errorf("unexpected return request repository decide error: %w", err)
	}

	return ToDomain(&requestDB), nil
}

func scanTargets(rr *ReturnRequestDB) []interface{} {
	return []interface{}{
		&rr.ID,
		&rr.OrderID,
		&rr.CustomerID,
		&rr.Reason,
		&rr.Status,
		&rr.CreatedAt,
		&rr.DecidedAt,
	}
}
