package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/service/sellerapp"
)

const userColumns = `id, email, name, role, status,
		business_name, business_address, business_description,
		approved_at, approved_by, rejected_at, rejected_by, rejection_reason,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.User, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate читает пользователя под блокировкой строки: вызывать
// только внутри транзакции txManager.Do.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*entities.User, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(scanTargets(&userDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sellerapp.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) GetPendingSellers(ctx context.Context) ([]entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users
		WHERE role = 'seller' AND status = 'pending'
		ORDER BY created_at ASC`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository pending sellers error: %w", err)
	}
	defer rows.Close()

	var users []entities.User
	for rows.Next() {
		var userDB UserDB
		if err := rows.Scan(scanTargets(&userDB)...); err != nil {
			return nil, fmt.Errorf("unexpected user repository pending sellers scan error: %w", err)
		}
		users = append(users, *ToDomain(&userDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository pending sellers rows error: %w", err)
	}

	return users, nil
}

// Approve и Reject пишут поля решения ровно один раз: строка к этому
// моменту уже проверена и заблокирована сервисом через GetByIDForUpdate.
func (r *Repository) Approve(ctx context.Context, id, reviewerID string, approvedAt time.Time) (*entities.User, error) {
	query := `UPDATE users
		SET status = 'active', approved_at = $2, approved_by = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, id, approvedAt, reviewerID).Scan(scanTargets(&userDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sellerapp.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository approve error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func (r *Repository) Reject(ctx context.Context, id, reviewerID, reason string, rejectedAt time.Time) (*entities.User, error) {
	query := `UPDATE users
		SET status = 'inactive', rejected_at = $2, rejected_by = $3, rejection_reason = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var userDB UserDB
	err := r.querier.QueryRow(ctx, query, id, rejectedAt, reviewerID, reason).Scan(scanTargets(&userDB)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sellerapp.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository reject error: %w", err)
	}

	return ToDomain(&userDB), nil
}

func scanTargets(u *UserDB) []interface{} {
	return []interface{}{
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Role,
		&u.Status,
		&u.BusinessName,
		&u.BusinessAddress,
		&u.BusinessDescription,
		&u.ApprovedAt,
		&u.ApprovedBy,
		&u.RejectedAt,
		&u.RejectedBy,
		&u.RejectionReason,
		&u.CreatedAt,
		&u.UpdatedAt,
	}
}
