package sellerapp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/entities"
)

// Reviewer рассматривает заявки продавцов: pending -> active (approve)
// или pending -> inactive (reject). Повторное решение по уже рассмотренной
// заявке - ошибка, а не тихий успех: иначе возможна двойная обработка.
type Reviewer struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Reviewer {
	return &Reviewer{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Reviewer) Approve(ctx context.Context, userID, reviewerID string) (*entities.User, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(reviewerID) == "" {
		return nil, ErrMissingRequiredFields
	}

	var approved *entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		applicant, err := s.checkPending(ctx, userID)
		if err != nil {
			return err
		}

		approvedAt := time.Now().UTC()
		approved, err = s.repository.Approve(ctx, applicant.ID, reviewerID, approvedAt)
		if err != nil {
			return fmt.Errorf("approve seller application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return approved, nil
}

func (s *Reviewer) Reject(ctx context.Context, userID, reviewerID, reason string) (*entities.User, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(reviewerID) == "" {
		return nil, ErrMissingRequiredFields
	}
	if strings.TrimSpace(reason) == "" {
		return nil, ErrEmptyReason
	}

	var rejected *entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		applicant, err := s.checkPending(ctx, userID)
		if err != nil {
			return err
		}

		rejectedAt := time.Now().UTC()
		rejected, err = s.repository.Reject(ctx, applicant.ID, reviewerID, reason, rejectedAt)
		if err != nil {
			return fmt.Errorf("reject seller application: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rejected, nil
}

func (s *Reviewer) GetPendingApplications(ctx context.Context) ([]entities.User, error) {
	applications, err := s.repository.GetPendingSellers(ctx)
	if err != nil {
		return nil, fmt.Errorf("get pending seller applications: %w", err)
	}

	return applications, nil
}

func (s *Reviewer) checkPending(ctx context.Context, userID string) (*entities.User, error) {
	applicant, err := s.repository.GetByIDForUpdate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get seller application: %w", err)
	}

	if applicant.Role != entities.RoleSeller {
		return nil, fmt.Errorf("%w: role is %s", ErrNotSeller, applicant.Role)
	}
	if applicant.Status != entities.UserPending {
		return nil, fmt.Errorf("%w: status is %s", ErrAlreadyDecided, applicant.Status)
	}

	return applicant, nil
}
