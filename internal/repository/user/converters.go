package user

import (
	"marketplace/internal/entities"
)

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}

	userEntity := &entities.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      entities.UserRoleType(u.Role),
		Status:    entities.UserStatusType(u.Status),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}

	if u.BusinessName != nil || u.BusinessAddress != nil || u.BusinessDescription != nil {
		userEntity.Business = &entities.BusinessProfile{}
		if u.BusinessName != nil {
			userEntity.Business.Name = *u.BusinessName
		}
		if u.BusinessAddress != nil {
			userEntity.Business.Address = *u.BusinessAddress
		}
		if u.BusinessDescription != nil {
			userEntity.Business.Description = *u.BusinessDescription
		}
	}

	if u.ApprovedAt != nil || u.RejectedAt != nil {
		userEntity.Decision = &entities.ApplicationDecision{
			ApprovedAt:      u.ApprovedAt,
			ApprovedBy:      u.ApprovedBy,
			RejectedAt:      u.RejectedAt,
			RejectedBy:      u.RejectedBy,
			RejectionReason: u.RejectionReason,
		}
	}

	return userEntity
}
