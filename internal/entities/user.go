package entities

import "time"

type User struct {
	ID        string
	Email     string
	Name      string
	Role      UserRoleType
	Status    UserStatusType
	Business  *BusinessProfile
	Decision  *ApplicationDecision
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BusinessProfile - данные заявки продавца.
type BusinessProfile struct {
	Name        string
	Address     string
	Description string
}

// ApplicationDecision заполняется ровно один раз при решении по заявке.
type ApplicationDecision struct {
	ApprovedAt      *time.Time
	ApprovedBy      *string
	RejectedAt      *time.Time
	RejectedBy      *string
	RejectionReason *string
}

type UserRoleType string

const (
	RoleCustomer UserRoleType = "customer"
	RoleSeller   UserRoleType = "seller"
	RoleAdmin    UserRoleType = "admin"
)

func (r UserRoleType) String() string {
	return string(r)
}

type UserStatusType string

const (
	UserPending  UserStatusType = "pending"
	UserActive   UserStatusType = "active"
	UserInactive UserStatusType = "inactive"
)

func (s UserStatusType) String() string {
	return string(s)
}
