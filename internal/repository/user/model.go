package user

import "time"

type UserDB struct {
	ID                  string
	Email               string
	Name                string
	Role                string
	Status              string
	BusinessName        *string
	BusinessAddress     *string
	BusinessDescription *string
	ApprovedAt          *time.Time
	ApprovedBy          *string
	RejectedAt          *time.Time
	RejectedBy          *string
	RejectionReason     *string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
