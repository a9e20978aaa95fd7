package sellerapp

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrEmptyReason           = errors.New("rejection reason must not be empty")
	ErrNotSeller             = errors.New("user is not a seller application")
	ErrAlreadyDecided        = errors.New("application has already been decided")

	ErrUserNotFound = errors.New("user not found")
)
