package user

import "errors"

var (
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrCompanyIDInvalid        = errors.New("selected company ID is not a valid UUID")
)
