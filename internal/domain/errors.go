package domain

import "errors"

var (
	ErrStaffNotFound  = errors.New("staff member not found")
	ErrInvalidToken   = errors.New("invalid token")
	ErrUnknownDriver  = errors.New("unknown store driver")
	ErrNilStoreClient = errors.New("store client is nil")
)
