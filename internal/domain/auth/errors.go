package auth

import "errors"

var (
	ErrInvalidToken   = errors.New("invalid or expired token")
	ErrSessionExpired = errors.New("session expired, please sign in again")
)
