package services

import "errors"

var (
	ErrDuplicateIdentity  = errors.New("an account with this phone number or email already exists")
	ErrWeakPassword       = errors.New("password must be at least 8 characters and cannot be entirely numeric")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrOutOfRange         = errors.New("value outside the allowed range")
	ErrNotFound           = errors.New("record not found")
)
