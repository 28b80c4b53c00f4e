package model

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMalformedToken     = errors.New("malformed token")
	ErrExpiredToken       = errors.New("expired token")
	ErrIdentityMismatch   = errors.New("refresh token identity mismatch")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already taken")
)
