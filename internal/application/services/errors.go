package services

import (
	"errors"

	"user-account-api/internal/domain/user"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrCredentialsRequired    = errors.New("email and password required")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrFailedToGenerateToken  = errors.New("failed to generate token")
	ErrForbidden              = errors.New("forbidden")
	ErrNotFound               = errors.New("user not found")
)

// ValidationError carries the validator message to the caller unchanged.
type ValidationError = user.ValidationError
