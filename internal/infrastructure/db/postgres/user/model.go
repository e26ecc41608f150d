package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID
		Name         string
		Email        string
		PasswordHash string
		Phone        *string
		City         *string
		Country      *string
		Role         string
		CreatedAt    time.Time
	}
	Users []*User
)
