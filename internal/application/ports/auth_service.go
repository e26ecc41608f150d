package ports

import (
	"context"

	"user-account-api/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, in user.Registration) (*user.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
