package ports

import (
	"context"

	"user-account-api/internal/domain/user"
)

// Identity is the authenticated caller attached to a request by the auth gate.
type Identity struct {
	ID    user.ID
	Email string
	Role  user.Role
}

func (i Identity) IsAdmin() bool { return i.Role == user.RoleAdmin }

type UserService interface {
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
	ListUsers(ctx context.Context, filter user.Filter, caller Identity) (user.Users, error)
	GetUser(ctx context.Context, id user.ID, caller Identity) (*user.User, error)
}
