package user

import (
	"context"
	"errors"
)

// ErrEmailAlreadyExists is returned by Create when the email uniqueness constraint rejects the row.
var ErrEmailAlreadyExists = errors.New("email already exists")

// Repository is the credential store. Fetch methods return (nil, nil) when no row matches.
type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchUsers(ctx context.Context, filter Filter) (Users, error)
	CreateUser(ctx context.Context, u User) (*User, error)
}
