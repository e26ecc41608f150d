package services

import (
	"context"
	"fmt"

	"golang.org/x/text/unicode/norm"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/domain/user"
)

type UserService struct {
	userRepository user.Repository
}

func NewUserService(userRepository user.Repository) ports.UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// ListUsers is admin only. q is NFC-normalized, matching how names and emails are stored.
func (us *UserService) ListUsers(ctx context.Context, filter user.Filter, caller ports.Identity) (user.Users, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}

	filter.Q = norm.NFC.String(filter.Q)

	users, err := us.userRepository.FetchUsers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("fetch users: %w", err)
	}

	return users, nil
}

// GetUser resolves the account first, then checks that the caller is an admin or the owner.
func (us *UserService) GetUser(ctx context.Context, id user.ID, caller ports.Identity) (*user.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetch user by id: %w", err)
	}
	if u == nil {
		return nil, ErrNotFound
	}

	if !caller.IsAdmin() && caller.ID != u.ID {
		return nil, ErrForbidden
	}

	return u, nil
}
