package services

import (
	"context"
	"errors"
	"sync"

	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/mq"
)

type FakeUserRepository struct {
	FetchUserByIDFunc    func(ctx context.Context, id user.ID) (*user.User, error)
	FetchUserByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FetchUsersFunc       func(ctx context.Context, filter user.Filter) (user.Users, error)
	CreateUserFunc       func(ctx context.Context, u user.User) (*user.User, error)
}

func (f *FakeUserRepository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	if f.FetchUserByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByIDFunc(ctx, id)
}
func (f *FakeUserRepository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	if f.FetchUserByEmailFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUserByEmailFunc(ctx, email)
}
func (f *FakeUserRepository) FetchUsers(ctx context.Context, filter user.Filter) (user.Users, error) {
	if f.FetchUsersFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchUsersFunc(ctx, filter)
}
func (f *FakeUserRepository) CreateUser(ctx context.Context, u user.User) (*user.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errors.New("not used")
	}
	return f.CreateUserFunc(ctx, u)
}

type fakeTokenIssuer struct {
	GenerateJWTFunc func(userID, role string) (string, error)
}

func (f *fakeTokenIssuer) GenerateJWT(userID, role string) (string, error) {
	return f.GenerateJWTFunc(userID, role)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []mq.Event
}

func (p *recordingPublisher) Publish(_ context.Context, e mq.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
}

func (p *recordingPublisher) Events() []mq.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]mq.Event(nil), p.events...)
}
