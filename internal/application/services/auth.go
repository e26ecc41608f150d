package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/unicode/norm"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/domain/user"
	"user-account-api/internal/infrastructure/metrics"
	"user-account-api/internal/infrastructure/mq"
	dto "user-account-api/internal/interface/api/rest/dto/user"
)

const BcryptCost = 10

type AuthService struct {
	userRepository user.Repository
	tokens         ports.TokenIssuer
	events         ports.EventPublisher
	mCounter       *prometheus.CounterVec
	now            func() time.Time
}

func NewAuthService(
	userRepository user.Repository,
	tokens ports.TokenIssuer,
	events ports.EventPublisher,
	mCounter *prometheus.CounterVec,
) ports.AuthService {
	return &AuthService{
		userRepository: userRepository,
		tokens:         tokens,
		events:         events,
		mCounter:       mCounter,
		now:            time.Now,
	}
}

// Register looks the email up, validates, hashes and stores a new account.
// The lookup runs before validation, so a taken email is reported even for an otherwise invalid payload.
func (as *AuthService) Register(ctx context.Context, in user.Registration) (*user.User, error) {
	in.Email = norm.NFC.String(in.Email)

	existing, err := as.userRepository.FetchUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("fetch user by email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}

	candidate := in.Candidate
	if err = user.Validate(&candidate); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(candidate.Password), BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, &ValidationError{Message: "Password must be at most 72 bytes"}
		}
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := candidate.Role
	if role == "" {
		role = user.RoleStaff
	}

	u, err := as.userRepository.CreateUser(ctx, user.User{
		ID:           uuid.New(),
		Name:         norm.NFC.String(candidate.Name),
		Email:        candidate.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		City:         in.City,
		Country:      in.Country,
		Role:         role,
		CreatedAt:    as.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailAlreadyExists) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	as.events.Publish(ctx, mq.NewUserRegistered(dto.ToPublicUser(*u)))
	as.mCounter.WithLabelValues(metrics.UserRegisteredTotal).Inc()

	return u, nil
}

// Login returns a signed token for valid credentials. An unknown email and a wrong
// password both yield ErrInvalidCredentials. The email is NFC-normalized like on Register.
func (as *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrCredentialsRequired
	}

	u, err := as.userRepository.FetchUserByEmail(ctx, norm.NFC.String(email))
	if err != nil {
		return "", fmt.Errorf("fetch user by email: %w", err)
	}
	if u == nil {
		as.mCounter.WithLabelValues(metrics.LoginFailedTotal).Inc()
		return "", ErrInvalidCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		as.mCounter.WithLabelValues(metrics.LoginFailedTotal).Inc()
		return "", ErrInvalidCredentials
	}

	token, err := as.tokens.GenerateJWT(u.ID.String(), string(u.Role))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToGenerateToken, err)
	}

	as.mCounter.WithLabelValues(metrics.LoginSucceededTotal).Inc()

	return token, nil
}
