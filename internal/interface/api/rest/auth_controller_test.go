package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	domain "user-account-api/internal/domain/user"
	"user-account-api/internal/interface/api/rest/dto/auth"
)

type fakeAuthService struct {
	RegisterFunc func(ctx context.Context, in domain.Registration) (*domain.User, error)
	LoginFunc    func(ctx context.Context, email, password string) (string, error)
}

func (f *fakeAuthService) Register(ctx context.Context, in domain.Registration) (*domain.User, error) {
	if f.RegisterFunc == nil {
		return nil, errors.New("not used")
	}
	return f.RegisterFunc(ctx, in)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, error) {
	if f.LoginFunc == nil {
		return "", errors.New("not used")
	}
	return f.LoginFunc(ctx, email, password)
}

func newRouterWithController(t *testing.T, as ports.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	NewAuthController(r, zap.NewNop(), as)
	return r
}

func doPOST(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var b []byte
	switch v := body.(type) {
	case string:
		b = []byte(v)
	default:
		var err error
		b, err = json.Marshal(v)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAuthController_RegisterHandler(t *testing.T) {
	city := "Porto"
	stored := &domain.User{
		ID:           uuid.New(),
		Name:         "A",
		Email:        "a@x.com",
		PasswordHash: "$2a$10$shouldneverleak",
		City:         &city,
		Role:         domain.RoleStaff,
		CreatedAt:    time.Now().UTC(),
	}

	tests := []struct {
		name     string
		body     any
		register func(ctx context.Context, in domain.Registration) (*domain.User, error)
		wantCode int
		wantMsg  string
	}{
		{
			name:     "invalid JSON",
			body:     "{bad json",
			wantCode: http.StatusBadRequest,
			wantMsg:  "Invalid payload",
		},
		{
			name: "duplicate email",
			body: auth.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"},
			register: func(ctx context.Context, in domain.Registration) (*domain.User, error) {
				return nil, services.ErrEmailAlreadyRegistered
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Email already registered",
		},
		{
			name: "validation message verbatim",
			body: auth.RegisterRequest{Email: "a@x.com", Password: "secret1"},
			register: func(ctx context.Context, in domain.Registration) (*domain.User, error) {
				return nil, &services.ValidationError{Message: "Name is required"}
			},
			wantCode: http.StatusBadRequest,
			wantMsg:  "Name is required",
		},
		{
			name: "unexpected error hidden",
			body: auth.RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"},
			register: func(ctx context.Context, in domain.Registration) (*domain.User, error) {
				return nil, errors.New("pq: connection refused")
			},
			wantCode: http.StatusInternalServerError,
			wantMsg:  "Registration failed",
		},
		{
			name: "created",
			body: map[string]any{
				"name": "A", "email": "a@x.com", "password": "secret1",
				"role": "Staff", "city": "Porto",
			},
			register: func(ctx context.Context, in domain.Registration) (*domain.User, error) {
				assert.Equal(t, "A", in.Name)
				assert.Equal(t, "secret1", in.Password)
				assert.Equal(t, domain.RoleStaff, in.Role)
				require.NotNil(t, in.City)
				assert.Equal(t, "Porto", *in.City)
				assert.Nil(t, in.Phone)
				return stored, nil
			},
			wantCode: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newRouterWithController(t, &fakeAuthService{RegisterFunc: tt.register})
			rr := doPOST(t, r, RouteRegister, tt.body)

			require.Equal(t, tt.wantCode, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, resp["message"])
				return
			}

			assert.Equal(t, stored.ID.String(), resp["id"])
			assert.Equal(t, "Porto", resp["city"])
			assert.NotContains(t, resp, "password")
			assert.NotContains(t, rr.Body.String(), stored.PasswordHash)
		})
	}
}

func TestAuthController_LoginHandler(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		login    func(ctx context.Context, email, password string) (string, error)
		wantCode int
		wantJSON map[string]any
	}{
		{
			name:     "invalid JSON",
			body:     "{bad json",
			wantCode: http.StatusBadRequest,
			wantJSON: map[string]any{"message": "Invalid payload"},
		},
		{
			name: "missing fields",
			body: auth.LoginRequest{Email: "a@x.com"},
			login: func(ctx context.Context, email, password string) (string, error) {
				return "", services.ErrCredentialsRequired
			},
			wantCode: http.StatusBadRequest,
			wantJSON: map[string]any{"message": "Email and password required"},
		},
		{
			name: "invalid credentials",
			body: auth.LoginRequest{Email: "a@x.com", Password: "nope"},
			login: func(ctx context.Context, email, password string) (string, error) {
				return "", services.ErrInvalidCredentials
			},
			wantCode: http.StatusBadRequest,
			wantJSON: map[string]any{"message": "Invalid credentials"},
		},
		{
			name: "token failure -> 500",
			body: auth.LoginRequest{Email: "a@x.com", Password: "secret1"},
			login: func(ctx context.Context, email, password string) (string, error) {
				return "", services.ErrFailedToGenerateToken
			},
			wantCode: http.StatusInternalServerError,
			wantJSON: map[string]any{"message": "Login failed"},
		},
		{
			name: "success",
			body: auth.LoginRequest{Email: "a@x.com", Password: "secret1"},
			login: func(ctx context.Context, email, password string) (string, error) {
				assert.Equal(t, "a@x.com", email)
				assert.Equal(t, "secret1", password)
				return "tok_123", nil
			},
			wantCode: http.StatusOK,
			wantJSON: map[string]any{"token": "tok_123"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newRouterWithController(t, &fakeAuthService{LoginFunc: tt.login})
			rr := doPOST(t, r, RouteLogin, tt.body)

			require.Equal(t, tt.wantCode, rr.Code)

			var resp map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantJSON, resp)
		})
	}
}
