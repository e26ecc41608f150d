package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	"user-account-api/internal/interface/api/rest/dto/auth"
	"user-account-api/internal/interface/api/rest/dto/user"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MsgInvalidPayload})
		return
	}

	u, err := ac.authService.Register(c.Request.Context(), auth.ToDomainRegistration(req))
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.Is(err, services.ErrEmailAlreadyRegistered):
			c.JSON(http.StatusBadRequest, gin.H{"message": MsgEmailRegistered})
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"message": vErr.Message})
		default:
			ac.logger.Error("Register() error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": MsgRegisterFailed})
		}
		return
	}

	c.JSON(http.StatusCreated, user.ToPublicUser(*u))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MsgInvalidPayload})
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCredentialsRequired):
			c.JSON(http.StatusBadRequest, gin.H{"message": MsgCredentials})
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"message": MsgInvalidCredential})
		default:
			ac.logger.Error("Login() error", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": MsgLoginFailed})
		}
		return
	}

	c.JSON(http.StatusOK, auth.LoginResponse{Token: token})
}
