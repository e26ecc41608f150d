package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/application/services"
	"user-account-api/internal/interface/api/rest/dto/user"
	"user-account-api/internal/interface/api/rest/middleware"
	"user-account-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

// NewUserController mounts the user routes behind authGate.
func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	authGate gin.HandlerFunc,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, authGate, uc.ListUsersHandler)
	r.GET(RouteUser, authGate, uc.GetUserHandler)

	return uc
}

func (uc *UserController) ListUsersHandler(c *gin.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": MsgUnauthorized})
		return
	}

	var q user.ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": MsgInvalidQuery})
		return
	}

	users, err := uc.userService.ListUsers(c.Request.Context(), user.ToDomainFilter(q), caller)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": MsgForbidden})
			return
		}
		uc.logger.Error("ListUsers() error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": MsgGetUsersFailed})
		return
	}

	c.JSON(http.StatusOK, user.ToPublicUsers(users))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	caller, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": MsgUnauthorized})
		return
	}

	// an id that is not a UUID cannot name a stored account
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": MsgNotFound})
		return
	}

	u, err := uc.userService.GetUser(c.Request.Context(), id, caller)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": MsgNotFound})
		case errors.Is(err, services.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": MsgForbidden})
		default:
			uc.logger.Error("GetUser() error", zap.Error(err), zap.Stringer("user_id", id))
			c.JSON(http.StatusInternalServerError, gin.H{"message": MsgGetUserFailed})
		}
		return
	}

	c.JSON(http.StatusOK, user.ToPublicUser(*u))
}
