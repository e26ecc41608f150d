package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"user-account-api/internal/application/ports"
	"user-account-api/internal/infrastructure/metrics"
)

const (
	CtxIdentity = "identity"

	bearerPrefix = "Bearer "

	MsgMissingAuthorization = "Missing authorization"
	MsgInvalidToken         = "Invalid token"
	MsgInvalidTokenUser     = "Invalid token user"
)

// AuthMiddleware is the gate for the user-management surface. It verifies the bearer token,
// resolves its subject to a stored account and attaches the caller identity to the context.
func AuthMiddleware(
	verifier ports.TokenVerifier,
	userService ports.UserService,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) gin.HandlerFunc {
	reject := func(c *gin.Context, msg string) {
		if mCounter != nil {
			mCounter.WithLabelValues(metrics.AuthRejectedTotal).Inc()
		}
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msg})
	}

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			reject(c, MsgMissingAuthorization)
			return
		}

		tokenStr, _, _ := strings.Cut(strings.TrimPrefix(authHeader, bearerPrefix), " ")
		claims, err := verifier.ValidateToken(tokenStr)
		if err != nil {
			reject(c, MsgInvalidToken)
			return
		}

		id, err := uuid.Parse(claims.UserID)
		if err != nil {
			reject(c, MsgInvalidTokenUser)
			return
		}
		u, err := userService.FindUserByID(c.Request.Context(), id)
		if err != nil {
			logger.Error("FindUserByID() error", zap.Error(err), zap.Stringer("user_id", id))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}
		if u == nil {
			reject(c, MsgInvalidTokenUser)
			return
		}

		c.Set(CtxIdentity, ports.Identity{
			ID:    u.ID,
			Email: u.Email,
			Role:  u.Role,
		})

		c.Next()
	}
}

// IdentityFrom returns the caller attached by AuthMiddleware.
func IdentityFrom(c *gin.Context) (ports.Identity, bool) {
	v, ok := c.Get(CtxIdentity)
	if !ok {
		return ports.Identity{}, false
	}
	id, ok := v.(ports.Identity)
	return id, ok
}
