package ports

import "user-account-api/internal/infrastructure/jwt"

type TokenIssuer interface {
	GenerateJWT(userID, role string) (string, error)
}

type TokenVerifier interface {
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}
