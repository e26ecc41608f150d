package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	// User is the public shape of an account. It has no password field.
	User struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Phone     *string   `json:"phone"`
		City      *string   `json:"city"`
		Country   *string   `json:"country"`
		Role      string    `json:"role"`
		CreatedAt time.Time `json:"createdAt"`
	}
	Users []User

	ListQuery struct {
		Q       string `form:"q"`
		Country string `form:"country"`
	}
)
