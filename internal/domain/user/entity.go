package user

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin Role = "Admin"
	RoleStaff Role = "Staff"
)

func (r Role) Valid() bool { return r == RoleAdmin || r == RoleStaff }

type (
	ID   = uuid.UUID
	User struct {
		ID           ID
		Name         string
		Email        string
		PasswordHash string
		Phone        *string
		City         *string
		Country      *string
		Role         Role
		CreatedAt    time.Time
	}
	Users []*User

	// Filter narrows a user listing. Empty fields do not constrain the result.
	// Q matches name or email as a case-sensitive substring, Country must match exactly.
	Filter struct {
		Q       string
		Country string
	}
)

func (f Filter) IsEmpty() bool { return f.Q == "" && f.Country == "" }
