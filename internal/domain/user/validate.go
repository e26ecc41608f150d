package user

import (
	"regexp"
	"unicode/utf8"
)

const MinPasswordLen = 6

var emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)

// Candidate is a registration record before it is hashed and stored.
type Candidate struct {
	Name     string
	Email    string
	Password string
	Role     Role
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

func IsEmail(s string) bool { return emailRe.MatchString(s) }

// Validate checks the shape of a candidate. The first failing rule wins.
func Validate(c *Candidate) error {
	if c == nil {
		return invalid("Invalid payload")
	}
	if c.Name == "" {
		return invalid("Name is required")
	}
	if c.Email == "" || !IsEmail(c.Email) {
		return invalid("Valid email is required")
	}
	if c.Password == "" || utf8.RuneCountInString(c.Password) < MinPasswordLen {
		return invalid("Password must be at least 6 characters")
	}
	if c.Role != "" && !c.Role.Valid() {
		return invalid("Role must be Admin or Staff")
	}

	return nil
}

// Registration is everything a caller submits to create an account.
type Registration struct {
	Candidate
	Phone   *string
	City    *string
	Country *string
}
