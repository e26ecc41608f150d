package user

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := func() *Candidate {
		return &Candidate{Name: "A", Email: "a@x.com", Password: "secret1"}
	}

	tests := []struct {
		name    string
		in      *Candidate
		wantErr string
	}{
		{name: "nil candidate", in: nil, wantErr: "Invalid payload"},
		{name: "valid without role", in: valid()},
		{
			name: "valid admin",
			in:   func() *Candidate {
				c := valid()
				c.Role = RoleAdmin
				return c
			}(),
		},
		{
			name: "missing name",
			in:   func() *Candidate {
				c := valid()
				c.Name = ""
				return c
			}(),
			wantErr: "Name is required",
		},
		{
			name: "missing email",
			in:   func() *Candidate {
				c := valid()
				c.Email = ""
				return c
			}(),
			wantErr: "Valid email is required",
		},
		{
			name: "email without dot in domain",
			in:   func() *Candidate {
				c := valid()
				c.Email = "a@x"
				return c
			}(),
			wantErr: "Valid email is required",
		},
		{
			name: "short password",
			in:   func() *Candidate {
				c := valid()
				c.Password = "12345"
				return c
			}(),
			wantErr: "Password must be at least 6 characters",
		},
		{
			name: "multibyte password counts runes",
			in:   func() *Candidate {
				c := valid()
				c.Password = "пароль"
				return c
			}(),
		},
		{
			name: "unknown role",
			in:   func() *Candidate {
				c := valid()
				c.Role = "Owner"
				return c
			}(),
			wantErr: "Role must be Admin or Staff",
		},
		{
			name:    "name checked before email",
			in:      &Candidate{Email: "bad"},
			wantErr: "Name is required",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}

			require.EqualError(t, err, tt.wantErr)
			var vErr *ValidationError
			assert.True(t, errors.As(err, &vErr))
		})
	}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@x.com"))
	assert.True(t, IsEmail("first.last@sub.example.org"))
	assert.False(t, IsEmail("a x@com"))
	assert.False(t, IsEmail("@."))
	assert.False(t, IsEmail("plain"))
}
