package auth

import (
	"user-account-api/internal/domain/user"
)

func ToDomainRegistration(r RegisterRequest) user.Registration {
	return user.Registration{
		Candidate: user.Candidate{
			Name:     r.Name,
			Email:    r.Email,
			Password: r.Password,
			Role:     user.Role(r.Role),
		},
		Phone:   r.Phone,
		City:    r.City,
		Country: r.Country,
	}
}
