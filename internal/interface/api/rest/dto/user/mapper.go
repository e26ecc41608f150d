package user

import (
	"user-account-api/internal/domain/user"
)

// ToPublicUser projects a stored account onto its public shape.
func ToPublicUser(uDomain user.User) User {
	var u = User{
		ID:        uDomain.ID,
		Name:      uDomain.Name,
		Email:     uDomain.Email,
		Phone:     uDomain.Phone,
		City:      uDomain.City,
		Country:   uDomain.Country,
		Role:      string(uDomain.Role),
		CreatedAt: uDomain.CreatedAt,
	}

	return u
}

func ToPublicUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToPublicUser(*u)
	}

	return us
}

func ToDomainFilter(q ListQuery) user.Filter {
	return user.Filter{
		Q:       q.Q,
		Country: q.Country,
	}
}
