package auth

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	LoginResponse struct {
		Token string `json:"token"`
	}

	RegisterRequest struct {
		Name     string  `json:"name"`
		Email    string  `json:"email"`
		Password string  `json:"password"`
		Role     string  `json:"role"`
		Phone    *string `json:"phone"`
		City     *string `json:"city"`
		Country  *string `json:"country"`
	}
)
