package response

import "construtora_xpto/internal/usecase"

type LoginResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, Email: r.Email, Role: string(r.Role)}
}
