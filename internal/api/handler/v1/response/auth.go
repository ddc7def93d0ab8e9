package response

import "cafeteria-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type AdminCheckResponse struct {
	IsAdmin bool `json:"is_admin"`
}
