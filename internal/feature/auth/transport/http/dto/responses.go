package dto

import "tradefolio_backend/internal/feature/auth/domain/entity"

// UserPayload is the public projection of a user. The credential hash
// never leaves the server.
type UserPayload struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

// NewUserPayload maps a user entity to its public projection.
func NewUserPayload(u *entity.User) UserPayload {
	return UserPayload{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
		Phone:    u.Phone,
	}
}

// AuthResponse is the success body for signup and login.
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
	Token   string      `json:"token"`
}

// VerifyResponse is the body for /auth/verify. Status is false for any
// verification failure; User carries the username when true.
type VerifyResponse struct {
	Status bool   `json:"status"`
	User   string `json:"user,omitempty"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MessageResponse is the uniform success envelope without data.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
