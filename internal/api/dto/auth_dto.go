package dto

import (
	"time"

	"github.com/armahcreates/iwil/internal/domain"
)

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest payload for new staff accounts.
type RegisterRequest struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Role         string `json:"role"`
	Organization string `json:"organization"`
	Phone        string `json:"phone"`
}

// SessionActionRequest payload for POST on the session endpoint.
type SessionActionRequest struct {
	Action string `json:"action"`
}

// UserResponse is the sanitized account projection. It deliberately has
// no field for the password hash.
type UserResponse struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Organization string    `json:"organization"`
	Phone        string    `json:"phone"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewUserResponse sanitizes an account for the wire.
func NewUserResponse(account *domain.StaffAccount) UserResponse {
	return UserResponse{
		ID:           account.ID,
		FirstName:    account.FirstName,
		LastName:     account.LastName,
		Email:        account.Email,
		Role:         account.Role,
		Organization: account.Organization,
		Phone:        account.Phone,
		CreatedAt:    account.CreatedAt,
	}
}

// AuthResponse is returned by login, register and refresh.
type AuthResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

// SessionResponse is returned by the session GET.
type SessionResponse struct {
	User            UserResponse `json:"user"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// MessageResponse carries a bare message (logout, errors).
type MessageResponse struct {
	Message string `json:"message"`
}
