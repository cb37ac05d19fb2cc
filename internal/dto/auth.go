package dto

import "github.com/fincaops/fincaops/internal/core/domain"

// RegisterRequest defines the data needed to create a hosted account.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest defines the credentials for authentication.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the issued session token.
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse defines the data returned for an account.
type UserResponse struct {
	UserID string             `json:"userID"`
	Name   string             `json:"name"`
	Email  string             `json:"email"`
	Tier   domain.AccountTier `json:"tier"`
}

// ToUserResponse converts a domain.User to UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Tier:   u.Tier,
	}
}
