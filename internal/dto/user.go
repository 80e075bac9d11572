package dto

import (
	"time"

	"github.com/omarionadde/DHOOL/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a new user.
type CreateUserRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     domain.Role `json:"role" binding:"required,oneof=Admin Doctor Staff Accountant"`
	Avatar   string      `json:"avatar"`
}

// UpdateProfileRequest lets a user update their own profile.
// Password is optional; nil leaves the current password in place.
type UpdateProfileRequest struct {
	Name     string  `json:"name" binding:"required"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// UserResponse mirrors domain.User without credential material.
type UserResponse struct {
	UserID    string      `json:"userID"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Role      domain.Role `json:"role"`
	Avatar    string      `json:"avatar,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// ToUserResponse converts a domain.User to a UserResponse DTO.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

// ToUserResponses converts a slice of users.
func ToUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}

// ListUsersResponse wraps the user list endpoint payload.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}
