package domain

import "time"

// Role is the coarse access level of an application user.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleDoctor     Role = "Doctor"
	RoleStaff      Role = "Staff"
	RoleAccountant Role = "Accountant"
)

// User is an application user (cashier, doctor, administrator).
// PasswordHash is a bcrypt hash and never leaves the process in responses.
type User struct {
	UserID       string    `json:"userID"` // Primary Key (UUID)
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
