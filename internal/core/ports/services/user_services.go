package services

import (
	"context"

	"github.com/omarionadde/DHOOL/internal/core/domain"
	"github.com/omarionadde/DHOOL/internal/dto"
)

// UserSvcFacade manages application users and credential checks.
// Create, list and delete require the requesting user to hold the Admin role
// and return apperrors.ErrForbidden otherwise.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, req dto.CreateUserRequest, requestingUserID string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context, limit, offset int, requestingUserID string) ([]domain.User, error)
	// DeleteUser refuses to delete the requesting user's own account.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
	// Authenticate verifies email+password and returns the user on success.
	// A wrong email and a wrong password are indistinguishable to the caller.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	// UpdateProfile lets a user change their own name and optionally password.
	UpdateProfile(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*domain.User, error)
}
