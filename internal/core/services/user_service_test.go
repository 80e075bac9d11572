package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/omarionadde/DHOOL/internal/apperrors"
	"github.com/omarionadde/DHOOL/internal/core/domain"
	portssvc "github.com/omarionadde/DHOOL/internal/core/ports/services"
	"github.com/omarionadde/DHOOL/internal/core/services"
	"github.com/omarionadde/DHOOL/internal/dto"
	"github.com/omarionadde/DHOOL/internal/utils"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (s *UserServiceTestSuite) SetupTest() {
	s.mockUserRepo = new(MockUserRepository)
	s.service = services.NewUserService(s.mockUserRepo)
}

// expectRequester stubs the lookup of the user behind requestingUserID.
func (s *UserServiceTestSuite) expectRequester(ctx context.Context, role domain.Role) string {
	requester := domain.User{UserID: uuid.NewString(), Name: "Requester", Role: role}
	s.mockUserRepo.On("FindUserByID", ctx, requester.UserID).Return(&requester, nil).Once()
	return requester.UserID
}

func (s *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	adminID := s.expectRequester(ctx, domain.RoleAdmin)
	req := dto.CreateUserRequest{
		Name:     "Dr. Yusuf",
		Email:    "yusuf@example.com",
		Password: "s3cret-pass",
		Role:     domain.RoleDoctor,
	}

	s.mockUserRepo.On("FindUserByEmail", ctx, req.Email).Return(nil, apperrors.ErrNotFound).Once()
	s.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == req.Email &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			utils.CheckPasswordHash(req.Password, u.PasswordHash)
	})).Return(nil).Once()

	user, err := s.service.CreateUser(ctx, req, adminID)

	s.Require().NoError(err)
	s.Require().NotNil(user)
	assert.NotEmpty(s.T(), user.UserID)
	assert.Equal(s.T(), domain.RoleDoctor, user.Role)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestCreateUser_DuplicateEmail() {
	ctx := context.Background()
	adminID := s.expectRequester(ctx, domain.RoleAdmin)
	existing := domain.User{UserID: uuid.NewString(), Email: "taken@example.com"}

	s.mockUserRepo.On("FindUserByEmail", ctx, existing.Email).Return(&existing, nil).Once()

	_, err := s.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Someone",
		Email:    existing.Email,
		Password: "whatever1",
		Role:     domain.RoleStaff,
	}, adminID)

	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
	s.mockUserRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestCreateUser_NonAdminForbidden() {
	ctx := context.Background()
	staffID := s.expectRequester(ctx, domain.RoleStaff)

	_, err := s.service.CreateUser(ctx, dto.CreateUserRequest{
		Name:     "Someone",
		Email:    "new@example.com",
		Password: "whatever1",
		Role:     domain.RoleStaff,
	}, staffID)

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
	s.mockUserRepo.AssertNotCalled(s.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestListUsers_NonAdminForbidden() {
	ctx := context.Background()
	accountantID := s.expectRequester(ctx, domain.RoleAccountant)

	_, err := s.service.ListUsers(ctx, 100, 0, accountantID)

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
	s.mockUserRepo.AssertNotCalled(s.T(), "ListUsers", mock.Anything, mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestListUsers_Admin() {
	ctx := context.Background()
	adminID := s.expectRequester(ctx, domain.RoleAdmin)

	s.mockUserRepo.On("ListUsers", ctx, 100, 0).Return([]domain.User{{UserID: uuid.NewString()}}, nil).Once()

	users, err := s.service.ListUsers(ctx, 100, 0, adminID)

	s.Require().NoError(err)
	assert.Len(s.T(), users, 1)
}

func (s *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)
	user := domain.User{UserID: uuid.NewString(), Email: "a@b.co", PasswordHash: hash}

	s.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(&user, nil).Once()

	got, err := s.service.Authenticate(ctx, user.Email, "correct-horse")

	s.Require().NoError(err)
	assert.Equal(s.T(), user.UserID, got.UserID)
}

func (s *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("correct-horse")
	s.Require().NoError(err)
	user := domain.User{UserID: uuid.NewString(), Email: "a@b.co", PasswordHash: hash}

	s.mockUserRepo.On("FindUserByEmail", ctx, user.Email).Return(&user, nil).Once()

	_, err = s.service.Authenticate(ctx, user.Email, "battery-staple")

	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
}

func (s *UserServiceTestSuite) TestAuthenticate_UnknownEmailLooksLikeWrongPassword() {
	ctx := context.Background()

	s.mockUserRepo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.Authenticate(ctx, "ghost@example.com", "anything")

	s.Require().ErrorIs(err, apperrors.ErrUnauthorized)
	assert.NotErrorIs(s.T(), err, apperrors.ErrNotFound)
}

func (s *UserServiceTestSuite) TestDeleteUser_RefusesSelfDelete() {
	ctx := context.Background()
	userID := uuid.NewString()

	err := s.service.DeleteUser(ctx, userID, userID)

	s.Require().ErrorIs(err, services.ErrSelfDelete)
	s.mockUserRepo.AssertNotCalled(s.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestDeleteUser_AdminDeletesOtherUser() {
	ctx := context.Background()
	adminID := s.expectRequester(ctx, domain.RoleAdmin)
	targetID := uuid.NewString()

	s.mockUserRepo.On("DeleteUser", ctx, targetID).Return(nil).Once()

	err := s.service.DeleteUser(ctx, targetID, adminID)

	s.Require().NoError(err)
	s.mockUserRepo.AssertExpectations(s.T())
}

func (s *UserServiceTestSuite) TestDeleteUser_NonAdminForbidden() {
	ctx := context.Background()
	staffID := s.expectRequester(ctx, domain.RoleStaff)

	err := s.service.DeleteUser(ctx, uuid.NewString(), staffID)

	s.Require().ErrorIs(err, apperrors.ErrForbidden)
	s.mockUserRepo.AssertNotCalled(s.T(), "DeleteUser", mock.Anything, mock.Anything)
}

func (s *UserServiceTestSuite) TestUpdateProfile_KeepsPasswordWhenNil() {
	ctx := context.Background()
	user := domain.User{UserID: uuid.NewString(), Name: "Old Name", PasswordHash: "existing-hash"}

	s.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(&user, nil).Once()
	s.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Name == "New Name" && u.PasswordHash == "existing-hash"
	})).Return(nil).Once()

	updated, err := s.service.UpdateProfile(ctx, user.UserID, dto.UpdateProfileRequest{Name: "New Name"})

	s.Require().NoError(err)
	assert.Equal(s.T(), "New Name", updated.Name)
}

func (s *UserServiceTestSuite) TestUpdateProfile_RehashesNewPassword() {
	ctx := context.Background()
	user := domain.User{UserID: uuid.NewString(), Name: "Name", PasswordHash: "old-hash"}
	newPassword := "brand-new-pass"

	s.mockUserRepo.On("FindUserByID", ctx, user.UserID).Return(&user, nil).Once()
	s.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.PasswordHash != "old-hash" && utils.CheckPasswordHash(newPassword, u.PasswordHash)
	})).Return(nil).Once()

	_, err := s.service.UpdateProfile(ctx, user.UserID, dto.UpdateProfileRequest{Name: "Name", Password: &newPassword})

	s.Require().NoError(err)
	s.mockUserRepo.AssertExpectations(s.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
