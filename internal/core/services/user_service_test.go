package services_test

import (
	"context"
	"testing"

	"github.com/smart-ledger/ledger-backend/internal/apperrors"
	"github.com/smart-ledger/ledger-backend/internal/core/domain"
	portssvc "github.com/smart-ledger/ledger-backend/internal/core/ports/services"
	"github.com/smart-ledger/ledger-backend/internal/core/services"
	"github.com/smart-ledger/ledger-backend/internal/dto"
	"github.com/smart-ledger/ledger-backend/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

func (suite *UserServiceTestSuite) TestCreateUser_HashesPassword() {
	ctx := context.Background()
	req := dto.CreateUserRequest{
		Username: "testuser",
		Password: "password123",
		Name:     "Test User",
	}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == "testuser" &&
			user.PasswordHash != "" &&
			user.PasswordHash != "password123" &&
			user.AuthProvider == domain.ProviderLocal
	})).Return(nil).Once()

	user, err := suite.service.CreateUser(ctx, req)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.True(utils.CheckPasswordHash("password123", user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateUser_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateUserRequest{Username: "taken", Password: "password123", Name: "Test"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.CreateUser(ctx, req)

	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       "user-1",
		Username:     "testuser",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(stored, nil).Once()

	user, err := suite.service.AuthenticateUser(ctx, "testuser", "password123")

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)

	stored := &domain.User{
		UserID:       "user-1",
		Username:     "testuser",
		PasswordHash: hash,
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "testuser").Return(stored, nil).Once()

	_, err = suite.service.AuthenticateUser(ctx, "testuser", "wrong")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUserIsUnauthorized() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	// Not-found is masked so login probing can't enumerate usernames.
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_OAuthAccountHasNoLocalPassword() {
	ctx := context.Background()
	stored := &domain.User{
		UserID:       "user-1",
		Username:     "oauth@example.com",
		AuthProvider: domain.ProviderGoogle,
	}
	suite.mockUserRepo.On("FindUserByUsername", ctx, "oauth@example.com").Return(stored, nil).Once()

	_, err := suite.service.AuthenticateUser(ctx, "oauth@example.com", "anything")

	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_ReturnsExistingIdentity() {
	ctx := context.Background()
	existing := &domain.User{UserID: "user-1", AuthProvider: domain.ProviderGoogle, ProviderUserID: "goog-1"}
	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "goog-1").Return(existing, nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, domain.ProviderGoogle, "goog-1", "a@example.com", "A", true)

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_LinksByVerifiedEmail() {
	ctx := context.Background()
	local := &domain.User{
		UserID:       "user-1",
		Username:     "testuser",
		Email:        "a@example.com",
		AuthProvider: domain.ProviderLocal,
	}
	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "goog-1").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "a@example.com").Return(local, nil).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.UserID == "user-1" && user.AuthProvider == domain.ProviderGoogle && user.ProviderUserID == "goog-1"
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, domain.ProviderGoogle, "goog-1", "a@example.com", "A", true)

	suite.Require().NoError(err)
	suite.Equal("user-1", user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateOAuthUser_NewUser() {
	ctx := context.Background()
	suite.mockUserRepo.On("FindUserByProviderID", ctx, domain.ProviderGoogle, "goog-2").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("FindUserByEmail", ctx, "b@example.com").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.ProviderUserID == "goog-2" && user.Email == "b@example.com" && user.PasswordHash == ""
	})).Return(nil).Once()

	user, err := suite.service.CreateOAuthUser(ctx, domain.ProviderGoogle, "goog-2", "b@example.com", "B", true)

	suite.Require().NoError(err)
	suite.NotEmpty(user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
