package services_test

import (
	"context"
	"testing"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/core/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/fincaops/fincaops/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- Test Cases ---

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{
		Name:     "Carlos Pérez",
		Email:    "  Carlos@Finca.Example  ",
		Password: "supersecret1",
	}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "carlos@finca.example").
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Email == "carlos@finca.example" &&
			u.Tier == domain.TierFree &&
			u.PasswordHash != "" &&
			u.PasswordHash != req.Password &&
			u.CreatedBy == "system"
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("carlos@finca.example", user.Email)
	suite.Equal(domain.TierFree, user.Tier)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := &domain.User{UserID: uuid.NewString(), Email: "taken@finca.example"}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "taken@finca.example").Return(existing, nil).Once()

	user, err := suite.service.Register(ctx, dto.RegisterRequest{
		Name:     "Otro",
		Email:    "taken@finca.example",
		Password: "supersecret1",
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("supersecret1")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "ana@finca.example", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ana@finca.example").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, dto.LoginRequest{
		Email:    "Ana@Finca.Example",
		Password: "supersecret1",
	})

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("supersecret1")
	suite.Require().NoError(err)
	stored := &domain.User{UserID: uuid.NewString(), Email: "ana@finca.example", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ana@finca.example").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, dto.LoginRequest{
		Email:    "ana@finca.example",
		Password: "wrongpassword",
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownEmailHidesExistence() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByEmail", ctx, "ghost@finca.example").
		Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, dto.LoginRequest{
		Email:    "ghost@finca.example",
		Password: "whatever1",
	})

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
	suite.NotErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestTierFor() {
	ctx := context.Background()
	userID := uuid.NewString()
	suite.mockUserRepo.On("FindUserByID", ctx, userID).
		Return(&domain.User{UserID: userID, Tier: domain.TierPremium}, nil).Once()

	tier, err := suite.service.TierFor(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal(domain.TierPremium, tier)
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
