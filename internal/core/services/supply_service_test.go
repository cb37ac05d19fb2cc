package services_test

import (
	"context"
	"testing"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/core/services"
	"github.com/fincaops/fincaops/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type SupplyServiceTestSuite struct {
	suite.Suite
	mockSupplyRepo *MockSupplyRepository
	service        portssvc.SupplySvcFacade
	ownerID        string
}

func (suite *SupplyServiceTestSuite) SetupTest() {
	suite.mockSupplyRepo = new(MockSupplyRepository)
	suite.ownerID = uuid.NewString()
	suite.service = services.NewSupplyService(suite.mockSupplyRepo, services.NewUnmeteredQuotaGuard(), uuid.NewString)
}

// --- Test Cases ---

func (suite *SupplyServiceTestSuite) TestCreateSupply_InitialStockSnapshotted() {
	ctx := context.Background()
	req := dto.CreateSupplyRequest{
		Name:         "Fungicida",
		Unit:         "L",
		CostPerUnit:  decimal.NewFromInt(45000),
		InitialStock: decimal.NewFromInt(20),
	}

	suite.mockSupplyRepo.On("CountSupplies", ctx, suite.ownerID).Return(int64(0), nil).Once()
	suite.mockSupplyRepo.On("SaveSupply", ctx, mock.MatchedBy(func(s domain.Supply) bool {
		return s.CurrentStock.Equal(decimal.NewFromInt(20)) &&
			s.InitialStock.Equal(decimal.NewFromInt(20)) &&
			s.OwnerID == suite.ownerID
	})).Return(nil).Once()

	supply, err := suite.service.CreateSupply(ctx, suite.ownerID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(supply)
	suite.True(supply.CurrentStock.Equal(supply.InitialStock))
	suite.mockSupplyRepo.AssertExpectations(suite.T())
}

func (suite *SupplyServiceTestSuite) TestCreateSupply_RejectsNegativeValues() {
	ctx := context.Background()

	supply, err := suite.service.CreateSupply(ctx, suite.ownerID, dto.CreateSupplyRequest{
		Name:         "Fungicida",
		Unit:         "L",
		InitialStock: decimal.NewFromInt(-1),
	})

	suite.Require().Error(err)
	suite.Nil(supply)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockSupplyRepo.AssertNotCalled(suite.T(), "SaveSupply", mock.Anything, mock.Anything)
}

func (suite *SupplyServiceTestSuite) TestRestockSupply_AddsQuantity() {
	ctx := context.Background()
	supply := &domain.Supply{
		SupplyID:     uuid.NewString(),
		OwnerID:      suite.ownerID,
		Name:         "Urea",
		Unit:         "kg",
		CurrentStock: decimal.NewFromInt(5),
		InitialStock: decimal.NewFromInt(50),
	}

	suite.mockSupplyRepo.On("FindSupplyByID", ctx, suite.ownerID, supply.SupplyID).Return(supply, nil).Once()
	suite.mockSupplyRepo.On("UpdateSupply", ctx, mock.MatchedBy(func(s domain.Supply) bool {
		return s.CurrentStock.Equal(decimal.NewFromInt(30)) &&
			s.InitialStock.Equal(decimal.NewFromInt(50))
	})).Return(nil).Once()

	updated, err := suite.service.RestockSupply(ctx, suite.ownerID, supply.SupplyID, dto.RestockSupplyRequest{
		Quantity: decimal.NewFromInt(25),
	})

	suite.Require().NoError(err)
	suite.True(updated.CurrentStock.Equal(decimal.NewFromInt(30)))
	suite.mockSupplyRepo.AssertExpectations(suite.T())
}

func (suite *SupplyServiceTestSuite) TestRestockSupply_RejectsNonPositiveQuantity() {
	ctx := context.Background()

	updated, err := suite.service.RestockSupply(ctx, suite.ownerID, uuid.NewString(), dto.RestockSupplyRequest{
		Quantity: decimal.Zero,
	})

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SupplyServiceTestSuite) TestUpdateSupply_StockUntouchedByEdits() {
	ctx := context.Background()
	supply := &domain.Supply{
		SupplyID:     uuid.NewString(),
		OwnerID:      suite.ownerID,
		Name:         "Urea",
		Unit:         "kg",
		CostPerUnit:  decimal.NewFromInt(2000),
		CurrentStock: decimal.NewFromInt(7),
	}
	newCost := decimal.NewFromInt(2600)

	suite.mockSupplyRepo.On("FindSupplyByID", ctx, suite.ownerID, supply.SupplyID).Return(supply, nil).Once()
	suite.mockSupplyRepo.On("UpdateSupply", ctx, mock.MatchedBy(func(s domain.Supply) bool {
		return s.CostPerUnit.Equal(newCost) && s.CurrentStock.Equal(decimal.NewFromInt(7))
	})).Return(nil).Once()

	updated, err := suite.service.UpdateSupply(ctx, suite.ownerID, supply.SupplyID, dto.UpdateSupplyRequest{
		CostPerUnit: &newCost,
	})

	suite.Require().NoError(err)
	suite.True(updated.CostPerUnit.Equal(newCost))
	suite.mockSupplyRepo.AssertExpectations(suite.T())
}

func TestSupplyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupplyServiceTestSuite))
}
