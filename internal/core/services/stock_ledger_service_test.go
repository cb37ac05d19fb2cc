package services_test

import (
	"context"
	"testing"
	"time"

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
type StockLedgerServiceTestSuite struct {
	suite.Suite
	mockTaskRepo   *MockTaskRepository
	mockSupplyRepo *MockSupplyRepository
	mockUsageRepo  *MockUsageRepository
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.StockLedgerSvcFacade
	ownerID        string
}

func (suite *StockLedgerServiceTestSuite) SetupTest() {
	suite.mockTaskRepo = new(MockTaskRepository)
	suite.mockSupplyRepo = new(MockSupplyRepository)
	suite.mockUsageRepo = new(MockUsageRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.ownerID = uuid.NewString()
	suite.service = services.NewStockLedgerService(
		suite.mockTaskRepo,
		suite.mockSupplyRepo,
		suite.mockUsageRepo,
		suite.mockLedgerRepo,
		uuid.NewString,
	)
}

func (suite *StockLedgerServiceTestSuite) fertilizer(stock int64) *domain.Supply {
	return &domain.Supply{
		SupplyID:     uuid.NewString(),
		OwnerID:      suite.ownerID,
		Name:         "Abono orgánico",
		Unit:         "kg",
		CostPerUnit:  decimal.NewFromInt(2500),
		CurrentStock: decimal.NewFromInt(stock),
		InitialStock: decimal.NewFromInt(stock),
	}
}

func (suite *StockLedgerServiceTestSuite) openTask() *domain.Task {
	return &domain.Task{
		TaskID:     uuid.NewString(),
		OwnerID:    suite.ownerID,
		LotID:      uuid.NewString(),
		Type:       "Abonado",
		StartDate:  time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Status:     domain.TaskInProgress,
		SupplyCost: decimal.NewFromInt(10000),
		ActualCost: decimal.NewFromInt(10000),
	}
}

// --- Test Cases ---

func (suite *StockLedgerServiceTestSuite) TestApplyUsage_Success() {
	ctx := context.Background()
	task := suite.openTask()
	supply := suite.fertilizer(50)

	suite.mockTaskRepo.On("FindTaskByID", ctx, suite.ownerID, task.TaskID).Return(task, nil).Once()
	suite.mockSupplyRepo.On("FindSupplyByID", ctx, suite.ownerID, supply.SupplyID).Return(supply, nil).Once()
	suite.mockLedgerRepo.On("ApplyUsage", ctx,
		mock.MatchedBy(func(u domain.SupplyUsage) bool {
			return u.TaskID == task.TaskID &&
				u.SupplyID == supply.SupplyID &&
				u.SupplyName == "Abono orgánico" &&
				u.Quantity.Equal(decimal.NewFromInt(4)) &&
				u.CostAtTimeOfUse.Equal(decimal.NewFromInt(10000))
		}),
		mock.MatchedBy(func(t domain.Task) bool {
			return t.SupplyCost.Equal(decimal.NewFromInt(20000)) &&
				t.ActualCost.Equal(decimal.NewFromInt(20000))
		}),
		mock.MatchedBy(func(s domain.Supply) bool {
			return s.CurrentStock.Equal(decimal.NewFromInt(46))
		})).Return(nil).Once()

	usage, err := suite.service.ApplyUsage(ctx, suite.ownerID, task.TaskID, dto.ApplyUsageRequest{
		SupplyID: supply.SupplyID,
		Quantity: decimal.NewFromInt(4),
	})

	suite.Require().NoError(err)
	suite.Require().NotNil(usage)
	suite.Equal("Abono orgánico", usage.SupplyName)
	suite.True(usage.CostAtTimeOfUse.Equal(decimal.NewFromInt(10000)))
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *StockLedgerServiceTestSuite) TestApplyUsage_InsufficientStock() {
	ctx := context.Background()
	task := suite.openTask()
	supply := suite.fertilizer(2)

	suite.mockTaskRepo.On("FindTaskByID", ctx, suite.ownerID, task.TaskID).Return(task, nil).Once()
	suite.mockSupplyRepo.On("FindSupplyByID", ctx, suite.ownerID, supply.SupplyID).Return(supply, nil).Once()

	usage, err := suite.service.ApplyUsage(ctx, suite.ownerID, task.TaskID, dto.ApplyUsageRequest{
		SupplyID: supply.SupplyID,
		Quantity: decimal.NewFromInt(5),
	})

	suite.Require().Error(err)
	suite.Nil(usage)
	suite.ErrorIs(err, apperrors.ErrInsufficientStock)
	suite.Contains(err.Error(), "Abono orgánico")
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ApplyUsage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockLedgerServiceTestSuite) TestApplyUsage_RejectsNonPositiveQuantity() {
	ctx := context.Background()

	usage, err := suite.service.ApplyUsage(ctx, suite.ownerID, uuid.NewString(), dto.ApplyUsageRequest{
		SupplyID: uuid.NewString(),
		Quantity: decimal.Zero,
	})

	suite.Require().Error(err)
	suite.Nil(usage)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTaskRepo.AssertNotCalled(suite.T(), "FindTaskByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockLedgerServiceTestSuite) TestApplyUsage_NilLedgerUnsupported() {
	ctx := context.Background()
	service := services.NewStockLedgerService(
		suite.mockTaskRepo,
		suite.mockSupplyRepo,
		suite.mockUsageRepo,
		nil,
		uuid.NewString,
	)

	usage, err := service.ApplyUsage(ctx, suite.ownerID, uuid.NewString(), dto.ApplyUsageRequest{
		SupplyID: uuid.NewString(),
		Quantity: decimal.NewFromInt(1),
	})

	suite.Require().Error(err)
	suite.Nil(usage)
	suite.ErrorIs(err, apperrors.ErrUnsupported)
}

func (suite *StockLedgerServiceTestSuite) TestReverseUsage_RestoresExactQuantitiesAndCost() {
	ctx := context.Background()
	task := suite.openTask()
	task.SupplyCost = decimal.NewFromInt(20000)
	task.ActualCost = decimal.NewFromInt(35000)
	supply := suite.fertilizer(46)
	usage := &domain.SupplyUsage{
		UsageID:         uuid.NewString(),
		OwnerID:         suite.ownerID,
		TaskID:          task.TaskID,
		SupplyID:        supply.SupplyID,
		SupplyName:      supply.Name,
		Quantity:        decimal.NewFromInt(4),
		CostAtTimeOfUse: decimal.NewFromInt(10000),
	}

	suite.mockUsageRepo.On("FindUsageByID", ctx, suite.ownerID, usage.UsageID).Return(usage, nil).Once()
	suite.mockTaskRepo.On("FindTaskByID", ctx, suite.ownerID, task.TaskID).Return(task, nil).Once()
	suite.mockSupplyRepo.On("FindSupplyByID", ctx, suite.ownerID, supply.SupplyID).Return(supply, nil).Once()
	suite.mockLedgerRepo.On("ReverseUsage", ctx, usage.UsageID,
		mock.MatchedBy(func(t domain.Task) bool {
			return t.SupplyCost.Equal(decimal.NewFromInt(10000)) &&
				t.ActualCost.Equal(decimal.NewFromInt(25000))
		}),
		mock.MatchedBy(func(s domain.Supply) bool {
			return s.CurrentStock.Equal(decimal.NewFromInt(50))
		})).Return(nil).Once()

	err := suite.service.ReverseUsage(ctx, suite.ownerID, usage.UsageID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *StockLedgerServiceTestSuite) TestReverseUsage_ClampsCostsAtZero() {
	ctx := context.Background()
	task := suite.openTask()
	task.SupplyCost = decimal.NewFromInt(5000)
	task.ActualCost = decimal.NewFromInt(5000)
	supply := suite.fertilizer(0)
	usage := &domain.SupplyUsage{
		UsageID:         uuid.NewString(),
		OwnerID:         suite.ownerID,
		TaskID:          task.TaskID,
		SupplyID:        supply.SupplyID,
		Quantity:        decimal.NewFromInt(2),
		CostAtTimeOfUse: decimal.NewFromInt(8000),
	}

	suite.mockUsageRepo.On("FindUsageByID", ctx, suite.ownerID, usage.UsageID).Return(usage, nil).Once()
	suite.mockTaskRepo.On("FindTaskByID", ctx, suite.ownerID, task.TaskID).Return(task, nil).Once()
	suite.mockSupplyRepo.On("FindSupplyByID", ctx, suite.ownerID, supply.SupplyID).Return(supply, nil).Once()
	suite.mockLedgerRepo.On("ReverseUsage", ctx, usage.UsageID,
		mock.MatchedBy(func(t domain.Task) bool {
			return t.SupplyCost.IsZero() && t.ActualCost.IsZero()
		}),
		mock.MatchedBy(func(s domain.Supply) bool {
			return s.CurrentStock.Equal(decimal.NewFromInt(2))
		})).Return(nil).Once()

	err := suite.service.ReverseUsage(ctx, suite.ownerID, usage.UsageID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *StockLedgerServiceTestSuite) TestReverseUsage_NilLedgerUnsupported() {
	ctx := context.Background()
	service := services.NewStockLedgerService(
		suite.mockTaskRepo,
		suite.mockSupplyRepo,
		suite.mockUsageRepo,
		nil,
		uuid.NewString,
	)

	err := service.ReverseUsage(ctx, suite.ownerID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupported)
	suite.mockUsageRepo.AssertNotCalled(suite.T(), "FindUsageByID", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *StockLedgerServiceTestSuite) TestListUsages_Success() {
	ctx := context.Background()
	taskID := uuid.NewString()
	expected := []domain.SupplyUsage{
		{UsageID: uuid.NewString(), TaskID: taskID},
		{UsageID: uuid.NewString(), TaskID: taskID},
	}

	suite.mockUsageRepo.On("ListUsagesByTask", ctx, suite.ownerID, taskID).Return(expected, nil).Once()

	usages, err := suite.service.ListUsages(ctx, suite.ownerID, taskID)

	suite.Require().NoError(err)
	suite.Len(usages, 2)
	suite.mockUsageRepo.AssertExpectations(suite.T())
}

func TestStockLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StockLedgerServiceTestSuite))
}
