package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fincaops/fincaops/internal/core/domain"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/core/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type MigrationServiceTestSuite struct {
	suite.Suite
	mockSource *MockMigrationSource
	mockTarget *MockMigrationTarget
	service    portssvc.MigrationSvcFacade
	ownerID    string
}

func (suite *MigrationServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockMigrationSource)
	suite.mockTarget = new(MockMigrationTarget)
	suite.service = services.NewMigrationService(suite.mockSource, suite.mockTarget)
	suite.ownerID = uuid.NewString()
}

func localID() string {
	return domain.LocalIDPrefix + uuid.NewString()
}

// --- Test Cases ---

func (suite *MigrationServiceTestSuite) TestRun_RemapsForeignKeysAcrossTypes() {
	ctx := context.Background()
	localFarmID := localID()
	localLotID := localID()
	localTaskA := localID()
	localTaskB := localID()
	hostedStaffID := uuid.NewString() // Already hosted, must pass through untouched

	farm := &domain.Farm{FarmID: localFarmID, OwnerID: "local_user", Name: "La Esperanza"}
	lots := []domain.Lot{{LotID: localLotID, OwnerID: "local_user", FarmID: localFarmID, Name: "Lote 1", Crop: "Café"}}
	tasks := []domain.Task{
		{
			TaskID:    localTaskA,
			OwnerID:   "local_user",
			LotID:     localLotID,
			Type:      "Siembra",
			StartDate: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			Status:    domain.TaskToDo,
		},
		{
			TaskID:          localTaskB,
			OwnerID:         "local_user",
			LotID:           localLotID,
			Type:            "Fertilización",
			ResponsibleID:   hostedStaffID,
			StartDate:       time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
			Status:          domain.TaskToDo,
			DependsOnTaskID: &localTaskA,
		},
	}

	var hostedFarmID, hostedLotID, hostedTaskAID string

	suite.mockSource.On("Farm", ctx).Return(farm, nil).Once()
	suite.mockTarget.On("ImportFarm", ctx, mock.MatchedBy(func(f domain.Farm) bool {
		hostedFarmID = f.FarmID
		return !domain.IsLocalID(f.FarmID) && f.OwnerID == suite.ownerID
	})).Return(nil).Once()
	suite.mockSource.On("ClearFarm", ctx).Return(nil).Once()

	suite.mockSource.On("Lots", ctx).Return(lots, nil).Once()
	suite.mockTarget.On("ImportLots", ctx, mock.MatchedBy(func(imported []domain.Lot) bool {
		if len(imported) != 1 {
			return false
		}
		hostedLotID = imported[0].LotID
		return !domain.IsLocalID(imported[0].LotID) &&
			imported[0].FarmID == hostedFarmID &&
			imported[0].OwnerID == suite.ownerID
	})).Return(nil).Once()
	suite.mockSource.On("ClearLots", ctx).Return(nil).Once()

	suite.mockSource.On("StaffMembers", ctx).Return([]domain.Staff{}, nil).Once()
	suite.mockSource.On("Supplies", ctx).Return([]domain.Supply{}, nil).Once()

	suite.mockSource.On("Tasks", ctx).Return(tasks, nil).Once()
	suite.mockTarget.On("ImportTasks", ctx, mock.MatchedBy(func(imported []domain.Task) bool {
		if len(imported) != 2 {
			return false
		}
		hostedTaskAID = imported[0].TaskID
		return !domain.IsLocalID(imported[0].TaskID) &&
			imported[0].LotID == hostedLotID &&
			imported[1].ResponsibleID == hostedStaffID &&
			imported[1].DependsOnTaskID != nil &&
			*imported[1].DependsOnTaskID == hostedTaskAID
	})).Return(nil).Once()
	suite.mockSource.On("ClearTasks", ctx).Return(nil).Once()

	migrated, err := suite.service.Run(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(4, migrated)
	suite.mockSource.AssertExpectations(suite.T())
	suite.mockTarget.AssertExpectations(suite.T())
}

func (suite *MigrationServiceTestSuite) TestRun_EmptySourceMigratesNothing() {
	ctx := context.Background()

	suite.mockSource.On("Farm", ctx).Return(nil, nil).Once()
	suite.mockSource.On("Lots", ctx).Return([]domain.Lot{}, nil).Once()
	suite.mockSource.On("StaffMembers", ctx).Return([]domain.Staff{}, nil).Once()
	suite.mockSource.On("Supplies", ctx).Return([]domain.Supply{}, nil).Once()
	suite.mockSource.On("Tasks", ctx).Return([]domain.Task{}, nil).Once()

	migrated, err := suite.service.Run(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(0, migrated)
	suite.mockTarget.AssertNotCalled(suite.T(), "ImportFarm", mock.Anything, mock.Anything)
	suite.mockTarget.AssertNotCalled(suite.T(), "ImportTasks", mock.Anything, mock.Anything)
}

func (suite *MigrationServiceTestSuite) TestRun_ImportFailureStopsAndPreservesLocalRecords() {
	ctx := context.Background()
	expectedErr := assert.AnError
	farm := &domain.Farm{FarmID: localID(), OwnerID: "local_user", Name: "El Paraíso"}
	lots := []domain.Lot{{LotID: localID(), OwnerID: "local_user", FarmID: farm.FarmID, Name: "Lote 2"}}

	suite.mockSource.On("Farm", ctx).Return(farm, nil).Once()
	suite.mockTarget.On("ImportFarm", ctx, mock.AnythingOfType("domain.Farm")).Return(nil).Once()
	suite.mockSource.On("ClearFarm", ctx).Return(nil).Once()

	suite.mockSource.On("Lots", ctx).Return(lots, nil).Once()
	suite.mockTarget.On("ImportLots", ctx, mock.AnythingOfType("[]domain.Lot")).Return(expectedErr).Once()

	migrated, err := suite.service.Run(ctx, suite.ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Equal(1, migrated)
	suite.mockSource.AssertNotCalled(suite.T(), "ClearLots", mock.Anything)
	suite.mockSource.AssertNotCalled(suite.T(), "StaffMembers", mock.Anything)
}

func (suite *MigrationServiceTestSuite) TestRun_ClearFailureStillCountsImported() {
	ctx := context.Background()
	expectedErr := assert.AnError
	supplies := []domain.Supply{{
		SupplyID:     localID(),
		OwnerID:      "local_user",
		Name:         "Semilla de maíz",
		Unit:         "kg",
		CurrentStock: decimal.NewFromInt(40),
	}}

	suite.mockSource.On("Farm", ctx).Return(nil, nil).Once()
	suite.mockSource.On("Lots", ctx).Return([]domain.Lot{}, nil).Once()
	suite.mockSource.On("StaffMembers", ctx).Return([]domain.Staff{}, nil).Once()
	suite.mockSource.On("Supplies", ctx).Return(supplies, nil).Once()
	suite.mockTarget.On("ImportSupplies", ctx, mock.AnythingOfType("[]domain.Supply")).Return(nil).Once()
	suite.mockSource.On("ClearSupplies", ctx).Return(expectedErr).Once()

	migrated, err := suite.service.Run(ctx, suite.ownerID)

	suite.Require().Error(err)
	suite.ErrorIs(err, expectedErr)
	suite.Equal(1, migrated)
	suite.mockSource.AssertNotCalled(suite.T(), "Tasks", mock.Anything)
}

func (suite *MigrationServiceTestSuite) TestRun_AdoptsAuditFieldsForNewOwner() {
	ctx := context.Background()
	staff := []domain.Staff{{
		StaffID: localID(),
		OwnerID: "local_user",
		Name:    "María Gómez",
		AuditFields: domain.AuditFields{
			CreatedAt: time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC),
			CreatedBy: "local_user",
		},
	}}

	suite.mockSource.On("Farm", ctx).Return(nil, nil).Once()
	suite.mockSource.On("Lots", ctx).Return([]domain.Lot{}, nil).Once()
	suite.mockSource.On("StaffMembers", ctx).Return(staff, nil).Once()
	suite.mockTarget.On("ImportStaff", ctx, mock.MatchedBy(func(imported []domain.Staff) bool {
		return len(imported) == 1 &&
			imported[0].OwnerID == suite.ownerID &&
			imported[0].CreatedBy == suite.ownerID &&
			imported[0].LastUpdatedBy == suite.ownerID &&
			imported[0].CreatedAt.Equal(time.Date(2023, 11, 5, 0, 0, 0, 0, time.UTC))
	})).Return(nil).Once()
	suite.mockSource.On("ClearStaff", ctx).Return(nil).Once()
	suite.mockSource.On("Supplies", ctx).Return([]domain.Supply{}, nil).Once()
	suite.mockSource.On("Tasks", ctx).Return([]domain.Task{}, nil).Once()

	migrated, err := suite.service.Run(ctx, suite.ownerID)

	suite.Require().NoError(err)
	suite.Equal(1, migrated)
	suite.mockTarget.AssertExpectations(suite.T())
}

func TestMigrationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MigrationServiceTestSuite))
}
