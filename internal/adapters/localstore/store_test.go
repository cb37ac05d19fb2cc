package localstore_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/fincaops/fincaops/internal/adapters/localstore"
	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type LocalStoreTestSuite struct {
	suite.Suite
	store *localstore.Store
	ctx   context.Context
}

func (suite *LocalStoreTestSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.store = localstore.NewStore(suite.T().TempDir(), logger)
	suite.ctx = context.Background()
}

func (suite *LocalStoreTestSuite) newTask(ownerID string) domain.Task {
	return domain.Task{
		TaskID:     localstore.NewID(),
		OwnerID:    ownerID,
		LotID:      localstore.NewID(),
		Type:       "Deshierbe",
		StartDate:  time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC),
		Status:     domain.TaskToDo,
		SupplyCost: decimal.Zero,
		ActualCost: decimal.Zero,
	}
}

// --- Test Cases ---

func (suite *LocalStoreTestSuite) TestNewID_CarriesLocalPrefix() {
	id := localstore.NewID()
	suite.True(domain.IsLocalID(id))
}

func (suite *LocalStoreTestSuite) TestTaskRoundtrip() {
	task := suite.newTask(localstore.LocalOwnerID)
	task.Recurrence = &domain.Recurrence{Interval: 1, Frequency: domain.FrequencyMonths, Enabled: true}

	suite.Require().NoError(suite.store.SaveTask(suite.ctx, task))

	found, err := suite.store.FindTaskByID(suite.ctx, localstore.LocalOwnerID, task.TaskID)
	suite.Require().NoError(err)
	suite.Equal(task.TaskID, found.TaskID)
	suite.Equal(task.Type, found.Type)
	suite.Require().NotNil(found.Recurrence)
	suite.Equal(domain.FrequencyMonths, found.Recurrence.Frequency)
	suite.True(found.StartDate.Equal(task.StartDate))

	task.Status = domain.TaskDone
	task.Progress = 100
	suite.Require().NoError(suite.store.UpdateTask(suite.ctx, task))

	found, err = suite.store.FindTaskByID(suite.ctx, localstore.LocalOwnerID, task.TaskID)
	suite.Require().NoError(err)
	suite.Equal(domain.TaskDone, found.Status)

	suite.Require().NoError(suite.store.DeleteTask(suite.ctx, localstore.LocalOwnerID, task.TaskID))
	_, err = suite.store.FindTaskByID(suite.ctx, localstore.LocalOwnerID, task.TaskID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LocalStoreTestSuite) TestFindTask_WrongOwnerHidden() {
	task := suite.newTask(localstore.LocalOwnerID)
	suite.Require().NoError(suite.store.SaveTask(suite.ctx, task))

	_, err := suite.store.FindTaskByID(suite.ctx, "someone_else", task.TaskID)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *LocalStoreTestSuite) TestListTasks_FiltersByOwner() {
	mine := suite.newTask(localstore.LocalOwnerID)
	other := suite.newTask("someone_else")
	suite.Require().NoError(suite.store.SaveTask(suite.ctx, mine))
	suite.Require().NoError(suite.store.SaveTask(suite.ctx, other))

	tasks, err := suite.store.ListTasks(suite.ctx, localstore.LocalOwnerID)
	suite.Require().NoError(err)
	suite.Require().Len(tasks, 1)
	suite.Equal(mine.TaskID, tasks[0].TaskID)

	count, err := suite.store.CountTasks(suite.ctx, localstore.LocalOwnerID)
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *LocalStoreTestSuite) TestSupplyRoundtrip() {
	supply := domain.Supply{
		SupplyID:     localstore.NewID(),
		OwnerID:      localstore.LocalOwnerID,
		Name:         "Cal agrícola",
		Unit:         "bultos",
		CostPerUnit:  decimal.NewFromInt(32000),
		CurrentStock: decimal.NewFromInt(12),
		InitialStock: decimal.NewFromInt(12),
	}

	suite.Require().NoError(suite.store.SaveSupply(suite.ctx, supply))

	found, err := suite.store.FindSupplyByID(suite.ctx, localstore.LocalOwnerID, supply.SupplyID)
	suite.Require().NoError(err)
	suite.True(found.CostPerUnit.Equal(decimal.NewFromInt(32000)))
	suite.True(found.CurrentStock.Equal(decimal.NewFromInt(12)))
}

func (suite *LocalStoreTestSuite) TestFarmByOwner() {
	_, err := suite.store.FindFarmByOwner(suite.ctx, localstore.LocalOwnerID)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	farm := domain.Farm{
		FarmID:  localstore.NewID(),
		OwnerID: localstore.LocalOwnerID,
		Name:    "Finca La Loma",
		Area:    decimal.NewFromInt(8),
	}
	suite.Require().NoError(suite.store.SaveFarm(suite.ctx, farm))

	found, err := suite.store.FindFarmByOwner(suite.ctx, localstore.LocalOwnerID)
	suite.Require().NoError(err)
	suite.Equal(farm.FarmID, found.FarmID)
}

func (suite *LocalStoreTestSuite) TestUsageReadsAreHostedOnly() {
	_, err := suite.store.FindUsageByID(suite.ctx, localstore.LocalOwnerID, "any")
	suite.ErrorIs(err, apperrors.ErrNotFound)

	usages, err := suite.store.ListUsagesByTask(suite.ctx, localstore.LocalOwnerID, "any")
	suite.Require().NoError(err)
	suite.Empty(usages)
}

func (suite *LocalStoreTestSuite) TestMigrationSourceReadAndClear() {
	farm := domain.Farm{FarmID: localstore.NewID(), OwnerID: localstore.LocalOwnerID, Name: "Finca Bella Vista"}
	lot := domain.Lot{LotID: localstore.NewID(), OwnerID: localstore.LocalOwnerID, FarmID: farm.FarmID, Name: "Lote cafetero"}
	task := suite.newTask(localstore.LocalOwnerID)
	task.LotID = lot.LotID

	suite.Require().NoError(suite.store.SaveFarm(suite.ctx, farm))
	suite.Require().NoError(suite.store.SaveLot(suite.ctx, lot))
	suite.Require().NoError(suite.store.SaveTask(suite.ctx, task))

	srcFarm, err := suite.store.Farm(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(srcFarm)
	suite.Equal(farm.FarmID, srcFarm.FarmID)

	lots, err := suite.store.Lots(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(lots, 1)

	tasks, err := suite.store.Tasks(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(tasks, 1)

	suite.Require().NoError(suite.store.ClearFarm(suite.ctx))
	suite.Require().NoError(suite.store.ClearLots(suite.ctx))
	suite.Require().NoError(suite.store.ClearTasks(suite.ctx))

	srcFarm, err = suite.store.Farm(suite.ctx)
	suite.Require().NoError(err)
	suite.Nil(srcFarm)

	lots, err = suite.store.Lots(suite.ctx)
	suite.Require().NoError(err)
	suite.Empty(lots)
}

func (suite *LocalStoreTestSuite) TestClearLeavesOtherTypesAlone() {
	supply := domain.Supply{SupplyID: localstore.NewID(), OwnerID: localstore.LocalOwnerID, Name: "Herbicida", Unit: "L"}
	task := suite.newTask(localstore.LocalOwnerID)
	suite.Require().NoError(suite.store.SaveSupply(suite.ctx, supply))
	suite.Require().NoError(suite.store.SaveTask(suite.ctx, task))

	suite.Require().NoError(suite.store.ClearTasks(suite.ctx))

	supplies, err := suite.store.Supplies(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(supplies, 1)
}

func TestLocalStoreTestSuite(t *testing.T) {
	suite.Run(t, new(LocalStoreTestSuite))
}

func TestProviderLeavesHostedOnlyReposNil(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	provider, store := localstore.NewProvider(t.TempDir(), logger)

	require.NotNil(t, store)
	require.NotNil(t, provider.TaskRepo)
	require.NotNil(t, provider.FarmRepo)
	require.Nil(t, provider.UserRepo)
	require.Nil(t, provider.LedgerRepo)
	require.True(t, domain.IsLocalID(provider.IDGen()))
}
