package services_test

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	portsrepo "github.com/fincaops/fincaops/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// Ensure the mocks track the repository interfaces.
var (
	_ portsrepo.TaskRepositoryFacade        = (*MockTaskRepository)(nil)
	_ portsrepo.TransactionRepositoryFacade = (*MockTransactionRepository)(nil)
	_ portsrepo.SupplyRepositoryFacade      = (*MockSupplyRepository)(nil)
	_ portsrepo.SupplyUsageRepositoryFacade = (*MockUsageRepository)(nil)
	_ portsrepo.LedgerRepositoryFacade      = (*MockLedgerRepository)(nil)
	_ portsrepo.UserRepositoryFacade        = (*MockUserRepository)(nil)
	_ portsrepo.MigrationSource             = (*MockMigrationSource)(nil)
	_ portsrepo.MigrationTarget             = (*MockMigrationTarget)(nil)
)

// --- Mock TaskRepository ---
type MockTaskRepository struct {
	mock.Mock
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, ownerID string, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}

func (m *MockTaskRepository) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, ownerID string, taskID string) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func (m *MockTaskRepository) CountTasks(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, ownerID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	args := m.Called(ctx, ownerID, transactionID)
	return args.Error(0)
}

// --- Mock SupplyRepository ---
type MockSupplyRepository struct {
	mock.Mock
}

func (m *MockSupplyRepository) SaveSupply(ctx context.Context, supply domain.Supply) error {
	args := m.Called(ctx, supply)
	return args.Error(0)
}

func (m *MockSupplyRepository) FindSupplyByID(ctx context.Context, ownerID string, supplyID string) (*domain.Supply, error) {
	args := m.Called(ctx, ownerID, supplyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Supply), args.Error(1)
}

func (m *MockSupplyRepository) ListSupplies(ctx context.Context, ownerID string) ([]domain.Supply, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supply), args.Error(1)
}

func (m *MockSupplyRepository) UpdateSupply(ctx context.Context, supply domain.Supply) error {
	args := m.Called(ctx, supply)
	return args.Error(0)
}

func (m *MockSupplyRepository) DeleteSupply(ctx context.Context, ownerID string, supplyID string) error {
	args := m.Called(ctx, ownerID, supplyID)
	return args.Error(0)
}

func (m *MockSupplyRepository) CountSupplies(ctx context.Context, ownerID string) (int64, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock SupplyUsageRepository ---
type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) FindUsageByID(ctx context.Context, ownerID string, usageID string) (*domain.SupplyUsage, error) {
	args := m.Called(ctx, ownerID, usageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SupplyUsage), args.Error(1)
}

func (m *MockUsageRepository) ListUsagesByTask(ctx context.Context, ownerID string, taskID string) ([]domain.SupplyUsage, error) {
	args := m.Called(ctx, ownerID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SupplyUsage), args.Error(1)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) ApplyUsage(ctx context.Context, usage domain.SupplyUsage, task domain.Task, supply domain.Supply) error {
	args := m.Called(ctx, usage, task, supply)
	return args.Error(0)
}

func (m *MockLedgerRepository) ReverseUsage(ctx context.Context, usageID string, task domain.Task, supply domain.Supply) error {
	args := m.Called(ctx, usageID, task, supply)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteTaskCascade(ctx context.Context, task domain.Task, usageIDs []string, supplies []domain.Supply) error {
	args := m.Called(ctx, task, usageIDs, supplies)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock MigrationSource ---
type MockMigrationSource struct {
	mock.Mock
}

func (m *MockMigrationSource) Farm(ctx context.Context) (*domain.Farm, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Farm), args.Error(1)
}

func (m *MockMigrationSource) Lots(ctx context.Context) ([]domain.Lot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Lot), args.Error(1)
}

func (m *MockMigrationSource) StaffMembers(ctx context.Context) ([]domain.Staff, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Staff), args.Error(1)
}

func (m *MockMigrationSource) Supplies(ctx context.Context) ([]domain.Supply, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Supply), args.Error(1)
}

func (m *MockMigrationSource) Tasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}

func (m *MockMigrationSource) ClearFarm(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMigrationSource) ClearLots(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMigrationSource) ClearStaff(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMigrationSource) ClearSupplies(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMigrationSource) ClearTasks(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock MigrationTarget ---
type MockMigrationTarget struct {
	mock.Mock
}

func (m *MockMigrationTarget) ImportFarm(ctx context.Context, farm domain.Farm) error {
	args := m.Called(ctx, farm)
	return args.Error(0)
}

func (m *MockMigrationTarget) ImportLots(ctx context.Context, lots []domain.Lot) error {
	args := m.Called(ctx, lots)
	return args.Error(0)
}

func (m *MockMigrationTarget) ImportStaff(ctx context.Context, staff []domain.Staff) error {
	args := m.Called(ctx, staff)
	return args.Error(0)
}

func (m *MockMigrationTarget) ImportSupplies(ctx context.Context, supplies []domain.Supply) error {
	args := m.Called(ctx, supplies)
	return args.Error(0)
}

func (m *MockMigrationTarget) ImportTasks(ctx context.Context, tasks []domain.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}
