package localstore

import (
	"context"
	"fmt"

	"github.com/fincaops/fincaops/internal/apperrors"
	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/core/ports/repositories"
)

var (
	_ repositories.FarmRepositoryFacade        = (*Store)(nil)
	_ repositories.LotRepositoryFacade         = (*Store)(nil)
	_ repositories.StaffRepositoryFacade       = (*Store)(nil)
	_ repositories.SupplyRepositoryFacade      = (*Store)(nil)
	_ repositories.TaskRepositoryFacade        = (*Store)(nil)
	_ repositories.TransactionRepositoryFacade = (*Store)(nil)
	_ repositories.SupplyUsageRepositoryFacade = (*Store)(nil)
)

// --- Farm ---

func (s *Store) SaveFarm(ctx context.Context, farm domain.Farm) error {
	return writeRecord(s.d, recordKey(prefixFarm, farm.FarmID), farm)
}

func (s *Store) FindFarmByOwner(ctx context.Context, ownerID string) (*domain.Farm, error) {
	farms, err := listRecords[domain.Farm](s, ctx, prefixFarm)
	if err != nil {
		return nil, err
	}
	for i := range farms {
		if farms[i].OwnerID == ownerID {
			return &farms[i], nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (s *Store) UpdateFarm(ctx context.Context, farm domain.Farm) error {
	existing, err := readRecord[domain.Farm](s.d, recordKey(prefixFarm, farm.FarmID))
	if err != nil {
		return err
	}
	if err := checkOwner(existing.OwnerID, farm.OwnerID); err != nil {
		return err
	}
	return writeRecord(s.d, recordKey(prefixFarm, farm.FarmID), farm)
}

// --- Lot ---

func (s *Store) SaveLot(ctx context.Context, lot domain.Lot) error {
	return writeRecord(s.d, recordKey(prefixLot, lot.LotID), lot)
}

func (s *Store) FindLotByID(ctx context.Context, ownerID string, lotID string) (*domain.Lot, error) {
	lot, err := readRecord[domain.Lot](s.d, recordKey(prefixLot, lotID))
	if err != nil {
		return nil, err
	}
	if err := checkOwner(lot.OwnerID, ownerID); err != nil {
		return nil, err
	}
	return lot, nil
}

func (s *Store) ListLots(ctx context.Context, ownerID string) ([]domain.Lot, error) {
	lots, err := listRecords[domain.Lot](s, ctx, prefixLot)
	if err != nil {
		return nil, err
	}
	return filterByOwner(lots, ownerID, func(l domain.Lot) string { return l.OwnerID }), nil
}

func (s *Store) UpdateLot(ctx context.Context, lot domain.Lot) error {
	if _, err := s.FindLotByID(ctx, lot.OwnerID, lot.LotID); err != nil {
		return err
	}
	return writeRecord(s.d, recordKey(prefixLot, lot.LotID), lot)
}

func (s *Store) DeleteLot(ctx context.Context, ownerID string, lotID string) error {
	if _, err := s.FindLotByID(ctx, ownerID, lotID); err != nil {
		return err
	}
	return s.d.Erase(recordKey(prefixLot, lotID))
}

func (s *Store) CountLots(ctx context.Context, ownerID string) (int64, error) {
	lots, err := s.ListLots(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return int64(len(lots)), nil
}

// --- Staff ---

func (s *Store) SaveStaff(ctx context.Context, staff domain.Staff) error {
	return writeRecord(s.d, recordKey(prefixStaff, staff.StaffID), staff)
}

func (s *Store) FindStaffByID(ctx context.Context, ownerID string, staffID string) (*domain.Staff, error) {
	staff, err := readRecord[domain.Staff](s.d, recordKey(prefixStaff, staffID))
	if err != nil {
		return nil, err
	}
	if err := checkOwner(staff.OwnerID, ownerID); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *Store) ListStaff(ctx context.Context, ownerID string) ([]domain.Staff, error) {
	staff, err := listRecords[domain.Staff](s, ctx, prefixStaff)
	if err != nil {
		return nil, err
	}
	return filterByOwner(staff, ownerID, func(m domain.Staff) string { return m.OwnerID }), nil
}

func (s *Store) UpdateStaff(ctx context.Context, staff domain.Staff) error {
	if _, err := s.FindStaffByID(ctx, staff.OwnerID, staff.StaffID); err != nil {
		return err
	}
	return writeRecord(s.d, recordKey(prefixStaff, staff.StaffID), staff)
}

func (s *Store) DeleteStaff(ctx context.Context, ownerID string, staffID string) error {
	if _, err := s.FindStaffByID(ctx, ownerID, staffID); err != nil {
		return err
	}
	return s.d.Erase(recordKey(prefixStaff, staffID))
}

func (s *Store) CountStaff(ctx context.Context, ownerID string) (int64, error) {
	staff, err := s.ListStaff(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return int64(len(staff)), nil
}

// --- Supply ---

func (s *Store) SaveSupply(ctx context.Context, supply domain.Supply) error {
	return writeRecord(s.d, recordKey(prefixSupply, supply.SupplyID), supply)
}

func (s *Store) FindSupplyByID(ctx context.Context, ownerID string, supplyID string) (*domain.Supply, error) {
	supply, err := readRecord[domain.Supply](s.d, recordKey(prefixSupply, supplyID))
	if err != nil {
		return nil, err
	}
	if err := checkOwner(supply.OwnerID, ownerID); err != nil {
		return nil, err
	}
	return supply, nil
}

func (s *Store) ListSupplies(ctx context.Context, ownerID string) ([]domain.Supply, error) {
	supplies, err := listRecords[domain.Supply](s, ctx, prefixSupply)
	if err != nil {
		return nil, err
	}
	return filterByOwner(supplies, ownerID, func(sp domain.Supply) string { return sp.OwnerID }), nil
}

func (s *Store) UpdateSupply(ctx context.Context, supply domain.Supply) error {
	if _, err := s.FindSupplyByID(ctx, supply.OwnerID, supply.SupplyID); err != nil {
		return err
	}
	return writeRecord(s.d, recordKey(prefixSupply, supply.SupplyID), supply)
}

func (s *Store) DeleteSupply(ctx context.Context, ownerID string, supplyID string) error {
	if _, err := s.FindSupplyByID(ctx, ownerID, supplyID); err != nil {
		return err
	}
	return s.d.Erase(recordKey(prefixSupply, supplyID))
}

func (s *Store) CountSupplies(ctx context.Context, ownerID string) (int64, error) {
	supplies, err := s.ListSupplies(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return int64(len(supplies)), nil
}

// --- Task ---

func (s *Store) SaveTask(ctx context.Context, task domain.Task) error {
	return writeRecord(s.d, recordKey(prefixTask, task.TaskID), task)
}

func (s *Store) FindTaskByID(ctx context.Context, ownerID string, taskID string) (*domain.Task, error) {
	task, err := readRecord[domain.Task](s.d, recordKey(prefixTask, taskID))
	if err != nil {
		return nil, err
	}
	if err := checkOwner(task.OwnerID, ownerID); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *Store) ListTasks(ctx context.Context, ownerID string) ([]domain.Task, error) {
	tasks, err := listRecords[domain.Task](s, ctx, prefixTask)
	if err != nil {
		return nil, err
	}
	return filterByOwner(tasks, ownerID, func(t domain.Task) string { return t.OwnerID }), nil
}

func (s *Store) UpdateTask(ctx context.Context, task domain.Task) error {
	if _, err := s.FindTaskByID(ctx, task.OwnerID, task.TaskID); err != nil {
		return err
	}
	return writeRecord(s.d, recordKey(prefixTask, task.TaskID), task)
}

func (s *Store) DeleteTask(ctx context.Context, ownerID string, taskID string) error {
	if _, err := s.FindTaskByID(ctx, ownerID, taskID); err != nil {
		return err
	}
	return s.d.Erase(recordKey(prefixTask, taskID))
}

func (s *Store) CountTasks(ctx context.Context, ownerID string) (int64, error) {
	tasks, err := s.ListTasks(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return int64(len(tasks)), nil
}

// --- Transaction ---

func (s *Store) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	return writeRecord(s.d, recordKey(prefixTransaction, txn.TransactionID), txn)
}

func (s *Store) FindTransactionByID(ctx context.Context, ownerID string, transactionID string) (*domain.Transaction, error) {
	txn, err := readRecord[domain.Transaction](s.d, recordKey(prefixTransaction, transactionID))
	if err != nil {
		return nil, err
	}
	if err := checkOwner(txn.OwnerID, ownerID); err != nil {
		return nil, err
	}
	return txn, nil
}

func (s *Store) ListTransactions(ctx context.Context, ownerID string) ([]domain.Transaction, error) {
	txns, err := listRecords[domain.Transaction](s, ctx, prefixTransaction)
	if err != nil {
		return nil, err
	}
	return filterByOwner(txns, ownerID, func(t domain.Transaction) string { return t.OwnerID }), nil
}

func (s *Store) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	if _, err := s.FindTransactionByID(ctx, txn.OwnerID, txn.TransactionID); err != nil {
		return err
	}
	return writeRecord(s.d, recordKey(prefixTransaction, txn.TransactionID), txn)
}

func (s *Store) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	if _, err := s.FindTransactionByID(ctx, ownerID, transactionID); err != nil {
		return err
	}
	return s.d.Erase(recordKey(prefixTransaction, transactionID))
}

// --- Supply usage (read-only; the local backend never records usages) ---

func (s *Store) FindUsageByID(ctx context.Context, ownerID string, usageID string) (*domain.SupplyUsage, error) {
	return nil, fmt.Errorf("%w: usage records require the hosted backend", apperrors.ErrNotFound)
}

func (s *Store) ListUsagesByTask(ctx context.Context, ownerID string, taskID string) ([]domain.SupplyUsage, error) {
	return []domain.SupplyUsage{}, nil
}

func filterByOwner[T any](records []T, ownerID string, owner func(T) string) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if owner(record) == ownerID {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
