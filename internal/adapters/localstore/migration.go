package localstore

import (
	"context"

	"github.com/fincaops/fincaops/internal/core/domain"
	"github.com/fincaops/fincaops/internal/core/ports/repositories"
)

var _ repositories.MigrationSource = (*Store)(nil)

// Farm returns the device-local farm, or nil when none was created offline.
func (s *Store) Farm(ctx context.Context) (*domain.Farm, error) {
	farms, err := listRecords[domain.Farm](s, ctx, prefixFarm)
	if err != nil {
		return nil, err
	}
	if len(farms) == 0 {
		return nil, nil
	}
	return &farms[0], nil
}

func (s *Store) Lots(ctx context.Context) ([]domain.Lot, error) {
	return listRecords[domain.Lot](s, ctx, prefixLot)
}

func (s *Store) StaffMembers(ctx context.Context) ([]domain.Staff, error) {
	return listRecords[domain.Staff](s, ctx, prefixStaff)
}

func (s *Store) Supplies(ctx context.Context) ([]domain.Supply, error) {
	return listRecords[domain.Supply](s, ctx, prefixSupply)
}

func (s *Store) Tasks(ctx context.Context) ([]domain.Task, error) {
	return listRecords[domain.Task](s, ctx, prefixTask)
}

func (s *Store) ClearFarm(ctx context.Context) error {
	return s.eraseAll(ctx, prefixFarm)
}

func (s *Store) ClearLots(ctx context.Context) error {
	return s.eraseAll(ctx, prefixLot)
}

func (s *Store) ClearStaff(ctx context.Context) error {
	return s.eraseAll(ctx, prefixStaff)
}

func (s *Store) ClearSupplies(ctx context.Context) error {
	return s.eraseAll(ctx, prefixSupply)
}

func (s *Store) ClearTasks(ctx context.Context) error {
	return s.eraseAll(ctx, prefixTask)
}
