package pgsql

import (
	"github.com/fincaops/fincaops/internal/core/ports/repositories"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewProvider builds the hosted repository set on one connection pool.
func NewProvider(pool *pgxpool.Pool) repositories.Provider {
	return repositories.Provider{
		IDGen:           uuid.NewString,
		FarmRepo:        NewPgxFarmRepository(pool),
		LotRepo:         NewPgxLotRepository(pool),
		StaffRepo:       NewPgxStaffRepository(pool),
		SupplyRepo:      NewPgxSupplyRepository(pool),
		TaskRepo:        NewPgxTaskRepository(pool),
		TransactionRepo: NewPgxTransactionRepository(pool),
		UsageRepo:       NewPgxSupplyUsageRepository(pool),
		UserRepo:        NewPgxUserRepository(pool),
		LedgerRepo:      NewPgxLedgerRepository(pool),
	}
}
