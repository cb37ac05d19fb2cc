package localstore

import (
	"log/slog"

	"github.com/fincaops/fincaops/internal/core/ports/repositories"
)

// LocalOwnerID is the fixed owner every offline record belongs to until the
// migration engine adopts it into a hosted account.
const LocalOwnerID = "local_user"

// NewProvider builds the offline repository set. LedgerRepo and UserRepo stay
// nil: the stock ledger needs the hosted batch primitive and accounts only
// exist hosted.
func NewProvider(basePath string, logger *slog.Logger) (repositories.Provider, *Store) {
	store := NewStore(basePath, logger)
	return repositories.Provider{
		IDGen:           NewID,
		FarmRepo:        store,
		LotRepo:         store,
		StaffRepo:       store,
		SupplyRepo:      store,
		TaskRepo:        store,
		TransactionRepo: store,
		UsageRepo:       store,
	}, store
}
