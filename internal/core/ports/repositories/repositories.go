package repositories

// IDGenerator issues fresh identifiers scoped to the active backend. The
// local backend prefixes its ids with domain.LocalIDPrefix so the migration
// engine can recognize them later.
type IDGenerator func() string

// Provider holds every repository the service layer needs. Exactly one
// provider is built per process: localstore-backed when running offline,
// pgsql-backed when a database is configured. The two backends are never
// mixed inside one provider, so higher layers carry no per-call branching.
//
// LedgerRepo and UserRepo are nil in the offline provider: the stock ledger
// needs the hosted batch primitive and accounts only exist hosted.
type Provider struct {
	IDGen           IDGenerator
	FarmRepo        FarmRepositoryFacade
	LotRepo         LotRepositoryFacade
	StaffRepo       StaffRepositoryFacade
	SupplyRepo      SupplyRepositoryFacade
	TaskRepo        TaskRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	UsageRepo       SupplyUsageRepositoryFacade
	UserRepo        UserRepositoryFacade
	LedgerRepo      LedgerRepositoryFacade
}
