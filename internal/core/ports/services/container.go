package services

// ServiceContainer bundles every service the HTTP layer needs. User and
// Migration are nil offline; Advisor is nil when no advisor API key is
// configured.
type ServiceContainer struct {
	Farm        FarmSvcFacade
	Lot         LotSvcFacade
	Staff       StaffSvcFacade
	Supply      SupplySvcFacade
	Task        TaskSvcFacade
	Transaction TransactionSvcFacade
	Ledger      StockLedgerSvcFacade
	Migration   MigrationSvcFacade
	User        UserSvcFacade
	Advisor     AdvisorSvcFacade
}
