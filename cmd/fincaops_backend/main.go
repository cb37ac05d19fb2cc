package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/fincaops/fincaops/internal/adapters/database/pgsql"
	"github.com/fincaops/fincaops/internal/adapters/localstore"
	portsrepo "github.com/fincaops/fincaops/internal/core/ports/repositories"
	portssvc "github.com/fincaops/fincaops/internal/core/ports/services"
	"github.com/fincaops/fincaops/internal/core/services"
	"github.com/fincaops/fincaops/internal/handlers"
	"github.com/fincaops/fincaops/internal/middleware"
	"github.com/fincaops/fincaops/internal/platform/config"
	"github.com/fincaops/fincaops/pkg/clients/advisor"
	"github.com/fincaops/fincaops/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	hosted := cfg.DatabaseURL != ""

	var provider portsrepo.Provider
	var localStore *localstore.Store
	var migrationTarget portsrepo.MigrationTarget
	if hosted {
		dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)

		if err := runMigrations(logger, cfg.DatabaseURL); err != nil {
			os.Exit(1)
		}

		provider = pgsql.NewProvider(dbPool)
		migrationTarget = pgsql.NewPgxMigrationTarget(dbPool)
		// The local store is still opened hosted-side: it is the read/clear
		// source for POST /sync/migrate.
		localStore = localstore.NewStore(cfg.LocalStorePath, logger)
		logger.Info("Running in hosted mode")
	} else {
		provider, localStore = localstore.NewProvider(cfg.LocalStorePath, logger)
		logger.Info("Running in offline mode", slog.String("local_store_path", cfg.LocalStorePath))
	}

	container := buildServices(cfg, provider, localStore, migrationTarget)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLogging(logger), gin.Recovery())
	r.Use(cors.Default())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, localstore.LocalOwnerID)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildServices wires the service layer onto whichever repository backend the
// provider carries.
func buildServices(cfg *config.Config, provider portsrepo.Provider, localStore *localstore.Store, migrationTarget portsrepo.MigrationTarget) *portssvc.ServiceContainer {
	var quota portssvc.QuotaGuard
	var userSvc portssvc.UserSvcFacade
	var migrationSvc portssvc.MigrationSvcFacade
	if provider.UserRepo != nil {
		quota = services.NewQuotaGuard(provider.UserRepo)
		userSvc = services.NewUserService(provider.UserRepo)
		migrationSvc = services.NewMigrationService(localStore, migrationTarget)
	} else {
		quota = services.NewUnmeteredQuotaGuard()
	}

	taskSvc := services.NewTaskService(
		provider.TaskRepo,
		provider.TransactionRepo,
		provider.UsageRepo,
		provider.SupplyRepo,
		provider.LedgerRepo,
		quota,
		provider.IDGen,
	)
	staffSvc := services.NewStaffService(provider.StaffRepo, quota, provider.IDGen)
	supplySvc := services.NewSupplyService(provider.SupplyRepo, quota, provider.IDGen)

	var advisorSvc portssvc.AdvisorSvcFacade
	if cfg.AdvisorAPIKey != "" {
		advisorSvc = services.NewAdvisorService(advisor.NewClient(cfg.AdvisorAPIKey), taskSvc, staffSvc, supplySvc)
	}

	return &portssvc.ServiceContainer{
		Farm:        services.NewFarmService(provider.FarmRepo, provider.IDGen),
		Lot:         services.NewLotService(provider.LotRepo, provider.FarmRepo, quota, provider.IDGen),
		Staff:       staffSvc,
		Supply:      supplySvc,
		Task:        taskSvc,
		Transaction: services.NewTransactionService(provider.TransactionRepo, provider.IDGen),
		Ledger:      services.NewStockLedgerService(provider.TaskRepo, provider.SupplyRepo, provider.UsageRepo, provider.LedgerRepo, provider.IDGen),
		Migration:   migrationSvc,
		User:        userSvc,
		Advisor:     advisorSvc,
	}
}

// runMigrations applies all pending schema migrations from the migrations
// directory before the server starts serving.
func runMigrations(logger *slog.Logger, databaseURL string) error {
	logger.Info("Running database migrations...")

	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		logger.Error("Failed to open database connection for migrations", slog.String("error", err.Error()))
		return err
	}
	defer migrationDB.Close()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		logger.Error("Could not create postgres driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
