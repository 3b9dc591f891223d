package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"minvest/internal/config"
	"minvest/internal/database"
	"minvest/internal/handlers"
	"minvest/internal/logger"
	"minvest/internal/repository"
	"minvest/internal/scheduler"
	"minvest/internal/service"
	"go.uber.org/zap"
)

type App struct {
	server  *http.Server
	db      *sql.DB
	accrual *scheduler.AccrualScheduler
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	serverRepo := repository.NewServerRepository(db)
	contractRepo := repository.NewContractRepository(db)
	subRepo := repository.NewSubscriptionRepository(db)
	withdrawalRepo := repository.NewWithdrawalRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	kycRepo := repository.NewKYCRepository(db)

	userService := service.NewUserService(userRepo)
	catalogService := service.NewCatalogService(serverRepo, contractRepo)
	ledgerService := service.NewLedgerService(subRepo, contractRepo, withdrawalRepo)
	withdrawalService := service.NewWithdrawalService(withdrawalRepo)
	payoutService := service.NewPayoutService(payoutRepo)
	kycService := service.NewKYCService(kycRepo)

	handler := handlers.NewHandler(
		userService, catalogService, ledgerService,
		withdrawalService, payoutService, kycService,
		cfg.SecretKey, cfg.Production)

	r := handlers.NewRouter(handler, cfg.SecretKey)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	accrual := scheduler.NewAccrualScheduler(ledgerService, subRepo, contractRepo, cfg.AccrualSchedule)

	return &App{
		server:  server,
		db:      db,
		accrual: accrual,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.accrual.Start(ctx); err != nil {
		return fmt.Errorf("failed to start accrual scheduler: %w", err)
	}

	go func() {
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed to start", zap.Error(err))
		}
	}()
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	logger.Log.Info("stopping accrual scheduler...")
	a.accrual.Stop()

	logger.Log.Info("shutting down server...")
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("server shutdown failed", zap.Error(err))
		return err
	}

	logger.Log.Info("closing database connection...")
	if err := a.db.Close(); err != nil {
		logger.Log.Error("failed to close database", zap.Error(err))
		return err
	}

	return nil
}
