package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mysteryidea/ledgerd/internal/config"
	"github.com/mysteryidea/ledgerd/internal/database"
	"github.com/mysteryidea/ledgerd/internal/handlers"
	"github.com/mysteryidea/ledgerd/internal/logger"
	"github.com/mysteryidea/ledgerd/internal/middleware"
	"github.com/mysteryidea/ledgerd/internal/notifier"
	"github.com/mysteryidea/ledgerd/internal/repository"
	"github.com/mysteryidea/ledgerd/internal/service"
	"github.com/mysteryidea/ledgerd/internal/stripe"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type App struct {
	server *http.Server
	db     *sql.DB
}

func NewApp() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ParseFlags()

	if err := logger.Initialize("debug"); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Log.Error("Database connection failed", zap.Error(err))
		return nil, err
	}

	userRepo := repository.NewUserRepository(db)
	walletRepo := repository.NewWalletRepository(db)
	ideaRepo := repository.NewIdeaRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	payments := stripe.NewClient(cfg.StripeSecretKey)

	userService := service.NewUserService(userRepo, payments, cfg.PublicBaseURL)
	walletService := service.NewWalletService(walletRepo, payments, cfg.PublicBaseURL)
	purchaseService := service.NewPurchaseService(purchaseRepo, ideaRepo, userRepo, payments, cfg.PublicBaseURL, cfg.PlatformFeePercent)
	settlementService := service.NewSettlementService(walletRepo, purchaseRepo, ideaRepo, userRepo, notifier.NewLogNotifier())

	handler := handlers.NewHandler(
		userService,
		walletService,
		purchaseService,
		settlementService,
		cfg.StripeWebhookSecret,
		cfg.IdentityWebhookSecret,
	)

	// 10 deposit sessions per minute per actor.
	depositLimiter := middleware.NewUserRateLimiter(rate.Every(6*time.Second), 10)

	r := handlers.NewRouter(handler, cfg.SecretKey, depositLimiter)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: r,
	}

	return &App{
		server: server,
		db:     db,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
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
