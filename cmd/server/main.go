package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appcatalog "github.com/Mutombwa/kimberly-signature-scents/internal/application/catalog"
	appcommunity "github.com/Mutombwa/kimberly-signature-scents/internal/application/community"
	appidentity "github.com/Mutombwa/kimberly-signature-scents/internal/application/identity"
	appregistration "github.com/Mutombwa/kimberly-signature-scents/internal/application/registration"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/auth"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/config"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/logger"
	"github.com/Mutombwa/kimberly-signature-scents/internal/infrastructure/persistence"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/handler"
	"github.com/Mutombwa/kimberly-signature-scents/internal/interfaces/http/router"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync(log) }()

	log.Info("Starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("driver", cfg.Database.Driver),
	)

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close database", zap.Error(err))
		}
	}()

	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	if err := db.SeedCategories(context.Background()); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	userRepo := persistence.NewGormUserRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	categoryRepo := persistence.NewGormCategoryRepository(db.DB)
	registrationRepo := persistence.NewGormRegistrationRepository(db.DB)
	announcementRepo := persistence.NewGormAnnouncementRepository(db.DB)
	rateRepo := persistence.NewGormExchangeRateRepository(db.DB)
	productRepo := persistence.NewGormProductRepository(db.DB)

	authService := appidentity.NewAuthService(userRepo, jwtService, cfg.App.AdminEmail, log)
	communityService := appcommunity.NewCommunityService(postRepo, categoryRepo, log)
	registrationService := appregistration.NewRegistrationService(registrationRepo, log)
	announcementService := appcatalog.NewAnnouncementService(announcementRepo, log)
	rateService := appcatalog.NewExchangeRateService(rateRepo, log)
	productService := appcatalog.NewProductService(productRepo, log)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		System:       handler.NewSystemHandler(db),
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(authService),
		Registration: handler.NewRegistrationHandler(registrationService),
		Community:    handler.NewCommunityHandler(communityService),
		Announcement: handler.NewAnnouncementHandler(announcementService),
		ExchangeRate: handler.NewExchangeRateHandler(rateService),
		Product:      handler.NewProductHandler(productService),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		log.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
