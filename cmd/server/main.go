package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/config"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/server"
	"github.com/dmarti/rentbase/internal/service"
	"github.com/dmarti/rentbase/internal/storage"
	"github.com/dmarti/rentbase/internal/storage/sqlite"
	"github.com/dmarti/rentbase/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	ctx := context.Background()
	settingsService := service.NewSettingsService(store)
	if err := seed(ctx, store, settingsService); err != nil {
		slog.Error("Failed to seed initial data", "error", err)
		os.Exit(1)
	}

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	srv := server.New(jwtManager, server.Services{
		Auth:       service.NewAuthService(store, authenticator, jwtManager),
		Users:      service.NewUserService(store),
		Properties: service.NewPropertyService(store),
		Rooms:      service.NewRoomService(store),
		Tenants:    service.NewTenantService(store),
		Contracts:  service.NewContractService(store),
		Payments:   service.NewPaymentService(store),
		Expenses:   service.NewExpenseService(store),
		Settings:   settingsService,
		Dashboard:  service.NewDashboardService(store),
	})

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		slog.Info("Shutting down")
		if err := srv.Shutdown(); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Listen(":" + cfg.Port); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}

// seed creates the initial admin account and default settings on first
// run. Both are no-ops once the rows exist.
func seed(ctx context.Context, store storage.Store, settings *service.SettingsService) error {
	admin, err := store.GetUserByEmail(ctx, "admin@admin.com")
	if err != nil {
		return err
	}
	if admin == nil {
		hash, err := auth.HashPassword("Admin123")
		if err != nil {
			return err
		}
		admin = &models.User{
			ID:           uuid.New().String(),
			Name:         "Administrator",
			Email:        "admin@admin.com",
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			Active:       true,
			CreatedAt:    time.Now().Unix(),
		}
		if err := store.CreateUser(ctx, admin); err != nil {
			return err
		}
		slog.Info("Default admin account created", "email", admin.Email)
	}

	return settings.EnsureDefaults(ctx, models.Settings{
		Company:              models.CompanyInfo{Name: "My Company"},
		DefaultCollectionDay: 5,
		DefaultExpenseTariff: 50.0,
	})
}
