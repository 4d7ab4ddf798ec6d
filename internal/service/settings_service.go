package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// SettingsService manages the single application-wide settings row:
// company identity, outgoing mail and billing defaults.
type SettingsService struct {
	store storage.Store
}

// NewSettingsService creates a new SettingsService with the given storage backend.
func NewSettingsService(store storage.Store) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns the current settings. Admin only: the row carries SMTP
// credentials.
func (s *SettingsService) Get(ctx context.Context, actor auth.Actor) (*models.Settings, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return nil, err
	}
	st, err := s.store.GetSettings(ctx)
	if err != nil {
		return nil, err
	}
	if st == nil {
		return nil, fmt.Errorf("settings not initialized: %w", ErrNotFound)
	}
	return st, nil
}

// Update applies a partial update to the settings row. Admin only.
func (s *SettingsService) Update(ctx context.Context, actor auth.Actor, patch *models.SettingsPatch) (*models.Settings, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrBadRequest)
	}

	st, err := s.Get(ctx, actor)
	if err != nil {
		return nil, err
	}

	if patch.Company != nil {
		st.Company = *patch.Company
	}
	if patch.SMTP != nil {
		st.SMTP = *patch.SMTP
	}
	if patch.DefaultCollectionDay != nil {
		day := *patch.DefaultCollectionDay
		if day < 1 || day > 28 {
			return nil, fmt.Errorf("collection day must be between 1 and 28: %w", ErrBadRequest)
		}
		st.DefaultCollectionDay = day
	}
	if patch.DefaultExpenseTariff != nil {
		if *patch.DefaultExpenseTariff < 0 {
			return nil, fmt.Errorf("expense tariff must not be negative: %w", ErrBadRequest)
		}
		st.DefaultExpenseTariff = *patch.DefaultExpenseTariff
	}

	if err := s.store.UpdateSettings(ctx, st); err != nil {
		return nil, err
	}

	slog.Info("Settings updated", "actor_id", actor.ID)
	return st, nil
}

// EnsureDefaults creates the settings row if none exists yet. Called at
// startup so the row is always present afterwards.
func (s *SettingsService) EnsureDefaults(ctx context.Context, defaults models.Settings) error {
	existing, err := s.store.GetSettings(ctx)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	defaults.ID = uuid.New().String()
	if err := s.store.CreateSettings(ctx, &defaults); err != nil {
		return err
	}
	slog.Info("Default settings created", "settings_id", defaults.ID)
	return nil
}
