package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
)

func TestSettingsService(t *testing.T) {
	store := newTestStore(t)
	svc := NewSettingsService(store)
	ctx := context.Background()

	t.Run("get before seeding", func(t *testing.T) {
		if _, err := svc.Get(ctx, adminActor); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	defaults := models.Settings{
		Company:              models.CompanyInfo{Name: "Rentals SL"},
		DefaultCollectionDay: 5,
		DefaultExpenseTariff: 50,
	}
	if err := svc.EnsureDefaults(ctx, defaults); err != nil {
		t.Fatalf("EnsureDefaults: %v", err)
	}

	t.Run("ensure is idempotent", func(t *testing.T) {
		other := defaults
		other.DefaultCollectionDay = 20
		if err := svc.EnsureDefaults(ctx, other); err != nil {
			t.Fatalf("EnsureDefaults: %v", err)
		}
		got, err := svc.Get(ctx, adminActor)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.DefaultCollectionDay != 5 {
			t.Errorf("collection day = %d, want 5 (first seed wins)", got.DefaultCollectionDay)
		}
	})

	t.Run("update company info", func(t *testing.T) {
		company := models.CompanyInfo{Name: "Rentals SL", TaxID: "B12345678"}
		got, err := svc.Update(ctx, adminActor, &models.SettingsPatch{Company: &company})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if got.Company.TaxID != "B12345678" {
			t.Errorf("taxId = %q, want B12345678", got.Company.TaxID)
		}
	})

	t.Run("collection day out of range rejected", func(t *testing.T) {
		day := 31
		if _, err := svc.Update(ctx, adminActor, &models.SettingsPatch{DefaultCollectionDay: &day}); !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("non-admin cannot read or update", func(t *testing.T) {
		if _, err := svc.Get(ctx, supervisorActor); !errors.Is(err, auth.ErrRoleNotAllowed) {
			t.Errorf("got %v, want ErrRoleNotAllowed", err)
		}
		day := 10
		if _, err := svc.Update(ctx, supervisorActor, &models.SettingsPatch{DefaultCollectionDay: &day}); !errors.Is(err, auth.ErrRoleNotAllowed) {
			t.Errorf("got %v, want ErrRoleNotAllowed", err)
		}
	})
}
