package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dmarti/rentbase/internal/models"
)

func TestTenantService(t *testing.T) {
	store := newTestStore(t)
	svc := NewTenantService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, adminActor, &models.Tenant{Name: "Carmen", Email: "carmen@example.com", DNI: "11111111A"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Active {
		t.Error("new tenants should be active")
	}

	t.Run("duplicate dni conflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, adminActor, &models.Tenant{Name: "Other", Email: "other@example.com", DNI: "11111111A"})
		if !errors.Is(err, ErrConflict) {
			t.Errorf("got %v, want ErrConflict", err)
		}
	})

	t.Run("dni change to taken value conflicts", func(t *testing.T) {
		second, err := svc.Create(ctx, adminActor, &models.Tenant{Name: "Diego", Email: "diego@example.com", DNI: "22222222B"})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		dni := "11111111A"
		if _, err := svc.Update(ctx, adminActor, second.ID, &models.TenantPatch{DNI: &dni}); !errors.Is(err, ErrConflict) {
			t.Errorf("got %v, want ErrConflict", err)
		}
	})

	t.Run("deactivate keeps the record", func(t *testing.T) {
		got, err := svc.Deactivate(ctx, adminActor, created.ID)
		if err != nil {
			t.Fatalf("Deactivate: %v", err)
		}
		if got.Active {
			t.Error("tenant should be inactive")
		}

		// Still retrievable by ID after deactivation.
		if _, err := svc.Get(ctx, created.ID); err != nil {
			t.Errorf("Get after deactivate: %v", err)
		}
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		if _, err := svc.Update(ctx, adminActor, created.ID, &models.TenantPatch{}); !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		if _, err := svc.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}
