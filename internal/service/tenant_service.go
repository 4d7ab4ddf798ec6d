package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// TenantService manages tenant records. Tenants are never hard-deleted;
// they are deactivated so contract history stays intact.
type TenantService struct {
	store storage.Store
}

// NewTenantService creates a new TenantService with the given storage backend.
func NewTenantService(store storage.Store) *TenantService {
	return &TenantService{store: store}
}

// Create persists a new tenant. The national ID must be unique among
// existing tenants.
func (s *TenantService) Create(ctx context.Context, actor auth.Actor, t *models.Tenant) (*models.Tenant, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}
	if t.DNI != "" {
		existing, err := s.store.GetTenantByDNI(ctx, t.DNI)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("tenant with DNI %s already exists: %w", t.DNI, ErrConflict)
		}
	}

	t.ID = uuid.New().String()
	t.Active = true
	if err := s.store.CreateTenant(ctx, t); err != nil {
		return nil, err
	}

	slog.Info("Tenant created", "tenant_id", t.ID, "actor_id", actor.ID)
	return t, nil
}

// Get retrieves a tenant by ID.
func (s *TenantService) Get(ctx context.Context, id string) (*models.Tenant, error) {
	t, err := s.store.GetTenant(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("tenant %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// List retrieves tenants matching the filter.
func (s *TenantService) List(ctx context.Context, filter models.TenantFilter) ([]*models.Tenant, error) {
	return s.store.ListTenants(ctx, filter)
}

// Update applies a partial update to a tenant. Changing the DNI to one
// held by another tenant is a conflict.
func (s *TenantService) Update(ctx context.Context, actor auth.Actor, id string, patch *models.TenantPatch) (*models.Tenant, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrBadRequest)
	}

	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.DNI != nil && *patch.DNI != t.DNI && *patch.DNI != "" {
		existing, err := s.store.GetTenantByDNI(ctx, *patch.DNI)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("tenant with DNI %s already exists: %w", *patch.DNI, ErrConflict)
		}
	}

	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Email != nil {
		t.Email = *patch.Email
	}
	if patch.Phone != nil {
		t.Phone = *patch.Phone
	}
	if patch.DNI != nil {
		t.DNI = *patch.DNI
	}
	if patch.Active != nil {
		t.Active = *patch.Active
	}

	if err := s.store.UpdateTenant(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Deactivate marks a tenant inactive without touching their history.
func (s *TenantService) Deactivate(ctx context.Context, actor auth.Actor, id string) (*models.Tenant, error) {
	active := false
	return s.Update(ctx, actor, id, &models.TenantPatch{Active: &active})
}
