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

// PropertyService manages buildings/flats. Deleting a property with
// dependent rooms is blocked.
type PropertyService struct {
	store storage.Store
}

// NewPropertyService creates a new PropertyService with the given storage backend.
func NewPropertyService(store storage.Store) *PropertyService {
	return &PropertyService{store: store}
}

// Create persists a new property.
func (s *PropertyService) Create(ctx context.Context, actor auth.Actor, p *models.Property) (*models.Property, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}

	p.ID = uuid.New().String()
	if err := s.store.CreateProperty(ctx, p); err != nil {
		return nil, err
	}

	slog.Info("Property created", "property_id", p.ID, "actor_id", actor.ID)
	return p, nil
}

// Get retrieves a property by ID.
func (s *PropertyService) Get(ctx context.Context, id string) (*models.Property, error) {
	p, err := s.store.GetProperty(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("property %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// List retrieves all properties.
func (s *PropertyService) List(ctx context.Context) ([]*models.Property, error) {
	return s.store.ListProperties(ctx)
}

// Update applies a partial update to a property.
func (s *PropertyService) Update(ctx context.Context, actor auth.Actor, id string, patch *models.PropertyPatch) (*models.Property, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrBadRequest)
	}

	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}
	if patch.HasCleaningService != nil {
		p.HasCleaningService = *patch.HasCleaningService
	}
	if patch.MonthlyCleaningAmount != nil {
		p.MonthlyCleaningAmount = patch.MonthlyCleaningAmount
	}

	if err := s.store.UpdateProperty(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a property. Fails with a conflict while rooms still
// reference it.
func (s *PropertyService) Delete(ctx context.Context, actor auth.Actor, id string) error {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return err
	}

	hasRooms, err := s.store.PropertyHasRooms(ctx, id)
	if err != nil {
		return err
	}
	if hasRooms {
		return fmt.Errorf("property %s still has rooms: %w", id, ErrConflict)
	}

	if err := s.store.DeleteProperty(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("property %s: %w", id, ErrNotFound)
		}
		return err
	}

	slog.Info("Property deleted", "property_id", id, "actor_id", actor.ID)
	return nil
}
