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

// RoomService manages rentable units. Rooms require an existing parent
// property, and deleting a room with contract history is blocked.
type RoomService struct {
	store storage.Store
}

// NewRoomService creates a new RoomService with the given storage backend.
func NewRoomService(store storage.Store) *RoomService {
	return &RoomService{store: store}
}

// Create persists a new room under an existing property.
func (s *RoomService) Create(ctx context.Context, actor auth.Actor, r *models.Room) (*models.Room, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}

	if _, err := s.store.GetProperty(ctx, r.PropertyID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("property %s: %w", r.PropertyID, ErrNotFound)
		}
		return nil, err
	}

	r.ID = uuid.New().String()
	if err := s.store.CreateRoom(ctx, r); err != nil {
		return nil, err
	}

	slog.Info("Room created", "room_id", r.ID, "property_id", r.PropertyID, "actor_id", actor.ID)
	return r, nil
}

// Get retrieves a room by ID.
func (s *RoomService) Get(ctx context.Context, id string) (*models.Room, error) {
	r, err := s.store.GetRoom(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("room %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return r, nil
}

// List retrieves all rooms, optionally restricted to a property.
func (s *RoomService) List(ctx context.Context, propertyID string) ([]*models.Room, error) {
	return s.store.ListRooms(ctx, propertyID)
}

// Update applies a partial update to a room.
func (s *RoomService) Update(ctx context.Context, actor auth.Actor, id string, patch *models.RoomPatch) (*models.Room, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrBadRequest)
	}

	r, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		r.Name = *patch.Name
	}
	if patch.SquareMeters != nil {
		r.SquareMeters = *patch.SquareMeters
	}
	if patch.BasePrice != nil {
		r.BasePrice = *patch.BasePrice
	}

	if err := s.store.UpdateRoom(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a room. Fails with a conflict while any contract, in any
// state, references it.
func (s *RoomService) Delete(ctx context.Context, actor auth.Actor, id string) error {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return err
	}

	hasContracts, err := s.store.RoomHasContracts(ctx, id)
	if err != nil {
		return err
	}
	if hasContracts {
		return fmt.Errorf("room %s has contracts: %w", id, ErrConflict)
	}

	if err := s.store.DeleteRoom(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("room %s: %w", id, ErrNotFound)
		}
		return err
	}

	slog.Info("Room deleted", "room_id", id, "actor_id", actor.ID)
	return nil
}
