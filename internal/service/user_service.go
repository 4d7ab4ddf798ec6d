package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

var validRoles = map[string]bool{
	models.RoleAdmin:       true,
	models.RoleSupervisor:  true,
	models.RoleCollections: true,
}

// UserService manages staff accounts. Every operation is admin-only.
type UserService struct {
	store storage.Store
}

// NewUserService creates a new UserService with the given storage backend.
func NewUserService(store storage.Store) *UserService {
	return &UserService{store: store}
}

// Create registers a new staff account with a hashed password.
func (s *UserService) Create(ctx context.Context, actor auth.Actor, u *models.User, password string) (*models.User, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return nil, err
	}
	if !validRoles[u.Role] {
		return nil, fmt.Errorf("invalid role %q: %w", u.Role, ErrBadRequest)
	}
	if err := auth.ValidateCredential(password); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrBadRequest)
	}

	existing, err := s.store.GetUserByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("user with email %s already exists: %w", u.Email, ErrConflict)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u.ID = uuid.New().String()
	u.PasswordHash = hash
	u.Active = true
	u.CreatedAt = time.Now().Unix()
	if err := s.store.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	slog.Info("User created", "user_id", u.ID, "role", u.Role, "actor_id", actor.ID)
	return u, nil
}

// Get retrieves a user by ID.
func (s *UserService) Get(ctx context.Context, actor auth.Actor, id string) (*models.User, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

func (s *UserService) get(ctx context.Context, id string) (*models.User, error) {
	u, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}

// List retrieves all staff accounts.
func (s *UserService) List(ctx context.Context, actor auth.Actor) ([]*models.User, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return nil, err
	}
	return s.store.ListUsers(ctx)
}

// Update applies a partial update to a user. A password in the patch is
// validated and re-hashed.
func (s *UserService) Update(ctx context.Context, actor auth.Actor, id string, patch *models.UserPatch) (*models.User, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrBadRequest)
	}

	u, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != u.Email {
		existing, err := s.store.GetUserByEmail(ctx, *patch.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("user with email %s already exists: %w", *patch.Email, ErrConflict)
		}
		u.Email = *patch.Email
	}
	if patch.Role != nil {
		if !validRoles[*patch.Role] {
			return nil, fmt.Errorf("invalid role %q: %w", *patch.Role, ErrBadRequest)
		}
		u.Role = *patch.Role
	}
	if patch.Password != nil {
		if err := auth.ValidateCredential(*patch.Password); err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrBadRequest)
		}
		hash, err := auth.HashPassword(*patch.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = hash
	}
	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.WhatsApp != nil {
		u.WhatsApp = *patch.WhatsApp
	}
	if patch.Active != nil {
		u.Active = *patch.Active
	}

	if err := s.store.UpdateUser(ctx, u); err != nil {
		return nil, err
	}

	slog.Info("User updated", "user_id", u.ID, "actor_id", actor.ID)
	return u, nil
}

// Delete removes a staff account. An admin cannot delete themselves.
func (s *UserService) Delete(ctx context.Context, actor auth.Actor, id string) error {
	if err := auth.Authorize(actor.Role, models.RoleAdmin); err != nil {
		return err
	}
	if actor.ID == id {
		return fmt.Errorf("cannot delete own account: %w", ErrBadRequest)
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("user %s: %w", id, ErrNotFound)
		}
		return err
	}

	slog.Info("User deleted", "user_id", id, "actor_id", actor.ID)
	return nil
}
