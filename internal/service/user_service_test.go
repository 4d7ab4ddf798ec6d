package service

import (
	"context"
	"errors"
	"testing"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
)

func TestUserService(t *testing.T) {
	store := newTestStore(t)
	svc := NewUserService(store)
	ctx := context.Background()

	t.Run("create hashes password", func(t *testing.T) {
		u := &models.User{Name: "Bea", Email: "bea@example.com", Role: models.RoleSupervisor}
		created, err := svc.Create(ctx, adminActor, u, "Sup3rvisor1")
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.PasswordHash == "" || created.PasswordHash == "Sup3rvisor1" {
			t.Error("password should be stored hashed")
		}
		if !created.Active {
			t.Error("new users should be active")
		}
		if created.CreatedAt == 0 {
			t.Error("CreatedAt should be set")
		}
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		u := &models.User{Name: "Bea 2", Email: "bea@example.com", Role: models.RoleCollections}
		if _, err := svc.Create(ctx, adminActor, u, "Password1"); !errors.Is(err, ErrConflict) {
			t.Errorf("got %v, want ErrConflict", err)
		}
	})

	t.Run("weak password rejected", func(t *testing.T) {
		u := &models.User{Name: "Carl", Email: "carl@example.com", Role: models.RoleCollections}
		if _, err := svc.Create(ctx, adminActor, u, "short"); !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("invalid role rejected", func(t *testing.T) {
		u := &models.User{Name: "Dana", Email: "dana@example.com", Role: "owner"}
		if _, err := svc.Create(ctx, adminActor, u, "Password1"); !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("non-admin cannot manage users", func(t *testing.T) {
		u := &models.User{Name: "Eve", Email: "eve@example.com", Role: models.RoleCollections}
		if _, err := svc.Create(ctx, supervisorActor, u, "Password1"); !errors.Is(err, auth.ErrRoleNotAllowed) {
			t.Errorf("got %v, want ErrRoleNotAllowed", err)
		}
		if _, err := svc.List(ctx, collectionsActor); !errors.Is(err, auth.ErrRoleNotAllowed) {
			t.Errorf("got %v, want ErrRoleNotAllowed", err)
		}
	})

	t.Run("update role and password", func(t *testing.T) {
		users, err := svc.List(ctx, adminActor)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(users) != 1 {
			t.Fatalf("got %d users, want 1", len(users))
		}

		role := models.RoleCollections
		password := "N3wPassword"
		oldHash := users[0].PasswordHash
		updated, err := svc.Update(ctx, adminActor, users[0].ID, &models.UserPatch{Role: &role, Password: &password})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Role != models.RoleCollections {
			t.Errorf("role = %q, want %q", updated.Role, models.RoleCollections)
		}
		if updated.PasswordHash == oldHash {
			t.Error("password hash should change")
		}
	})

	t.Run("admin cannot delete own account", func(t *testing.T) {
		if err := svc.Delete(ctx, adminActor, adminActor.ID); !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("delete", func(t *testing.T) {
		users, err := svc.List(ctx, adminActor)
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if err := svc.Delete(ctx, adminActor, users[0].ID); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, err := svc.Get(ctx, adminActor, users[0].ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}
