package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
)

func TestAuthServiceLogin(t *testing.T) {
	store := newTestStore(t)
	users := NewUserService(store)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	svc := NewAuthService(store, auth.NewPasswordAuthenticator(store), jwtManager)
	ctx := context.Background()

	created, err := users.Create(ctx, adminActor, &models.User{Name: "Bea", Email: "bea@example.com", Role: models.RoleSupervisor}, "Sup3rvisor1")
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	t.Run("valid login returns token and user", func(t *testing.T) {
		result, err := svc.Login(ctx, "bea@example.com", "Sup3rvisor1")
		if err != nil {
			t.Fatalf("Login: %v", err)
		}
		if result.Token == "" {
			t.Error("token should not be empty")
		}
		if result.User.ID != created.ID {
			t.Errorf("user = %q, want %q", result.User.ID, created.ID)
		}

		claims, err := jwtManager.Validate(result.Token)
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if claims.Role != models.RoleSupervisor {
			t.Errorf("role claim = %q, want %q", claims.Role, models.RoleSupervisor)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Login(ctx, "bea@example.com", "wrong-password"); !errors.Is(err, auth.ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("deactivated account cannot log in", func(t *testing.T) {
		active := false
		if _, err := users.Update(ctx, adminActor, created.ID, &models.UserPatch{Active: &active}); err != nil {
			t.Fatalf("failed to deactivate user: %v", err)
		}
		if _, err := svc.Login(ctx, "bea@example.com", "Sup3rvisor1"); !errors.Is(err, auth.ErrInactiveUser) {
			t.Errorf("got %v, want ErrInactiveUser", err)
		}
	})

	t.Run("me resolves the actor", func(t *testing.T) {
		user, err := svc.Me(ctx, auth.Actor{ID: created.ID, Email: created.Email, Role: created.Role})
		if err != nil {
			t.Fatalf("Me: %v", err)
		}
		if user.Email != "bea@example.com" {
			t.Errorf("email = %q, want bea@example.com", user.Email)
		}
	})

	t.Run("me with unknown actor", func(t *testing.T) {
		if _, err := svc.Me(ctx, auth.Actor{ID: "missing"}); !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}
