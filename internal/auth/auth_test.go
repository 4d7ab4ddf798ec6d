package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmarti/rentbase/internal/models"
)

// fakeUserStorage serves a fixed set of users keyed by email.
type fakeUserStorage struct {
	users map[string]*models.User
}

func (f *fakeUserStorage) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func newFakeStorage(t *testing.T, active bool) *fakeUserStorage {
	t.Helper()

	hash, err := HashPassword("Correct1Password")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &fakeUserStorage{users: map[string]*models.User{
		"alice@example.com": {
			ID:           "u1",
			Email:        "alice@example.com",
			PasswordHash: hash,
			Role:         models.RoleAdmin,
			Active:       active,
		},
	}}
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		a := NewPasswordAuthenticator(newFakeStorage(t, true))
		user, err := a.Authenticate(ctx, "alice@example.com", "Correct1Password")
		if err != nil {
			t.Fatalf("Authenticate: %v", err)
		}
		if user.ID != "u1" {
			t.Errorf("got user %q, want u1", user.ID)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		a := NewPasswordAuthenticator(newFakeStorage(t, true))
		if _, err := a.Authenticate(ctx, "alice@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		a := NewPasswordAuthenticator(newFakeStorage(t, true))
		if _, err := a.Authenticate(ctx, "nobody@example.com", "Correct1Password"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("got %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("inactive user with correct password", func(t *testing.T) {
		a := NewPasswordAuthenticator(newFakeStorage(t, false))
		if _, err := a.Authenticate(ctx, "alice@example.com", "Correct1Password"); !errors.Is(err, ErrInactiveUser) {
			t.Errorf("got %v, want ErrInactiveUser", err)
		}
	})
}

func TestValidateCredential(t *testing.T) {
	if err := ValidateCredential("1234567"); !errors.Is(err, ErrWeakPassword) {
		t.Errorf("got %v, want ErrWeakPassword", err)
	}
	if err := ValidateCredential("12345678"); err != nil {
		t.Errorf("got %v, want nil", err)
	}
}

func TestJWTRoundtrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "u1", Email: "alice@example.com", Role: models.RoleSupervisor}

	token, err := manager.Generate(user)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "alice@example.com" || claims.Role != models.RoleSupervisor {
		t.Errorf("claims = %+v, want user u1 with supervisor role", claims)
	}
}

func TestJWTValidateRejects(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	user := &models.User{ID: "u1", Email: "alice@example.com", Role: models.RoleAdmin}

	t.Run("garbage token", func(t *testing.T) {
		if _, err := manager.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := manager.Generate(user)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		other := NewJWTManager("other-secret", time.Hour)
		if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		expired := NewJWTManager("test-secret", -time.Minute)
		token, err := expired.Generate(user)
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if _, err := manager.Validate(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("got %v, want ErrInvalidToken", err)
		}
	})
}

func TestAuthorize(t *testing.T) {
	if err := Authorize(models.RoleAdmin, models.RoleAdmin, models.RoleSupervisor); err != nil {
		t.Errorf("admin should be allowed: %v", err)
	}
	if err := Authorize(models.RoleCollections, models.RoleAdmin, models.RoleSupervisor); !errors.Is(err, ErrRoleNotAllowed) {
		t.Errorf("got %v, want ErrRoleNotAllowed", err)
	}
	if err := Authorize(models.RoleAdmin); !errors.Is(err, ErrRoleNotAllowed) {
		t.Errorf("empty allow list should reject: got %v", err)
	}
}
