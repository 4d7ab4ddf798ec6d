package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// AuthService handles login and current-user lookup. Credential checks
// are delegated to the authenticator; this layer only issues tokens.
type AuthService struct {
	store      storage.Store
	authn      *auth.PasswordAuthenticator
	jwtManager *auth.JWTManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(store storage.Store, authn *auth.PasswordAuthenticator, jwtManager *auth.JWTManager) *AuthService {
	return &AuthService{store: store, authn: authn, jwtManager: jwtManager}
}

// LoginResult carries the signed token together with the authenticated user.
type LoginResult struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Login verifies the credentials and returns a signed token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.authn.Authenticate(ctx, email, password)
	if err != nil {
		slog.Warn("Login failed", "email", email)
		return nil, err
	}

	token, err := s.jwtManager.Generate(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	slog.Info("User logged in", "user_id", user.ID, "role", user.Role)
	return &LoginResult{Token: token, User: user}, nil
}

// Me returns the account behind the given actor.
func (s *AuthService) Me(ctx context.Context, actor auth.Actor) (*models.User, error) {
	u, err := s.store.GetUserByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("user %s: %w", actor.ID, ErrNotFound)
		}
		return nil, err
	}
	return u, nil
}
