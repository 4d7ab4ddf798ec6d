package server

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/auth"
)

const actorKey = "actor"

// requireAuth validates the bearer token and stores the resulting actor
// in the request locals for handlers to pick up.
func (s *Server) requireAuth(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return auth.ErrMissingToken
	}

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return auth.ErrInvalidToken
	}

	claims, err := s.jwtManager.Validate(token)
	if err != nil {
		return err
	}

	c.Locals(actorKey, auth.Actor{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	})
	return c.Next()
}

func actorFromCtx(c *fiber.Ctx) auth.Actor {
	actor, _ := c.Locals(actorKey).(auth.Actor)
	return actor
}

// requestLogger logs each request with its status and duration.
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusForError(err)
		}

		slog.Debug("Request handled",
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}
