package server

import (
	"github.com/gofiber/fiber/v2"
)

func (s *Server) handleLogin(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	result, err := s.svc.Auth.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(result)
}

func (s *Server) handleMe(c *fiber.Ctx) error {
	user, err := s.svc.Auth.Me(c.Context(), actorFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(user)
}
