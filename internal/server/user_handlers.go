package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/models"
)

func (s *Server) handleCreateUser(c *fiber.Ctx) error {
	var req struct {
		Name     string `json:"name"`
		WhatsApp string `json:"whatsapp"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.Email == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email is required")
	}

	user := &models.User{
		Name:     req.Name,
		WhatsApp: req.WhatsApp,
		Email:    req.Email,
		Role:     req.Role,
	}
	created, err := s.svc.Users.Create(c.Context(), actorFromCtx(c), user, req.Password)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleListUsers(c *fiber.Ctx) error {
	users, err := s.svc.Users.List(c.Context(), actorFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(users)
}

func (s *Server) handleGetUser(c *fiber.Ctx) error {
	user, err := s.svc.Users.Get(c.Context(), actorFromCtx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (s *Server) handleUpdateUser(c *fiber.Ctx) error {
	var patch models.UserPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	user, err := s.svc.Users.Update(c.Context(), actorFromCtx(c), c.Params("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(user)
}

func (s *Server) handleDeleteUser(c *fiber.Ctx) error {
	if err := s.svc.Users.Delete(c.Context(), actorFromCtx(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
