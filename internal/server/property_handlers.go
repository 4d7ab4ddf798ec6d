package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/models"
)

func (s *Server) handleCreateProperty(c *fiber.Ctx) error {
	var p models.Property
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if p.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	created, err := s.svc.Properties.Create(c.Context(), actorFromCtx(c), &p)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleListProperties(c *fiber.Ctx) error {
	properties, err := s.svc.Properties.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(properties)
}

func (s *Server) handleGetProperty(c *fiber.Ctx) error {
	p, err := s.svc.Properties.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (s *Server) handleUpdateProperty(c *fiber.Ctx) error {
	var patch models.PropertyPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	p, err := s.svc.Properties.Update(c.Context(), actorFromCtx(c), c.Params("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (s *Server) handleDeleteProperty(c *fiber.Ctx) error {
	if err := s.svc.Properties.Delete(c.Context(), actorFromCtx(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
