package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/models"
)

func (s *Server) handleGetSettings(c *fiber.Ctx) error {
	settings, err := s.svc.Settings.Get(c.Context(), actorFromCtx(c))
	if err != nil {
		return err
	}
	return c.JSON(settings)
}

func (s *Server) handleUpdateSettings(c *fiber.Ctx) error {
	var patch models.SettingsPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	settings, err := s.svc.Settings.Update(c.Context(), actorFromCtx(c), &patch)
	if err != nil {
		return err
	}
	return c.JSON(settings)
}

func (s *Server) handleDashboardStats(c *fiber.Ctx) error {
	stats, err := s.svc.Dashboard.Stats(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}
