package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/models"
)

func (s *Server) handleCreateTenant(c *fiber.Ctx) error {
	var t models.Tenant
	if err := c.BodyParser(&t); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if t.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	created, err := s.svc.Tenants.Create(c.Context(), actorFromCtx(c), &t)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleListTenants(c *fiber.Ctx) error {
	filter := models.TenantFilter{Search: c.Query("search")}
	if raw := c.Query("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid active filter")
		}
		filter.Active = &active
	}

	tenants, err := s.svc.Tenants.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(tenants)
}

func (s *Server) handleGetTenant(c *fiber.Ctx) error {
	t, err := s.svc.Tenants.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(t)
}

func (s *Server) handleUpdateTenant(c *fiber.Ctx) error {
	var patch models.TenantPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	t, err := s.svc.Tenants.Update(c.Context(), actorFromCtx(c), c.Params("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(t)
}

func (s *Server) handleDeactivateTenant(c *fiber.Ctx) error {
	t, err := s.svc.Tenants.Deactivate(c.Context(), actorFromCtx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(t)
}
