package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/models"
)

func (s *Server) handleCreateRoom(c *fiber.Ctx) error {
	var r models.Room
	if err := c.BodyParser(&r); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if r.PropertyID == "" || r.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "propertyId and name are required")
	}

	created, err := s.svc.Rooms.Create(c.Context(), actorFromCtx(c), &r)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleListRooms(c *fiber.Ctx) error {
	rooms, err := s.svc.Rooms.List(c.Context(), c.Query("propertyId"))
	if err != nil {
		return err
	}
	return c.JSON(rooms)
}

func (s *Server) handleGetRoom(c *fiber.Ctx) error {
	r, err := s.svc.Rooms.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (s *Server) handleUpdateRoom(c *fiber.Ctx) error {
	var patch models.RoomPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	r, err := s.svc.Rooms.Update(c.Context(), actorFromCtx(c), c.Params("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(r)
}

func (s *Server) handleDeleteRoom(c *fiber.Ctx) error {
	if err := s.svc.Rooms.Delete(c.Context(), actorFromCtx(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
