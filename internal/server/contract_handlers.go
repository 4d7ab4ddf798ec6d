package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/models"
)

func (s *Server) handleCreateContract(c *fiber.Ctx) error {
	var contract models.Contract
	if err := c.BodyParser(&contract); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if contract.RoomID == "" || contract.TenantID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "roomId and tenantId are required")
	}
	if contract.MonthlyRent <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "monthlyRent must be positive")
	}

	created, err := s.svc.Contracts.Create(c.Context(), actorFromCtx(c), &contract)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleListContracts(c *fiber.Ctx) error {
	filter := models.ContractFilter{
		PropertyID: c.Query("propertyId"),
		RoomID:     c.Query("roomId"),
		TenantID:   c.Query("tenantId"),
		State:      c.Query("state"),
	}

	contracts, err := s.svc.Contracts.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(contracts)
}

func (s *Server) handleGetContract(c *fiber.Ctx) error {
	contract, err := s.svc.Contracts.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(contract)
}

func (s *Server) handleUpdateContract(c *fiber.Ctx) error {
	var patch models.ContractPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	contract, err := s.svc.Contracts.Update(c.Context(), actorFromCtx(c), c.Params("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(contract)
}

func (s *Server) handleCalculateSettlement(c *fiber.Ctx) error {
	contract, err := s.svc.Contracts.CalculateSettlement(c.Context(), actorFromCtx(c), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(contract)
}
