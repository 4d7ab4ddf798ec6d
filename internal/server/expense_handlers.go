package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/models"
)

func (s *Server) handleCreateExpense(c *fiber.Ctx) error {
	var e models.Expense
	if err := c.BodyParser(&e); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if e.ContractID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "contractId is required")
	}

	created, err := s.svc.Expenses.Create(c.Context(), actorFromCtx(c), &e)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleListExpenses(c *fiber.Ctx) error {
	expenses, err := s.svc.Expenses.List(c.Context(), c.Query("contractId"))
	if err != nil {
		return err
	}
	return c.JSON(expenses)
}

func (s *Server) handleGetExpense(c *fiber.Ctx) error {
	e, err := s.svc.Expenses.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(e)
}

func (s *Server) handleUpdateExpense(c *fiber.Ctx) error {
	var patch models.ExpensePatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	e, err := s.svc.Expenses.Update(c.Context(), actorFromCtx(c), c.Params("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(e)
}

func (s *Server) handleDeleteExpense(c *fiber.Ctx) error {
	if err := s.svc.Expenses.Delete(c.Context(), actorFromCtx(c), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
