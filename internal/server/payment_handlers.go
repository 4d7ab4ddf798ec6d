package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/dmarti/rentbase/internal/models"
)

func (s *Server) handleCreatePayment(c *fiber.Ctx) error {
	var p models.Payment
	if err := c.BodyParser(&p); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if p.ContractID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "contractId is required")
	}
	if p.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "amount must be positive")
	}

	created, err := s.svc.Payments.Create(c.Context(), actorFromCtx(c), &p)
	if err != nil {
		return err
	}

	paymentsRecorded.WithLabelValues(created.Type).Inc()
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (s *Server) handleListPayments(c *fiber.Ctx) error {
	filter := models.PaymentFilter{
		ContractID: c.Query("contractId"),
		Type:       c.Query("type"),
		Status:     c.Query("status"),
		Period:     c.Query("period"),
	}

	payments, err := s.svc.Payments.List(c.Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(payments)
}

func (s *Server) handlePendingPayments(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return fiber.NewError(fiber.StatusBadRequest, "period query parameter is required")
	}

	pending, err := s.svc.Payments.PendingForPeriod(c.Context(), period)
	if err != nil {
		return err
	}
	return c.JSON(pending)
}

func (s *Server) handleGetPayment(c *fiber.Ctx) error {
	p, err := s.svc.Payments.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(p)
}

func (s *Server) handleUpdatePayment(c *fiber.Ctx) error {
	var patch models.PaymentPatch
	if err := c.BodyParser(&patch); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	p, err := s.svc.Payments.Update(c.Context(), actorFromCtx(c), c.Params("id"), &patch)
	if err != nil {
		return err
	}
	return c.JSON(p)
}
