package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// PaymentService enforces the payment status state machine and its
// role-gated transitions.
//
// Rules:
//   - A payment recorded by collections staff always starts in
//     under_review, whatever status was submitted.
//   - Only admin or supervisor may move a payment to paid; the transition
//     stamps the reviewer.
//   - Every update stamps the last-update timestamp.
type PaymentService struct {
	store storage.Store
}

// NewPaymentService creates a new PaymentService with the given storage backend.
func NewPaymentService(store storage.Store) *PaymentService {
	return &PaymentService{store: store}
}

var validPaymentTypes = map[string]bool{
	models.PaymentRent:            true,
	models.PaymentExpenses:        true,
	models.PaymentDepositCollect:  true,
	models.PaymentDepositReturned: true,
}

var validPaymentMethods = map[string]bool{
	models.MethodCash:     true,
	models.MethodTransfer: true,
}

var validPaymentStatuses = map[string]bool{
	models.PaymentPending:     true,
	models.PaymentUnderReview: true,
	models.PaymentPaid:        true,
	models.PaymentLate:        true,
}

// Create records a new payment against an existing contract. Any
// authenticated user may record payments, but a collections actor's
// submission is forced into under_review.
func (s *PaymentService) Create(ctx context.Context, actor auth.Actor, p *models.Payment) (*models.Payment, error) {
	if _, err := s.store.GetContract(ctx, p.ContractID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("contract %s: %w", p.ContractID, ErrNotFound)
		}
		return nil, err
	}

	if !validPeriod(p.Period) {
		return nil, fmt.Errorf("invalid period %q, want YYYY-MM: %w", p.Period, ErrBadRequest)
	}
	if !validPaymentTypes[p.Type] {
		return nil, fmt.Errorf("invalid payment type %q: %w", p.Type, ErrBadRequest)
	}
	if p.Method == "" {
		p.Method = models.MethodCash
	}
	if !validPaymentMethods[p.Method] {
		return nil, fmt.Errorf("invalid payment method %q: %w", p.Method, ErrBadRequest)
	}
	if p.Status == "" {
		p.Status = models.PaymentPending
	}
	if !validPaymentStatuses[p.Status] {
		return nil, fmt.Errorf("invalid payment status %q: %w", p.Status, ErrBadRequest)
	}

	p.ID = uuid.New().String()
	p.CreatedBy = actor.ID
	p.CreatedAt = time.Now().Unix()
	p.UpdatedAt = nil
	p.ReviewedBy = nil

	// Collections staff cannot create a payment that skips review.
	if actor.Role == models.RoleCollections {
		p.Status = models.PaymentUnderReview
	}

	if err := s.store.CreatePayment(ctx, p); err != nil {
		slog.Error("Payment creation failed", "contract_id", p.ContractID, "error", err)
		return nil, err
	}

	slog.Info("Payment created",
		"payment_id", p.ID,
		"contract_id", p.ContractID,
		"period", p.Period,
		"type", p.Type,
		"status", p.Status,
		"actor_id", actor.ID,
	)
	return p, nil
}

// Get retrieves a payment by ID.
func (s *PaymentService) Get(ctx context.Context, id string) (*models.Payment, error) {
	p, err := s.store.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return p, nil
}

// List retrieves payments matching the filter.
func (s *PaymentService) List(ctx context.Context, filter models.PaymentFilter) ([]*models.Payment, error) {
	return s.store.ListPayments(ctx, filter)
}

// Update applies a partial update, driving the status state machine. The
// paid transition is restricted to admin and supervisor and stamps the
// reviewer; every update stamps the last-update timestamp.
func (s *PaymentService) Update(ctx context.Context, actor auth.Actor, id string, patch *models.PaymentPatch) (*models.Payment, error) {
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrBadRequest)
	}

	p, err := s.store.GetPayment(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("payment %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if patch.Status != nil {
		if !validPaymentStatuses[*patch.Status] {
			return nil, fmt.Errorf("invalid payment status %q: %w", *patch.Status, ErrBadRequest)
		}
		if *patch.Status == models.PaymentPaid {
			if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
				return nil, fmt.Errorf("collections staff cannot mark payments as paid: %w", ErrForbidden)
			}
			reviewer := actor.ID
			p.ReviewedBy = &reviewer
		}
		p.Status = *patch.Status
	}
	if patch.PaidAt != nil {
		p.PaidAt = patch.PaidAt
	}
	if patch.Amount != nil {
		p.Amount = *patch.Amount
	}
	if patch.Method != nil {
		if !validPaymentMethods[*patch.Method] {
			return nil, fmt.Errorf("invalid payment method %q: %w", *patch.Method, ErrBadRequest)
		}
		p.Method = *patch.Method
	}
	if patch.Notes != nil {
		p.Notes = *patch.Notes
	}

	now := time.Now().Unix()
	p.UpdatedAt = &now

	if err := s.store.UpdatePayment(ctx, p); err != nil {
		slog.Error("Payment update failed", "payment_id", id, "error", err)
		return nil, err
	}

	slog.Info("Payment updated",
		"payment_id", id,
		"status", p.Status,
		"actor_id", actor.ID,
	)
	return p, nil
}

// PendingPayment is a rent payment still owed for a period, enriched with
// its contract, room, property and tenant for collections workflows.
// Missing room, property or tenant yields a nil field rather than an error.
type PendingPayment struct {
	Payment  *models.Payment  `json:"payment"`
	Contract *models.Contract `json:"contract"`
	Room     *models.Room     `json:"room"`
	Property *models.Property `json:"property"`
	Tenant   *models.Tenant   `json:"tenant"`
}

// PendingForPeriod returns the pending and late rent payments of a billing
// period as a denormalized read-only projection.
func (s *PaymentService) PendingForPeriod(ctx context.Context, period string) ([]*PendingPayment, error) {
	if !validPeriod(period) {
		return nil, fmt.Errorf("invalid period %q, want YYYY-MM: %w", period, ErrBadRequest)
	}

	payments, err := s.store.ListDueRentPayments(ctx, period)
	if err != nil {
		return nil, err
	}

	result := make([]*PendingPayment, 0, len(payments))
	for _, p := range payments {
		contract, err := s.store.GetContract(ctx, p.ContractID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				// Orphaned payment; leave it out of the projection.
				continue
			}
			return nil, err
		}

		entry := &PendingPayment{Payment: p, Contract: contract}

		if room, err := s.store.GetRoom(ctx, contract.RoomID); err == nil {
			entry.Room = room
			if property, err := s.store.GetProperty(ctx, room.PropertyID); err == nil {
				entry.Property = property
			} else if !errors.Is(err, storage.ErrNotFound) {
				return nil, err
			}
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		if tenant, err := s.store.GetTenant(ctx, contract.TenantID); err == nil {
			entry.Tenant = tenant
		} else if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}

		result = append(result, entry)
	}

	return result, nil
}

// validPeriod reports whether s is a well-formed "YYYY-MM" period key.
func validPeriod(s string) bool {
	_, err := time.Parse("2006-01", s)
	return err == nil
}
