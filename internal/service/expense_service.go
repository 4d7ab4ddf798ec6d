package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// ExpenseService manages per-contract expenses. Expenses flagged as
// deposit offsets feed the settlement calculation on the contract.
type ExpenseService struct {
	store storage.Store
}

// NewExpenseService creates a new ExpenseService with the given storage backend.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

// Create registers an expense against an existing contract.
func (s *ExpenseService) Create(ctx context.Context, actor auth.Actor, e *models.Expense) (*models.Expense, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}
	if e.Amount < 0 {
		return nil, fmt.Errorf("expense amount must not be negative: %w", ErrBadRequest)
	}

	if _, err := s.store.GetContract(ctx, e.ContractID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("contract %s: %w", e.ContractID, ErrNotFound)
		}
		return nil, err
	}

	e.ID = uuid.New().String()
	if err := s.store.CreateExpense(ctx, e); err != nil {
		return nil, err
	}

	slog.Info("Expense created", "expense_id", e.ID, "contract_id", e.ContractID, "amount", e.Amount, "actor_id", actor.ID)
	return e, nil
}

// Get retrieves an expense by ID.
func (s *ExpenseService) Get(ctx context.Context, id string) (*models.Expense, error) {
	e, err := s.store.GetExpense(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("expense %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return e, nil
}

// List retrieves expenses, optionally restricted to one contract.
func (s *ExpenseService) List(ctx context.Context, contractID string) ([]*models.Expense, error) {
	return s.store.ListExpenses(ctx, contractID)
}

// Update applies a partial update to an expense.
func (s *ExpenseService) Update(ctx context.Context, actor auth.Actor, id string, patch *models.ExpensePatch) (*models.Expense, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrBadRequest)
	}

	e, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Concept != nil {
		e.Concept = *patch.Concept
	}
	if patch.Amount != nil {
		if *patch.Amount < 0 {
			return nil, fmt.Errorf("expense amount must not be negative: %w", ErrBadRequest)
		}
		e.Amount = *patch.Amount
	}
	if patch.OffsetsDeposit != nil {
		e.OffsetsDeposit = *patch.OffsetsDeposit
	}

	if err := s.store.UpdateExpense(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes an expense record.
func (s *ExpenseService) Delete(ctx context.Context, actor auth.Actor, id string) error {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return err
	}

	if err := s.store.DeleteExpense(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("expense %s: %w", id, ErrNotFound)
		}
		return err
	}

	slog.Info("Expense deleted", "expense_id", id, "actor_id", actor.ID)
	return nil
}
