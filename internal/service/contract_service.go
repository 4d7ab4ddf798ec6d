package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/calculator"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// ContractService manages the lease contract lifecycle: creation under the
// single-active-contract-per-room invariant, restricted partial updates,
// and deposit settlement.
type ContractService struct {
	store storage.Store
}

// NewContractService creates a new ContractService with the given storage backend.
func NewContractService(store storage.Store) *ContractService {
	return &ContractService{store: store}
}

// Create validates the referenced room and tenant, checks that the room has
// no active contract, and persists the contract in active state with a
// pending deposit settlement.
func (s *ContractService) Create(ctx context.Context, actor auth.Actor, c *models.Contract) (*models.Contract, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}

	if _, err := s.store.GetRoom(ctx, c.RoomID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("room %s: %w", c.RoomID, ErrNotFound)
		}
		return nil, err
	}
	if _, err := s.store.GetTenant(ctx, c.TenantID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("tenant %s: %w", c.TenantID, ErrNotFound)
		}
		return nil, err
	}

	active, err := s.store.GetActiveContractByRoom(ctx, c.RoomID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, fmt.Errorf("room %s already has an active contract: %w", c.RoomID, ErrConflict)
	}

	c.ID = uuid.New().String()
	c.State = models.ContractActive
	c.Archived = false
	c.Settlement = models.DepositSettlement{State: models.SettlementPending}

	if err := s.store.CreateContract(ctx, c); err != nil {
		slog.Error("Contract creation failed", "room_id", c.RoomID, "error", err)
		return nil, err
	}

	slog.Info("Contract created",
		"contract_id", c.ID,
		"room_id", c.RoomID,
		"tenant_id", c.TenantID,
		"actor_id", actor.ID,
	)
	return c, nil
}

// Get retrieves a contract by ID.
func (s *ContractService) Get(ctx context.Context, id string) (*models.Contract, error) {
	c, err := s.store.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("contract %s: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

// List retrieves contracts matching the filter.
func (s *ContractService) List(ctx context.Context, filter models.ContractFilter) ([]*models.Contract, error) {
	return s.store.ListContracts(ctx, filter)
}

// Update applies a partial update. Only the end date, monthly rent, state,
// archived flag and settlement record may change; an effectively empty
// patch is rejected.
//
// Setting state back to active does not re-check the per-room invariant
// here; the partial unique index in the store rejects a second active row.
func (s *ContractService) Update(ctx context.Context, actor auth.Actor, id string, patch *models.ContractPatch) (*models.Contract, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}
	if patch == nil || patch.IsEmpty() {
		return nil, fmt.Errorf("no fields to update: %w", ErrBadRequest)
	}

	c, err := s.store.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("contract %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	if patch.EndDate != nil {
		c.EndDate = *patch.EndDate
	}
	if patch.MonthlyRent != nil {
		c.MonthlyRent = *patch.MonthlyRent
	}
	if patch.State != nil {
		if *patch.State != models.ContractActive && *patch.State != models.ContractFinished {
			return nil, fmt.Errorf("invalid contract state %q: %w", *patch.State, ErrBadRequest)
		}
		c.State = *patch.State
	}
	if patch.Archived != nil {
		c.Archived = *patch.Archived
	}
	if patch.Settlement != nil {
		if err := validateSettlement(patch.Settlement); err != nil {
			return nil, err
		}
		c.Settlement = *patch.Settlement
	}

	if err := s.store.UpdateContract(ctx, c); err != nil {
		slog.Error("Contract update failed", "contract_id", id, "error", err)
		return nil, err
	}

	slog.Info("Contract updated", "contract_id", id, "actor_id", actor.ID)
	return c, nil
}

// CalculateSettlement computes the deposit amount to return for a contract
// by subtracting its deposit-offsetting expenses, stores the result with
// settlement state "calculated", and returns the updated contract. The
// settlement date stays unset until the deposit is actually returned via a
// regular update.
func (s *ContractService) CalculateSettlement(ctx context.Context, actor auth.Actor, id string) (*models.Contract, error) {
	if err := auth.Authorize(actor.Role, models.RoleAdmin, models.RoleSupervisor); err != nil {
		return nil, err
	}

	c, err := s.store.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("contract %s: %w", id, ErrNotFound)
		}
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, id)
	if err != nil {
		return nil, err
	}
	var deductions []float64
	for _, e := range expenses {
		if e.OffsetsDeposit {
			deductions = append(deductions, e.Amount)
		}
	}

	result, err := calculator.SettleDeposit(c.Deposit, deductions)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err, ErrBadRequest)
	}

	amount := result.AmountToReturn
	c.Settlement = models.DepositSettlement{
		State:          models.SettlementCalculated,
		AmountToReturn: &amount,
	}

	if err := s.store.UpdateContract(ctx, c); err != nil {
		slog.Error("Settlement calculation failed", "contract_id", id, "error", err)
		return nil, err
	}

	slog.Info("Deposit settlement calculated",
		"contract_id", id,
		"amount_to_return", amount,
		"deducted", result.Deducted,
		"actor_id", actor.ID,
	)
	return c, nil
}

// validateSettlement enforces the settlement record invariants: returned
// states require a settlement date, and a partial return an amount.
func validateSettlement(st *models.DepositSettlement) error {
	switch st.State {
	case models.SettlementPending, models.SettlementCalculated:
		return nil
	case models.SettlementReturnedFull:
		if st.SettledAt == nil {
			return fmt.Errorf("returned settlement requires a date: %w", ErrBadRequest)
		}
		return nil
	case models.SettlementReturnedPartial:
		if st.SettledAt == nil {
			return fmt.Errorf("returned settlement requires a date: %w", ErrBadRequest)
		}
		if st.AmountToReturn == nil {
			return fmt.Errorf("partial return requires an amount: %w", ErrBadRequest)
		}
		return nil
	default:
		return fmt.Errorf("invalid settlement state %q: %w", st.State, ErrBadRequest)
	}
}

// currentPeriod formats a time as a "YYYY-MM" billing period key.
func currentPeriod(t time.Time) string {
	return t.UTC().Format("2006-01")
}
