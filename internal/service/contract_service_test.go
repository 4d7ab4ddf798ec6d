package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
)

func newContractForRoom(roomID, tenantID string) *models.Contract {
	now := time.Now().Unix()
	return &models.Contract{
		RoomID:      roomID,
		TenantID:    tenantID,
		StartDate:   now,
		EndDate:     now + 180*24*3600,
		MonthlyRent: 500,
		Deposit:     500,
	}
}

func TestContractCreate(t *testing.T) {
	store := newTestStore(t)
	svc := NewContractService(store)
	ctx := context.Background()
	roomID, tenantID := seedRoom(t, store)

	t.Run("creates active contract", func(t *testing.T) {
		created, err := svc.Create(ctx, adminActor, newContractForRoom(roomID, tenantID))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if created.State != models.ContractActive {
			t.Errorf("state = %q, want %q", created.State, models.ContractActive)
		}
		if created.Settlement.State != models.SettlementPending {
			t.Errorf("settlement state = %q, want %q", created.Settlement.State, models.SettlementPending)
		}
		if created.ID == "" {
			t.Error("ID should be assigned")
		}
	})

	t.Run("second contract on occupied room conflicts", func(t *testing.T) {
		_, err := svc.Create(ctx, adminActor, newContractForRoom(roomID, tenantID))
		if !errors.Is(err, ErrConflict) {
			t.Errorf("got %v, want ErrConflict", err)
		}
	})

	t.Run("finishing frees the room for a new contract", func(t *testing.T) {
		contracts, err := svc.List(ctx, models.ContractFilter{RoomID: roomID, State: models.ContractActive})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if len(contracts) != 1 {
			t.Fatalf("got %d active contracts, want 1", len(contracts))
		}

		finished := models.ContractFinished
		if _, err := svc.Update(ctx, adminActor, contracts[0].ID, &models.ContractPatch{State: &finished}); err != nil {
			t.Fatalf("Update: %v", err)
		}

		if _, err := svc.Create(ctx, adminActor, newContractForRoom(roomID, tenantID)); err != nil {
			t.Fatalf("Create after finish: %v", err)
		}
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := svc.Create(ctx, adminActor, newContractForRoom("missing", tenantID))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("unknown tenant", func(t *testing.T) {
		_, err := svc.Create(ctx, adminActor, newContractForRoom(roomID, "missing"))
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("collections role cannot create", func(t *testing.T) {
		_, err := svc.Create(ctx, collectionsActor, newContractForRoom(roomID, tenantID))
		if !errors.Is(err, auth.ErrRoleNotAllowed) {
			t.Errorf("got %v, want ErrRoleNotAllowed", err)
		}
	})
}

func TestContractUpdate(t *testing.T) {
	store := newTestStore(t)
	svc := NewContractService(store)
	ctx := context.Background()
	roomID, tenantID := seedRoom(t, store)
	contract := seedContract(t, store, roomID, tenantID)

	t.Run("empty patch rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, adminActor, contract.ID, &models.ContractPatch{})
		if !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("rent change", func(t *testing.T) {
		rent := 550.0
		updated, err := svc.Update(ctx, supervisorActor, contract.ID, &models.ContractPatch{MonthlyRent: &rent})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.MonthlyRent != 550.0 {
			t.Errorf("rent = %v, want 550.0", updated.MonthlyRent)
		}
	})

	t.Run("invalid state rejected", func(t *testing.T) {
		bogus := "cancelled"
		_, err := svc.Update(ctx, adminActor, contract.ID, &models.ContractPatch{State: &bogus})
		if !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("partial return without amount rejected", func(t *testing.T) {
		settledAt := time.Now().Unix()
		patch := &models.ContractPatch{Settlement: &models.DepositSettlement{
			State:     models.SettlementReturnedPartial,
			SettledAt: &settledAt,
		}}
		_, err := svc.Update(ctx, adminActor, contract.ID, patch)
		if !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("full return without date rejected", func(t *testing.T) {
		patch := &models.ContractPatch{Settlement: &models.DepositSettlement{
			State: models.SettlementReturnedFull,
		}}
		_, err := svc.Update(ctx, adminActor, contract.ID, patch)
		if !errors.Is(err, ErrBadRequest) {
			t.Errorf("got %v, want ErrBadRequest", err)
		}
	})

	t.Run("full return with date accepted", func(t *testing.T) {
		settledAt := time.Now().Unix()
		patch := &models.ContractPatch{Settlement: &models.DepositSettlement{
			State:     models.SettlementReturnedFull,
			SettledAt: &settledAt,
		}}
		updated, err := svc.Update(ctx, adminActor, contract.ID, patch)
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if updated.Settlement.State != models.SettlementReturnedFull {
			t.Errorf("settlement state = %q, want %q", updated.Settlement.State, models.SettlementReturnedFull)
		}
	})

	t.Run("unknown contract", func(t *testing.T) {
		archived := true
		_, err := svc.Update(ctx, adminActor, "missing", &models.ContractPatch{Archived: &archived})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}

func TestCalculateSettlement(t *testing.T) {
	store := newTestStore(t)
	svc := NewContractService(store)
	ctx := context.Background()
	roomID, tenantID := seedRoom(t, store)
	contract := seedContract(t, store, roomID, tenantID)

	expenses := []*models.Expense{
		{ID: "e1", ContractID: contract.ID, Date: time.Now().Unix(), Concept: "Repaint", Amount: 120, OffsetsDeposit: true},
		{ID: "e2", ContractID: contract.ID, Date: time.Now().Unix(), Concept: "Cleaning", Amount: 60, OffsetsDeposit: true},
		{ID: "e3", ContractID: contract.ID, Date: time.Now().Unix(), Concept: "Utilities", Amount: 45, OffsetsDeposit: false},
	}
	for _, e := range expenses {
		if err := store.CreateExpense(ctx, e); err != nil {
			t.Fatalf("failed to seed expense: %v", err)
		}
	}

	t.Run("only offsetting expenses are deducted", func(t *testing.T) {
		updated, err := svc.CalculateSettlement(ctx, adminActor, contract.ID)
		if err != nil {
			t.Fatalf("CalculateSettlement: %v", err)
		}
		if updated.Settlement.State != models.SettlementCalculated {
			t.Errorf("settlement state = %q, want %q", updated.Settlement.State, models.SettlementCalculated)
		}
		if updated.Settlement.AmountToReturn == nil {
			t.Fatal("AmountToReturn should be set")
		}
		// 500 deposit - (120 + 60) offsetting.
		if math.Abs(*updated.Settlement.AmountToReturn-320.0) > 0.001 {
			t.Errorf("AmountToReturn = %v, want 320.0", *updated.Settlement.AmountToReturn)
		}
	})

	t.Run("collections role cannot calculate", func(t *testing.T) {
		_, err := svc.CalculateSettlement(ctx, collectionsActor, contract.ID)
		if !errors.Is(err, auth.ErrRoleNotAllowed) {
			t.Errorf("got %v, want ErrRoleNotAllowed", err)
		}
	})

	t.Run("unknown contract", func(t *testing.T) {
		_, err := svc.CalculateSettlement(ctx, adminActor, "missing")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}
