package service

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/dmarti/rentbase/internal/models"
)

func TestDashboardStats(t *testing.T) {
	store := newTestStore(t)
	svc := NewDashboardService(store)
	ctx := context.Background()

	property := &models.Property{ID: "p1", Name: "Main", Address: "1 Main St"}
	if err := store.CreateProperty(ctx, property); err != nil {
		t.Fatalf("failed to seed property: %v", err)
	}

	now := time.Now()
	for i := 0; i < 10; i++ {
		room := &models.Room{ID: fmt.Sprintf("r%d", i), PropertyID: property.ID, Name: fmt.Sprintf("Room %d", i), SquareMeters: 15, BasePrice: 400}
		if err := store.CreateRoom(ctx, room); err != nil {
			t.Fatalf("failed to seed room: %v", err)
		}
	}
	for i := 0; i < 4; i++ {
		tenant := &models.Tenant{ID: fmt.Sprintf("t%d", i), Name: fmt.Sprintf("Tenant %d", i), Email: fmt.Sprintf("t%d@example.com", i), DNI: fmt.Sprintf("0000000%dX", i), Active: true}
		if err := store.CreateTenant(ctx, tenant); err != nil {
			t.Fatalf("failed to seed tenant: %v", err)
		}

		endDate := now.Add(365 * 24 * time.Hour).Unix()
		if i == 0 {
			// One contract runs out within the 30-day window.
			endDate = now.Add(15 * 24 * time.Hour).Unix()
		}
		contract := &models.Contract{
			ID:          fmt.Sprintf("c%d", i),
			RoomID:      fmt.Sprintf("r%d", i),
			TenantID:    fmt.Sprintf("t%d", i),
			StartDate:   now.Unix(),
			EndDate:     endDate,
			MonthlyRent: 500,
			Deposit:     500,
			State:       models.ContractActive,
			Settlement:  models.DepositSettlement{State: models.SettlementPending},
		}
		if err := store.CreateContract(ctx, contract); err != nil {
			t.Fatalf("failed to seed contract: %v", err)
		}
	}

	period := now.UTC().Format("2006-01")
	payments := []*models.Payment{
		{ID: "pay1", ContractID: "c0", Period: period, Type: models.PaymentRent, Amount: 500, Method: models.MethodCash, Status: models.PaymentPaid, CreatedBy: "u1", CreatedAt: now.Unix()},
		{ID: "pay2", ContractID: "c1", Period: period, Type: models.PaymentExpenses, Amount: 50, Method: models.MethodCash, Status: models.PaymentPaid, CreatedBy: "u1", CreatedAt: now.Unix()},
		{ID: "pay3", ContractID: "c1", Period: period, Type: models.PaymentDepositCollect, Amount: 500, Method: models.MethodCash, Status: models.PaymentPaid, CreatedBy: "u1", CreatedAt: now.Unix()},
		{ID: "pay4", ContractID: "c2", Period: period, Type: models.PaymentRent, Amount: 500, Method: models.MethodCash, Status: models.PaymentPending, CreatedBy: "u1", CreatedAt: now.Unix()},
		{ID: "pay5", ContractID: "c3", Period: period, Type: models.PaymentRent, Amount: 500, Method: models.MethodCash, Status: models.PaymentLate, CreatedBy: "u1", CreatedAt: now.Unix()},
	}
	for _, p := range payments {
		if err := store.CreatePayment(ctx, p); err != nil {
			t.Fatalf("failed to seed payment %s: %v", p.ID, err)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}

	if stats.TotalRooms != 10 {
		t.Errorf("TotalRooms = %d, want 10", stats.TotalRooms)
	}
	if stats.OccupiedRooms != 4 {
		t.Errorf("OccupiedRooms = %d, want 4", stats.OccupiedRooms)
	}
	if stats.FreeRooms != 6 {
		t.Errorf("FreeRooms = %d, want 6", stats.FreeRooms)
	}
	// Rent + expenses paid this month; the deposit collection is excluded.
	if math.Abs(stats.CurrentMonthRevenue-550.0) > 0.001 {
		t.Errorf("CurrentMonthRevenue = %v, want 550.0", stats.CurrentMonthRevenue)
	}
	if stats.PendingPayments != 2 {
		t.Errorf("PendingPayments = %d, want 2", stats.PendingPayments)
	}
	if stats.ContractsExpiringSoon != 1 {
		t.Errorf("ContractsExpiringSoon = %d, want 1", stats.ContractsExpiringSoon)
	}
}

func TestDashboardStatsEmptyDatabase(t *testing.T) {
	store := newTestStore(t)
	svc := NewDashboardService(store)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.TotalRooms != 0 || stats.OccupiedRooms != 0 || stats.FreeRooms != 0 {
		t.Errorf("room counts = %+v, want zeros", stats)
	}
	if stats.CurrentMonthRevenue != 0 {
		t.Errorf("CurrentMonthRevenue = %v, want 0", stats.CurrentMonthRevenue)
	}
}
