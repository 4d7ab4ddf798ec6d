package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmarti/rentbase/internal/auth"
	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
	"github.com/dmarti/rentbase/internal/storage/sqlite"
)

var (
	adminActor       = auth.Actor{ID: "admin-1", Email: "admin@example.com", Role: models.RoleAdmin}
	supervisorActor  = auth.Actor{ID: "super-1", Email: "super@example.com", Role: models.RoleSupervisor}
	collectionsActor = auth.Actor{ID: "cobros-1", Email: "cobros@example.com", Role: models.RoleCollections}
)

func newTestStore(t *testing.T) storage.Store {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// seedRoom creates a property with one room and a tenant, returning their IDs.
func seedRoom(t *testing.T, store storage.Store) (roomID, tenantID string) {
	t.Helper()
	ctx := context.Background()

	p := &models.Property{ID: "prop-1", Name: "Main Building", Address: "1 Main St"}
	if err := store.CreateProperty(ctx, p); err != nil {
		t.Fatalf("failed to seed property: %v", err)
	}
	r := &models.Room{ID: "room-1", PropertyID: p.ID, Name: "1A", SquareMeters: 18, BasePrice: 450}
	if err := store.CreateRoom(ctx, r); err != nil {
		t.Fatalf("failed to seed room: %v", err)
	}
	tn := &models.Tenant{ID: "tenant-1", Name: "Carmen", Email: "carmen@example.com", DNI: "11111111A", Active: true}
	if err := store.CreateTenant(ctx, tn); err != nil {
		t.Fatalf("failed to seed tenant: %v", err)
	}
	return r.ID, tn.ID
}

// seedContract creates an active contract on the seeded room.
func seedContract(t *testing.T, store storage.Store, roomID, tenantID string) *models.Contract {
	t.Helper()

	now := time.Now().Unix()
	c := &models.Contract{
		ID:          "contract-1",
		RoomID:      roomID,
		TenantID:    tenantID,
		StartDate:   now,
		EndDate:     now + 365*24*3600,
		MonthlyRent: 500,
		Deposit:     500,
		State:       models.ContractActive,
		Settlement:  models.DepositSettlement{State: models.SettlementPending},
	}
	if err := store.CreateContract(context.Background(), c); err != nil {
		t.Fatalf("failed to seed contract: %v", err)
	}
	return c
}
