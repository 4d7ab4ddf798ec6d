// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/dmarti/rentbase/internal/models"
)

// ErrNotFound is returned (wrapped) when a requested document does not
// exist. Callers should test with errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the interface for persistence operations. This abstraction
// allows swapping storage backends (SQLite, PostgreSQL, etc.) without
// changing the service layer, and keeps the connection lifecycle explicit:
// the store is opened once, injected by reference, and closed on shutdown.
type Store interface {
	// Users. Email is unique across users.
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, id string) error

	// Properties.
	CreateProperty(ctx context.Context, p *models.Property) error
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	ListProperties(ctx context.Context) ([]*models.Property, error)
	UpdateProperty(ctx context.Context, p *models.Property) error
	DeleteProperty(ctx context.Context, id string) error
	// PropertyHasRooms reports whether any room references the property.
	PropertyHasRooms(ctx context.Context, propertyID string) (bool, error)

	// Rooms.
	CreateRoom(ctx context.Context, r *models.Room) error
	GetRoom(ctx context.Context, id string) (*models.Room, error)
	// ListRooms returns all rooms, or only those of a property when
	// propertyID is non-empty.
	ListRooms(ctx context.Context, propertyID string) ([]*models.Room, error)
	UpdateRoom(ctx context.Context, r *models.Room) error
	DeleteRoom(ctx context.Context, id string) error
	// RoomHasContracts reports whether any contract (in any state)
	// references the room.
	RoomHasContracts(ctx context.Context, roomID string) (bool, error)
	CountRooms(ctx context.Context) (int, error)

	// Tenants. DNI is unique across tenants.
	CreateTenant(ctx context.Context, t *models.Tenant) error
	GetTenant(ctx context.Context, id string) (*models.Tenant, error)
	// GetTenantByDNI returns nil, nil when no tenant has the DNI.
	GetTenantByDNI(ctx context.Context, dni string) (*models.Tenant, error)
	ListTenants(ctx context.Context, filter models.TenantFilter) ([]*models.Tenant, error)
	UpdateTenant(ctx context.Context, t *models.Tenant) error

	// Contracts. A partial unique index guarantees at most one active
	// contract per room.
	CreateContract(ctx context.Context, c *models.Contract) error
	GetContract(ctx context.Context, id string) (*models.Contract, error)
	ListContracts(ctx context.Context, filter models.ContractFilter) ([]*models.Contract, error)
	UpdateContract(ctx context.Context, c *models.Contract) error
	// GetActiveContractByRoom returns nil, nil when the room is free.
	GetActiveContractByRoom(ctx context.Context, roomID string) (*models.Contract, error)
	CountActiveContracts(ctx context.Context) (int, error)
	// CountContractsExpiringBy counts active contracts whose end date is
	// at or before the given Unix timestamp.
	CountContractsExpiringBy(ctx context.Context, ts int64) (int, error)

	// Payments.
	CreatePayment(ctx context.Context, p *models.Payment) error
	GetPayment(ctx context.Context, id string) (*models.Payment, error)
	ListPayments(ctx context.Context, filter models.PaymentFilter) ([]*models.Payment, error)
	UpdatePayment(ctx context.Context, p *models.Payment) error
	// ListDueRentPayments returns rent payments in pending or late state
	// for the given period.
	ListDueRentPayments(ctx context.Context, period string) ([]*models.Payment, error)
	// SumPaidForPeriod sums paid rent and expense payments for the period.
	SumPaidForPeriod(ctx context.Context, period string) (float64, error)
	// CountOpenPayments counts payments in pending, late or under_review
	// state.
	CountOpenPayments(ctx context.Context) (int, error)

	// Expenses.
	CreateExpense(ctx context.Context, e *models.Expense) error
	GetExpense(ctx context.Context, id string) (*models.Expense, error)
	// ListExpenses returns all expenses, or only those of a contract when
	// contractID is non-empty.
	ListExpenses(ctx context.Context, contractID string) ([]*models.Expense, error)
	UpdateExpense(ctx context.Context, e *models.Expense) error
	DeleteExpense(ctx context.Context, id string) error

	// Settings singleton. GetSettings returns nil, nil before seeding.
	GetSettings(ctx context.Context) (*models.Settings, error)
	CreateSettings(ctx context.Context, s *models.Settings) error
	UpdateSettings(ctx context.Context, s *models.Settings) error

	// Close releases any resources held by the store.
	Close() error
}
