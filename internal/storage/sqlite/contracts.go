package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

const contractColumns = `id, room_id, tenant_id, start_date, end_date, monthly_rent,
	deposit, expense_tariff, has_cleaning, state, archived,
	settlement_state, settlement_amount, settlement_date`

// CreateContract inserts a new contract into the database.
func (s *SQLiteStore) CreateContract(ctx context.Context, c *models.Contract) error {
	query := `
		INSERT INTO contracts (` + contractColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID,
		c.RoomID,
		c.TenantID,
		c.StartDate,
		c.EndDate,
		c.MonthlyRent,
		c.Deposit,
		c.ExpenseTariff,
		c.HasCleaning,
		c.State,
		c.Archived,
		c.Settlement.State,
		c.Settlement.AmountToReturn,
		c.Settlement.SettledAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contract: %w", err)
	}

	return nil
}

func scanContract(scan func(dest ...interface{}) error) (*models.Contract, error) {
	c := &models.Contract{}
	err := scan(
		&c.ID,
		&c.RoomID,
		&c.TenantID,
		&c.StartDate,
		&c.EndDate,
		&c.MonthlyRent,
		&c.Deposit,
		&c.ExpenseTariff,
		&c.HasCleaning,
		&c.State,
		&c.Archived,
		&c.Settlement.State,
		&c.Settlement.AmountToReturn,
		&c.Settlement.SettledAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetContract retrieves a contract by ID.
func (s *SQLiteStore) GetContract(ctx context.Context, id string) (*models.Contract, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+contractColumns+" FROM contracts WHERE id = ?", id)

	c, err := scanContract(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("contract %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}
	return c, nil
}

// GetActiveContractByRoom retrieves the active contract on a room.
// Returns nil, nil when the room has no active contract.
func (s *SQLiteStore) GetActiveContractByRoom(ctx context.Context, roomID string) (*models.Contract, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+contractColumns+" FROM contracts WHERE room_id = ? AND state = ?",
		roomID, models.ContractActive)

	c, err := scanContract(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get active contract: %w", err)
	}
	return c, nil
}

// ListContracts retrieves contracts matching the filter. A property filter
// matches through the contract's room.
func (s *SQLiteStore) ListContracts(ctx context.Context, filter models.ContractFilter) ([]*models.Contract, error) {
	query := "SELECT " + contractColumns + " FROM contracts WHERE 1 = 1"
	var args []interface{}

	if filter.PropertyID != "" {
		query += " AND room_id IN (SELECT id FROM rooms WHERE property_id = ?)"
		args = append(args, filter.PropertyID)
	}
	if filter.RoomID != "" {
		query += " AND room_id = ?"
		args = append(args, filter.RoomID)
	}
	if filter.TenantID != "" {
		query += " AND tenant_id = ?"
		args = append(args, filter.TenantID)
	}
	if filter.State != "" {
		query += " AND state = ?"
		args = append(args, filter.State)
	}
	query += " ORDER BY start_date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []*models.Contract
	for rows.Next() {
		c, err := scanContract(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contract: %w", err)
		}
		contracts = append(contracts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contracts: %w", err)
	}

	return contracts, nil
}

// UpdateContract updates an existing contract.
func (s *SQLiteStore) UpdateContract(ctx context.Context, c *models.Contract) error {
	query := `
		UPDATE contracts
		SET end_date = ?, monthly_rent = ?, state = ?, archived = ?,
		    settlement_state = ?, settlement_amount = ?, settlement_date = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		c.EndDate,
		c.MonthlyRent,
		c.State,
		c.Archived,
		c.Settlement.State,
		c.Settlement.AmountToReturn,
		c.Settlement.SettledAt,
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contract: %w", err)
	}
	return requireRow(res, "contract", c.ID)
}

// CountActiveContracts returns the number of contracts in active state.
func (s *SQLiteStore) CountActiveContracts(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM contracts WHERE state = ?", models.ContractActive,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count active contracts: %w", err)
	}
	return n, nil
}

// CountContractsExpiringBy counts active contracts ending at or before ts.
func (s *SQLiteStore) CountContractsExpiringBy(ctx context.Context, ts int64) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM contracts WHERE state = ? AND end_date <= ?",
		models.ContractActive, ts,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count expiring contracts: %w", err)
	}
	return n, nil
}
