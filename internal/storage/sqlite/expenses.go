package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// CreateExpense inserts a new expense into the database.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	query := `
		INSERT INTO expenses (id, contract_id, date, concept, amount, offsets_deposit)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		e.ID,
		e.ContractID,
		e.Date,
		e.Concept,
		e.Amount,
		e.OffsetsDeposit,
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	query := `
		SELECT id, contract_id, date, concept, amount, offsets_deposit
		FROM expenses
		WHERE id = ?
	`

	e := &models.Expense{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&e.ID,
		&e.ContractID,
		&e.Date,
		&e.Concept,
		&e.Amount,
		&e.OffsetsDeposit,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}

	return e, nil
}

// ListExpenses retrieves all expenses, optionally restricted to a contract.
func (s *SQLiteStore) ListExpenses(ctx context.Context, contractID string) ([]*models.Expense, error) {
	query := `
		SELECT id, contract_id, date, concept, amount, offsets_deposit
		FROM expenses
	`
	var args []interface{}
	if contractID != "" {
		query += " WHERE contract_id = ?"
		args = append(args, contractID)
	}
	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		e := &models.Expense{}
		if err := rows.Scan(
			&e.ID,
			&e.ContractID,
			&e.Date,
			&e.Concept,
			&e.Amount,
			&e.OffsetsDeposit,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	return expenses, nil
}

// UpdateExpense updates an existing expense.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, e *models.Expense) error {
	query := `
		UPDATE expenses
		SET date = ?, concept = ?, amount = ?, offsets_deposit = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, e.Date, e.Concept, e.Amount, e.OffsetsDeposit, e.ID)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return requireRow(res, "expense", e.ID)
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return requireRow(res, "expense", id)
}
