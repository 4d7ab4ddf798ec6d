package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

const paymentColumns = `id, contract_id, period, paid_at, type, amount, method,
	status, created_by, reviewed_by, created_at, updated_at, notes`

// CreatePayment inserts a new payment into the database.
func (s *SQLiteStore) CreatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.ContractID,
		p.Period,
		p.PaidAt,
		p.Type,
		p.Amount,
		p.Method,
		p.Status,
		p.CreatedBy,
		p.ReviewedBy,
		p.CreatedAt,
		p.UpdatedAt,
		p.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}

	return nil
}

func scanPayment(scan func(dest ...interface{}) error) (*models.Payment, error) {
	p := &models.Payment{}
	err := scan(
		&p.ID,
		&p.ContractID,
		&p.Period,
		&p.PaidAt,
		&p.Type,
		&p.Amount,
		&p.Method,
		&p.Status,
		&p.CreatedBy,
		&p.ReviewedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.Notes,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetPayment retrieves a payment by ID.
func (s *SQLiteStore) GetPayment(ctx context.Context, id string) (*models.Payment, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+paymentColumns+" FROM payments WHERE id = ?", id)

	p, err := scanPayment(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("payment %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return p, nil
}

// ListPayments retrieves payments matching the filter.
func (s *SQLiteStore) ListPayments(ctx context.Context, filter models.PaymentFilter) ([]*models.Payment, error) {
	query := "SELECT " + paymentColumns + " FROM payments WHERE 1 = 1"
	var args []interface{}

	if filter.ContractID != "" {
		query += " AND contract_id = ?"
		args = append(args, filter.ContractID)
	}
	if filter.Type != "" {
		query += " AND type = ?"
		args = append(args, filter.Type)
	}
	if filter.Status != "" {
		query += " AND status = ?"
		args = append(args, filter.Status)
	}
	if filter.Period != "" {
		query += " AND period = ?"
		args = append(args, filter.Period)
	}
	query += " ORDER BY created_at DESC"

	return s.queryPayments(ctx, query, args...)
}

// ListDueRentPayments returns rent payments still owed (pending or late)
// for the given period.
func (s *SQLiteStore) ListDueRentPayments(ctx context.Context, period string) ([]*models.Payment, error) {
	query := "SELECT " + paymentColumns + ` FROM payments
		WHERE period = ? AND type = ? AND status IN (?, ?)
		ORDER BY created_at`

	return s.queryPayments(ctx, query,
		period, models.PaymentRent, models.PaymentPending, models.PaymentLate)
}

func (s *SQLiteStore) queryPayments(ctx context.Context, query string, args ...interface{}) ([]*models.Payment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		p, err := scanPayment(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment: %w", err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payments: %w", err)
	}

	return payments, nil
}

// UpdatePayment updates an existing payment.
func (s *SQLiteStore) UpdatePayment(ctx context.Context, p *models.Payment) error {
	query := `
		UPDATE payments
		SET paid_at = ?, amount = ?, method = ?, status = ?,
		    reviewed_by = ?, updated_at = ?, notes = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		p.PaidAt,
		p.Amount,
		p.Method,
		p.Status,
		p.ReviewedBy,
		p.UpdatedAt,
		p.Notes,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return requireRow(res, "payment", p.ID)
}

// SumPaidForPeriod sums paid rent and expense payments for the period.
func (s *SQLiteStore) SumPaidForPeriod(ctx context.Context, period string) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(amount), 0) FROM payments
		WHERE period = ? AND status = ? AND type IN (?, ?)`,
		period, models.PaymentPaid, models.PaymentRent, models.PaymentExpenses,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to sum paid payments: %w", err)
	}
	return total, nil
}

// CountOpenPayments counts payments awaiting resolution.
func (s *SQLiteStore) CountOpenPayments(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM payments WHERE status IN (?, ?, ?)",
		models.PaymentPending, models.PaymentLate, models.PaymentUnderReview,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count open payments: %w", err)
	}
	return n, nil
}
