package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarti/rentbase/internal/models"
)

// GetSettings retrieves the settings singleton.
// Returns nil, nil when no settings row exists yet (before seeding).
func (s *SQLiteStore) GetSettings(ctx context.Context) (*models.Settings, error) {
	query := `
		SELECT id, company_name, company_tax_id, company_address, company_email,
		       company_phone, company_logo, smtp_server, smtp_port, smtp_username,
		       smtp_password, smtp_use_tls, default_collection_day, default_expense_tariff
		FROM settings
		LIMIT 1
	`

	st := &models.Settings{}
	err := s.db.QueryRowContext(ctx, query).Scan(
		&st.ID,
		&st.Company.Name,
		&st.Company.TaxID,
		&st.Company.Address,
		&st.Company.Email,
		&st.Company.Phone,
		&st.Company.Logo,
		&st.SMTP.Server,
		&st.SMTP.Port,
		&st.SMTP.Username,
		&st.SMTP.Password,
		&st.SMTP.UseTLS,
		&st.DefaultCollectionDay,
		&st.DefaultExpenseTariff,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return st, nil
}

// CreateSettings inserts the settings singleton.
func (s *SQLiteStore) CreateSettings(ctx context.Context, st *models.Settings) error {
	query := `
		INSERT INTO settings (id, company_name, company_tax_id, company_address,
		    company_email, company_phone, company_logo, smtp_server, smtp_port,
		    smtp_username, smtp_password, smtp_use_tls, default_collection_day,
		    default_expense_tariff)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		st.ID,
		st.Company.Name,
		st.Company.TaxID,
		st.Company.Address,
		st.Company.Email,
		st.Company.Phone,
		st.Company.Logo,
		st.SMTP.Server,
		st.SMTP.Port,
		st.SMTP.Username,
		st.SMTP.Password,
		st.SMTP.UseTLS,
		st.DefaultCollectionDay,
		st.DefaultExpenseTariff,
	)
	if err != nil {
		return fmt.Errorf("failed to create settings: %w", err)
	}

	return nil
}

// UpdateSettings updates the settings singleton.
func (s *SQLiteStore) UpdateSettings(ctx context.Context, st *models.Settings) error {
	query := `
		UPDATE settings
		SET company_name = ?, company_tax_id = ?, company_address = ?,
		    company_email = ?, company_phone = ?, company_logo = ?,
		    smtp_server = ?, smtp_port = ?, smtp_username = ?, smtp_password = ?,
		    smtp_use_tls = ?, default_collection_day = ?, default_expense_tariff = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		st.Company.Name,
		st.Company.TaxID,
		st.Company.Address,
		st.Company.Email,
		st.Company.Phone,
		st.Company.Logo,
		st.SMTP.Server,
		st.SMTP.Port,
		st.SMTP.Username,
		st.SMTP.Password,
		st.SMTP.UseTLS,
		st.DefaultCollectionDay,
		st.DefaultExpenseTariff,
		st.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return requireRow(res, "settings", st.ID)
}
