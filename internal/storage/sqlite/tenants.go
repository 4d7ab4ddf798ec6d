package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// CreateTenant inserts a new tenant into the database.
func (s *SQLiteStore) CreateTenant(ctx context.Context, t *models.Tenant) error {
	query := `
		INSERT INTO tenants (id, name, email, phone, dni, active)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		t.ID,
		t.Name,
		t.Email,
		t.Phone,
		t.DNI,
		t.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	return nil
}

// GetTenant retrieves a tenant by ID.
func (s *SQLiteStore) GetTenant(ctx context.Context, id string) (*models.Tenant, error) {
	return s.getTenant(ctx, "id", id)
}

// GetTenantByDNI retrieves a tenant by national ID.
// Returns nil, nil when no tenant has the DNI.
func (s *SQLiteStore) GetTenantByDNI(ctx context.Context, dni string) (*models.Tenant, error) {
	t, err := s.getTenant(ctx, "dni", dni)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return t, nil
}

func (s *SQLiteStore) getTenant(ctx context.Context, column, value string) (*models.Tenant, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, phone, dni, active
		FROM tenants
		WHERE %s = ?
	`, column)

	t := &models.Tenant{}
	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&t.ID,
		&t.Name,
		&t.Email,
		&t.Phone,
		&t.DNI,
		&t.Active,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("tenant %s: %w", value, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return t, nil
}

// ListTenants retrieves tenants matching the filter.
func (s *SQLiteStore) ListTenants(ctx context.Context, filter models.TenantFilter) ([]*models.Tenant, error) {
	query := `
		SELECT id, name, email, phone, dni, active
		FROM tenants
		WHERE 1 = 1
	`
	var args []interface{}

	if filter.Active != nil {
		query += " AND active = ?"
		args = append(args, *filter.Active)
	}
	if filter.Search != "" {
		query += ` AND (name LIKE ? OR email LIKE ? OR phone LIKE ? OR dni LIKE ?)`
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern, pattern, pattern)
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}
	defer rows.Close()

	var tenants []*models.Tenant
	for rows.Next() {
		t := &models.Tenant{}
		if err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Email,
			&t.Phone,
			&t.DNI,
			&t.Active,
		); err != nil {
			return nil, fmt.Errorf("failed to scan tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tenants: %w", err)
	}

	return tenants, nil
}

// UpdateTenant updates an existing tenant.
func (s *SQLiteStore) UpdateTenant(ctx context.Context, t *models.Tenant) error {
	query := `
		UPDATE tenants
		SET name = ?, email = ?, phone = ?, dni = ?, active = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, t.Name, t.Email, t.Phone, t.DNI, t.Active, t.ID)
	if err != nil {
		return fmt.Errorf("failed to update tenant: %w", err)
	}
	return requireRow(res, "tenant", t.ID)
}
