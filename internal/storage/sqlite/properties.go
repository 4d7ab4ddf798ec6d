package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// CreateProperty inserts a new property into the database.
func (s *SQLiteStore) CreateProperty(ctx context.Context, p *models.Property) error {
	query := `
		INSERT INTO properties (id, name, address, notes, has_cleaning_service, monthly_cleaning_amount)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Address,
		p.Notes,
		p.HasCleaningService,
		p.MonthlyCleaningAmount,
	)
	if err != nil {
		return fmt.Errorf("failed to create property: %w", err)
	}

	return nil
}

// GetProperty retrieves a property by ID.
func (s *SQLiteStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	query := `
		SELECT id, name, address, notes, has_cleaning_service, monthly_cleaning_amount
		FROM properties
		WHERE id = ?
	`

	p := &models.Property{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Address,
		&p.Notes,
		&p.HasCleaningService,
		&p.MonthlyCleaningAmount,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("property %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}

	return p, nil
}

// ListProperties retrieves all properties ordered by name.
func (s *SQLiteStore) ListProperties(ctx context.Context) ([]*models.Property, error) {
	query := `
		SELECT id, name, address, notes, has_cleaning_service, monthly_cleaning_amount
		FROM properties
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		p := &models.Property{}
		if err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Address,
			&p.Notes,
			&p.HasCleaningService,
			&p.MonthlyCleaningAmount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating properties: %w", err)
	}

	return properties, nil
}

// UpdateProperty updates an existing property.
func (s *SQLiteStore) UpdateProperty(ctx context.Context, p *models.Property) error {
	query := `
		UPDATE properties
		SET name = ?, address = ?, notes = ?, has_cleaning_service = ?, monthly_cleaning_amount = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query,
		p.Name,
		p.Address,
		p.Notes,
		p.HasCleaningService,
		p.MonthlyCleaningAmount,
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update property: %w", err)
	}
	return requireRow(res, "property", p.ID)
}

// DeleteProperty removes a property by ID.
func (s *SQLiteStore) DeleteProperty(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete property: %w", err)
	}
	return requireRow(res, "property", id)
}

// PropertyHasRooms reports whether any room references the property.
func (s *SQLiteStore) PropertyHasRooms(ctx context.Context, propertyID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM rooms WHERE property_id = ?", propertyID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to count rooms of property: %w", err)
	}
	return n > 0, nil
}
