package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmarti/rentbase/internal/models"
	"github.com/dmarti/rentbase/internal/storage"
)

// CreateRoom inserts a new room into the database.
func (s *SQLiteStore) CreateRoom(ctx context.Context, r *models.Room) error {
	query := `
		INSERT INTO rooms (id, property_id, name, square_meters, base_price)
		VALUES (?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		r.ID,
		r.PropertyID,
		r.Name,
		r.SquareMeters,
		r.BasePrice,
	)
	if err != nil {
		return fmt.Errorf("failed to create room: %w", err)
	}

	return nil
}

// GetRoom retrieves a room by ID.
func (s *SQLiteStore) GetRoom(ctx context.Context, id string) (*models.Room, error) {
	query := `
		SELECT id, property_id, name, square_meters, base_price
		FROM rooms
		WHERE id = ?
	`

	r := &models.Room{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&r.ID,
		&r.PropertyID,
		&r.Name,
		&r.SquareMeters,
		&r.BasePrice,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("room %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get room: %w", err)
	}

	return r, nil
}

// ListRooms retrieves all rooms, optionally restricted to a property.
func (s *SQLiteStore) ListRooms(ctx context.Context, propertyID string) ([]*models.Room, error) {
	query := `
		SELECT id, property_id, name, square_meters, base_price
		FROM rooms
	`
	var args []interface{}
	if propertyID != "" {
		query += " WHERE property_id = ?"
		args = append(args, propertyID)
	}
	query += " ORDER BY name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*models.Room
	for rows.Next() {
		r := &models.Room{}
		if err := rows.Scan(
			&r.ID,
			&r.PropertyID,
			&r.Name,
			&r.SquareMeters,
			&r.BasePrice,
		); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		rooms = append(rooms, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rooms: %w", err)
	}

	return rooms, nil
}

// UpdateRoom updates an existing room.
func (s *SQLiteStore) UpdateRoom(ctx context.Context, r *models.Room) error {
	query := `
		UPDATE rooms
		SET name = ?, square_meters = ?, base_price = ?
		WHERE id = ?
	`

	res, err := s.db.ExecContext(ctx, query, r.Name, r.SquareMeters, r.BasePrice, r.ID)
	if err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}
	return requireRow(res, "room", r.ID)
}

// DeleteRoom removes a room by ID.
func (s *SQLiteStore) DeleteRoom(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM rooms WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	return requireRow(res, "room", id)
}

// RoomHasContracts reports whether any contract references the room.
func (s *SQLiteStore) RoomHasContracts(ctx context.Context, roomID string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM contracts WHERE room_id = ?", roomID,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to count contracts of room: %w", err)
	}
	return n > 0, nil
}

// CountRooms returns the total number of rooms.
func (s *SQLiteStore) CountRooms(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM rooms").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return n, nil
}
