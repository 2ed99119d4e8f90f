package repository

import (
	"context"
	"errors"
	"fmt"

	"fleet_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// FleetRepository defines operations for fleet data
type FleetRepository interface {
	List(ctx context.Context) ([]model.Fleet, error)
	FindByID(ctx context.Context, id int) (*model.Fleet, error)
}

type fleetRepository struct {
	db DB
}

// NewFleetRepository creates a new FleetRepository
func NewFleetRepository(db DB) FleetRepository {
	return &fleetRepository{db: db}
}

// List retrieves all fleets
func (r *fleetRepository) List(ctx context.Context) ([]model.Fleet, error) {
	sql := `SELECT id, name, description, contact_person, contact_phone, status, created_at, updated_at
            FROM fleets ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query fleets: %w", err)
	}
	defer rows.Close()

	var fleets []model.Fleet
	for rows.Next() {
		var f model.Fleet
		if err := rows.Scan(
			&f.ID, &f.Name, &f.Description, &f.ContactPerson, &f.ContactPhone,
			&f.Status, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fleet row: %w", err)
		}
		fleets = append(fleets, f)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fleet rows: %w", err)
	}
	return fleets, nil
}

// FindByID retrieves a fleet by its ID
func (r *fleetRepository) FindByID(ctx context.Context, id int) (*model.Fleet, error) {
	f := &model.Fleet{}
	sql := `SELECT id, name, description, contact_person, contact_phone, status, created_at, updated_at
            FROM fleets WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(
		&f.ID, &f.Name, &f.Description, &f.ContactPerson, &f.ContactPhone,
		&f.Status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find fleet by ID: %w", err)
	}
	return f, nil
}
