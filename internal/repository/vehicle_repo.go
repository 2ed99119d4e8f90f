package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fleet_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// VehicleRepository defines operations for vehicle data
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	FindByID(ctx context.Context, id int) (*model.Vehicle, error)
	FindByPlate(ctx context.Context, plateNumber string) (*model.Vehicle, error)
	List(ctx context.Context, keyword string, limit, offset int) ([]model.Vehicle, int64, error)
	Update(ctx context.Context, vehicle *model.Vehicle) error
	Delete(ctx context.Context, id int) error
}

type vehicleRepository struct {
	db DB
}

// NewVehicleRepository creates a new VehicleRepository
func NewVehicleRepository(db DB) VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `v.id, v.plate_number, v.vehicle_type, v.fleet_id, f.name, v.driver_name, v.driver_phone, v.status, v.remark, v.created_at, v.updated_at`

func scanVehicle(row pgx.Row, v *model.Vehicle) error {
	return row.Scan(
		&v.ID, &v.PlateNumber, &v.VehicleType, &v.FleetID, &v.FleetName,
		&v.DriverName, &v.DriverPhone, &v.Status, &v.Remark, &v.CreatedAt, &v.UpdatedAt,
	)
}

// Create inserts a new vehicle into the database
func (r *vehicleRepository) Create(ctx context.Context, v *model.Vehicle) error {
	sql := `INSERT INTO vehicles (plate_number, vehicle_type, fleet_id, driver_name, driver_phone, status, remark)
            VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(ctx, sql, v.PlateNumber, v.VehicleType, v.FleetID, v.DriverName, v.DriverPhone, v.Status, v.Remark).
		Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err, "vehicles_plate_number_key") {
			return ErrDuplicatePlate
		}
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// FindByID retrieves a vehicle by its ID, including the fleet name
func (r *vehicleRepository) FindByID(ctx context.Context, id int) (*model.Vehicle, error) {
	v := &model.Vehicle{}
	sql := `SELECT ` + vehicleColumns + ` FROM vehicles v LEFT JOIN fleets f ON v.fleet_id = f.id WHERE v.id = $1`
	if err := scanVehicle(r.db.QueryRow(ctx, sql, id), v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found
		}
		return nil, fmt.Errorf("failed to find vehicle by ID: %w", err)
	}
	return v, nil
}

// FindByPlate retrieves a vehicle by its plate number
func (r *vehicleRepository) FindByPlate(ctx context.Context, plateNumber string) (*model.Vehicle, error) {
	v := &model.Vehicle{}
	sql := `SELECT ` + vehicleColumns + ` FROM vehicles v LEFT JOIN fleets f ON v.fleet_id = f.id WHERE v.plate_number = $1`
	if err := scanVehicle(r.db.QueryRow(ctx, sql, plateNumber), v); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vehicle by plate: %w", err)
	}
	return v, nil
}

// List retrieves a page of vehicles with an optional keyword filter. The
// keyword matches plate number, vehicle type and driver name case-insensitively.
// Returns the page of items and the total count of matching rows.
func (r *vehicleRepository) List(ctx context.Context, keyword string, limit, offset int) ([]model.Vehicle, int64, error) {
	var where strings.Builder
	args := []interface{}{}
	argCount := 1

	if keyword != "" {
		where.WriteString(fmt.Sprintf(
			" WHERE (v.plate_number ILIKE $%d OR v.vehicle_type ILIKE $%d OR v.driver_name ILIKE $%d)",
			argCount, argCount, argCount))
		args = append(args, "%"+keyword+"%")
		argCount++
	}

	countSQL := "SELECT COUNT(*) FROM vehicles v" + where.String()
	var total int64
	if err := r.db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count vehicles: %w", err)
	}

	listSQL := fmt.Sprintf(
		"SELECT "+vehicleColumns+" FROM vehicles v LEFT JOIN fleets f ON v.fleet_id = f.id%s ORDER BY v.created_at DESC, v.id DESC LIMIT $%d OFFSET $%d",
		where.String(), argCount, argCount+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, listSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	var vehicles []model.Vehicle
	for rows.Next() {
		var v model.Vehicle
		if err := rows.Scan(
			&v.ID, &v.PlateNumber, &v.VehicleType, &v.FleetID, &v.FleetName,
			&v.DriverName, &v.DriverPhone, &v.Status, &v.Remark, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, v)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating vehicle rows: %w", err)
	}
	return vehicles, total, nil
}

// Update modifies an existing vehicle
func (r *vehicleRepository) Update(ctx context.Context, v *model.Vehicle) error {
	sql := `UPDATE vehicles
            SET plate_number = $1, vehicle_type = $2, fleet_id = $3, driver_name = $4, driver_phone = $5, status = $6, remark = $7, updated_at = NOW()
            WHERE id = $8 RETURNING updated_at`
	err := r.db.QueryRow(ctx, sql, v.PlateNumber, v.VehicleType, v.FleetID, v.DriverName, v.DriverPhone, v.Status, v.Remark, v.ID).
		Scan(&v.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		if isUniqueViolation(err, "vehicles_plate_number_key") {
			return ErrDuplicatePlate
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// Delete removes a vehicle from the database
func (r *vehicleRepository) Delete(ctx context.Context, id int) error {
	sql := `DELETE FROM vehicles WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, sql, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
