package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	// Retry connecting to the database a few times
	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				logrus.Info("successfully connected to PostgreSQL")
				return pool, nil
			}
		}
		logrus.WithError(err).Warnf("failed to connect to database (attempt %d/%d), retrying in %v", i+1, maxRetries, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates tables if they don't exist. The UNIQUE constraints on
// users.username, users.email and vehicles.plate_number are authoritative for
// uniqueness; application-level pre-checks only exist for friendlier errors.
func AutoMigrate(db *pgxpool.Pool) error {
	sql := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username TEXT UNIQUE NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL CHECK (role IN ('user', 'admin')) DEFAULT 'user',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS fleets (
		id SERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		contact_person VARCHAR(50),
		contact_phone VARCHAR(20),
		status VARCHAR(20) NOT NULL DEFAULT 'active',
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS vehicles (
		id SERIAL PRIMARY KEY,
		plate_number VARCHAR(20) UNIQUE NOT NULL,
		vehicle_type VARCHAR(50) NOT NULL,
		fleet_id INTEGER NOT NULL REFERENCES fleets(id),
		driver_name VARCHAR(50),
		driver_phone VARCHAR(20),
		status VARCHAR(20) NOT NULL DEFAULT 'normal',
		remark TEXT,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT CURRENT_TIMESTAMP
	);

	-- Indexes for performance
	CREATE INDEX IF NOT EXISTS idx_vehicles_fleet_id ON vehicles(fleet_id);
	CREATE INDEX IF NOT EXISTS idx_vehicles_vehicle_type ON vehicles(vehicle_type);
	CREATE INDEX IF NOT EXISTS idx_vehicles_driver_name ON vehicles(driver_name);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	logrus.Info("AutoMigrate applied successfully")
	return nil
}

// Seed creates the default admin account and a few starter fleets when the
// database is empty. It is idempotent: nothing happens once an admin exists.
func Seed(db *pgxpool.Pool, adminPasswordHash string) error {
	ctx := context.Background()

	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE username = 'admin'`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err := db.Exec(ctx,
		`INSERT INTO users (username, email, password_hash, role) VALUES ('admin', 'admin@example.com', $1, 'admin')`,
		adminPasswordHash)
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	_, err = db.Exec(ctx, `
		INSERT INTO fleets (name, description, contact_person, contact_phone) VALUES
		('Express Fleet', 'Long-haul express delivery', 'Manager Zhang', '13800138001'),
		('Intercity Transport', 'Intercity freight service', 'Manager Li', '13800138002'),
		('City Delivery', 'Same-city delivery service', 'Manager Wang', '13800138003')`)
	if err != nil {
		return fmt.Errorf("failed to seed default fleets: %w", err)
	}

	logrus.Info("seeded default admin user and fleets")
	return nil
}
