package config

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

func GetDatabaseURL() string {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"), os.Getenv("DB_DATABASE"))
	return dsn
}

// BootDB runs the schema migration and returns the connection pool every
// repository is constructed with. The caller owns the pool and closes it
// at shutdown.
func BootDB(ctx context.Context) (*pgxpool.Pool, error) {
	url := GetDatabaseURL()

	migrationDB, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}
	defer migrationDB.Close()

	if err := migrationDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := autoMigrate(migrationDB); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping connection pool: %w", err)
	}

	return pool, nil
}

func autoMigrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS customers (
	id UUID DEFAULT gen_random_uuid() PRIMARY KEY,
	name VARCHAR(255) NOT NULL,
	email VARCHAR(255) NOT NULL,
	image_url VARCHAR(255) NOT NULL
	);

	CREATE TABLE IF NOT EXISTS invoices (
	id UUID DEFAULT gen_random_uuid() PRIMARY KEY,
	customer_id UUID NOT NULL,
	amount INT NOT NULL,
	status VARCHAR(255) NOT NULL,
	date DATE NOT NULL
	);

	CREATE TABLE IF NOT EXISTS revenue (
	month VARCHAR(4) NOT NULL UNIQUE,
	revenue INT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS members (
	id SERIAL PRIMARY KEY,
	last_name VARCHAR(20) NOT NULL,
	first_name VARCHAR(20) NOT NULL,
	kana_last_name VARCHAR(20) NOT NULL,
	kana_first_name VARCHAR(20) NOT NULL,
	gender VARCHAR(10) NOT NULL,
	birth_date DATE NOT NULL,
	age INT NOT NULL,
	post_code VARCHAR(8) NOT NULL,
	address VARCHAR(100) NOT NULL,
	tel VARCHAR(11) NOT NULL,
	profile VARCHAR(200) NOT NULL,
	pm_years INT NOT NULL DEFAULT 0,
	created_at TIMESTAMP NOT NULL,
	updated_at TIMESTAMP NOT NULL
	);
	`
	_, err := db.Exec(query)
	if err != nil {
		fmt.Printf("Error executing migration query: %v\n", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
