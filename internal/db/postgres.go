package db

import (
	"database/sql"
	"fmt"
	"log"
)

// Open connects to Postgres and verifies the connection. The returned *sql.DB
// is a pool shared by every repository for the life of the process.
func Open(databaseURL string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return conn, nil
}

// EnsureSchema creates the reservacion table if it does not exist yet.
func EnsureSchema(conn *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS reservacion (
		id VARCHAR(36) PRIMARY KEY,
		email VARCHAR(100) NOT NULL,
		name VARCHAR(100) NOT NULL,
		student_id VARCHAR(20) NOT NULL,
		laboratory VARCHAR(50) NOT NULL,
		reservation_time TIMESTAMP NOT NULL,
		active BOOLEAN DEFAULT TRUE
	)`
	if _, err := conn.Exec(query); err != nil {
		return fmt.Errorf("error creating reservacion table: %w", err)
	}
	log.Println("Reservacion table created or already exists")
	return nil
}
