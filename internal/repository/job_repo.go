package repository

import (
	"database/sql"
	"fmt"
	"log"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(conn *sql.DB) *JobRepository {
	return &JobRepository{DB: conn}
}

// DeactivatePastReservations marks every active reservation whose time has
// passed as inactive and returns how many rows changed.
func (r *JobRepository) DeactivatePastReservations() (int64, error) {
	query := `UPDATE reservacion SET active = false WHERE active = true AND reservation_time < NOW()`
	result, err := r.DB.Exec(query)
	if err != nil {
		return 0, fmt.Errorf("error deactivating past reservations: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Printf("Could not get rows affected: %v", err)
		return 0, nil
	}
	return rowsAffected, nil
}
