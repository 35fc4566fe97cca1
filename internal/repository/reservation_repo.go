package repository

import (
	"database/sql"
	"time"

	"labreserva/internal/apperrors"
	"labreserva/internal/db"
)

// ReservationRepository implements the service's ReservationStore over a
// pooled *sql.DB. Every failure is wrapped in a StorageError; callers only
// ever see a generic message while the cause stays in the logs.
type ReservationRepository struct {
	DB *sql.DB
}

func NewReservationRepository(conn *sql.DB) *ReservationRepository {
	return &ReservationRepository{DB: conn}
}

func (r *ReservationRepository) Insert(res *db.Reservation) error {
	query := `
		INSERT INTO reservacion (id, email, name, student_id, laboratory, reservation_time, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.DB.Exec(query,
		res.ID,
		res.Email,
		res.Name,
		res.StudentID,
		res.Laboratory,
		res.ReservationTime,
		res.Active,
	)
	if err != nil {
		return apperrors.NewStorageError("insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) CountBySlot(reservationTime time.Time, laboratory string) (int, error) {
	query := `SELECT COUNT(*) FROM reservacion WHERE reservation_time = $1 AND laboratory = $2`
	var count int
	if err := r.DB.QueryRow(query, reservationTime, laboratory).Scan(&count); err != nil {
		return 0, apperrors.NewStorageError("count reservations for slot", err)
	}
	return count, nil
}

func (r *ReservationRepository) QueryActive() ([]db.Reservation, error) {
	query := `
		SELECT id, email, name, student_id, laboratory, reservation_time, active
		FROM reservacion
		WHERE active = true AND reservation_time > CURRENT_TIMESTAMP
		ORDER BY reservation_time`
	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, apperrors.NewStorageError("query active reservations", err)
	}
	defer rows.Close()

	return scanReservations(rows, "query active reservations")
}

func (r *ReservationRepository) QueryByRange(start, end time.Time) ([]db.Reservation, error) {
	query := `
		SELECT id, email, name, student_id, laboratory, reservation_time, active
		FROM reservacion
		WHERE reservation_time >= $1 AND reservation_time <= $2
		ORDER BY reservation_time`
	rows, err := r.DB.Query(query, start, end)
	if err != nil {
		return nil, apperrors.NewStorageError("query reservations by range", err)
	}
	defer rows.Close()

	return scanReservations(rows, "query reservations by range")
}

func scanReservations(rows *sql.Rows, op string) ([]db.Reservation, error) {
	var reservations []db.Reservation
	for rows.Next() {
		var res db.Reservation
		err := rows.Scan(
			&res.ID,
			&res.Email,
			&res.Name,
			&res.StudentID,
			&res.Laboratory,
			&res.ReservationTime,
			&res.Active,
		)
		if err != nil {
			return nil, apperrors.NewStorageError(op, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStorageError(op, err)
	}
	return reservations, nil
}
