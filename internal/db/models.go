package db

import "time"

// Reservation is a row of the reservacion table. ReservationTime is wall-clock
// local time, always aligned to the hour.
type Reservation struct {
	ID              string
	Email           string
	Name            string
	StudentID       string
	Laboratory      string
	ReservationTime time.Time
	Active          bool
}
