package service

import (
	"time"

	"labreserva/internal/apperrors"
)

// ValidateReservationTime checks a candidate reservation instant against the
// laboratory booking rules. Rules are evaluated in order and the first
// violation wins.
func ValidateReservationTime(t, now time.Time) error {
	if t.Minute() != 0 || t.Second() != 0 {
		return apperrors.NewValidationError("Reservation time must be on the hour")
	}

	hour := t.Hour()
	if hour < 8 || hour > 22 {
		return apperrors.NewValidationError("Reservation time must be between 8 AM and 10 PM")
	}

	if t.Before(now) {
		return apperrors.NewValidationError("Cannot make reservations for past dates")
	}

	return nil
}
