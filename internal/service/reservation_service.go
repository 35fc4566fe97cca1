package service

import (
	"time"

	"github.com/google/uuid"

	"labreserva/internal/apperrors"
	"labreserva/internal/db"
)

// slotCapacity is the maximum number of reservations allowed per
// (reservation_time, laboratory) pair.
const slotCapacity = 7

// ReservationStore is the persistence boundary the service depends on.
// Implemented by repository.ReservationRepository.
type ReservationStore interface {
	Insert(res *db.Reservation) error
	CountBySlot(reservationTime time.Time, laboratory string) (int, error)
	QueryActive() ([]db.Reservation, error)
	QueryByRange(start, end time.Time) ([]db.Reservation, error)
}

// Notifier is told about successfully created reservations. Implementations
// must not block the caller.
type Notifier interface {
	ReservationCreated(res db.Reservation)
}

type CreateReservationRequest struct {
	Email           string
	Name            string
	StudentID       string
	Laboratory      string
	ReservationTime time.Time
}

type ReservationService struct {
	Store    ReservationStore
	notifier Notifier
	now      func() time.Time
}

func NewReservationService(store ReservationStore, notifier Notifier) *ReservationService {
	return &ReservationService{
		Store:    store,
		notifier: notifier,
		now:      time.Now,
	}
}

// CreateReservation validates the candidate, checks slot capacity and
// persists the reservation. The capacity check and the insert are two
// separate statements, so the 7-per-slot bound is best effort under
// concurrent load.
func (s *ReservationService) CreateReservation(req CreateReservationRequest) (*db.Reservation, error) {
	if req.Email == "" || req.Name == "" || req.StudentID == "" ||
		req.Laboratory == "" || req.ReservationTime.IsZero() {
		return nil, apperrors.NewValidationError("All fields are required")
	}

	if err := ValidateReservationTime(req.ReservationTime, s.now()); err != nil {
		return nil, err
	}

	count, err := s.Store.CountBySlot(req.ReservationTime, req.Laboratory)
	if err != nil {
		return nil, err
	}
	if count >= slotCapacity {
		return nil, apperrors.NewCapacityError("Laboratory is already at full capacity for this time slot")
	}

	reservation := &db.Reservation{
		ID:              uuid.NewString(),
		Email:           req.Email,
		Name:            req.Name,
		StudentID:       req.StudentID,
		Laboratory:      req.Laboratory,
		ReservationTime: req.ReservationTime,
		Active:          true,
	}

	if err := s.Store.Insert(reservation); err != nil {
		return nil, err
	}

	if s.notifier != nil {
		s.notifier.ReservationCreated(*reservation)
	}

	return reservation, nil
}

// GetActiveReservations returns reservations that are active and strictly in
// the future, ascending by reservation time.
func (s *ReservationService) GetActiveReservations() ([]db.Reservation, error) {
	return s.Store.QueryActive()
}

// GetPastReservationsByDateRange returns reservations between the start of
// startDate and the end of endDate, ascending by reservation time. Inactive
// rows are included. An inverted range yields an empty result.
func (s *ReservationService) GetPastReservationsByDateRange(startDate, endDate time.Time) ([]db.Reservation, error) {
	start := time.Date(startDate.Year(), startDate.Month(), startDate.Day(), 0, 0, 0, 0, startDate.Location())
	end := time.Date(endDate.Year(), endDate.Month(), endDate.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), endDate.Location())
	return s.Store.QueryByRange(start, end)
}
