package mq

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labreserva/internal/api"
	"labreserva/internal/db"
	"labreserva/internal/service"
)

type stubStore struct {
	reservations []db.Reservation
}

func (s *stubStore) Insert(res *db.Reservation) error {
	s.reservations = append(s.reservations, *res)
	return nil
}

func (s *stubStore) CountBySlot(reservationTime time.Time, laboratory string) (int, error) {
	count := 0
	for _, res := range s.reservations {
		if res.ReservationTime.Equal(reservationTime) && res.Laboratory == laboratory {
			count++
		}
	}
	return count, nil
}

func (s *stubStore) QueryActive() ([]db.Reservation, error) {
	return s.reservations, nil
}

func (s *stubStore) QueryByRange(start, end time.Time) ([]db.Reservation, error) {
	var out []db.Reservation
	for _, res := range s.reservations {
		if !res.ReservationTime.Before(start) && !res.ReservationTime.After(end) {
			out = append(out, res)
		}
	}
	return out, nil
}

func newTestService(store *stubStore) *service.ReservationService {
	return service.NewReservationService(store, nil)
}

func TestDispatchCreateReservation(t *testing.T) {
	store := &stubStore{}
	svc := newTestService(store)

	tomorrow := time.Now().AddDate(0, 0, 1)
	slot := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 14, 0, 0, 0, time.Local)
	body := fmt.Sprintf(`{
		"type": "CreateReservation",
		"payload": {"email":"a@b.com","name":"A","studentId":"S1","laboratory":"Lab A","reservationTime":"%s"}
	}`, slot.Format("2006-01-02T15:04:05"))

	resp := Dispatch(svc, []byte(body))

	require.True(t, resp.OK, "error: %s", resp.Error)
	assert.Equal(t, "CreateReservationResponse", resp.Type)

	var created api.ReservationResponse
	require.NoError(t, json.Unmarshal(resp.Payload, &created))
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	require.Len(t, store.reservations, 1)
}

func TestDispatchCreateReservationMissingFields(t *testing.T) {
	svc := newTestService(&stubStore{})

	resp := Dispatch(svc, []byte(`{"type":"CreateReservation","payload":{"email":"a@b.com"}}`))

	assert.False(t, resp.OK)
	assert.Equal(t, "All fields are required", resp.Error)
}

func TestDispatchCreateReservationCapacity(t *testing.T) {
	tomorrow := time.Now().AddDate(0, 0, 1)
	slot := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(), 14, 0, 0, 0, time.Local)

	store := &stubStore{}
	for i := 0; i < 7; i++ {
		store.reservations = append(store.reservations, db.Reservation{
			ID: fmt.Sprintf("r%d", i), Laboratory: "Lab A", ReservationTime: slot, Active: true,
		})
	}
	svc := newTestService(store)

	body := fmt.Sprintf(`{
		"type": "CreateReservation",
		"payload": {"email":"a@b.com","name":"A","studentId":"S1","laboratory":"Lab A","reservationTime":"%s"}
	}`, slot.Format("2006-01-02T15:04:05"))
	resp := Dispatch(svc, []byte(body))

	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "capacity")
}

func TestDispatchGetActiveReservations(t *testing.T) {
	store := &stubStore{reservations: []db.Reservation{
		{ID: "r1", Laboratory: "Lab A",
			ReservationTime: time.Date(2025, 3, 11, 9, 0, 0, 0, time.Local), Active: true},
	}}
	svc := newTestService(store)

	resp := Dispatch(svc, []byte(`{"type":"GetActiveReservations"}`))

	require.True(t, resp.OK)
	var list []api.ReservationResponse
	require.NoError(t, json.Unmarshal(resp.Payload, &list))
	require.Len(t, list, 1)
}

func TestDispatchGetPastReservations(t *testing.T) {
	store := &stubStore{reservations: []db.Reservation{
		{ID: "in-range", Laboratory: "Lab A",
			ReservationTime: time.Date(2025, 3, 3, 14, 0, 0, 0, time.Local), Active: false},
	}}
	svc := newTestService(store)

	resp := Dispatch(svc, []byte(`{
		"type": "GetPastReservations",
		"payload": {"startDate":"2025-03-01","endDate":"2025-03-05"}
	}`))

	require.True(t, resp.OK)
	var list []api.ReservationResponse
	require.NoError(t, json.Unmarshal(resp.Payload, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "in-range", list[0].ID)
}

func TestDispatchGetPastReservationsMissingDates(t *testing.T) {
	svc := newTestService(&stubStore{})

	resp := Dispatch(svc, []byte(`{"type":"GetPastReservations","payload":{"startDate":"2025-03-01"}}`))

	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "startDate and endDate are required")
}

func TestDispatchUnknownCommand(t *testing.T) {
	svc := newTestService(&stubStore{})

	resp := Dispatch(svc, []byte(`{"type":"CancelReservation","payload":{}}`))

	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "unknown command type")
}

func TestDispatchInvalidEnvelope(t *testing.T) {
	svc := newTestService(&stubStore{})

	resp := Dispatch(svc, []byte(`not json`))

	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "invalid command format")
}
