package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"labreserva/internal/apperrors"
	"labreserva/internal/service"
)

type ReservationHandler struct {
	Service *service.ReservationService
}

func NewReservationHandler(svc *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{Service: svc}
}

func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Name == "" || req.StudentID == "" ||
		req.Laboratory == "" || req.ReservationTime == "" {
		writeError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	reservationTime, err := ParseLocalDateTime(req.ReservationTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "reservationTime must be an ISO-8601 local datetime")
		return
	}

	res, err := h.Service.CreateReservation(service.CreateReservationRequest{
		Email:           req.Email,
		Name:            req.Name,
		StudentID:       req.StudentID,
		Laboratory:      req.Laboratory,
		ReservationTime: reservationTime,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, NewReservationResponse(*res))
}

func (h *ReservationHandler) GetActiveReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.Service.GetActiveReservations()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewReservationResponses(reservations))
}

func (h *ReservationHandler) GetPastReservations(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("startDate")
	endDate := r.URL.Query().Get("endDate")
	if startDate == "" || endDate == "" {
		writeError(w, http.StatusBadRequest, "startDate and endDate parameters are required")
		return
	}

	start, err := ParseDate(startDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "startDate must be an ISO-8601 date")
		return
	}
	end, err := ParseDate(endDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "endDate must be an ISO-8601 date")
		return
	}

	reservations, err := h.Service.GetPastReservationsByDateRange(start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NewReservationResponses(reservations))
}

// writeServiceError maps the error taxonomy to status codes: validation and
// capacity failures are the caller's problem, everything else is a 500 with a
// generic body and the detail in the logs.
func writeServiceError(w http.ResponseWriter, err error) {
	var validationErr *apperrors.ValidationError
	var capacityErr *apperrors.CapacityError
	switch {
	case errors.As(err, &validationErr), errors.As(err, &capacityErr):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		log.Printf("Unexpected error handling request: %v", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
