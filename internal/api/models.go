package api

import "labreserva/internal/db"

type CreateReservationRequest struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	StudentID       string `json:"studentId"`
	Laboratory      string `json:"laboratory"`
	ReservationTime string `json:"reservationTime"` // ISO format: "2025-03-10T14:00:00"
}

type ReservationResponse struct {
	ID              string        `json:"id"`
	Email           string        `json:"email"`
	Name            string        `json:"name"`
	StudentID       string        `json:"studentId"`
	Laboratory      string        `json:"laboratory"`
	ReservationTime LocalDateTime `json:"reservationTime"`
	Active          bool          `json:"active"`
}

func NewReservationResponse(res db.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              res.ID,
		Email:           res.Email,
		Name:            res.Name,
		StudentID:       res.StudentID,
		Laboratory:      res.Laboratory,
		ReservationTime: LocalDateTime{res.ReservationTime},
		Active:          res.Active,
	}
}

// NewReservationResponses never returns nil so empty results encode as [].
func NewReservationResponses(list []db.Reservation) []ReservationResponse {
	responses := make([]ReservationResponse, 0, len(list))
	for _, res := range list {
		responses = append(responses, NewReservationResponse(res))
	}
	return responses
}
