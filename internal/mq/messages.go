package mq

import "encoding/json"

// CommandType identifies a reservation command sent over the queue.
type CommandType string

const (
	CommandCreateReservation     CommandType = "CreateReservation"
	CommandGetActiveReservations CommandType = "GetActiveReservations"
	CommandGetPastReservations   CommandType = "GetPastReservations"
)

// CommandEnvelope wraps any command with its type tag.
type CommandEnvelope struct {
	Type    CommandType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type CreateReservationPayload struct {
	Email           string `json:"email"`
	Name            string `json:"name"`
	StudentID       string `json:"studentId"`
	Laboratory      string `json:"laboratory"`
	ReservationTime string `json:"reservationTime"`
}

type GetPastReservationsPayload struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Response is published to the ReplyTo queue when the sender asked for one.
type Response struct {
	OK      bool            `json:"ok"`
	Type    string          `json:"type"`
	Error   string          `json:"error,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}
