package mq

import (
	"encoding/json"
	"errors"
	"log"

	"labreserva/internal/api"
	"labreserva/internal/apperrors"
	"labreserva/internal/service"
)

// Dispatch executes a raw command envelope against the reservation service
// and shapes the reply. It knows nothing about the broker, so cmd/worker can
// feed it deliveries and tests can feed it bytes.
func Dispatch(svc *service.ReservationService, body []byte) Response {
	var env CommandEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return errorResponse("invalid command format: " + err.Error())
	}

	switch env.Type {
	case CommandCreateReservation:
		return handleCreateReservation(svc, env.Payload)
	case CommandGetActiveReservations:
		return handleGetActiveReservations(svc)
	case CommandGetPastReservations:
		return handleGetPastReservations(svc, env.Payload)
	default:
		return errorResponse("unknown command type: " + string(env.Type))
	}
}

func handleCreateReservation(svc *service.ReservationService, payload json.RawMessage) Response {
	var req CreateReservationPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}

	if req.Email == "" || req.Name == "" || req.StudentID == "" ||
		req.Laboratory == "" || req.ReservationTime == "" {
		return errorResponse("All fields are required")
	}

	reservationTime, err := api.ParseLocalDateTime(req.ReservationTime)
	if err != nil {
		return errorResponse("reservationTime must be an ISO-8601 local datetime")
	}

	res, err := svc.CreateReservation(service.CreateReservationRequest{
		Email:           req.Email,
		Name:            req.Name,
		StudentID:       req.StudentID,
		Laboratory:      req.Laboratory,
		ReservationTime: reservationTime,
	})
	if err != nil {
		return serviceErrorResponse(err)
	}

	return okResponse("CreateReservationResponse", api.NewReservationResponse(*res))
}

func handleGetActiveReservations(svc *service.ReservationService) Response {
	reservations, err := svc.GetActiveReservations()
	if err != nil {
		return serviceErrorResponse(err)
	}
	return okResponse("GetActiveReservationsResponse", api.NewReservationResponses(reservations))
}

func handleGetPastReservations(svc *service.ReservationService, payload json.RawMessage) Response {
	var req GetPastReservationsPayload
	if err := json.Unmarshal(payload, &req); err != nil {
		return errorResponse("invalid payload: " + err.Error())
	}
	if req.StartDate == "" || req.EndDate == "" {
		return errorResponse("startDate and endDate are required")
	}

	start, err := api.ParseDate(req.StartDate)
	if err != nil {
		return errorResponse("startDate must be an ISO-8601 date")
	}
	end, err := api.ParseDate(req.EndDate)
	if err != nil {
		return errorResponse("endDate must be an ISO-8601 date")
	}

	reservations, err := svc.GetPastReservationsByDateRange(start, end)
	if err != nil {
		return serviceErrorResponse(err)
	}
	return okResponse("GetPastReservationsResponse", api.NewReservationResponses(reservations))
}

func okResponse(responseType string, v interface{}) Response {
	payload, err := json.Marshal(v)
	if err != nil {
		return errorResponse("failed to marshal response payload: " + err.Error())
	}
	return Response{OK: true, Type: responseType, Payload: payload}
}

// serviceErrorResponse keeps storage detail in the logs; validation and
// capacity messages go back to the sender verbatim.
func serviceErrorResponse(err error) Response {
	var storageErr *apperrors.StorageError
	if errors.As(err, &storageErr) {
		log.Printf("Storage failure handling command: %v", err)
		return errorResponse("Internal server error")
	}
	return errorResponse(err.Error())
}

func errorResponse(message string) Response {
	return Response{OK: false, Type: "Error", Error: message}
}
