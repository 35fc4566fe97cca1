package awslambda

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"labreserva/internal/api"
	"labreserva/internal/apperrors"
	"labreserva/internal/service"
)

// Handler adapts API Gateway proxy events to the reservation service. The
// same binary serves all three routes; API Gateway forwards the path as-is.
type Handler struct {
	Service *service.ReservationService
}

func NewHandler(svc *service.ReservationService) *Handler {
	return &Handler{Service: svc}
}

func (h *Handler) HandleRequest(event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	switch {
	case event.HTTPMethod == http.MethodPost && strings.HasSuffix(event.Path, "/reservations"):
		return h.CreateReservation(event), nil
	case event.HTTPMethod == http.MethodGet && strings.HasSuffix(event.Path, "/reservations/active"):
		return h.GetActiveReservations(event), nil
	case event.HTTPMethod == http.MethodGet && strings.HasSuffix(event.Path, "/reservations/past"):
		return h.GetPastReservations(event), nil
	default:
		return respondMessage(http.StatusNotFound, "Not found"), nil
	}
}

func (h *Handler) CreateReservation(event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	log.Printf("Received request: %s", event.Body)

	var req api.CreateReservationRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return respondMessage(http.StatusBadRequest, "Invalid request body")
	}

	if req.Email == "" || req.Name == "" || req.StudentID == "" ||
		req.Laboratory == "" || req.ReservationTime == "" {
		return respondMessage(http.StatusBadRequest, "All fields are required")
	}

	reservationTime, err := api.ParseLocalDateTime(req.ReservationTime)
	if err != nil {
		return respondMessage(http.StatusBadRequest, "reservationTime must be an ISO-8601 local datetime")
	}

	res, err := h.Service.CreateReservation(service.CreateReservationRequest{
		Email:           req.Email,
		Name:            req.Name,
		StudentID:       req.StudentID,
		Laboratory:      req.Laboratory,
		ReservationTime: reservationTime,
	})
	if err != nil {
		return respondServiceError(err, "Error creating reservation")
	}

	return respond(http.StatusCreated, api.NewReservationResponse(*res))
}

func (h *Handler) GetActiveReservations(event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	log.Println("Processing active reservations request")

	reservations, err := h.Service.GetActiveReservations()
	if err != nil {
		return respondServiceError(err, "Error retrieving active reservations")
	}
	return respond(http.StatusOK, api.NewReservationResponses(reservations))
}

func (h *Handler) GetPastReservations(event events.APIGatewayProxyRequest) events.APIGatewayProxyResponse {
	log.Println("Processing past reservations request")

	params := event.QueryStringParameters
	startDate, okStart := params["startDate"]
	endDate, okEnd := params["endDate"]
	if !okStart || !okEnd || startDate == "" || endDate == "" {
		return respondMessage(http.StatusBadRequest, "startDate and endDate parameters are required")
	}

	start, err := api.ParseDate(startDate)
	if err != nil {
		return respondMessage(http.StatusBadRequest, "startDate must be an ISO-8601 date")
	}
	end, err := api.ParseDate(endDate)
	if err != nil {
		return respondMessage(http.StatusBadRequest, "endDate must be an ISO-8601 date")
	}

	reservations, err := h.Service.GetPastReservationsByDateRange(start, end)
	if err != nil {
		return respondServiceError(err, "Error retrieving past reservations")
	}
	return respond(http.StatusOK, api.NewReservationResponses(reservations))
}

func respondServiceError(err error, logContext string) events.APIGatewayProxyResponse {
	var validationErr *apperrors.ValidationError
	var capacityErr *apperrors.CapacityError
	if errors.As(err, &validationErr) || errors.As(err, &capacityErr) {
		return respondMessage(http.StatusBadRequest, err.Error())
	}
	log.Printf("%s: %v", logContext, err)
	return respondMessage(http.StatusInternalServerError, "Internal server error")
}

func respond(status int, v interface{}) events.APIGatewayProxyResponse {
	body, err := json.Marshal(v)
	if err != nil {
		log.Printf("Failed to marshal response body: %v", err)
		return events.APIGatewayProxyResponse{
			StatusCode: http.StatusInternalServerError,
			Headers:    corsHeaders(),
			Body:       `{"message": "Internal server error"}`,
		}
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    corsHeaders(),
		Body:       string(body),
	}
}

func respondMessage(status int, message string) events.APIGatewayProxyResponse {
	return respond(status, map[string]string{"message": message})
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type,X-Amz-Date,Authorization,X-Api-Key",
		"Content-Type":                 "application/json",
	}
}
