package api

import (
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

// Router assembles the public reservation routes behind CORS.
func Router(h *ReservationHandler, allowedOrigins []string) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/api/reservations", h.CreateReservation).Methods("POST")
	r.HandleFunc("/api/reservations/active", h.GetActiveReservations).Methods("GET")
	r.HandleFunc("/api/reservations/past", h.GetPastReservations).Methods("GET")

	cors := handlers.CORS(
		handlers.AllowedOrigins(allowedOrigins),
		handlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization"}),
	)
	return cors(r)
}
