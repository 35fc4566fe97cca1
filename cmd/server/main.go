package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/robfig/cron/v3"

	"labreserva/internal/api"
	"labreserva/internal/db"
	"labreserva/internal/repository"
	"labreserva/internal/service"
)

func main() {
	godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL not set")
	}
	conn, err := db.Open(dbURL)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	if err := db.EnsureSchema(conn); err != nil {
		log.Fatalf("Failed to bootstrap schema: %v", err)
	}

	repo := repository.NewReservationRepository(conn)
	svc := service.NewReservationService(repo, service.NewEmailNotifier())
	handler := api.NewReservationHandler(svc)

	jobSvc := service.NewJobService(repository.NewJobRepository(conn))
	c := cron.New()
	if _, err := c.AddFunc("@hourly", func() {
		if err := jobSvc.DeactivatePastReservations(); err != nil {
			log.Printf("Cron job failed: %v", err)
		}
	}); err != nil {
		log.Fatalf("Failed to schedule cron job: %v", err)
	}
	c.Start()

	allowedOrigins := []string{"*"}
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		allowedOrigins = strings.Split(origins, ",")
	}
	router := api.Router(handler, allowedOrigins)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
