package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"labreserva/internal/awslambda"
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
	handler := awslambda.NewHandler(svc)

	lambda.Start(handler.HandleRequest)
}
