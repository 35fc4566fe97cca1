package service

import (
	"fmt"
	"log"

	"labreserva/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// DeactivatePastReservations flips active to false on reservations whose time
// has already passed. Past-range queries still return these rows.
func (s *JobService) DeactivatePastReservations() error {
	log.Println("Cron Job: Checking for reservations to deactivate...")

	count, err := s.Repo.DeactivatePastReservations()
	if err != nil {
		return fmt.Errorf("cron job: failed to deactivate past reservations: %w", err)
	}

	if count == 0 {
		log.Println("Cron Job: No reservations found past their time.")
		return nil
	}

	log.Printf("Cron Job: Deactivated %d past reservations.", count)
	return nil
}
