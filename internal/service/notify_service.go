package service

import (
	"fmt"
	"log"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"labreserva/internal/db"
)

// EmailNotifier sends a confirmation email through SendGrid when a
// reservation is created. Sending happens in a goroutine; failures are logged
// and never reach the caller.
type EmailNotifier struct{}

func NewEmailNotifier() *EmailNotifier {
	return &EmailNotifier{}
}

func (n *EmailNotifier) ReservationCreated(res db.Reservation) {
	timeFormatted := res.ReservationTime.Format("02 Jan 2006 15:04")

	subject := fmt.Sprintf("Your laboratory reservation is confirmed - %s", res.Laboratory)
	plainTextBody := fmt.Sprintf(
		"Hello %s,\n\nYour reservation has been confirmed.\n\n"+
			"Reservation Details:\n"+
			"Laboratory: %s\n"+
			"Time: %s\n"+
			"Student ID: %s\n\n"+
			"Thank you for using the laboratory reservation system.",
		res.Name, res.Laboratory, timeFormatted, res.StudentID,
	)
	htmlBody := fmt.Sprintf(
		"<p>Hello %s,</p><p>Your reservation has been confirmed.</p>"+
			"<ul><li>Laboratory: %s</li><li>Time: %s</li><li>Student ID: %s</li></ul>"+
			"<p>Thank you for using the laboratory reservation system.</p>",
		res.Name, res.Laboratory, timeFormatted, res.StudentID,
	)

	go func() {
		if err := SendEmailWithSendGrid(res.Email, res.Name, subject, plainTextBody, htmlBody); err != nil {
			log.Printf("Failed to send confirmation email for reservation %s: %v", res.ID, err)
		}
	}()
}

func SendEmailWithSendGrid(toEmailAddress, toName, subject, plainTextContent, htmlContent string) error {
	sendgridAPIKey := os.Getenv("SENDGRID_API_KEY")
	if sendgridAPIKey == "" {
		return fmt.Errorf("SENDGRID_API_KEY is not set")
	}

	fromEmail := os.Getenv("SENDGRID_FROM_EMAIL")
	if fromEmail == "" {
		return fmt.Errorf("SENDGRID_FROM_EMAIL is not set")
	}

	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "LabReserva"
	}

	from := mail.NewEmail(fromName, fromEmail)
	to := mail.NewEmail(toName, toEmailAddress)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	client := sendgrid.NewSendClient(sendgridAPIKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email through SendGrid: %w", err)
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		log.Printf("Confirmation email sent to %s (status %d)", toEmailAddress, response.StatusCode)
		return nil
	}

	return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
}
