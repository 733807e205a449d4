package services

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"podium/internal/models"
)

type emailService struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailService returns the gomail-backed Mailer.
func NewEmailService(smtpHost string, smtpPort int, smtpUser, smtpPassword, fromEmail string) Mailer {
	dialer := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPassword)
	return &emailService{
		dialer: dialer,
		from:   fromEmail,
	}
}

func (s *emailService) SendBookingNotification(to string, deal *models.Deal) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("New booking inquiry: %s", deal.EventTitle))

	body := fmt.Sprintf(`
		<h2>New booking inquiry</h2>
		<p><strong>Client:</strong> %s (%s)</p>
		<p><strong>Company:</strong> %s</p>
		<p><strong>Event:</strong> %s on %s</p>
		<p><strong>Message:</strong> %s</p>
		<p>Deal #%d has been created in the pipeline.</p>
	`, deal.ClientName, deal.ClientEmail, deal.Company, deal.EventTitle, deal.EventDate, deal.Message, deal.ID)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send booking notification: %w", err)
	}

	return nil
}

func (s *emailService) SendInvoiceEmail(to string, project *models.Project, number, attachmentPath string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Invoice %s — %s", number, project.ProjectName))

	body := fmt.Sprintf(`
		<h3>Invoice %s</h3>
		<p>Dear %s,</p>
		<p>Please find attached the invoice for <strong>%s</strong> (%s).</p>
		<p>Best regards,<br>Podium Speakers</p>
	`, number, project.ClientName, project.ProjectName, project.EventDate)

	m.SetBody("text/html", body)
	if attachmentPath != "" {
		m.Attach(attachmentPath)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send invoice email: %w", err)
	}

	return nil
}
