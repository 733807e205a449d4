package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"podium/internal/models"
	"podium/internal/repositories"
)

// BookingService handles the public contact/booking funnel. A submission
// becomes a deal in the pipeline; notifications are best-effort.
type BookingService struct {
	DealRepo    *repositories.DealRepository
	Mailer      Mailer
	Notifier    Notifier
	OfficeEmail string
}

func NewBookingService(dealRepo *repositories.DealRepository, mailer Mailer, notifier Notifier, officeEmail string) *BookingService {
	return &BookingService{DealRepo: dealRepo, Mailer: mailer, Notifier: notifier, OfficeEmail: officeEmail}
}

type BookingRequest struct {
	ClientName  string  `json:"client_name" binding:"required"`
	ClientEmail string  `json:"client_email" binding:"required,email"`
	Company     string  `json:"company" binding:"required"`
	EventTitle  string  `json:"event_title" binding:"required"`
	EventDate   string  `json:"event_date"`
	Message     string  `json:"message"`
	BudgetHint  float64 `json:"budget_hint"`
}

func (s *BookingService) Submit(req *BookingRequest) (*models.Deal, error) {
	if req.EventDate != "" {
		if _, err := time.Parse("2006-01-02", req.EventDate); err != nil {
			return nil, errors.New("event_date must be YYYY-MM-DD")
		}
	}

	deal := &models.Deal{
		ClientName:    req.ClientName,
		ClientEmail:   req.ClientEmail,
		Company:       req.Company,
		EventTitle:    req.EventTitle,
		EventDate:     req.EventDate,
		Message:       req.Message,
		Status:        "new",
		DealValue:     req.BudgetHint,
		PaymentStatus: "pending",
		CreatedAt:     time.Now(),
	}
	id, err := s.DealRepo.Create(deal)
	if err != nil {
		return nil, err
	}
	deal.ID = int(id)

	if s.Mailer != nil && s.OfficeEmail != "" {
		if err := s.Mailer.SendBookingNotification(s.OfficeEmail, deal); err != nil {
			log.Printf("[booking][mail] notification failed for deal=%d: %v", deal.ID, err)
		}
	}
	if s.Notifier != nil {
		text := fmt.Sprintf("New booking inquiry: %s (%s) — %s", deal.EventTitle, deal.Company, deal.ClientName)
		if err := s.Notifier.Notify(text); err != nil {
			log.Printf("[booking][tg] notification failed for deal=%d: %v", deal.ID, err)
		}
	}
	return deal, nil
}
