package services

import (
	"errors"

	"podium/internal/models"
)

// ErrNotFound marks a missing primary record; handlers map it to 404.
var ErrNotFound = errors.New("record not found")

// DealStore and ProjectStore are the slices of the repositories the finance
// services touch. Narrow on purpose so the sync logic is mockable.
type DealStore interface {
	GetByID(id int) (*models.Deal, error)
	UpdateFinance(d *models.Deal) error
	SyncFinanceFromProject(p *models.Project) (int64, error)
	FindMatchWon(company, clientName, eventDate, eventTitle string) (*models.Deal, error)
	ListByCompany(company string) ([]*models.Deal, error)
	LinkUnlinkedWon() (int64, error)
	SyncStatusRows() ([]models.SyncStatusRow, error)
	WonSummary() (*models.WonSummary, error)
	CommissionForProject(projectID int) (float64, bool, error)
}

type ProjectStore interface {
	GetByID(id int) (*models.Project, error)
	UpdateFinance(p *models.Project) error
	SyncFinanceFromDeal(d *models.Deal) (int64, error)
	FindMatch(company, clientName, eventDate, eventTitle string) (*models.Project, error)
	ListByCompany(company string) ([]*models.Project, error)
	RecomputeAggregates() (int64, error)
	FeeMigrationCandidates(ids []int) ([]*models.Project, error)
	UpdateSpeakerFee(id int, fee float64) error
}

// Notifier delivers out-of-band alerts (Telegram today). Implementations are
// expected to swallow their own failures.
type Notifier interface {
	Notify(text string) error
}

// Mailer sends the transactional mail the back office produces.
type Mailer interface {
	SendBookingNotification(to string, deal *models.Deal) error
	SendInvoiceEmail(to string, project *models.Project, number, attachmentPath string) error
}
