package services

import (
	"errors"
	"time"

	"podium/internal/models"
	"podium/internal/repositories"
)

type DealService struct {
	Repo *repositories.DealRepository
}

func NewDealService(repo *repositories.DealRepository) *DealService {
	return &DealService{Repo: repo}
}

func (s *DealService) Create(deal *models.Deal) (int64, error) {
	if deal.ClientName == "" || deal.Company == "" {
		return 0, errors.New("client_name and company are required")
	}
	if deal.Status == "" {
		deal.Status = "new"
	}
	if deal.PaymentStatus == "" {
		deal.PaymentStatus = "pending"
	}
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = time.Now()
	}
	return s.Repo.Create(deal)
}

func (s *DealService) GetByID(id int) (*models.Deal, error) {
	return s.Repo.GetByID(id)
}

func (s *DealService) Update(deal *models.Deal) error {
	return s.Repo.Update(deal)
}

func (s *DealService) ListPaginated(limit, offset int) ([]*models.Deal, error) {
	return s.Repo.ListPaginated(limit, offset)
}

func (s *DealService) FilterDeals(status, fromDate, toDate, sortBy, order string, valueMin, valueMax float64, limit, offset int) ([]*models.Deal, error) {
	return s.Repo.FilterDeals(status, fromDate, toDate, sortBy, order, valueMin, valueMax, limit, offset)
}

func (s *DealService) UpdateStatus(id int, to string) error {
	deal, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if deal == nil {
		return ErrNotFound
	}
	if !canTransition(deal.Status, to, DealTransitions) {
		return errors.New("invalid status transition")
	}
	return s.Repo.UpdateStatus(id, to)
}

// Close marks the deal lost. Deals are never hard-deleted.
func (s *DealService) Close(id int) error {
	deal, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if deal == nil {
		return ErrNotFound
	}
	return s.Repo.UpdateStatus(id, "lost")
}
