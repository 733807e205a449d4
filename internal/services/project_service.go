package services

import (
	"errors"
	"fmt"
	"time"

	"podium/internal/models"
	"podium/internal/repositories"
)

type ProjectService struct {
	Repo     *repositories.ProjectRepository
	DealRepo *repositories.DealRepository
}

func NewProjectService(repo *repositories.ProjectRepository, dealRepo *repositories.DealRepository) *ProjectService {
	return &ProjectService{Repo: repo, DealRepo: dealRepo}
}

func (s *ProjectService) Create(p *models.Project) (int64, error) {
	if p.ProjectName == "" || p.Company == "" {
		return 0, errors.New("project_name and company are required")
	}
	if p.Status == "" {
		p.Status = "invoicing"
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = "pending"
	}
	if p.StageCompletion == nil {
		p.StageCompletion = models.StageCompletion{}
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	return s.Repo.Create(p)
}

// CreateFromDeal books a won deal as a project, carrying its financials over
// and writing the project id back onto the deal so later syncs can use the
// hard link instead of the heuristic.
func (s *ProjectService) CreateFromDeal(dealID int) (*models.Project, error) {
	deal, err := s.DealRepo.GetByID(dealID)
	if err != nil {
		return nil, err
	}
	if deal == nil {
		return nil, ErrNotFound
	}
	if deal.Status != "won" {
		return nil, errors.New("only won deals can be booked as projects")
	}
	if deal.ProjectID != nil {
		return nil, errors.New("deal already has a project")
	}

	p := &models.Project{
		ProjectName:          deal.EventTitle,
		ClientName:           deal.ClientName,
		ClientEmail:          deal.ClientEmail,
		Company:              deal.Company,
		EventDate:            deal.EventDate,
		Status:               "invoicing",
		Budget:               deal.DealValue,
		SpeakerFee:           SpeakerFee(deal.DealValue, deal.CommissionPercentage),
		CommissionPercentage: deal.CommissionPercentage,
		CommissionAmount:     deal.CommissionAmount,
		PaymentStatus:        deal.PaymentStatus,
		StageCompletion:      models.StageCompletion{},
		CreatedAt:            time.Now(),
	}
	id, err := s.Repo.Create(p)
	if err != nil {
		return nil, err
	}
	p.ID = int(id)

	if err := s.DealRepo.SetProjectID(deal.ID, p.ID); err != nil {
		// project exists either way; the link can be backfilled by sync-finance
		return p, fmt.Errorf("project created but deal link failed: %w", err)
	}
	return p, nil
}

func (s *ProjectService) GetByID(id int) (*models.Project, error) {
	return s.Repo.GetByID(id)
}

func (s *ProjectService) Update(p *models.Project) error {
	return s.Repo.Update(p)
}

func (s *ProjectService) ListPaginated(limit, offset int) ([]*models.Project, error) {
	return s.Repo.ListPaginated(limit, offset)
}

func (s *ProjectService) UpdateStatus(id int, to string) error {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	if !canTransition(p.Status, to, ProjectTransitions) {
		return errors.New("invalid status transition")
	}
	return s.Repo.UpdateStatus(id, to)
}

func (s *ProjectService) UpdateStageTasks(id int, stages models.StageCompletion) error {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}
	return s.Repo.UpdateStageCompletion(id, stages)
}

// Delete is a hard delete, unlike deals.
func (s *ProjectService) Delete(id int) error {
	return s.Repo.Delete(id)
}
