package services

import (
	"podium/internal/models"
	"podium/internal/repositories"
)

type ReportService struct {
	DealRepo    *repositories.DealRepository
	ProjectRepo *repositories.ProjectRepository
}

func NewReportService(dealRepo *repositories.DealRepository, projectRepo *repositories.ProjectRepository) *ReportService {
	return &ReportService{DealRepo: dealRepo, ProjectRepo: projectRepo}
}

type PipelineSummary struct {
	DealsByStatus   map[string]int     `json:"deals_by_status"`
	ProjectsByStage map[string]int     `json:"projects_by_stage"`
	Won             *models.WonSummary `json:"won"`
}

func (s *ReportService) GetSummary() (*PipelineSummary, error) {
	dealCounts, err := s.DealRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	projectCounts, err := s.ProjectRepo.CountByStatus()
	if err != nil {
		return nil, err
	}
	won, err := s.DealRepo.WonSummary()
	if err != nil {
		return nil, err
	}
	return &PipelineSummary{
		DealsByStatus:   dealCounts,
		ProjectsByStage: projectCounts,
		Won:             won,
	}, nil
}
