package services

import (
	"fmt"
	"log"

	"podium/internal/models"
)

// DefaultCommissionRate applies when neither the project nor a linked deal
// carries a commission percentage.
const DefaultCommissionRate = 20.0

// MigrationService recomputes speaker fees from budgets. The formula always
// derives from the stored budget, never from the current fee, so reapplying
// it is harmless.
type MigrationService struct {
	Deals    DealStore
	Projects ProjectStore
}

func NewMigrationService(deals DealStore, projects ProjectStore) *MigrationService {
	return &MigrationService{Deals: deals, Projects: projects}
}

// SpeakerFee is the budget minus the bureau's commission.
func SpeakerFee(budget, commissionPct float64) float64 {
	return round2(budget * (1 - commissionPct/100))
}

// effectiveCommission resolves the rate by priority: the project's own
// percentage, then a linked deal's, then the fallback.
func (s *MigrationService) effectiveCommission(p *models.Project, fallback float64) (float64, string) {
	if p.CommissionPercentage > 0 {
		return p.CommissionPercentage, "project"
	}
	pct, ok, err := s.Deals.CommissionForProject(p.ID)
	if err != nil {
		log.Printf("[migrate][commission] deal lookup failed for project=%d: %v", p.ID, err)
	} else if ok {
		return pct, "deal"
	}
	return fallback, "default"
}

type MigrationTotals struct {
	Projects     int     `json:"projects"`
	TotalBudget  float64 `json:"total_budget"`
	TotalOldFees float64 `json:"total_old_fees"`
	TotalNewFees float64 `json:"total_new_fees"`
	DefaultRate  float64 `json:"default_commission_rate"`
}

func (s *MigrationService) preview(ids []int, defaultRate float64) ([]models.SpeakerFeePreview, *MigrationTotals, error) {
	if defaultRate <= 0 {
		defaultRate = DefaultCommissionRate
	}
	projects, err := s.Projects.FeeMigrationCandidates(ids)
	if err != nil {
		return nil, nil, err
	}

	totals := &MigrationTotals{DefaultRate: defaultRate}
	previews := make([]models.SpeakerFeePreview, 0, len(projects))
	for _, p := range projects {
		pct, source := s.effectiveCommission(p, defaultRate)
		previews = append(previews, models.SpeakerFeePreview{
			ProjectID:        p.ID,
			ProjectName:      p.ProjectName,
			Budget:           p.Budget,
			Commission:       pct,
			CommissionSource: source,
			OldSpeakerFee:    p.SpeakerFee,
			NewSpeakerFee:    SpeakerFee(p.Budget, pct),
		})
		totals.Projects++
		totals.TotalBudget += p.Budget
		totals.TotalOldFees += p.SpeakerFee
		totals.TotalNewFees += SpeakerFee(p.Budget, pct)
	}
	totals.TotalBudget = round2(totals.TotalBudget)
	totals.TotalOldFees = round2(totals.TotalOldFees)
	totals.TotalNewFees = round2(totals.TotalNewFees)
	return previews, totals, nil
}

// Preview is the GET dry run over all candidates.
func (s *MigrationService) Preview(defaultRate float64) ([]models.SpeakerFeePreview, *MigrationTotals, error) {
	return s.preview(nil, defaultRate)
}

// Apply writes the recomputed fees, optionally scoped to the given project
// ids. Each UPDATE commits on its own; a failure aborts with earlier rows
// already written.
func (s *MigrationService) Apply(ids []int, defaultRate float64) ([]models.SpeakerFeePreview, int, error) {
	previews, _, err := s.preview(ids, defaultRate)
	if err != nil {
		return nil, 0, err
	}
	updated := 0
	for _, pv := range previews {
		if err := s.Projects.UpdateSpeakerFee(pv.ProjectID, pv.NewSpeakerFee); err != nil {
			return previews, updated, fmt.Errorf("apply fee for project %d: %w", pv.ProjectID, err)
		}
		updated++
	}
	log.Printf("[migrate][apply] recomputed speaker fees for %d projects", updated)
	return previews, updated, nil
}
