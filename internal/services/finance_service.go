package services

import (
	"fmt"
	"log"
	"math"

	"podium/internal/models"
)

// FinanceService owns the deal<->project financial sync. Propagation to the
// counterpart record is best-effort: the primary write commits on its own and
// secondary failures surface only as a warning string.
type FinanceService struct {
	Deals    DealStore
	Projects ProjectStore
}

func NewFinanceService(deals DealStore, projects ProjectStore) *FinanceService {
	return &FinanceService{Deals: deals, Projects: projects}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// CommissionAmount derives the commission from value and percentage unless an
// explicit amount was supplied.
func CommissionAmount(value, percentage float64, explicit *float64) float64 {
	if explicit != nil {
		return round2(*explicit)
	}
	return round2(value * percentage / 100)
}

// MatchesDeal reports whether a project is the heuristic counterpart of a
// deal: same company and client, and either the event date or the title
// matches. The date/title leg is an OR, so a project with a different date
// but the same title still counts.
func MatchesDeal(d *models.Deal, p *models.Project) bool {
	if d.Company != p.Company || d.ClientName != p.ClientName {
		return false
	}
	return d.EventDate == p.EventDate || d.EventTitle == p.ProjectName
}

// UpdateDealFinance updates the deal's financial fields and pushes them onto
// matching projects. Returns the updated deal, the number of projects
// touched, and a non-fatal warning when nothing was pushed.
func (s *FinanceService) UpdateDealFinance(id int, upd *models.DealFinanceUpdate) (*models.Deal, int64, string, error) {
	deal, err := s.Deals.GetByID(id)
	if err != nil {
		return nil, 0, "", err
	}
	if deal == nil {
		return nil, 0, "", ErrNotFound
	}

	deal.DealValue = upd.DealValue
	deal.CommissionPercentage = upd.CommissionPercentage
	deal.CommissionAmount = CommissionAmount(upd.DealValue, upd.CommissionPercentage, upd.CommissionAmount)
	deal.PaymentStatus = upd.PaymentStatus
	deal.PaymentDate = upd.PaymentDate
	deal.InvoiceNumber = upd.InvoiceNumber
	deal.ContractLink = upd.ContractLink
	deal.InvoiceLink1 = upd.InvoiceLink1
	deal.InvoiceLink2 = upd.InvoiceLink2
	deal.Notes = upd.Notes

	if err := s.Deals.UpdateFinance(deal); err != nil {
		return nil, 0, "", err
	}

	count, err := s.Projects.SyncFinanceFromDeal(deal)
	if err != nil {
		// primary already committed; do not fail the request
		log.Printf("[finance][deal-sync] project push failed for deal=%d: %v", id, err)
		return deal, 0, "deal saved, but project sync failed — run sync-finance to reconcile", nil
	}
	if count == 0 {
		return deal, 0, "no matching project found — project records were not updated", nil
	}
	return deal, count, "", nil
}

// UpdateProjectFinance is the mirror path. The commission base is
// actual_revenue when present, otherwise budget; the deal-side push only
// touches won deals.
func (s *FinanceService) UpdateProjectFinance(id int, upd *models.ProjectFinanceUpdate) (*models.Project, int64, string, error) {
	project, err := s.Projects.GetByID(id)
	if err != nil {
		return nil, 0, "", err
	}
	if project == nil {
		return nil, 0, "", ErrNotFound
	}

	base := upd.ActualRevenue
	if base <= 0 {
		base = upd.Budget
	}

	project.Budget = upd.Budget
	project.SpeakerFee = upd.SpeakerFee
	project.ActualRevenue = upd.ActualRevenue
	project.CommissionPercentage = upd.CommissionPercentage
	project.CommissionAmount = CommissionAmount(base, upd.CommissionPercentage, upd.CommissionAmount)
	project.PaymentStatus = upd.PaymentStatus
	project.PaymentDate = upd.PaymentDate
	project.FinancialNotes = upd.FinancialNotes

	if err := s.Projects.UpdateFinance(project); err != nil {
		return nil, 0, "", err
	}

	count, err := s.Deals.SyncFinanceFromProject(project)
	if err != nil {
		log.Printf("[finance][project-sync] deal push failed for project=%d: %v", id, err)
		return project, 0, "project saved, but deal sync failed — run sync-finance to reconcile", nil
	}
	if count == 0 {
		return project, 0, "no matching won deal found — deal records were not updated", nil
	}
	return project, count, "", nil
}

// BudgetSyncResult is the response of the explicit budget sync endpoint.
type BudgetSyncResult struct {
	Message        string          `json:"message"`
	UpdatedDeal    *models.Deal    `json:"updatedDeal"`
	UpdatedProject *models.Project `json:"updatedProject"`
	SyncedFrom     string          `json:"syncedFrom"`
}

// SyncBudget applies a new budget to the named side and propagates it to the
// heuristic counterpart. When both ids are supplied both blocks run
// independently, as the callers rely on.
func (s *FinanceService) SyncBudget(dealID, projectID *int, newBudget float64, source string) (*BudgetSyncResult, error) {
	res := &BudgetSyncResult{SyncedFrom: source}

	if dealID != nil {
		deal, err := s.Deals.GetByID(*dealID)
		if err != nil {
			return nil, err
		}
		if deal == nil {
			return nil, ErrNotFound
		}
		deal.DealValue = newBudget
		deal.CommissionAmount = round2(newBudget * deal.CommissionPercentage / 100)
		if err := s.Deals.UpdateFinance(deal); err != nil {
			return nil, err
		}
		res.UpdatedDeal = deal

		project, err := s.Projects.FindMatch(deal.Company, deal.ClientName, deal.EventDate, deal.EventTitle)
		if err != nil {
			log.Printf("[finance][budget-sync] project lookup failed for deal=%d: %v", *dealID, err)
		} else if project != nil {
			project.Budget = newBudget
			project.CommissionAmount = round2(newBudget * project.CommissionPercentage / 100)
			if err := s.Projects.UpdateFinance(project); err != nil {
				log.Printf("[finance][budget-sync] project update failed for deal=%d: %v", *dealID, err)
			} else {
				res.UpdatedProject = project
			}
		}
	}

	if projectID != nil {
		project, err := s.Projects.GetByID(*projectID)
		if err != nil {
			return nil, err
		}
		if project == nil {
			return nil, ErrNotFound
		}
		project.Budget = newBudget
		project.CommissionAmount = round2(newBudget * project.CommissionPercentage / 100)
		if err := s.Projects.UpdateFinance(project); err != nil {
			return nil, err
		}
		res.UpdatedProject = project

		deal, err := s.Deals.FindMatchWon(project.Company, project.ClientName, project.EventDate, project.ProjectName)
		if err != nil {
			log.Printf("[finance][budget-sync] deal lookup failed for project=%d: %v", *projectID, err)
		} else if deal != nil {
			deal.DealValue = newBudget
			deal.CommissionAmount = round2(newBudget * deal.CommissionPercentage / 100)
			if err := s.Deals.UpdateFinance(deal); err != nil {
				log.Printf("[finance][budget-sync] deal update failed for project=%d: %v", *projectID, err)
			} else {
				res.UpdatedDeal = deal
			}
		}
	}

	res.Message = fmt.Sprintf("budget synced to %.2f (source: %s)", newBudget, source)
	return res, nil
}

// CompanyReport compares a company's deals and projects pairwise and lists
// the pairs whose deal value and budget diverge.
type CompanyReport struct {
	Company    string                  `json:"company"`
	Deals      int                     `json:"deals"`
	Projects   int                     `json:"projects"`
	Mismatches int                     `json:"mismatches"`
	Details    []models.BudgetMismatch `json:"details"`
}

func (s *FinanceService) CompanyBudgetReport(company string) (*CompanyReport, error) {
	deals, err := s.Deals.ListByCompany(company)
	if err != nil {
		return nil, err
	}
	projects, err := s.Projects.ListByCompany(company)
	if err != nil {
		return nil, err
	}

	report := &CompanyReport{
		Company:  company,
		Deals:    len(deals),
		Projects: len(projects),
		Details:  []models.BudgetMismatch{},
	}
	for _, d := range deals {
		for _, p := range projects {
			if !MatchesDeal(d, p) {
				continue
			}
			if d.DealValue != p.Budget {
				report.Details = append(report.Details, models.BudgetMismatch{
					DealID:        d.ID,
					ProjectID:     p.ID,
					EventTitle:    d.EventTitle,
					DealValue:     d.DealValue,
					ProjectBudget: p.Budget,
					Difference:    round2(d.DealValue - p.Budget),
				})
			}
		}
	}
	report.Mismatches = len(report.Details)
	return report, nil
}
