package services

import (
	"fmt"
	"log"

	"podium/internal/models"
)

// ReconcileService is the admin-triggered batch reconciliation: link won
// deals to projects, recompute project aggregates, summarize. The three
// statements run sequentially with no transaction around them; a failure
// mid-way leaves the earlier steps committed.
type ReconcileService struct {
	Deals    DealStore
	Projects ProjectStore
	Notifier Notifier
}

func NewReconcileService(deals DealStore, projects ProjectStore, notifier Notifier) *ReconcileService {
	return &ReconcileService{Deals: deals, Projects: projects, Notifier: notifier}
}

type ReconcileResult struct {
	DealsLinked     int64              `json:"deals_linked"`
	ProjectsUpdated int64              `json:"projectsUpdated"`
	Summary         *models.WonSummary `json:"summary"`
}

func (s *ReconcileService) Run() (*ReconcileResult, error) {
	linked, err := s.Deals.LinkUnlinkedWon()
	if err != nil {
		return nil, fmt.Errorf("link step: %w", err)
	}

	updated, err := s.Projects.RecomputeAggregates()
	if err != nil {
		return nil, fmt.Errorf("recompute step: %w", err)
	}

	summary, err := s.Deals.WonSummary()
	if err != nil {
		return nil, fmt.Errorf("summary step: %w", err)
	}

	log.Printf("[reconcile][run] linked=%d projects_updated=%d won_total=%.2f", linked, updated, summary.TotalValue)
	if s.Notifier != nil {
		msg := fmt.Sprintf("Finance sync finished: %d deals linked, %d projects recomputed, won pipeline %.2f",
			linked, updated, summary.TotalValue)
		if err := s.Notifier.Notify(msg); err != nil {
			log.Printf("[reconcile][notify] %v", err)
		}
	}

	return &ReconcileResult{DealsLinked: linked, ProjectsUpdated: updated, Summary: summary}, nil
}

// Sync status labels for the GET report.
const (
	SyncStatusUnlinked  = "Unlinked"
	SyncStatusSynced    = "Synced"
	SyncStatusOutOfSync = "Out of Sync"
)

// DeriveSyncStatus classifies a won deal against its linked project by
// payment_status equality only. "Synced" therefore does not guarantee the
// monetary figures agree.
func DeriveSyncStatus(projectID *int, dealPaymentStatus string, projectPaymentStatus *string) string {
	if projectID == nil {
		return SyncStatusUnlinked
	}
	if projectPaymentStatus != nil && dealPaymentStatus == *projectPaymentStatus {
		return SyncStatusSynced
	}
	return SyncStatusOutOfSync
}

func (s *ReconcileService) Status() ([]models.SyncStatusRow, *models.WonSummary, error) {
	rows, err := s.Deals.SyncStatusRows()
	if err != nil {
		return nil, nil, err
	}
	for i := range rows {
		rows[i].SyncStatus = DeriveSyncStatus(rows[i].ProjectID, rows[i].DealPaymentStatus, rows[i].ProjectPaymentStatus)
	}
	summary, err := s.Deals.WonSummary()
	if err != nil {
		return nil, nil, err
	}
	return rows, summary, nil
}
