package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"podium/internal/models"
)

func TestDeriveSyncStatus(t *testing.T) {
	pid := 5
	paid := "paid"
	pending := "pending"

	// no linked project
	assert.Equal(t, SyncStatusUnlinked, DeriveSyncStatus(nil, "paid", nil))

	// equal payment statuses
	assert.Equal(t, SyncStatusSynced, DeriveSyncStatus(&pid, "paid", &paid))
	assert.Equal(t, SyncStatusSynced, DeriveSyncStatus(&pid, "pending", &pending))

	// diverging payment statuses
	assert.Equal(t, SyncStatusOutOfSync, DeriveSyncStatus(&pid, "paid", &pending))

	// linked but project row gone
	assert.Equal(t, SyncStatusOutOfSync, DeriveSyncStatus(&pid, "paid", nil))
}

func TestReconcileRun(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	notifier := new(MockNotifier)
	svc := NewReconcileService(deals, projects, notifier)

	deals.On("LinkUnlinkedWon").Return(int64(3), nil)
	projects.On("RecomputeAggregates").Return(int64(7), nil)
	deals.On("WonSummary").Return(&models.WonSummary{TotalDeals: 10, LinkedDeals: 9, TotalValue: 120000, TotalCommission: 24000}, nil)
	notifier.On("Notify", mock.AnythingOfType("string")).Return(nil)

	res, err := svc.Run()
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.DealsLinked)
	assert.Equal(t, int64(7), res.ProjectsUpdated)
	assert.Equal(t, 120000.0, res.Summary.TotalValue)
	notifier.AssertExpectations(t)
}

func TestReconcileRun_AbortsOnStepFailure(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewReconcileService(deals, projects, nil)

	deals.On("LinkUnlinkedWon").Return(int64(2), nil)
	projects.On("RecomputeAggregates").Return(int64(0), errors.New("deadlock detected"))

	_, err := svc.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recompute step")
	// the link step already committed; nothing rolls it back
	deals.AssertCalled(t, "LinkUnlinkedWon")
	deals.AssertNotCalled(t, "WonSummary")
}

func TestReconcileStatus_LabelsRows(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewReconcileService(deals, projects, nil)

	pid := 5
	paid := "paid"
	pending := "pending"
	rows := []models.SyncStatusRow{
		{DealID: 1, DealPaymentStatus: "paid", ProjectID: nil},
		{DealID: 2, DealPaymentStatus: "paid", ProjectID: &pid, ProjectPaymentStatus: &paid},
		{DealID: 3, DealPaymentStatus: "paid", ProjectID: &pid, ProjectPaymentStatus: &pending},
	}
	deals.On("SyncStatusRows").Return(rows, nil)
	deals.On("WonSummary").Return(&models.WonSummary{TotalDeals: 3}, nil)

	labeled, summary, err := svc.Status()
	require.NoError(t, err)
	require.Len(t, labeled, 3)
	assert.Equal(t, SyncStatusUnlinked, labeled[0].SyncStatus)
	assert.Equal(t, SyncStatusSynced, labeled[1].SyncStatus)
	assert.Equal(t, SyncStatusOutOfSync, labeled[2].SyncStatus)
	assert.Equal(t, 3, summary.TotalDeals)
}
