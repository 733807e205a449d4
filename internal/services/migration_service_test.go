package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"podium/internal/models"
)

func TestSpeakerFee(t *testing.T) {
	assert.Equal(t, 24000.0, SpeakerFee(30000, 20))
	assert.Equal(t, 25500.0, SpeakerFee(30000, 15))
	assert.Equal(t, 30000.0, SpeakerFee(30000, 0))
	assert.Equal(t, 6666.67, SpeakerFee(10000, 33.3333))
}

func TestMigrationCommissionPriority(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewMigrationService(deals, projects)

	withOwn := &models.Project{ID: 1, ProjectName: "A", Budget: 10000, CommissionPercentage: 25, SpeakerFee: 1}
	withDeal := &models.Project{ID: 2, ProjectName: "B", Budget: 10000}
	withNothing := &models.Project{ID: 3, ProjectName: "C", Budget: 10000}

	projects.On("FeeMigrationCandidates", []int(nil)).Return([]*models.Project{withOwn, withDeal, withNothing}, nil)
	deals.On("CommissionForProject", 2).Return(15.0, true, nil)
	deals.On("CommissionForProject", 3).Return(0.0, false, nil)

	previews, totals, err := svc.Preview(0)
	require.NoError(t, err)
	require.Len(t, previews, 3)

	assert.Equal(t, "project", previews[0].CommissionSource)
	assert.Equal(t, 7500.0, previews[0].NewSpeakerFee)

	assert.Equal(t, "deal", previews[1].CommissionSource)
	assert.Equal(t, 8500.0, previews[1].NewSpeakerFee)

	assert.Equal(t, "default", previews[2].CommissionSource)
	assert.Equal(t, DefaultCommissionRate, previews[2].Commission)
	assert.Equal(t, 8000.0, previews[2].NewSpeakerFee)

	assert.Equal(t, 3, totals.Projects)
	assert.Equal(t, 30000.0, totals.TotalBudget)
	assert.Equal(t, 24000.0, totals.TotalNewFees)
}

func TestMigrationApply_Idempotent(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewMigrationService(deals, projects)

	// the fee derives from the budget, never from the current fee, so the
	// stored value does not influence the result
	first := &models.Project{ID: 1, ProjectName: "A", Budget: 30000, CommissionPercentage: 20, SpeakerFee: 0}
	projects.On("FeeMigrationCandidates", []int(nil)).Return([]*models.Project{first}, nil).Once()
	projects.On("UpdateSpeakerFee", 1, 24000.0).Return(nil).Once()

	previews1, updated1, err := svc.Apply(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, updated1)

	// second run: the fee is already 24000; recompute yields the same value
	second := &models.Project{ID: 1, ProjectName: "A", Budget: 30000, CommissionPercentage: 20, SpeakerFee: 24000}
	projects.On("FeeMigrationCandidates", []int(nil)).Return([]*models.Project{second}, nil).Once()
	projects.On("UpdateSpeakerFee", 1, 24000.0).Return(nil).Once()

	previews2, updated2, err := svc.Apply(nil, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, updated2)
	assert.Equal(t, previews1[0].NewSpeakerFee, previews2[0].NewSpeakerFee)
	projects.AssertExpectations(t)
}

func TestMigrationApply_ScopedIDs(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewMigrationService(deals, projects)

	p := &models.Project{ID: 7, ProjectName: "Scoped", Budget: 1000, CommissionPercentage: 10}
	projects.On("FeeMigrationCandidates", []int{7}).Return([]*models.Project{p}, nil)
	projects.On("UpdateSpeakerFee", 7, 900.0).Return(nil)

	_, updated, err := svc.Apply([]int{7}, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, updated)
	projects.AssertExpectations(t)
}
