package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"podium/internal/models"
)

func TestCommissionAmount(t *testing.T) {
	// derived from percentage, rounded to cents
	assert.Equal(t, 4500.0, CommissionAmount(30000, 15, nil))
	assert.Equal(t, 3333.33, CommissionAmount(9999.99, 33.3333, nil))
	assert.Equal(t, 0.0, CommissionAmount(0, 20, nil))

	// explicit amount wins over the percentage
	explicit := 1234.5
	assert.Equal(t, 1234.5, CommissionAmount(30000, 15, &explicit))
}

func TestMatchesDeal(t *testing.T) {
	deal := &models.Deal{
		Company:    "Acme",
		ClientName: "Jane Doe",
		EventDate:  "2025-06-01",
		EventTitle: "Annual Summit",
	}

	tests := []struct {
		name    string
		project models.Project
		want    bool
	}{
		{"date and title match", models.Project{Company: "Acme", ClientName: "Jane Doe", EventDate: "2025-06-01", ProjectName: "Annual Summit"}, true},
		{"date matches, title differs", models.Project{Company: "Acme", ClientName: "Jane Doe", EventDate: "2025-06-01", ProjectName: "Kickoff"}, true},
		{"title matches, date differs", models.Project{Company: "Acme", ClientName: "Jane Doe", EventDate: "2025-09-15", ProjectName: "Annual Summit"}, true},
		{"neither date nor title", models.Project{Company: "Acme", ClientName: "Jane Doe", EventDate: "2025-09-15", ProjectName: "Kickoff"}, false},
		{"different company", models.Project{Company: "Globex", ClientName: "Jane Doe", EventDate: "2025-06-01", ProjectName: "Annual Summit"}, false},
		{"different client", models.Project{Company: "Acme", ClientName: "John Roe", EventDate: "2025-06-01", ProjectName: "Annual Summit"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesDeal(deal, &tt.project))
		})
	}
}

func wonDeal() *models.Deal {
	return &models.Deal{
		ID:         42,
		ClientName: "Jane Doe",
		Company:    "Acme",
		EventTitle: "Annual Summit",
		EventDate:  "2025-06-01",
		Status:     "won",
	}
}

func TestUpdateDealFinance_ComputesCommissionAndPushes(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	deals.On("GetByID", 42).Return(wonDeal(), nil)
	deals.On("UpdateFinance", mock.AnythingOfType("*models.Deal")).Return(nil)
	projects.On("SyncFinanceFromDeal", mock.AnythingOfType("*models.Deal")).Return(int64(2), nil)

	deal, count, warning, err := svc.UpdateDealFinance(42, &models.DealFinanceUpdate{
		DealValue:            30000,
		CommissionPercentage: 15,
		PaymentStatus:        "partial",
	})
	require.NoError(t, err)
	assert.Equal(t, 30000.0, deal.DealValue)
	assert.Equal(t, 4500.0, deal.CommissionAmount)
	assert.Equal(t, "partial", deal.PaymentStatus)
	assert.Equal(t, int64(2), count)
	assert.Empty(t, warning)
	deals.AssertExpectations(t)
	projects.AssertExpectations(t)
}

func TestUpdateDealFinance_SecondaryFailureDoesNotFail(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	deals.On("GetByID", 42).Return(wonDeal(), nil)
	deals.On("UpdateFinance", mock.Anything).Return(nil)
	projects.On("SyncFinanceFromDeal", mock.Anything).Return(int64(0), errors.New("connection reset"))

	deal, count, warning, err := svc.UpdateDealFinance(42, &models.DealFinanceUpdate{
		DealValue:            30000,
		CommissionPercentage: 15,
	})
	// the primary update committed; the caller still gets a 200 with a warning
	require.NoError(t, err)
	require.NotNil(t, deal)
	assert.Equal(t, 30000.0, deal.DealValue)
	assert.Equal(t, int64(0), count)
	assert.NotEmpty(t, warning)
}

func TestUpdateDealFinance_NoMatchWarns(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	deals.On("GetByID", 42).Return(wonDeal(), nil)
	deals.On("UpdateFinance", mock.Anything).Return(nil)
	projects.On("SyncFinanceFromDeal", mock.Anything).Return(int64(0), nil)

	_, count, warning, err := svc.UpdateDealFinance(42, &models.DealFinanceUpdate{DealValue: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
	assert.Contains(t, warning, "no matching project")
}

func TestUpdateDealFinance_NotFound(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	deals.On("GetByID", 7).Return(nil, nil)

	_, _, _, err := svc.UpdateDealFinance(7, &models.DealFinanceUpdate{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProjectFinance_RevenueBase(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	projects.On("GetByID", 9).Return(&models.Project{ID: 9, ProjectName: "Annual Summit"}, nil)
	projects.On("UpdateFinance", mock.Anything).Return(nil)
	deals.On("SyncFinanceFromProject", mock.Anything).Return(int64(1), nil)

	// actual_revenue present: commission base is revenue, not budget
	p, count, warning, err := svc.UpdateProjectFinance(9, &models.ProjectFinanceUpdate{
		Budget:               25000,
		ActualRevenue:        30000,
		CommissionPercentage: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 3000.0, p.CommissionAmount)
	assert.Equal(t, int64(1), count)
	assert.Empty(t, warning)

	// no revenue: falls back to budget
	projects2 := new(MockProjectStore)
	svc2 := NewFinanceService(deals, projects2)
	projects2.On("GetByID", 9).Return(&models.Project{ID: 9}, nil)
	projects2.On("UpdateFinance", mock.Anything).Return(nil)

	p2, _, _, err := svc2.UpdateProjectFinance(9, &models.ProjectFinanceUpdate{
		Budget:               25000,
		CommissionPercentage: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, 2500.0, p2.CommissionAmount)
}

func TestUpdateProjectFinance_SecondaryFailureDoesNotFail(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	projects.On("GetByID", 9).Return(&models.Project{ID: 9, ProjectName: "Annual Summit"}, nil)
	projects.On("UpdateFinance", mock.Anything).Return(nil)
	deals.On("SyncFinanceFromProject", mock.Anything).Return(int64(0), errors.New("connection reset"))

	p, count, warning, err := svc.UpdateProjectFinance(9, &models.ProjectFinanceUpdate{
		Budget:               25000,
		CommissionPercentage: 10,
	})
	// mirror of the deal-side path: the project write committed, the caller
	// still gets a 200 with a warning
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 25000.0, p.Budget)
	assert.Equal(t, int64(0), count)
	assert.NotEmpty(t, warning)
}

func TestSyncBudget_FromDeal(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	dealID := 42
	deal := wonDeal()
	deal.CommissionPercentage = 20
	project := &models.Project{
		ID: 5, Company: "Acme", ClientName: "Jane Doe",
		EventDate: "2025-06-01", ProjectName: "Annual Summit",
		Budget: 25000, CommissionPercentage: 20,
	}

	deals.On("GetByID", 42).Return(deal, nil)
	deals.On("UpdateFinance", mock.Anything).Return(nil)
	projects.On("FindMatch", "Acme", "Jane Doe", "2025-06-01", "Annual Summit").Return(project, nil)
	projects.On("UpdateFinance", mock.Anything).Return(nil)

	res, err := svc.SyncBudget(&dealID, nil, 30000, "deals_page")
	require.NoError(t, err)
	require.NotNil(t, res.UpdatedDeal)
	require.NotNil(t, res.UpdatedProject)
	assert.Equal(t, 30000.0, res.UpdatedDeal.DealValue)
	assert.Equal(t, 6000.0, res.UpdatedDeal.CommissionAmount)
	assert.Equal(t, 30000.0, res.UpdatedProject.Budget)
	assert.Equal(t, "deals_page", res.SyncedFrom)
}

func TestSyncBudget_BothIDsRunIndependently(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	dealID := 42
	projectID := 9
	// distinct identities so the two counterpart lookups are distinguishable
	project := &models.Project{
		ID: 9, Company: "Globex", ClientName: "John Roe",
		EventDate: "2025-09-15", ProjectName: "Kickoff",
		Budget: 12000, CommissionPercentage: 10,
	}

	deals.On("GetByID", 42).Return(wonDeal(), nil).Once()
	deals.On("UpdateFinance", mock.Anything).Return(nil)
	projects.On("FindMatch", "Acme", "Jane Doe", "2025-06-01", "Annual Summit").Return(nil, nil).Once()

	projects.On("GetByID", 9).Return(project, nil).Once()
	projects.On("UpdateFinance", mock.Anything).Return(nil)
	deals.On("FindMatchWon", "Globex", "John Roe", "2025-09-15", "Kickoff").Return(nil, nil).Once()

	res, err := svc.SyncBudget(&dealID, &projectID, 30000, "both")
	require.NoError(t, err)
	// both blocks ran: the deal block updated deal 42, the project block
	// updated project 9, and both counterpart lookups fired
	require.NotNil(t, res.UpdatedDeal)
	require.NotNil(t, res.UpdatedProject)
	assert.Equal(t, 42, res.UpdatedDeal.ID)
	assert.Equal(t, 30000.0, res.UpdatedDeal.DealValue)
	assert.Equal(t, 9, res.UpdatedProject.ID)
	assert.Equal(t, 30000.0, res.UpdatedProject.Budget)
	assert.Equal(t, 3000.0, res.UpdatedProject.CommissionAmount)
	deals.AssertExpectations(t)
	projects.AssertExpectations(t)
}

func TestSyncBudget_NoCounterpart(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	dealID := 42
	deals.On("GetByID", 42).Return(wonDeal(), nil)
	deals.On("UpdateFinance", mock.Anything).Return(nil)
	projects.On("FindMatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	res, err := svc.SyncBudget(&dealID, nil, 30000, "deals_page")
	require.NoError(t, err)
	assert.NotNil(t, res.UpdatedDeal)
	assert.Nil(t, res.UpdatedProject)
}

func TestCompanyBudgetReport(t *testing.T) {
	deals := new(MockDealStore)
	projects := new(MockProjectStore)
	svc := NewFinanceService(deals, projects)

	d := wonDeal()
	d.DealValue = 30000
	matched := &models.Project{ID: 5, Company: "Acme", ClientName: "Jane Doe", EventDate: "2025-06-01", ProjectName: "Annual Summit", Budget: 25000}
	unrelated := &models.Project{ID: 6, Company: "Acme", ClientName: "Other", EventDate: "2025-01-01", ProjectName: "Other Event", Budget: 1}

	deals.On("ListByCompany", "Acme").Return([]*models.Deal{d}, nil)
	projects.On("ListByCompany", "Acme").Return([]*models.Project{matched, unrelated}, nil)

	report, err := svc.CompanyBudgetReport("Acme")
	require.NoError(t, err)
	assert.Equal(t, 1, report.Deals)
	assert.Equal(t, 2, report.Projects)
	require.Equal(t, 1, report.Mismatches)
	assert.Equal(t, 5000.0, report.Details[0].Difference)
}
