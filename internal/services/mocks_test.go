package services

import (
	"github.com/stretchr/testify/mock"

	"podium/internal/models"
)

/* ==================== MOCKS ==================== */

/* -------- DealStore -------- */

type MockDealStore struct {
	mock.Mock
}

func (m *MockDealStore) GetByID(id int) (*models.Deal, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deal), args.Error(1)
}

func (m *MockDealStore) UpdateFinance(d *models.Deal) error {
	args := m.Called(d)
	return args.Error(0)
}

func (m *MockDealStore) SyncFinanceFromProject(p *models.Project) (int64, error) {
	args := m.Called(p)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealStore) FindMatchWon(company, clientName, eventDate, eventTitle string) (*models.Deal, error) {
	args := m.Called(company, clientName, eventDate, eventTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deal), args.Error(1)
}

func (m *MockDealStore) ListByCompany(company string) ([]*models.Deal, error) {
	args := m.Called(company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deal), args.Error(1)
}

func (m *MockDealStore) LinkUnlinkedWon() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDealStore) SyncStatusRows() ([]models.SyncStatusRow, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SyncStatusRow), args.Error(1)
}

func (m *MockDealStore) WonSummary() (*models.WonSummary, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.WonSummary), args.Error(1)
}

func (m *MockDealStore) CommissionForProject(projectID int) (float64, bool, error) {
	args := m.Called(projectID)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

/* -------- ProjectStore -------- */

type MockProjectStore struct {
	mock.Mock
}

func (m *MockProjectStore) GetByID(id int) (*models.Project, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectStore) UpdateFinance(p *models.Project) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockProjectStore) SyncFinanceFromDeal(d *models.Deal) (int64, error) {
	args := m.Called(d)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectStore) FindMatch(company, clientName, eventDate, eventTitle string) (*models.Project, error) {
	args := m.Called(company, clientName, eventDate, eventTitle)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectStore) ListByCompany(company string) ([]*models.Project, error) {
	args := m.Called(company)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockProjectStore) RecomputeAggregates() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProjectStore) FeeMigrationCandidates(ids []int) ([]*models.Project, error) {
	args := m.Called(ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Project), args.Error(1)
}

func (m *MockProjectStore) UpdateSpeakerFee(id int, fee float64) error {
	args := m.Called(id, fee)
	return args.Error(0)
}

/* -------- Notifier -------- */

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Notify(text string) error {
	args := m.Called(text)
	return args.Error(0)
}
