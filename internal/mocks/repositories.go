package mocks

import (
	"context"
	"sync"

	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/repository"
)

// MockPlacementRepository is a mock implementation of PlacementRepository
type MockPlacementRepository struct {
	mu          sync.Mutex
	Items       map[string]models.PlacementQueueItem
	UpsertError error
	ListError   error
	UpsertCalls int
}

var _ repository.PlacementRepository = (*MockPlacementRepository)(nil)

func NewMockPlacementRepository() *MockPlacementRepository {
	return &MockPlacementRepository{Items: make(map[string]models.PlacementQueueItem)}
}

func (m *MockPlacementRepository) Upsert(ctx context.Context, item *models.PlacementQueueItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpsertCalls++
	if m.UpsertError != nil {
		return m.UpsertError
	}
	m.Items[item.StudentID] = *item
	return nil
}

func (m *MockPlacementRepository) GetByStudentID(ctx context.Context, studentID string) (*models.PlacementQueueItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.Items[studentID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *MockPlacementRepository) List(ctx context.Context) ([]models.PlacementQueueItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	items := make([]models.PlacementQueueItem, 0, len(m.Items))
	for _, item := range m.Items {
		items = append(items, item)
	}
	return items, nil
}

// MockAbuseReportRepository is a mock implementation of AbuseReportRepository
type MockAbuseReportRepository struct {
	mu          sync.Mutex
	Reports     []models.AbuseReport
	CreateError error
	UpdateError error
}

var _ repository.AbuseReportRepository = (*MockAbuseReportRepository)(nil)

func NewMockAbuseReportRepository() *MockAbuseReportRepository {
	return &MockAbuseReportRepository{}
}

func (m *MockAbuseReportRepository) Create(ctx context.Context, report *models.AbuseReport) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Reports = append(m.Reports, *report)
	return nil
}

func (m *MockAbuseReportRepository) GetByID(ctx context.Context, id string) (*models.AbuseReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Reports {
		if m.Reports[i].ID == id {
			report := m.Reports[i]
			return &report, nil
		}
	}
	return nil, nil
}

func (m *MockAbuseReportRepository) UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.AbuseReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	for i := range m.Reports {
		if m.Reports[i].ID == id {
			m.Reports[i].Status = status
			report := m.Reports[i]
			return &report, nil
		}
	}
	return nil, nil
}

func (m *MockAbuseReportRepository) List(ctx context.Context) ([]models.AbuseReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.AbuseReport{}, m.Reports...), nil
}
