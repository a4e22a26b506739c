package mocks

import (
	"context"
	"sync"

	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/service"
)

// MockPlacementService is a mock implementation of PlacementService
type MockPlacementService struct {
	SaveFunc   func(ctx context.Context, details models.PlacementDetails, studentID, studentName string) (*models.PlacementQueueItem, error)
	Placements []models.PlacementQueueItem
	ListError  error
}

var _ service.PlacementService = (*MockPlacementService)(nil)

func NewMockPlacementService() *MockPlacementService {
	return &MockPlacementService{}
}

func (m *MockPlacementService) SavePlacement(ctx context.Context, details models.PlacementDetails, studentID, studentName string) (*models.PlacementQueueItem, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, details, studentID, studentName)
	}
	item := models.PlacementQueueItem{
		StudentID:   studentID,
		StudentName: studentName,
		CompanyName: details.CompanyName,
		Status:      models.PlacementApproved,
	}
	m.Placements = append(m.Placements, item)
	return &item, nil
}

func (m *MockPlacementService) GetPendingPlacements(ctx context.Context) ([]models.PlacementQueueItem, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	return m.Placements, nil
}

// MockReportService is a mock implementation of ReportService
type MockReportService struct {
	mu          sync.Mutex
	Reports     map[string]*models.AbuseReport
	ReportError error
	UpdateError error
	ListError   error
}

var _ service.ReportService = (*MockReportService)(nil)

func NewMockReportService() *MockReportService {
	return &MockReportService{Reports: make(map[string]*models.AbuseReport)}
}

func (m *MockReportService) ReportAbuse(ctx context.Context, input models.AbuseReportInput) (*models.AbuseReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ReportError != nil {
		return nil, m.ReportError
	}
	report := &models.AbuseReport{
		ID:          "report-1",
		ReporterID:  input.ReporterID,
		Subject:     input.Subject,
		Description: input.Description,
		Status:      models.ReportStatusOpen,
	}
	m.Reports[report.ID] = report
	return report, nil
}

func (m *MockReportService) UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) (*models.AbuseReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	report, ok := m.Reports[id]
	if !ok {
		return nil, nil
	}
	report.Status = status
	return report, nil
}

func (m *MockReportService) GetAbuseReports(ctx context.Context) ([]models.AbuseReport, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListError != nil {
		return nil, m.ListError
	}
	reports := make([]models.AbuseReport, 0, len(m.Reports))
	for _, r := range m.Reports {
		reports = append(reports, *r)
	}
	return reports, nil
}
