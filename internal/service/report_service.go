package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/internship-hub-portal/internal/metrics"
	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/repository"
	"github.com/rs/zerolog"
)

// reportService is the concrete implementation of ReportService
type reportService struct {
	repo    repository.AbuseReportRepository
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func newReportService(repo repository.AbuseReportRepository, m *metrics.Metrics, log zerolog.Logger) *reportService {
	return &reportService{
		repo:    repo,
		metrics: m,
		log:     log.With().Str("service", "report").Logger(),
	}
}

// ReportAbuse files a new OPEN report and returns it
func (s *reportService) ReportAbuse(ctx context.Context, input models.AbuseReportInput) (*models.AbuseReport, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate report id: %w", err)
	}

	report := &models.AbuseReport{
		ID:           id.String(),
		ReporterID:   input.ReporterID,
		ReporterName: input.ReporterName,
		ReporterRole: input.ReporterRole,
		Subject:      input.Subject,
		Category:     input.Category,
		Description:  input.Description,
		DateReported: time.Now().UTC(),
		Status:       models.ReportStatusOpen,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	s.metrics.ObserveWrite("abuse_reports")

	s.log.Info().Str("report_id", report.ID).Str("category", report.Category).Msg("Abuse report filed")
	return report, nil
}

// UpdateReportStatus changes a report's status. Returns nil, nil if no report has that id.
func (s *reportService) UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) (*models.AbuseReport, error) {
	if !models.ValidReportStatuses[status] {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportStatus, status)
	}

	report, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update report status: %w", err)
	}
	if report == nil {
		s.log.Debug().Str("report_id", id).Msg("Report not found for status update")
		return nil, nil
	}
	s.metrics.ObserveWrite("abuse_reports")

	s.log.Info().Str("report_id", id).Str("status", string(status)).Msg("Report status updated")
	return report, nil
}

// GetAbuseReports returns every report
func (s *reportService) GetAbuseReports(ctx context.Context) ([]models.AbuseReport, error) {
	reports, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return reports, nil
}
