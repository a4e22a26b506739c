package service

import (
	"context"
	"errors"
	"time"

	"github.com/internship-hub-portal/internal/config"
	"github.com/internship-hub-portal/internal/metrics"
	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/repository"
	"github.com/rs/zerolog"
)

// ErrInvalidReportStatus is returned for a status outside the report lifecycle
var ErrInvalidReportStatus = errors.New("invalid report status")

// PlacementService defines the interface for placement queue operations
type PlacementService interface {
	SavePlacement(ctx context.Context, details models.PlacementDetails, studentID, studentName string) (*models.PlacementQueueItem, error)
	GetPendingPlacements(ctx context.Context) ([]models.PlacementQueueItem, error)
}

// ReportService defines the interface for abuse report operations
type ReportService interface {
	ReportAbuse(ctx context.Context, input models.AbuseReportInput) (*models.AbuseReport, error)
	UpdateReportStatus(ctx context.Context, id string, status models.ReportStatus) (*models.AbuseReport, error)
	GetAbuseReports(ctx context.Context) ([]models.AbuseReport, error)
}

// Services holds all service interfaces
type Services struct {
	Placement PlacementService
	Report    ReportService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, cfg *config.Config, m *metrics.Metrics, log zerolog.Logger) *Services {
	return &Services{
		Placement: newPlacementService(repos.Placement, cfg.Mock.Latency, m, log),
		Report:    newReportService(repos.Report, m, log),
	}
}

// sleep waits for d or until ctx is done
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
