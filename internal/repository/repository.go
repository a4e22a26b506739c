package repository

import (
	"context"

	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/internship-hub-portal/internal/models"
	"github.com/rs/zerolog"
)

// PlacementRepository defines the interface for placement queue operations
type PlacementRepository interface {
	Upsert(ctx context.Context, item *models.PlacementQueueItem) error
	GetByStudentID(ctx context.Context, studentID string) (*models.PlacementQueueItem, error)
	List(ctx context.Context) ([]models.PlacementQueueItem, error)
}

// AbuseReportRepository defines the interface for abuse report operations
type AbuseReportRepository interface {
	Create(ctx context.Context, report *models.AbuseReport) error
	GetByID(ctx context.Context, id string) (*models.AbuseReport, error)
	UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.AbuseReport, error)
	List(ctx context.Context) ([]models.AbuseReport, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Placement PlacementRepository
	Report    AbuseReportRepository
}

// New creates all repositories on top of the shared store
func New(store kvstore.Store, log zerolog.Logger) *Repositories {
	return &Repositories{
		Placement: NewPlacementRepo(store, log),
		Report:    NewAbuseReportRepo(store, log),
	}
}
