package repository

import (
	"context"

	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/internship-hub-portal/internal/models"
	"github.com/rs/zerolog"
)

// abuseReportRepo is the concrete implementation of AbuseReportRepository
type abuseReportRepo struct {
	items *collection[models.AbuseReport]
}

// NewAbuseReportRepo creates a new abuse report repository
func NewAbuseReportRepo(store kvstore.Store, log zerolog.Logger) AbuseReportRepository {
	return &abuseReportRepo{items: &collection[models.AbuseReport]{
		store: store,
		key:   kvstore.KeyAbuseReports,
		locks: collectionLocks,
		log:   log.With().Str("repository", "abuse_report").Logger(),
	}}
}

// Create appends a report
func (r *abuseReportRepo) Create(ctx context.Context, report *models.AbuseReport) error {
	return r.items.update(ctx, func(items []models.AbuseReport) ([]models.AbuseReport, bool) {
		return append(items, *report), true
	})
}

// GetByID retrieves a report by ID. Returns nil if absent.
func (r *abuseReportRepo) GetByID(ctx context.Context, id string) (*models.AbuseReport, error) {
	items, err := r.items.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, nil
}

// UpdateStatus sets the status of one report and persists the collection.
// Returns nil without writing if no report has that ID.
func (r *abuseReportRepo) UpdateStatus(ctx context.Context, id string, status models.ReportStatus) (*models.AbuseReport, error) {
	var updated *models.AbuseReport
	err := r.items.update(ctx, func(items []models.AbuseReport) ([]models.AbuseReport, bool) {
		for i := range items {
			if items[i].ID == id {
				items[i].Status = status
				report := items[i]
				updated = &report
				return items, true
			}
		}
		return items, false
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// List returns every report in filing order
func (r *abuseReportRepo) List(ctx context.Context) ([]models.AbuseReport, error) {
	items, err := r.items.load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.AbuseReport{}
	}
	return items, nil
}
