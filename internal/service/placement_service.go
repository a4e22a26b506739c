package service

import (
	"context"
	"fmt"
	"time"

	"github.com/internship-hub-portal/internal/metrics"
	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/repository"
	"github.com/rs/zerolog"
)

// placementService is the concrete implementation of PlacementService
type placementService struct {
	repo    repository.PlacementRepository
	latency time.Duration
	metrics *metrics.Metrics
	log     zerolog.Logger
}

func newPlacementService(repo repository.PlacementRepository, latency time.Duration, m *metrics.Metrics, log zerolog.Logger) *placementService {
	return &placementService{
		repo:    repo,
		latency: latency,
		metrics: m,
		log:     log.With().Str("service", "placement").Logger(),
	}
}

// SavePlacement records the student's placement, replacing any earlier one.
// Placements are approved on submission.
func (s *placementService) SavePlacement(ctx context.Context, details models.PlacementDetails, studentID, studentName string) (*models.PlacementQueueItem, error) {
	if err := sleep(ctx, s.latency); err != nil {
		return nil, err
	}

	item := &models.PlacementQueueItem{
		StudentID:       studentID,
		StudentName:     studentName,
		CompanyName:     details.CompanyName,
		SupervisorName:  details.SupervisorName,
		SupervisorEmail: details.SupervisorEmail,
		SubmissionDate:  time.Now().UTC(),
		Status:          models.PlacementApproved,
		StartDate:       details.StartDate,
		EndDate:         details.EndDate,
		Location:        details.Location,
	}
	if err := s.repo.Upsert(ctx, item); err != nil {
		return nil, fmt.Errorf("save placement: %w", err)
	}
	s.metrics.ObserveWrite("placements")

	s.log.Info().
		Str("student_id", studentID).
		Str("company", details.CompanyName).
		Msg("Placement saved")
	return item, nil
}

// GetPendingPlacements returns the whole placement queue
func (s *placementService) GetPendingPlacements(ctx context.Context) ([]models.PlacementQueueItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list placements: %w", err)
	}
	return items, nil
}
