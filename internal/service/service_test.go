package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/internship-hub-portal/internal/config"
	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/internship-hub-portal/internal/metrics"
	"github.com/internship-hub-portal/internal/mocks"
	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/repository"
	"github.com/internship-hub-portal/internal/service"
	"github.com/rs/zerolog"
)

func newServices(latency time.Duration) *service.Services {
	cfg := &config.Config{Mock: config.MockConfig{Latency: latency}}
	repos := repository.New(kvstore.NewMemory(), zerolog.Nop())
	return service.NewServices(repos, cfg, metrics.New(), zerolog.Nop())
}

func TestSavePlacement_Upsert(t *testing.T) {
	svc := newServices(0)
	ctx := context.Background()

	first := models.PlacementDetails{CompanyName: "Acme", SupervisorName: "Jane", SupervisorEmail: "jane@acme.com", StartDate: "2026-06-01", EndDate: "2026-08-31", Location: "Kumasi"}
	second := models.PlacementDetails{CompanyName: "Globex", SupervisorName: "Hank", SupervisorEmail: "hank@globex.com", StartDate: "2026-07-01", EndDate: "2026-09-30", Location: "Accra"}

	if _, err := svc.Placement.SavePlacement(ctx, first, "stu-1", "Ama Mensah"); err != nil {
		t.Fatalf("SavePlacement failed: %v", err)
	}
	saved, err := svc.Placement.SavePlacement(ctx, second, "stu-1", "Ama Mensah")
	if err != nil {
		t.Fatalf("SavePlacement failed: %v", err)
	}
	if saved.Status != models.PlacementApproved {
		t.Errorf("Expected APPROVED, got %s", saved.Status)
	}

	queue, err := svc.Placement.GetPendingPlacements(ctx)
	if err != nil {
		t.Fatalf("GetPendingPlacements failed: %v", err)
	}
	if len(queue) != 1 {
		t.Fatalf("Expected exactly one record for the student, got %d", len(queue))
	}
	got := queue[0]
	if got.CompanyName != "Globex" || got.SupervisorEmail != "hank@globex.com" || got.Location != "Accra" {
		t.Errorf("Expected second call's fields to win, got %+v", got)
	}
	if got.SubmissionDate.IsZero() {
		t.Error("Expected submission date to be set")
	}
}

func TestSavePlacement_Latency(t *testing.T) {
	svc := newServices(30 * time.Millisecond)

	start := time.Now()
	if _, err := svc.Placement.SavePlacement(context.Background(), models.PlacementDetails{CompanyName: "Acme"}, "s", "S"); err != nil {
		t.Fatalf("SavePlacement failed: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Expected simulated latency, returned after %v", elapsed)
	}
}

func TestSavePlacement_CancelledDuringLatency(t *testing.T) {
	svc := newServices(time.Second)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := svc.Placement.SavePlacement(ctx, models.PlacementDetails{CompanyName: "Acme"}, "s", "S")
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Expected deadline exceeded, got %v", err)
	}

	queue, _ := svc.Placement.GetPendingPlacements(context.Background())
	if len(queue) != 0 {
		t.Errorf("Cancelled save must not write, got %d records", len(queue))
	}
}

func TestSavePlacement_RepositoryError(t *testing.T) {
	repo := mocks.NewMockPlacementRepository()
	repo.UpsertError = errors.New("store offline")
	repos := &repository.Repositories{Placement: repo, Report: mocks.NewMockAbuseReportRepository()}
	svc := service.NewServices(repos, &config.Config{}, nil, zerolog.Nop())

	_, err := svc.Placement.SavePlacement(context.Background(), models.PlacementDetails{}, "s", "S")
	if err == nil || !errors.Is(err, repo.UpsertError) {
		t.Errorf("Expected wrapped repository error, got %v", err)
	}
}

func TestReportAbuse_ThenResolve(t *testing.T) {
	svc := newServices(0)
	ctx := context.Background()

	input := models.AbuseReportInput{
		ReporterID:   "u1",
		ReporterName: "Kofi",
		ReporterRole: "STUDENT",
		Subject:      "Harassment",
		Category:     "conduct",
		Description:  "Repeated messages",
	}
	created, err := svc.Report.ReportAbuse(ctx, input)
	if err != nil {
		t.Fatalf("ReportAbuse failed: %v", err)
	}
	if created.Status != models.ReportStatusOpen {
		t.Errorf("Expected OPEN, got %s", created.Status)
	}
	id, err := uuid.Parse(created.ID)
	if err != nil || id.Version() != 7 {
		t.Errorf("Expected a v7 uuid id, got %q", created.ID)
	}
	if time.Since(created.DateReported) > time.Minute {
		t.Errorf("Unexpected dateReported %v", created.DateReported)
	}

	updated, err := svc.Report.UpdateReportStatus(ctx, created.ID, models.ReportStatusResolved)
	if err != nil {
		t.Fatalf("UpdateReportStatus failed: %v", err)
	}
	if updated.Status != models.ReportStatusResolved {
		t.Errorf("Expected RESOLVED, got %s", updated.Status)
	}
	if updated.ID != created.ID || !updated.DateReported.Equal(created.DateReported) {
		t.Errorf("id/dateReported changed: %+v vs %+v", updated, created)
	}

	reports, _ := svc.Report.GetAbuseReports(ctx)
	if len(reports) != 1 || reports[0].Status != models.ReportStatusResolved {
		t.Errorf("Expected one RESOLVED report, got %+v", reports)
	}
}

func TestUpdateReportStatus_NotFound(t *testing.T) {
	svc := newServices(0)
	ctx := context.Background()
	svc.Report.ReportAbuse(ctx, models.AbuseReportInput{Subject: "Spam"})

	updated, err := svc.Report.UpdateReportStatus(ctx, "does-not-exist", models.ReportStatusDismissed)
	if err != nil {
		t.Fatalf("Expected no error for a miss, got %v", err)
	}
	if updated != nil {
		t.Errorf("Expected nil result, got %+v", updated)
	}

	reports, _ := svc.Report.GetAbuseReports(ctx)
	if len(reports) != 1 || reports[0].Status != models.ReportStatusOpen {
		t.Errorf("Collection must be unchanged, got %+v", reports)
	}
}

func TestUpdateReportStatus_InvalidStatus(t *testing.T) {
	svc := newServices(0)

	_, err := svc.Report.UpdateReportStatus(context.Background(), "any", "ARCHIVED")
	if !errors.Is(err, service.ErrInvalidReportStatus) {
		t.Errorf("Expected ErrInvalidReportStatus, got %v", err)
	}
}

func TestGetAbuseReports_Empty(t *testing.T) {
	svc := newServices(0)

	reports, err := svc.Report.GetAbuseReports(context.Background())
	if err != nil {
		t.Fatalf("GetAbuseReports failed: %v", err)
	}
	if reports == nil || len(reports) != 0 {
		t.Errorf("Expected empty list, got %v", reports)
	}
}
