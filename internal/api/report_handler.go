package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/service"
	"github.com/internship-hub-portal/internal/validation"
	"github.com/rs/zerolog"
)

// ReportHandler handles abuse report endpoints
type ReportHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(services *service.Services, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		services: services,
		log:      log.With().Str("handler", "report").Logger(),
	}
}

// ReportAbuse handles POST /api/reports
func (h *ReportHandler) ReportAbuse(c *gin.Context) {
	var input models.AbuseReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON: " + err.Error()})
		return
	}
	if errs := validation.ValidateAbuseReport(&input); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	report, err := h.services.Report.ReportAbuse(c.Request.Context(), input)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to file report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to file report"})
		return
	}
	c.JSON(http.StatusCreated, report)
}

// ListReports handles GET /api/reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.services.Report.GetAbuseReports(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reports"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

// UpdateStatus handles PATCH /api/reports/:id/status
func (h *ReportHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Status models.ReportStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON: " + err.Error()})
		return
	}
	if errs := validation.ValidateReportStatus(req.Status); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	report, err := h.services.Report.UpdateReportStatus(c.Request.Context(), id, req.Status)
	if errors.Is(err, service.ErrInvalidReportStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.log.Error().Err(err).Str("report_id", id).Msg("Failed to update report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}
	c.JSON(http.StatusOK, report)
}
