package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/service"
	"github.com/internship-hub-portal/internal/session"
	"github.com/internship-hub-portal/internal/validation"
	"github.com/rs/zerolog"
)

// PlacementHandler handles placement queue endpoints
type PlacementHandler struct {
	services *service.Services
	sessions *session.Registry
	log      zerolog.Logger
}

// NewPlacementHandler creates a new PlacementHandler
func NewPlacementHandler(services *service.Services, sessions *session.Registry, log zerolog.Logger) *PlacementHandler {
	return &PlacementHandler{
		services: services,
		sessions: sessions,
		log:      log.With().Str("handler", "placement").Logger(),
	}
}

type savePlacementRequest struct {
	StudentID   string                  `json:"studentId"`
	StudentName string                  `json:"studentName"`
	Details     models.PlacementDetails `json:"details"`
}

// SavePlacement handles POST /api/placements.
// The student defaults to the signed-in user when the body omits it.
func (h *PlacementHandler) SavePlacement(c *gin.Context) {
	var req savePlacementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON: " + err.Error()})
		return
	}

	if req.StudentID == "" {
		if user := h.sessions.Get(clientID(c)).Current().User; user != nil {
			req.StudentID = user.ID
			if req.StudentName == "" {
				req.StudentName = user.FullName()
			}
		}
	}
	if req.StudentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "studentId is required"})
		return
	}
	if errs := validation.ValidatePlacement(&req.Details); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	item, err := h.services.Placement.SavePlacement(c.Request.Context(), req.Details, req.StudentID, req.StudentName)
	if err != nil {
		h.log.Error().Err(err).Str("student_id", req.StudentID).Msg("Failed to save placement")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save placement"})
		return
	}

	c.JSON(http.StatusOK, item)
}

// ListPlacements handles GET /api/placements
func (h *PlacementHandler) ListPlacements(c *gin.Context) {
	items, err := h.services.Placement.GetPendingPlacements(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list placements")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list placements"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"placements": items, "count": len(items)})
}
