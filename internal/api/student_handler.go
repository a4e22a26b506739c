package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/internship-hub-portal/internal/apiclient"
	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/rs/zerolog"
)

// StudentHandler passes student listings through from the backend
type StudentHandler struct {
	backend *apiclient.Client
	store   kvstore.Store
	log     zerolog.Logger
}

// NewStudentHandler creates a new StudentHandler
func NewStudentHandler(backend *apiclient.Client, store kvstore.Store, log zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		backend: backend,
		store:   store,
		log:     log.With().Str("handler", "student").Logger(),
	}
}

// PendingStudents handles GET /api/students/pending with the client's own token
func (h *StudentHandler) PendingStudents(c *gin.Context) {
	client := h.backend.WithTokens(ClientStore(h.store, clientID(c)))

	students, err := client.PendingStudents(c.Request.Context())
	if err != nil {
		code := http.StatusBadGateway
		var reqErr *apiclient.RequestError
		switch {
		case errors.As(err, &reqErr) && reqErr.Status >= 400 && reqErr.Status < 500:
			code = reqErr.Status
		case errors.Is(err, apiclient.ErrNetworkUnavailable):
			code = http.StatusServiceUnavailable
		}
		h.log.Warn().Err(err).Int("status", code).Msg("Pending students request failed")
		c.JSON(code, gin.H{"error": apiclient.UserMessage(err)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"students": students, "count": len(students)})
}
