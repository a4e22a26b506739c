package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/internship-hub-portal/internal/gate"
	"github.com/internship-hub-portal/internal/session"
	"github.com/rs/zerolog"
)

// PageHandler serves page navigations through the route gate
type PageHandler struct {
	sessions *session.Registry
	log      zerolog.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(sessions *session.Registry, log zerolog.Logger) *PageHandler {
	return &PageHandler{
		sessions: sessions,
		log:      log.With().Str("handler", "page").Logger(),
	}
}

// Serve handles GET on any page path. Every navigation re-resolves the session.
func (h *PageHandler) Serve(c *gin.Context) {
	path := c.Request.URL.Path
	if c.Request.Method != http.MethodGet || path == "/api" || strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	// On error the manager hands back the state it restored, which the gate still understands
	s, err := h.sessions.Get(clientID(c)).Resolve(c.Request.Context())
	if err != nil {
		h.log.Warn().Err(err).Str("path", path).Msg("Session resolution interrupted")
	}

	decision := gate.Decide(s.State, path)
	switch decision.Action {
	case gate.ActionRedirect:
		c.Redirect(http.StatusFound, decision.Target)
	case gate.ActionLoading:
		c.JSON(http.StatusAccepted, gin.H{
			"path":   path,
			"action": decision.Action,
		})
	default:
		c.JSON(http.StatusOK, gin.H{
			"path":    path,
			"action":  decision.Action,
			"public":  gate.IsPublic(path),
			"session": s.View(),
		})
	}
}
