package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/internship-hub-portal/internal/apiclient"
	"github.com/internship-hub-portal/internal/gate"
	"github.com/internship-hub-portal/internal/models"
	"github.com/internship-hub-portal/internal/session"
	"github.com/internship-hub-portal/internal/validation"
	"github.com/rs/zerolog"
)

// AuthHandler handles login, logout and the session view
type AuthHandler struct {
	sessions *session.Registry
	log      zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions *session.Registry, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		log:      log.With().Str("handler", "auth").Logger(),
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON: " + err.Error()})
		return
	}
	if errs := validation.ValidateLogin(&req); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": errs})
		return
	}

	s, err := h.sessions.Get(clientID(c)).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		code := http.StatusBadGateway
		switch {
		case errors.Is(err, apiclient.ErrRequestFailed):
			code = http.StatusUnauthorized
		case errors.Is(err, apiclient.ErrNetworkUnavailable):
			code = http.StatusServiceUnavailable
		case errors.Is(err, models.ErrUnknownRole):
			code = http.StatusForbidden
		case errors.Is(err, session.ErrLoginSuperseded):
			code = http.StatusConflict
		}
		h.log.Info().Err(err).Int("status", code).Msg("Login failed")
		c.JSON(code, gin.H{"error": apiclient.UserMessage(err)})
		return
	}

	view := s.View()
	c.JSON(http.StatusOK, gin.H{
		"session":  view,
		"redirect": view.Dashboard,
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.Get(clientID(c)).Logout(c.Request.Context()); err != nil {
		h.log.Error().Err(err).Msg("Failed to clear every session key")
	}
	c.JSON(http.StatusOK, gin.H{"redirect": gate.LoginPath})
}

// Session handles GET /api/auth/session. The first call for a client resolves it.
func (h *AuthHandler) Session(c *gin.Context) {
	m := h.sessions.Get(clientID(c))
	s := m.Current()
	if s.State == models.SessionUninitialized {
		var err error
		if s, err = m.Resolve(c.Request.Context()); err != nil {
			h.log.Warn().Err(err).Msg("Session resolution interrupted")
		}
	}
	c.JSON(http.StatusOK, s.View())
}
