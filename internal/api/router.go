package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/internship-hub-portal/internal/apiclient"
	"github.com/internship-hub-portal/internal/config"
	"github.com/internship-hub-portal/internal/kvstore"
	"github.com/internship-hub-portal/internal/metrics"
	"github.com/internship-hub-portal/internal/service"
	"github.com/internship-hub-portal/internal/session"
	"github.com/rs/zerolog"
)

// Deps are the collaborators the router hands to its handlers
type Deps struct {
	Services *service.Services
	Sessions *session.Registry
	// Store is the shared store. Client data lives under ClientStore prefixes.
	Store   kvstore.Store
	Backend *apiclient.Client
	Metrics *metrics.Metrics
}

// NewSessionFactory builds managers whose storage and bearer token are
// scoped to one client
func NewSessionFactory(store kvstore.Store, backend *apiclient.Client, opts session.Options, log zerolog.Logger) session.Factory {
	return func(clientID string) *session.Manager {
		scoped := ClientStore(store, clientID)
		return session.NewManager(scoped, backend.WithTokens(scoped), log.With().Str("client_id", clientID).Logger(), opts)
	}
}

// NewRouter creates and configures the Gin router
func NewRouter(deps Deps, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(corsMiddleware(cfg.Server.CORSOrigins))

	// Handlers
	pageHandler := NewPageHandler(deps.Sessions, log)
	authHandler := NewAuthHandler(deps.Sessions, log)
	placementHandler := NewPlacementHandler(deps.Services, deps.Sessions, log)
	reportHandler := NewReportHandler(deps.Services, log)
	studentHandler := NewStudentHandler(deps.Backend, deps.Store, log)

	// Health check
	router.GET("/health", healthCheck(deps.Store))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	withClient := clientMiddleware(cfg.Server.CookieSecure)

	// Pages. Nested section paths fall through to NoRoute.
	pages := router.Group("/", withClient)
	{
		for _, path := range []string{"/", "/login", "/register", "/dashboard", "/profile"} {
			pages.GET(path, pageHandler.Serve)
		}
	}
	router.NoRoute(withClient, pageHandler.Serve)

	api := router.Group("/api", withClient)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/session", authHandler.Session)
		}

		placements := api.Group("/placements")
		{
			placements.POST("", placementHandler.SavePlacement)
			placements.GET("", placementHandler.ListPlacements)
		}

		reports := api.Group("/reports")
		{
			reports.POST("", reportHandler.ReportAbuse)
			reports.GET("", reportHandler.ListReports)
			reports.PATCH("/:id/status", reportHandler.UpdateStatus)
		}

		api.GET("/students/pending", studentHandler.PendingStudents)
	}

	return router
}

// healthCheck returns the health status, pinging the store when it supports it
func healthCheck(store kvstore.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, code := "healthy", http.StatusOK
		resp := gin.H{
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   "internship-hub-portal",
		}
		if err := kvstore.Ping(c.Request.Context(), store); err != nil {
			status, code = "unhealthy", http.StatusServiceUnavailable
			resp["error"] = err.Error()
		}
		resp["status"] = status
		c.JSON(code, resp)
	}
}
