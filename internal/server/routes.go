package server

import (
	"net/http"

	"github.com/ternarybob/aestimo/internal/handlers"
)

// setupRoutes registers all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// System
	mux.HandleFunc("/api/health", handlers.HealthHandler)
	mux.HandleFunc("/api/version", handlers.VersionHandler)

	// Analysis
	mux.HandleFunc("/api/companies", s.app.AnalysisHandler.Companies)
	mux.HandleFunc("/api/report", s.app.AnalysisHandler.Report)
	mux.HandleFunc("/api/export", s.app.AnalysisHandler.Export)

	// Embedded report viewer
	mux.HandleFunc("/", handlers.UIHandler)

	return mux
}
