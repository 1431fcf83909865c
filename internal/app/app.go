// Package app wires configuration, logging, the fundamentals store, and
// the analysis services into one application container.
package app

import (
	"fmt"

	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/fundstore"
	"github.com/ternarybob/aestimo/internal/handlers"
	"github.com/ternarybob/aestimo/internal/services/analysis"
	"github.com/ternarybob/aestimo/internal/services/pdf"
	"github.com/ternarybob/arbor"
)

// App holds the wired application components.
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	Store    fundstore.Store
	Analysis *analysis.Service
	PDF      *pdf.Service

	AnalysisHandler *handlers.AnalysisHandler
}

// New builds the application from configuration. Construction order follows
// the dependency chain: store, services, handlers.
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	store, err := fundstore.NewStore(cfg.Store, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize fundamentals store: %w", err)
	}
	logger.Info().Str("type", cfg.Store.Type).Msg("Fundamentals store ready")

	analysisService := analysis.NewService(store, cfg.Analysis, logger)
	pdfService := pdf.NewService(logger)

	return &App{
		Config:          cfg,
		Logger:          logger,
		Store:           store,
		Analysis:        analysisService,
		PDF:             pdfService,
		AnalysisHandler: handlers.NewAnalysisHandler(analysisService, pdfService, logger),
	}, nil
}
