package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/services/analysis"
	"github.com/ternarybob/aestimo/internal/services/macro"
	"github.com/ternarybob/aestimo/internal/services/pdf"
	"github.com/ternarybob/arbor"
)

// AnalysisHandler serves company listings, report generation, and PDF export.
type AnalysisHandler struct {
	analysis *analysis.Service
	pdf      *pdf.Service
	logger   arbor.ILogger
}

// NewAnalysisHandler creates the handler for the analysis endpoints.
func NewAnalysisHandler(analysisService *analysis.Service, pdfService *pdf.Service, logger arbor.ILogger) *AnalysisHandler {
	return &AnalysisHandler{
		analysis: analysisService,
		pdf:      pdfService,
		logger:   logger,
	}
}

// Companies handles GET /api/companies with an optional sector filter.
func (h *AnalysisHandler) Companies(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	infos, err := h.analysis.Companies(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Company listing failed")
		WriteError(w, http.StatusInternalServerError, "failed to list companies")
		return
	}

	if sector := r.URL.Query().Get("sector"); sector != "" {
		filtered := infos[:0]
		for _, info := range infos {
			if strings.EqualFold(string(info.Sector), sector) {
				filtered = append(filtered, info)
			}
		}
		infos = filtered
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"companies": infos,
		"count":     len(infos),
	})
}

// Report handles GET /api/report?companies=TCS,INFY with optional
// sectors, min_growth, and macro (rates, inflation, gdp) query parameters.
func (h *AnalysisHandler) Report(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	req, err := requestFromQuery(r)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, h.analysis.Analyze(r.Context(), req))
}

// Export handles POST /api/export. The request body carries the same shape
// as the report query; the response is a PDF attachment.
func (h *AnalysisHandler) Export(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req analysis.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if len(req.Companies) == 0 {
		WriteError(w, http.StatusBadRequest, "companies is required")
		return
	}

	resp := h.analysis.Analyze(r.Context(), req)

	var reports []models.Report
	for _, result := range resp.Results {
		if result.Report != nil {
			reports = append(reports, *result.Report)
		}
	}
	if len(reports) == 0 {
		WriteError(w, http.StatusNotFound, "no reports could be generated for the requested companies")
		return
	}

	data, err := h.pdf.RenderReports(reports)
	if err != nil {
		h.logger.Error().Err(err).Msg("PDF export failed")
		WriteError(w, http.StatusInternalServerError, "failed to render PDF")
		return
	}

	filename := fmt.Sprintf("fundamentals-%s.pdf", uuid.New().String()[:8])
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func requestFromQuery(r *http.Request) (analysis.Request, error) {
	companies := SplitList(r.URL.Query().Get("companies"))
	if len(companies) == 0 {
		return analysis.Request{}, fmt.Errorf("companies query parameter is required")
	}

	req := analysis.Request{Companies: companies}

	if raw := r.URL.Query().Get("sectors"); raw != "" {
		req.Sectors = SplitList(raw)
	}

	if raw := r.URL.Query().Get("min_growth"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return analysis.Request{}, fmt.Errorf("invalid min_growth: %q", raw)
		}
		req.MinGrowthPct = &min
	}

	rates := r.URL.Query().Get("rates")
	inflation := r.URL.Query().Get("inflation")
	gdp := r.URL.Query().Get("gdp")
	if rates != "" || inflation != "" || gdp != "" {
		req.Macro = &macro.Conditions{
			InterestRates: macro.Level(rates),
			Inflation:     macro.Level(inflation),
			GDPGrowth:     macro.Level(gdp),
		}
	}

	return req, nil
}
