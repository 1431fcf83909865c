package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/aestimo/internal/common"
	"github.com/ternarybob/aestimo/internal/fundstore"
	"github.com/ternarybob/aestimo/internal/services/analysis"
	"github.com/ternarybob/aestimo/internal/services/pdf"
)

func newTestHandler(t *testing.T) *AnalysisHandler {
	t.Helper()

	store, err := fundstore.NewEmbeddedStore()
	require.NoError(t, err)

	cfg := common.NewDefaultConfig().Analysis
	return NewAnalysisHandler(
		analysis.NewService(store, cfg, common.GetLogger()),
		pdf.NewService(nil),
		common.GetLogger(),
	)
}

func TestCompaniesEndpoint(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/companies", nil)
	rec := httptest.NewRecorder()
	h.Companies(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 5, body.Count)
}

func TestCompaniesSectorFilter(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/companies?sector=Banking", nil)
	rec := httptest.NewRecorder()
	h.Companies(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
}

func TestCompaniesRejectsPost(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/companies", nil)
	rec := httptest.NewRecorder()
	h.Companies(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestReportEndpoint(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report?companies=TCS,NOSUCH", nil)
	rec := httptest.NewRecorder()
	h.Report(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp analysis.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 2)

	assert.NotNil(t, resp.Results[0].Report)
	assert.Equal(t, "Neutral", resp.Results[0].Report.Rating.Rating)
	assert.Nil(t, resp.Results[1].Report)
	assert.NotEmpty(t, resp.Results[1].Error)
}

func TestReportRequiresCompanies(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report", nil)
	rec := httptest.NewRecorder()
	h.Report(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReportMacroQuery(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report?companies=TCS&rates=low&inflation=low&gdp=high", nil)
	rec := httptest.NewRecorder()
	h.Report(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Macro Overlay")
}

func TestReportInvalidMinGrowth(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/report?companies=TCS&min_growth=abc", nil)
	rec := httptest.NewRecorder()
	h.Report(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestExportEndpoint(t *testing.T) {
	h := newTestHandler(t)

	body := strings.NewReader(`{"companies": ["TCS", "RELIANCE"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/export", body)
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Equal(t, "%PDF-", rec.Body.String()[:5])
}

func TestExportAllCompaniesFail(t *testing.T) {
	h := newTestHandler(t)

	body := strings.NewReader(`{"companies": ["NOSUCH"]}`)
	req := httptest.NewRequest(http.MethodPost, "/api/export", body)
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExportRequiresBody(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/export", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	h.Export(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
