package pdf

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/aestimo/internal/metrics"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/services/rating"
	"github.com/ternarybob/aestimo/internal/services/report"
	"github.com/ternarybob/aestimo/internal/signals"
)

func fixtureReport(t *testing.T, company string) models.Report {
	t.Helper()

	rows := []models.FundamentalRow{
		{Company: company, Sector: models.SectorITServices, Year: 2023,
			Revenue: models.Float(225458), EBIT: models.Float(56094), PAT: models.Float(42147),
			OCF: models.Float(41965), Debt: models.Float(13000)},
		{Company: company, Sector: models.SectorITServices, Year: 2024,
			Revenue: models.Float(240893), EBIT: models.Float(56008), PAT: models.Float(45908),
			OCF: models.Float(44338), Debt: models.Float(11000)},
	}

	series, err := metrics.Derive(rows)
	require.NoError(t, err)

	latest, previous := series.Latest()
	set := signals.Classify(latest, previous)
	result := rating.Aggregate(series.Summary, latest, set, rating.Config{})

	return report.Compose(report.Input{
		Company: company,
		Sector:  models.SectorITServices,
		Series:  series,
		Signals: set,
		Rating:  result,
		AsOf:    time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
	})
}

func TestRenderReport(t *testing.T) {
	service := NewService(nil)

	data, err := service.RenderReport(fixtureReport(t, "TCS"))
	require.NoError(t, err)
	require.NotEmpty(t, data)

	assert.True(t, len(data) > 1000, "PDF should have substantial content, got %d bytes", len(data))
	assert.Equal(t, "%PDF-", string(data[:5]), "output should start with PDF magic bytes")
}

func TestRenderReportsMultiCompany(t *testing.T) {
	service := NewService(nil)

	single, err := service.RenderReport(fixtureReport(t, "TCS"))
	require.NoError(t, err)

	pack, err := service.RenderReports([]models.Report{
		fixtureReport(t, "TCS"),
		fixtureReport(t, "INFY"),
	})
	require.NoError(t, err)

	assert.Greater(t, len(pack), len(single), "two reports should render larger than one")
}

func TestRenderReportsEmpty(t *testing.T) {
	service := NewService(nil)

	_, err := service.RenderReports(nil)
	assert.Error(t, err)
}

func TestRenderReportDeterministic(t *testing.T) {
	service := NewService(nil)
	r := fixtureReport(t, "TCS")

	first, err := service.RenderReport(r)
	require.NoError(t, err)
	second, err := service.RenderReport(r)
	require.NoError(t, err)

	// fpdf embeds a creation timestamp; beyond that the body is identical.
	assert.Equal(t, len(first), len(second))
}
