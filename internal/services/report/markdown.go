package report

import (
	"fmt"
	"strings"

	"github.com/ternarybob/aestimo/internal/models"
)

// Markdown renders a composed report as a Markdown document. The layout is
// fixed so that identical reports render byte-identically, which makes the
// PDF export and any downstream diffing stable.
func Markdown(r models.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Company)
	fmt.Fprintf(&b, "**Sector:** %s | **Rating:** %s | **As of:** %s\n\n",
		r.Sector, r.Rating.Rating, r.AsOf.Format("2 January 2006"))

	writeSnapshot(&b, r.Snapshot)
	writeBadges(&b, r.Badges)

	for _, section := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n%s\n\n", section.Title, section.Body)
	}

	return b.String()
}

func writeSnapshot(b *strings.Builder, rows []models.SnapshotRow) {
	if len(rows) == 0 {
		return
	}

	b.WriteString("## Fundamentals Snapshot\n\n")
	b.WriteString("| Year | Revenue | EBIT | PAT | OCF | Debt | Growth | Margin | ROIC |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|---|\n")
	for _, row := range rows {
		fmt.Fprintf(b, "| %d | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			row.Year, row.Revenue, row.EBIT, row.PAT, row.OCF, row.Debt,
			row.RevenueGrowthPct, row.EBITMarginPct, row.ROICPct)
	}
	b.WriteString("\n")
}

func writeBadges(b *strings.Builder, badges []models.Badge) {
	if len(badges) == 0 {
		return
	}

	b.WriteString("## Signals\n\n")
	for _, badge := range badges {
		marker := ""
		if badge.Warning {
			marker = " (warning)"
		} else if badge.Insufficient {
			marker = " (insufficient data)"
		}
		fmt.Fprintf(b, "- **%s:** %s%s - %s\n", badgeTitle(badge.Metric), badge.Label, marker, badge.Comment)
	}
	b.WriteString("\n")
}

// badgeTitle maps metric identifiers onto display headings.
func badgeTitle(metric string) string {
	switch metric {
	case "revenue_trend":
		return "Revenue Trend"
	case "margin_direction":
		return "Margin Direction"
	case "earnings_quality":
		return "Earnings Quality"
	case "leverage":
		return "Leverage"
	case "capital_efficiency":
		return "Capital Efficiency"
	default:
		return metric
	}
}
