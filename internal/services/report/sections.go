package report

import (
	"fmt"
	"strings"

	"github.com/ternarybob/aestimo/internal/metrics"
	"github.com/ternarybob/aestimo/internal/models"
	"github.com/ternarybob/aestimo/internal/services/rating"
	"github.com/ternarybob/aestimo/internal/signals"
)

// sectorAngle is the analyst's framing sentence per sector. Unknown sectors
// fall back to the General entry, never to an error.
var sectorAngle = map[models.Sector]string{
	models.SectorBanking:      "For a lender, the revenue line reflects net interest and fee income, and rising borrowings are part of the operating model rather than an automatic red flag, so the leverage signal should be read alongside deposit growth.",
	models.SectorITServices:   "For an IT services exporter, revenue momentum tracks deal wins and currency, while the margin line captures the pricing-versus-wage-inflation tug of war that defines the sector.",
	models.SectorFMCG:         "For a consumer staples franchise, volume-led growth in the mid single digits is normal, and the investment case rests on margin discipline and capital efficiency rather than top-line pace.",
	models.SectorConglomerate: "For a conglomerate, consolidated figures blend segments with very different economics, so the trend matters more than any single year's level.",
	models.SectorGeneral:      "The figures below are read on general industrial economics without a sector-specific lens.",
}

func buildSections(in Input, latest metrics.DerivedMetrics) []models.Section {
	sections := []models.Section{
		executiveSummary(in),
		growthSection(in, latest),
		profitabilitySection(in, latest),
		balanceSheetSection(in, latest),
	}

	if in.Macro != nil {
		sections = append(sections, models.Section{
			Title: "Macro Overlay",
			Body: fmt.Sprintf("%s Overall macro stance: %s (score %.2f).",
				in.Macro.Commentary, in.Macro.Stance, in.Macro.Score),
		})
	}

	sections = append(sections, conclusionSection(in))
	return sections
}

func executiveSummary(in Input) models.Section {
	s := in.Series.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "%s screens as %s with %s conviction on %d year(s) of reported fundamentals (FY%d to FY%d). ",
		in.Company, strings.ToLower(string(in.Rating.Rating)), strings.ToLower(string(in.Rating.Conviction)),
		s.Years, s.FirstYear, s.LatestYear)

	if s.FullPeriodRevenueGrowthPct != nil {
		fmt.Fprintf(&b, "Revenue compounded %s over the full period. ", fmtPct(s.FullPeriodRevenueGrowthPct))
	} else {
		b.WriteString("Full-period revenue growth is not computable from the available data. ")
	}

	if in.Rating.WarningCount == 0 {
		fmt.Fprintf(&b, "None of the %d quality checks raised a warning.", in.Rating.ChecksRun)
	} else {
		fmt.Fprintf(&b, "%d of %d quality checks raised warnings: %s.",
			in.Rating.WarningCount, in.Rating.ChecksRun, strings.Join(in.Rating.Warnings, "; "))
	}

	b.WriteString(" ")
	b.WriteString(angleFor(in.Sector))

	return models.Section{Title: "Executive Summary", Body: b.String()}
}

func growthSection(in Input, latest metrics.DerivedMetrics) models.Section {
	var b strings.Builder
	b.WriteString(signals.Comment(in.Signals.Revenue,
		latest.RevenueGrowthPct, latest.EBITMarginPct, latest.ROICPct, latest.LeverageDelta))

	if s := in.Series.Summary; s.FullPeriodRevenueGrowthPct != nil && s.Years >= 3 {
		fmt.Fprintf(&b, " Across the full FY%d to FY%d window the top line moved %s, which frames the latest year's reading.",
			s.FirstYear, s.LatestYear, fmtPct(s.FullPeriodRevenueGrowthPct))
	}

	return models.Section{Title: "Growth", Body: b.String()}
}

func profitabilitySection(in Input, latest metrics.DerivedMetrics) models.Section {
	var b strings.Builder
	b.WriteString(signals.Comment(in.Signals.Margin,
		latest.RevenueGrowthPct, latest.EBITMarginPct, latest.ROICPct, latest.LeverageDelta))
	b.WriteString(" ")
	b.WriteString(signals.Comment(in.Signals.Efficiency,
		latest.RevenueGrowthPct, latest.EBITMarginPct, latest.ROICPct, latest.LeverageDelta))

	return models.Section{Title: "Profitability", Body: b.String()}
}

func balanceSheetSection(in Input, latest metrics.DerivedMetrics) models.Section {
	var b strings.Builder
	b.WriteString(signals.Comment(in.Signals.Leverage,
		latest.RevenueGrowthPct, latest.EBITMarginPct, latest.ROICPct, latest.LeverageDelta))
	b.WriteString(" ")
	b.WriteString(signals.Comment(in.Signals.Earnings,
		latest.RevenueGrowthPct, latest.EBITMarginPct, latest.ROICPct, latest.LeverageDelta))

	if latest.LeverageDelta != nil {
		fmt.Fprintf(&b, " Borrowings moved %s year over year.", fmtSignedAmount(latest.LeverageDelta))
	}

	return models.Section{Title: "Balance Sheet and Cash Flow", Body: b.String()}
}

func conclusionSection(in Input) models.Section {
	var b strings.Builder
	b.WriteString(in.Rating.Reasoning)

	switch in.Rating.Rating {
	case rating.RatingPositive:
		b.WriteString(" The fundamentals support a constructive stance; position sizing should still respect valuation, which this report does not assess.")
	case rating.RatingNeutral:
		b.WriteString(" The franchise is sound but the setup lacks a clear edge; watch the blocked gate for the next leg.")
	default:
		b.WriteString(" The burden of proof sits with the company; wait for the growth or quality picture to improve.")
	}

	return models.Section{Title: "Conclusion", Body: b.String()}
}

func angleFor(sector models.Sector) string {
	if angle, ok := sectorAngle[sector]; ok {
		return angle
	}
	return sectorAngle[models.SectorGeneral]
}
