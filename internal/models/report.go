package models

import "time"

// Section is one narrative block of a composed report.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// SnapshotRow is one display row of the raw + derived metrics table.
// Values are pre-formatted strings so that undefined metrics render as "n/a"
// exactly once, at composition time.
type SnapshotRow struct {
	Year             int    `json:"year"`
	Revenue          string `json:"revenue"`
	EBIT             string `json:"ebit"`
	PAT              string `json:"pat"`
	OCF              string `json:"ocf"`
	Debt             string `json:"debt"`
	RevenueGrowthPct string `json:"revenue_growth_pct"`
	EBITMarginPct    string `json:"ebit_margin_pct"`
	ROICPct          string `json:"roic_pct"`
}

// Badge is the display form of one classified signal.
type Badge struct {
	Metric       string `json:"metric"`
	Label        string `json:"label"`
	Warning      bool   `json:"warning"`
	Insufficient bool   `json:"insufficient"`
	Comment      string `json:"comment,omitempty"`
}

// RatingSummary is the display form of the aggregated conviction rating.
type RatingSummary struct {
	Rating       string   `json:"rating"`
	WarningCount int      `json:"warning_count"`
	ChecksRun    int      `json:"checks_run"`
	Warnings     []string `json:"warnings,omitempty"`
	Reasoning    string   `json:"reasoning"`
}

// Report is one composed research report for one company as of one instant.
// Reports are transient value objects; they are never persisted server-side.
type Report struct {
	Company  string        `json:"company"`
	Sector   Sector        `json:"sector"`
	AsOf     time.Time     `json:"as_of"`
	Snapshot []SnapshotRow `json:"snapshot"`
	Badges   []Badge       `json:"badges"`
	Rating   RatingSummary `json:"rating"`
	Sections []Section     `json:"sections"`
}
