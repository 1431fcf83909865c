package eodhd

import (
	"bytes"
	"strconv"
	"time"
)

// Number is a float that tolerates the API's mixed encodings: numbers,
// quoted numbers, null, and empty strings all decode cleanly. Null and
// empty values decode as missing, never as zero.
type Number struct {
	value float64
	valid bool
}

// UnmarshalJSON accepts 123.4, "123.4", "", and null.
func (n *Number) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		n.valid = false
		return nil
	}
	v, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return err
	}
	n.value = v
	n.valid = true
	return nil
}

// Float returns the value as *float64, nil when the receiver is nil or
// decoded from a missing value.
func (n *Number) Float() *float64 {
	if n == nil || !n.valid {
		return nil
	}
	v := n.value
	return &v
}

// FundamentalsResponse is the subset of the /fundamentals payload used for
// report generation.
type FundamentalsResponse struct {
	General    General    `json:"General"`
	Financials Financials `json:"Financials"`
}

// General holds company identification and classification.
type General struct {
	Code         string `json:"Code"`
	Name         string `json:"Name"`
	Exchange     string `json:"Exchange"`
	Sector       string `json:"Sector"`
	Industry     string `json:"Industry"`
	CurrencyCode string `json:"CurrencyCode"`
}

// Financials groups the three annual statements.
type Financials struct {
	IncomeStatement StatementGroup `json:"Income_Statement"`
	BalanceSheet    StatementGroup `json:"Balance_Sheet"`
	CashFlow        StatementGroup `json:"Cash_Flow"`
}

// StatementGroup holds yearly statement entries keyed by fiscal date.
type StatementGroup struct {
	CurrencySymbol string                    `json:"currency_symbol"`
	Yearly         map[string]StatementEntry `json:"yearly"`
}

// StatementEntry is one fiscal year of one statement. Only the line items
// the metric deriver consumes are mapped.
type StatementEntry struct {
	Date string `json:"date"`

	// Income statement
	TotalRevenue    *Number `json:"totalRevenue,omitempty"`
	EBIT            *Number `json:"ebit,omitempty"`
	OperatingIncome *Number `json:"operatingIncome,omitempty"`
	NetIncome       *Number `json:"netIncome,omitempty"`

	// Cash flow
	TotalCashFromOperatingActivities *Number `json:"totalCashFromOperatingActivities,omitempty"`

	// Balance sheet
	ShortLongTermDebtTotal *Number `json:"shortLongTermDebtTotal,omitempty"`
	ShortTermDebt          *Number `json:"shortTermDebt,omitempty"`
	LongTermDebt           *Number `json:"longTermDebt,omitempty"`
}

// FiscalYear parses the entry's date into a calendar year, 0 when absent.
func (e StatementEntry) FiscalYear() int {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return 0
	}
	return t.Year()
}

// OperatingProfit prefers the reported EBIT line, falling back to operating
// income when EBIT is absent.
func (e StatementEntry) OperatingProfit() *float64 {
	if v := e.EBIT.Float(); v != nil {
		return v
	}
	return e.OperatingIncome.Float()
}

// TotalDebt prefers the combined line, falling back to the sum of short and
// long term debt when both components are present.
func (e StatementEntry) TotalDebt() *float64 {
	if v := e.ShortLongTermDebtTotal.Float(); v != nil {
		return v
	}
	short := e.ShortTermDebt.Float()
	long := e.LongTermDebt.Float()
	if short == nil || long == nil {
		return nil
	}
	v := *short + *long
	return &v
}
