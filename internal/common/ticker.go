package common

import (
	"strings"
)

// Ticker represents a parsed exchange-qualified ticker.
// Format: EXCHANGE:CODE (e.g., "NSE:TCS", "NYSE:IBM")
type Ticker struct {
	// Exchange is the exchange code (e.g., "NSE", "BSE", "NYSE")
	Exchange string
	// Code is the company/security code (e.g., "TCS", "INFY")
	Code string
	// Raw is the original ticker string
	Raw string
}

// ExchangeToSuffix maps exchange codes to EODHD API suffixes.
var ExchangeToSuffix = map[string]string{
	"NSE":    ".NSE",
	"BSE":    ".BSE",
	"NYSE":   ".US",
	"NASDAQ": ".US",
	"LSE":    ".LSE",
	"ASX":    ".AU",
}

// DefaultExchange is the exchange assumed for tickers without a prefix.
// Overridden from [store.eodhd] exchange config at startup.
var DefaultExchange = "NSE"

// SetDefaultExchange sets the default exchange for parsing tickers.
func SetDefaultExchange(exchange string) {
	if exchange != "" {
		DefaultExchange = strings.ToUpper(exchange)
	}
}

// ParseTicker parses an exchange-qualified ticker string.
// Supports "NSE:TCS", "NSE.TCS" and bare "TCS" (default exchange applied).
func ParseTicker(ticker string) Ticker {
	ticker = strings.TrimSpace(ticker)
	if ticker == "" {
		return Ticker{}
	}

	if idx := strings.Index(ticker, ":"); idx > 0 {
		return Ticker{
			Exchange: strings.ToUpper(ticker[:idx]),
			Code:     strings.ToUpper(ticker[idx+1:]),
			Raw:      ticker,
		}
	}

	// Dot separator only when the prefix is a known exchange, so codes
	// containing dots still parse as bare codes.
	if idx := strings.Index(ticker, "."); idx > 0 {
		possibleExchange := strings.ToUpper(ticker[:idx])
		if _, ok := ExchangeToSuffix[possibleExchange]; ok {
			return Ticker{
				Exchange: possibleExchange,
				Code:     strings.ToUpper(ticker[idx+1:]),
				Raw:      ticker,
			}
		}
	}

	return Ticker{
		Exchange: DefaultExchange,
		Code:     strings.ToUpper(ticker),
		Raw:      ticker,
	}
}

// String returns the full exchange-qualified ticker string.
func (t Ticker) String() string {
	if t.Exchange == "" || t.Code == "" {
		return t.Code
	}
	return t.Exchange + ":" + t.Code
}

// EODHDSymbol returns the EODHD API symbol format.
// Example: "NSE:TCS" -> "TCS.NSE"
func (t Ticker) EODHDSymbol() string {
	if t.Code == "" {
		return ""
	}
	suffix, ok := ExchangeToSuffix[t.Exchange]
	if !ok {
		suffix = "." + t.Exchange
	}
	return t.Code + suffix
}

// ParseTickers parses a list of ticker strings, dropping empties.
func ParseTickers(tickers []string) []Ticker {
	result := make([]Ticker, 0, len(tickers))
	for _, t := range tickers {
		if parsed := ParseTicker(t); parsed.Code != "" {
			result = append(result, parsed)
		}
	}
	return result
}
